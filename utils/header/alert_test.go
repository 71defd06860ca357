package header

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAlert(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		message string
		param   string
	}{
		{"app.product.created", "42"},
		{"", ""},
		{"some free form message", "a b c"},
	}

	for _, test := range tests {
		s := CreateAlert(test.message, test.param)
		assert.Equal(Set{
			{Name: "X-App-Alert", Value: test.message},
			{Name: "X-App-Params", Value: test.param},
		}, s, test.message)
	}
}

func TestEntityAlerts(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		build  func(string, string) Set
		entity string
		param  string
		alert  string
	}{
		{CreateEntityCreationAlert, "product", "42", "app.product.created"},
		{CreateEntityUpdateAlert, "order", "order-7", "app.order.updated"},
		{CreateEntityDeletionAlert, "user", "u-1", "app.user.deleted"},
		{CreateEntityCreationAlert, "", "", "app..created"},
	}

	for _, test := range tests {
		s := test.build(test.entity, test.param)
		assert.Equal(CreateAlert(test.alert, test.param), s, test.alert)
		assert.Equal([]string{"X-App-Alert", "X-App-Params"}, s.Names())
	}
}

func TestCreateFailureAlert(t *testing.T) {
	assert := assert.New(t)

	s := CreateFailureAlert("user", "email.taken", "Email already in use")
	assert.Equal(Set{
		{Name: "X-App-Error", Value: "error.email.taken"},
		{Name: "X-App-Params", Value: "user"},
	}, s)

	for _, f := range s {
		assert.NotContains(f.Name, "Email already in use")
		assert.NotContains(f.Value, "Email already in use")
	}
}

func TestResultsAreIndependent(t *testing.T) {
	assert := assert.New(t)

	a := CreateEntityCreationAlert("product", "42")
	b := CreateEntityCreationAlert("product", "42")
	assert.Equal(a, b)

	a[0].Value = "changed"
	assert.Equal(3, a.Add("X-Extra", "1").Len())
	assert.Equal("app.product.created", b.Get("X-App-Alert"))
	assert.Equal(2, b.Len())

	c := b.Clone()
	c[1].Value = "43"
	assert.Equal("42", b.Get("X-App-Params"))
}

func TestBuilderPrefixes(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder("X-pointsApp", "pointsApp")

	s := b.CreateEntityUpdateAlert("weight", "3")
	assert.Equal("pointsApp.weight.updated", s.Get("X-pointsApp-Alert"))
	assert.Equal("3", s.Get("X-pointsApp-Params"))

	s = b.CreateFailureAlert("weight", "idexists", "A new weight cannot already have an ID")
	assert.Equal("error.idexists", s.Get("X-pointsApp-Error"))

	assert.Equal(NewBuilder(DefaultHeaderPrefix, DefaultAlertPrefix), NewBuilder("", ""))
}

func TestBuilderLowercaseNames(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder("X-pointsApp", "pointsApp")
	b.LowercaseNames = true

	assert.Equal("X-pointsApp-alert", b.AlertHeader())
	assert.Equal("X-pointsApp-error", b.ErrorHeader())
	assert.Equal("X-pointsApp-params", b.ParamsHeader())

	s := b.CreateEntityCreationAlert("points", "5")
	assert.Equal([]string{"X-pointsApp-alert", "X-pointsApp-params"}, s.Names())
	assert.Equal("", s.Get("X-pointsApp-Alert"))

	s = b.CreateFailureAlert("points", "points.notfound", "")
	assert.Equal("error.points.notfound", s.Get("X-pointsApp-error"))
	assert.Equal("points", s.Get("X-pointsApp-params"))
}

func TestSetDefault(t *testing.T) {
	assert := assert.New(t)

	prev := Default()
	defer SetDefault(prev)

	SetDefault(Builder{HeaderPrefix: "X-pointsApp", AlertPrefix: "pointsApp"})
	s := CreateEntityDeletionAlert("points", "9")
	assert.Equal("pointsApp.points.deleted", s.Get("X-pointsApp-Alert"))

	SetDefault(Builder{HeaderPrefix: "X-pointsApp", LowercaseNames: true})
	s = CreateEntityCreationAlert("points", "10")
	assert.Equal("app.points.created", s.Get("X-pointsApp-alert"))

	SetDefault(Builder{})
	assert.Equal(DefaultHeaderPrefix, Default().HeaderPrefix)
	assert.False(Default().LowercaseNames)
}

func TestSetApply(t *testing.T) {
	assert := assert.New(t)

	s := New("X-pointsApp-Alert", "pointsApp.points.created", "X-pointsApp-Params", "1", "X-pointsApp-Params", "2")
	h := s.Header()

	assert.Equal([]string{"pointsApp.points.created"}, h["X-pointsApp-Alert"])
	assert.Equal([]string{"1", "2"}, h["X-pointsApp-Params"])
	assert.Equal([]string{"1", "2"}, s.Values("X-pointsApp-Params"))
	assert.Equal([]string{"X-pointsApp-Alert", "X-pointsApp-Params"}, s.Names())
	assert.Equal("", s.Get("X-Missing"))
}

func TestSetRender(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	CreateEntityCreationAlert("product", "42").Render(c)
	c.Status(http.StatusCreated)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "app.product.created", w.Header().Get("X-App-Alert"))
	assert.Equal(t, "42", w.Header().Get("X-App-Params"))
}

func TestConcurrentBuilders(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]Set, 64)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = CreateEntityCreationAlert("product", strings.Repeat("x", i))
		}(i)
	}
	wg.Wait()

	for i, s := range results {
		assert.Equal(t, strings.Repeat("x", i), s.Get("X-App-Params"))
		assert.Equal(t, "app.product.created", s.Get("X-App-Alert"))
	}
}
