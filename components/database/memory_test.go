package database

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-points/components/entity/models"
	"github.com/go-points/pkg/setting"
	"github.com/go-points/validators/query"
)

func newWeight() models.Entity {
	return new(models.Weight)
}

func seed(t *testing.T, s *MemoryStore, weights ...float64) {
	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	for i, w := range weights {
		e := &models.Weight{Timestamp: base.Add(time.Duration(i) * time.Hour), Weight: w}
		require.NoError(t, s.Create(context.Background(), e))
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := NewMemoryStore()

	w := &models.Weight{Timestamp: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC), Weight: 72.5}
	require.NoError(t, s.Create(ctx, w))
	assert.Equal(uint64(1), w.ID)

	var got models.Weight
	require.NoError(t, s.Find(ctx, &got, 1))
	assert.Equal(72.5, got.Weight)
	assert.True(w.Timestamp.Equal(got.Timestamp))

	got.Weight = 71
	assert.Equal(72.5, w.Weight)
	require.NoError(t, s.Save(ctx, &got))

	var again models.Weight
	require.NoError(t, s.Find(ctx, &again, 1))
	assert.Equal(71.0, again.Weight)

	missing := &models.Weight{Model: models.Model{ID: 9}}
	assert.True(IsNotFound(s.Save(ctx, missing)))
	assert.True(IsNotFound(s.Find(ctx, &again, 9)))

	require.NoError(t, s.Delete(ctx, &models.Weight{}, 1))
	assert.True(IsNotFound(s.Delete(ctx, &models.Weight{}, 1)))

	// other tables have their own ids
	bp := &models.BloodPressure{Systolic: 120, Diastolic: 80}
	require.NoError(t, s.Create(ctx, bp))
	assert.Equal(uint64(1), bp.ID)
}

func TestMemoryStoreList(t *testing.T) {
	assert := assert.New(t)
	s := NewMemoryStore()
	seed(t, s, 80, 70, 75, 70)

	weights := func(list []models.Entity) []float64 {
		var r []float64
		for _, e := range list {
			r = append(r, e.(*models.Weight).Weight)
		}
		return r
	}

	tests := []struct {
		page    query.Pagination
		orders  [][2]string
		weights []float64
	}{
		{query.Pagination{Page: 1, PageSize: 10}, nil, []float64{80, 70, 75, 70}},
		{query.Pagination{Page: 1, PageSize: 10}, [][2]string{{"weight", query.Asc}}, []float64{70, 70, 75, 80}},
		{query.Pagination{Page: 1, PageSize: 2}, [][2]string{{"weight", query.Desc}}, []float64{80, 75}},
		{query.Pagination{Page: 2, PageSize: 3}, nil, []float64{70}},
		{query.Pagination{Page: 1, PageSize: 10}, [][2]string{{"timestamp", query.Desc}}, []float64{70, 75, 70, 80}},
		{query.Pagination{Page: 9, PageSize: 10}, nil, nil},
		{query.Pagination{Page: math.MaxUint32, PageSize: 3}, nil, nil},
	}

	for _, test := range tests {
		p := test.page
		p.Init()
		list, err := s.List(context.Background(), newWeight, &p, test.orders)
		if assert.NoError(err) {
			assert.Equal(test.weights, weights(list), "%+v %v", test.page, test.orders)
			assert.Equal(uint32(4), p.TotalCount)
		}
	}
}

func TestMemoryStoreCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStore()
	assert.Error(t, s.Create(ctx, &models.Weight{}))
}

func TestOpen(t *testing.T) {
	s, err := Open(&setting.Database{Type: TypeMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.NoError(t, s.Close())

	_, err = Open(&setting.Database{Type: "oracle"})
	assert.Error(t, err)
}
