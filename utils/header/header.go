package header

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Field struct {
	Name  string
	Value string
}

// Set is an ordered list of header fields. A name may appear more than once.
type Set []Field

func New(fields ...string) Set {
	s := make(Set, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		s = s.Add(fields[i], fields[i+1])
	}
	return s
}

func (s Set) Add(name, value string) Set {
	return append(s, Field{Name: name, Value: value})
}

func (s Set) Len() int {
	return len(s)
}

// Get returns the first value of name, or "" when absent. Names match exactly.
func (s Set) Get(name string) string {
	for _, f := range s {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func (s Set) Values(name string) []string {
	var values []string
	for _, f := range s {
		if f.Name == name {
			values = append(values, f.Value)
		}
	}
	return values
}

func (s Set) Names() []string {
	seen := make(map[string]struct{}, len(s))
	names := make([]string, 0, len(s))
	for _, f := range s {
		if _, ok := seen[f.Name]; ok {
			continue
		}
		seen[f.Name] = struct{}{}
		names = append(names, f.Name)
	}
	return names
}

func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	c := make(Set, len(s))
	copy(c, s)
	return c
}

func (s Set) Header() http.Header {
	h := make(http.Header, len(s))
	s.Apply(h)
	return h
}

// Apply appends every field to h. Names are stored verbatim so a
// deployment prefix such as "X-pointsApp" reaches the wire unchanged.
func (s Set) Apply(h http.Header) {
	for _, f := range s {
		h[f.Name] = append(h[f.Name], f.Value)
	}
}

func (s Set) Render(c *gin.Context) {
	s.Apply(c.Writer.Header())
}

// First returns the first value of name in h, trying the verbatim name
// before the canonical one.
func First(h http.Header, name string) string {
	if v := h[name]; len(v) > 0 {
		return v[0]
	}
	return h.Get(name)
}
