package entity

import (
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/go-points/components/entity/models"
	"github.com/go-points/iface/store"
)

// Resource is an entity exposed under /api/<Path>.
type Resource struct {
	Path string
	New  store.Factory
	// columns a list may be ordered by
	Orderable map[string]struct{}
}

var resources = map[string]Resource{
	"points": {
		Path:      "points",
		New:       func() models.Entity { return new(models.Points) },
		Orderable: columns("id", "date", "exercise", "meals", "alcohol"),
	},
	"weights": {
		Path:      "weights",
		New:       func() models.Entity { return new(models.Weight) },
		Orderable: columns("id", "timestamp", "weight"),
	},
	"blood-pressures": {
		Path:      "blood-pressures",
		New:       func() models.Entity { return new(models.BloodPressure) },
		Orderable: columns("id", "timestamp", "systolic", "diastolic"),
	},
}

func columns(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func Lookup(path string) (Resource, bool) {
	r, ok := resources[path]
	return r, ok
}

// Resources returns every resource sorted by path.
func Resources() []Resource {
	rs := make([]Resource, 0, len(resources))
	for _, r := range resources {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Path < rs[j].Path })
	return rs
}

// Models returns a zero value of every entity, for migrations.
func Models() []models.Entity {
	var es []models.Entity
	for _, r := range Resources() {
		es = append(es, r.New())
	}
	return es
}

func (r Resource) EntityName() string {
	return r.New().EntityName()
}

func (r Resource) ValidateOrders(orders [][2]string) error {
	for _, o := range orders {
		if _, ok := r.Orderable[o[0]]; !ok {
			return errors.Errorf("cannot order %s by %s", r.Path, o[0])
		}
	}
	return nil
}

// Patch applies the json fields of values onto e. Unknown fields, id and
// fractional numbers for integer fields are rejected; timestamps are RFC 3339
// strings.
func Patch(e models.Entity, values map[string]interface{}) error {
	if _, ok := values["id"]; ok {
		return errors.New("id cannot be patched")
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			integralHook,
		),
		ErrorUnused: true,
		TagName:     "json",
		Result:      e,
	})
	if err != nil {
		return errors.Wrap(err, "patch decoder")
	}
	return errors.Wrapf(decoder.Decode(values), "patch %s", e.EntityName())
}

func integralHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	if f, ok := data.(float64); ok && f != math.Trunc(f) {
		return nil, errors.Errorf("%v is not an integer", f)
	}
	return data, nil
}
