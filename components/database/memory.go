package database

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/go-points/components/entity/models"
	"github.com/go-points/iface/store"
	"github.com/go-points/validators/query"
)

// MemoryStore keeps entities as JSON documents per table, so values handed
// out never alias stored state.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID map[string]uint64
	tables map[string]map[uint64][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: make(map[string]uint64),
		tables: make(map[string]map[uint64][]byte),
	}
}

func (s *MemoryStore) Create(ctx context.Context, e models.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID[e.TableName()]++
	e.SetID(s.nextID[e.TableName()])
	return s.put(e)
}

func (s *MemoryStore) Save(ctx context.Context, e models.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[e.TableName()][e.GetID()]; !ok {
		return errors.Wrapf(ErrNotFound, "%s %d", e.EntityName(), e.GetID())
	}
	return s.put(e)
}

func (s *MemoryStore) put(e models.Entity) error {
	data, err := json.Marshal(e)
	if err != nil {
		return errors.Wrapf(err, "encode %s", e.EntityName())
	}
	t, ok := s.tables[e.TableName()]
	if !ok {
		t = make(map[uint64][]byte)
		s.tables[e.TableName()] = t
	}
	t[e.GetID()] = data
	return nil
}

func (s *MemoryStore) Find(ctx context.Context, e models.Entity, id uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	data, ok := s.tables[e.TableName()][id]
	s.mu.RUnlock()

	if !ok {
		return errors.Wrapf(ErrNotFound, "%s %d", e.EntityName(), id)
	}
	return errors.Wrapf(json.Unmarshal(data, e), "decode %s", e.EntityName())
}

type memoryRow struct {
	id     uint64
	data   []byte
	fields map[string]interface{}
}

func (s *MemoryStore) List(ctx context.Context, newFn store.Factory, p *query.Pagination, orders [][2]string) ([]models.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	table := newFn().TableName()

	s.mu.RLock()
	rows := make([]memoryRow, 0, len(s.tables[table]))
	for id, data := range s.tables[table] {
		rows = append(rows, memoryRow{id: id, data: data})
	}
	s.mu.RUnlock()

	if len(orders) > 0 {
		for i := range rows {
			if err := json.Unmarshal(rows[i].data, &rows[i].fields); err != nil {
				return nil, errors.Wrapf(err, "decode %s", table)
			}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range orders {
			c := compareValues(rows[i].fields[o[0]], rows[j].fields[o[0]])
			if c == 0 {
				continue
			}
			if o[1] == query.Desc {
				return c > 0
			}
			return c < 0
		}
		return rows[i].id < rows[j].id
	})

	p.TotalCount = uint32(len(rows))
	start := int(p.Offset)
	if start > len(rows) {
		start = len(rows)
	}
	end := start + int(p.PageSize)
	if p.PageSize == 0 || end > len(rows) {
		end = len(rows)
	}

	list := make([]models.Entity, 0, end-start)
	for _, row := range rows[start:end] {
		e := newFn()
		if err := json.Unmarshal(row.data, e); err != nil {
			return nil, errors.Wrapf(err, "decode %s", table)
		}
		list = append(list, e)
	}
	return list, nil
}

func (s *MemoryStore) Delete(ctx context.Context, e models.Entity, id uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[e.TableName()][id]; !ok {
		return errors.Wrapf(ErrNotFound, "%s %d", e.EntityName(), id)
	}
	delete(s.tables[e.TableName()], id)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// compareValues orders decoded JSON values: numbers numerically, RFC 3339
// timestamps chronologically, other strings lexically.
func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case float64:
		bv, _ := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case string:
		bv, _ := b.(string)
		at, aerr := time.Parse(time.RFC3339Nano, av)
		bt, berr := time.Parse(time.RFC3339Nano, bv)
		if aerr == nil && berr == nil {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
	return 0
}
