package store

import (
	"context"

	"github.com/go-points/components/entity/models"
	"github.com/go-points/validators/query"
)

type Factory func() models.Entity

// Store persists entities. Find, Save and Delete return database.ErrNotFound
// (check with errors.Cause) when no row has the id.
type Store interface {
	Create(ctx context.Context, e models.Entity) error
	Save(ctx context.Context, e models.Entity) error
	Find(ctx context.Context, e models.Entity, id uint64) error
	// List fills p.TotalCount and returns the page selected by p. Orders
	// hold column and direction pairs.
	List(ctx context.Context, newFn Factory, p *query.Pagination, orders [][2]string) ([]models.Entity, error)
	Delete(ctx context.Context, e models.Entity, id uint64) error
	Close() error
}
