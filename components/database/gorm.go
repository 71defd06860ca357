package database

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/go-points/components/entity/models"
	"github.com/go-points/iface/store"
	"github.com/go-points/validators/query"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Migrate(es ...models.Entity) error {
	values := make([]interface{}, 0, len(es))
	for _, e := range es {
		values = append(values, e)
	}
	return errors.Wrap(s.db.AutoMigrate(values...).Error, "migrate")
}

func (s *GormStore) Create(ctx context.Context, e models.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Wrapf(s.db.Create(e).Error, "create %s", e.EntityName())
}

func (s *GormStore) Save(ctx context.Context, e models.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var count int
	if err := s.db.Model(e).Where("id = ?", e.GetID()).Count(&count).Error; err != nil {
		return errors.Wrapf(err, "count %s", e.EntityName())
	}
	if count == 0 {
		return errors.Wrapf(ErrNotFound, "%s %d", e.EntityName(), e.GetID())
	}
	return errors.Wrapf(s.db.Save(e).Error, "save %s", e.EntityName())
}

func (s *GormStore) Find(ctx context.Context, e models.Entity, id uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Where("id = ?", id).First(e).Error
	if gorm.IsRecordNotFoundError(err) {
		return errors.Wrapf(ErrNotFound, "%s %d", e.EntityName(), id)
	}
	return errors.Wrapf(err, "find %s", e.EntityName())
}

func (s *GormStore) List(ctx context.Context, newFn store.Factory, p *query.Pagination, orders [][2]string) ([]models.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e := newFn()
	model := s.db.Model(e)
	if err := model.Count(&p.TotalCount).Error; err != nil {
		return nil, errors.Wrapf(err, "count %s", e.EntityName())
	}
	for _, v := range orders {
		model = model.Order(fmt.Sprintf("%s %s", v[0], v[1]))
	}
	model = model.Order("id asc")

	rows := reflect.New(reflect.SliceOf(reflect.TypeOf(e)))
	err := model.Offset(p.Offset).Limit(p.PageSize).Find(rows.Interface()).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", e.EntityName())
	}

	list := make([]models.Entity, 0, rows.Elem().Len())
	for i := 0; i < rows.Elem().Len(); i++ {
		list = append(list, rows.Elem().Index(i).Interface().(models.Entity))
	}
	return list, nil
}

func (s *GormStore) Delete(ctx context.Context, e models.Entity, id uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res := s.db.Where("id = ?", id).Delete(e)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete %s", e.EntityName())
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "%s %d", e.EntityName(), id)
	}
	return nil
}

func (s *GormStore) Close() error {
	return s.db.Close()
}
