package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	"github.com/pkg/errors"

	"github.com/go-points/components/entity/models"
	"github.com/go-points/iface/store"
	"github.com/go-points/pkg/setting"
)

const (
	TypeMySQL  = "mysql"
	TypeMemory = "memory"
)

// Open connects the configured store and migrates the tables of es.
func Open(cfg *setting.Database, es ...models.Entity) (store.Store, error) {
	switch cfg.Type {
	case TypeMemory, "":
		return NewMemoryStore(), nil
	case TypeMySQL:
	default:
		return nil, errors.Errorf("unknown database type %q", cfg.Type)
	}

	models.SetTablePrefix(cfg.TablePrefix)

	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Name)
	db, err := gorm.Open(TypeMySQL, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	db.SingularTable(true)

	s := NewGormStore(db)
	if err := s.Migrate(es...); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}
