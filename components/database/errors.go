package database

import "github.com/pkg/errors"

var ErrNotFound = errors.New("record not found")

func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}
