package repository

import (
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Resource is a gorm-backed store for one table, parameterized by the model
// type and the name of its primary key column.
type Resource[T any] struct {
	db       *gorm.DB
	idColumn string
}

func NewResource[T any](db *gorm.DB, idColumn string) *Resource[T] {
	return &Resource[T]{db: db, idColumn: idColumn}
}

func (r *Resource[T]) GetAll() ([]T, error) {
	var rows []T
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query all rows failed: %w", err)
	}
	return rows, nil
}

// GetByID returns (nil, nil) when no row matches.
func (r *Resource[T]) GetByID(id int64) (*T, error) {
	var row T
	if err := r.db.Where(r.idColumn+" = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query row by id failed: %w", err)
	}
	return &row, nil
}

func (r *Resource[T]) Insert(row *T) error {
	if err := r.db.Create(row).Error; err != nil {
		return fmt.Errorf("insert row failed: %w", err)
	}
	return nil
}

func (r *Resource[T]) UpdateFields(id int64, fields map[string]any) error {
	var row T
	if err := r.db.Model(&row).Where(r.idColumn+" = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update row failed: %w", err)
	}
	return nil
}

func (r *Resource[T]) Delete(id int64) error {
	var row T
	if err := r.db.Where(r.idColumn+" = ?", id).Delete(&row).Error; err != nil {
		return fmt.Errorf("delete row failed: %w", err)
	}
	return nil
}

func (r *Resource[T]) ListBy(column string, value any) ([]T, error) {
	var rows []T
	if err := r.db.Where(column+" = ?", value).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query rows by %s failed: %w", column, err)
	}
	return rows, nil
}

func (r *Resource[T]) SearchBy(column, substring string) ([]T, error) {
	var rows []T
	if err := r.db.Where(column+" LIKE ?", "%"+substring+"%").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("search rows by %s failed: %w", column, err)
	}
	return rows, nil
}

// IsDuplicateEntry reports whether err came from a uniqueness constraint.
// MySQL surfaces error 1062; drivers behind gorm's error translation
// surface gorm.ErrDuplicatedKey.
func IsDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}
