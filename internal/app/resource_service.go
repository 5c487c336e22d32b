package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"dino-explorer/internal/repository"
)

// Resource implements the CRUD contract shared by every entity type,
// parameterized by a validation rule set and the store's id column.
// Field validation always runs before any store access, and existence
// checks always precede mutation.
type Resource[T any] struct {
	store *repository.Resource[T]
	rules RuleSet
	label string

	// beforeSave lets an entity transform the validated change-set before
	// it reaches the store (the user service hashes passwords here).
	beforeSave func(changeset map[string]any, creating bool) error
}

func NewResource[T any](store *repository.Resource[T], rules RuleSet, label string) *Resource[T] {
	return &Resource[T]{store: store, rules: rules, label: label}
}

// ParseID rejects anything that is not a positive integer.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id", ErrValidation)
	}
	return id, nil
}

func (s *Resource[T]) GetAll() ([]T, error) {
	rows, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (s *Resource[T]) GetByID(id int64) (*T, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid %s id", ErrValidation, s.label)
	}
	row, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%s %w", s.label, ErrNotFound)
	}
	return row, nil
}

func (s *Resource[T]) Create(data map[string]any) (*T, error) {
	changeset, err := s.rules.Validate(data, false)
	if err != nil {
		return nil, err
	}
	if s.beforeSave != nil {
		if err := s.beforeSave(changeset, true); err != nil {
			return nil, err
		}
	}

	row, err := decodeChangeset[T](changeset)
	if err != nil {
		return nil, err
	}
	if err := s.store.Insert(row); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, fmt.Errorf("%s %w", s.label, ErrConflict)
		}
		return nil, err
	}
	return row, nil
}

func (s *Resource[T]) Update(id int64, data map[string]any) (*T, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	changeset, err := s.rules.Validate(data, true)
	if err != nil {
		return nil, err
	}
	if s.beforeSave != nil {
		if err := s.beforeSave(changeset, false); err != nil {
			return nil, err
		}
	}
	if err := s.store.UpdateFields(id, changeset); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, fmt.Errorf("%s %w", s.label, ErrConflict)
		}
		return nil, err
	}
	return s.GetByID(id)
}

func (s *Resource[T]) Delete(id int64) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.store.Delete(id)
}

// decodeChangeset maps validated payload fields onto the model through
// their shared json names.
func decodeChangeset[T any](changeset map[string]any) (*T, error) {
	buf, err := json.Marshal(changeset)
	if err != nil {
		return nil, fmt.Errorf("encode change-set failed: %w", err)
	}
	row := new(T)
	if err := json.Unmarshal(buf, row); err != nil {
		return nil, fmt.Errorf("decode change-set failed: %w", err)
	}
	return row, nil
}
