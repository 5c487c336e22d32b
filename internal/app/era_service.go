package app

import (
	"fmt"

	"gorm.io/gorm"

	"dino-explorer/internal/model"
	"dino-explorer/internal/repository"
)

type EraService struct {
	*Resource[model.Era]
	store *repository.Resource[model.Era]
}

func NewEraService(db *gorm.DB) *EraService {
	store := repository.NewResource[model.Era](db, "era_id")
	rules := RuleSet{
		{Field: "title", Required: true, MaxLen: 100},
		{Field: "description"},
		{Field: "era", MaxLen: 100},
		{Field: "period", MaxLen: 100},
	}
	return &EraService{
		Resource: NewResource(store, rules, "era"),
		store:    store,
	}
}

func (s *EraService) GetByPeriod(period string) ([]model.Era, error) {
	if period == "" {
		return nil, fmt.Errorf("%w: period is required", ErrValidation)
	}
	rows, err := s.store.ListBy("period", period)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.Era{}
	}
	return rows, nil
}
