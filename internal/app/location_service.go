package app

import (
	"fmt"

	"gorm.io/gorm"

	"dino-explorer/internal/model"
	"dino-explorer/internal/repository"
)

type LocationService struct {
	*Resource[model.Location]
	store *repository.Resource[model.Location]
}

func NewLocationService(db *gorm.DB) *LocationService {
	store := repository.NewResource[model.Location](db, "location_id")
	rules := RuleSet{
		{Field: "title", Required: true, MaxLen: 100},
		{Field: "description"},
		{Field: "picture", MaxLen: 255},
		{Field: "continent", MaxLen: 100},
		{Field: "country", MaxLen: 100},
		{Field: "location_url", URL: true, MaxLen: 255},
	}
	return &LocationService{
		Resource: NewResource(store, rules, "location"),
		store:    store,
	}
}

func (s *LocationService) GetByContinent(continent string) ([]model.Location, error) {
	if continent == "" {
		return nil, fmt.Errorf("%w: continent is required", ErrValidation)
	}
	rows, err := s.store.ListBy("continent", continent)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.Location{}
	}
	return rows, nil
}
