package app

import (
	"fmt"

	"gorm.io/gorm"

	"dino-explorer/internal/model"
	"dino-explorer/internal/repository"
)

type DinosaurService struct {
	*Resource[model.Dinosaur]
	store *repository.Resource[model.Dinosaur]
}

func NewDinosaurService(db *gorm.DB) *DinosaurService {
	store := repository.NewResource[model.Dinosaur](db, "dinosaur_id")
	rules := RuleSet{
		{Field: "name", Required: true, MaxLen: 100},
		{Field: "diet", Enum: []string{"Herbivore", "Carnivore", "Omnivore", ""}},
		{Field: "size", MaxLen: 100},
		{Field: "weight", MaxLen: 100},
		{Field: "description"},
		{Field: "era_id", Numeric: true},
		{Field: "location_id", Numeric: true},
	}
	return &DinosaurService{
		Resource: NewResource(store, rules, "dinosaur"),
		store:    store,
	}
}

func (s *DinosaurService) GetByLocation(locationID int64) ([]model.Dinosaur, error) {
	if locationID <= 0 {
		return nil, fmt.Errorf("%w: invalid location id", ErrValidation)
	}
	rows, err := s.store.ListBy("location_id", locationID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.Dinosaur{}
	}
	return rows, nil
}
