package app

import (
	"fmt"

	"gorm.io/gorm"

	"dino-explorer/internal/model"
	"dino-explorer/internal/repository"
)

type ResearcherService struct {
	*Resource[model.Researcher]
	store *repository.Resource[model.Researcher]
}

func NewResearcherService(db *gorm.DB) *ResearcherService {
	store := repository.NewResource[model.Researcher](db, "researcher_id")
	rules := RuleSet{
		{Field: "name", Required: true, MaxLen: 100},
		{Field: "picture", MaxLen: 255},
		{Field: "description"},
		{Field: "discoveries"},
	}
	return &ResearcherService{
		Resource: NewResource(store, rules, "researcher"),
		store:    store,
	}
}

func (s *ResearcherService) SearchByName(name string) ([]model.Researcher, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	rows, err := s.store.SearchBy("name", name)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.Researcher{}
	}
	return rows, nil
}
