package model

type Researcher struct {
	ResearcherID uint   `gorm:"column:researcher_id;primaryKey" json:"researcher_id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Picture      string `gorm:"size:255" json:"picture"`
	Description  string `gorm:"type:text" json:"description"`
	Discoveries  string `gorm:"type:text" json:"discoveries"`
}

func (Researcher) TableName() string { return "researchers" }
