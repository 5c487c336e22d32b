package model

type Era struct {
	EraID       uint   `gorm:"column:era_id;primaryKey" json:"era_id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Era         string `gorm:"size:100" json:"era"`
	Period      string `gorm:"size:100" json:"period"`
}

func (Era) TableName() string { return "eras" }
