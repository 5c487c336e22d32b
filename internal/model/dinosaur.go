package model

type Dinosaur struct {
	DinosaurID  uint   `gorm:"column:dinosaur_id;primaryKey" json:"dinosaur_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Diet        string `gorm:"size:32" json:"diet"`
	Size        string `gorm:"size:100" json:"size"`
	Weight      string `gorm:"size:100" json:"weight"`
	Description string `gorm:"type:text" json:"description"`
	EraID       *uint  `gorm:"column:era_id" json:"era_id"`
	LocationID  *uint  `gorm:"column:location_id" json:"location_id"`
}

func (Dinosaur) TableName() string { return "dinosaurs" }
