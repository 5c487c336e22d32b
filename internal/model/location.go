package model

type Location struct {
	LocationID  uint   `gorm:"column:location_id;primaryKey" json:"location_id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Picture     string `gorm:"size:255" json:"picture"`
	Continent   string `gorm:"size:100" json:"continent"`
	Country     string `gorm:"size:100" json:"country"`
	LocationURL string `gorm:"column:location_url;size:255" json:"location_url"`
}

func (Location) TableName() string { return "locations" }
