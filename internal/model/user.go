package model

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	UserID           uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username         string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email            string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	PasswordHash     string    `gorm:"column:password;size:255;not null" json:"-"`
	Role             string    `gorm:"size:16;not null;default:user" json:"role"`
	RegistrationDate time.Time `gorm:"column:registration_date;not null" json:"registration_date"`
}

func (User) TableName() string { return "users" }
