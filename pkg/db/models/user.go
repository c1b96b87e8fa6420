package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered principal, ordinary or admin.
type User struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	Username     string    `gorm:"column:username;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false"`
	VisitsCount  int       `gorm:"column:visits_count;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
