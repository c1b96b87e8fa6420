package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/pkg/enums"
)

// Ad is a promotional placement shown only inside its active window.
type Ad struct {
	ID             string            `gorm:"column:id;primaryKey"`
	Name           string            `gorm:"column:name;not null"`
	Description    *string           `gorm:"column:description"`
	Placement      enums.AdPlacement `gorm:"column:placement;not null;index"`
	ImageURL       *string           `gorm:"column:image_url"`
	DestinationURL string            `gorm:"column:destination_url;not null"`
	AltText        *string           `gorm:"column:alt_text"`
	Size           string            `gorm:"column:size;not null"`
	IsActive       bool              `gorm:"column:is_active;not null;index"`
	StartDate      *time.Time        `gorm:"column:start_date"`
	EndDate        *time.Time        `gorm:"column:end_date"`
	CreatedAt      time.Time         `gorm:"column:created_at"`
	UpdatedAt      time.Time         `gorm:"column:updated_at"`
}

func (a *Ad) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
