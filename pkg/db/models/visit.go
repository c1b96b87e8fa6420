package models

import (
	"time"

	"gorm.io/gorm"

	dbtypes "github.com/islandtracker/islandtracker-backend/pkg/db/types"
)

// Visit is immutable once written.
type Visit struct {
	ID        string              `gorm:"column:id;primaryKey"`
	UserID    string              `gorm:"column:user_id;not null;index"`
	IslandID  string              `gorm:"column:island_id;not null;index"`
	VisitDate time.Time           `gorm:"column:visit_date;not null"`
	Notes     *string             `gorm:"column:notes"`
	Photos    dbtypes.StringArray `gorm:"column:photos;not null"`
	CreatedAt time.Time           `gorm:"column:created_at"`
}

func (v *Visit) BeforeCreate(*gorm.DB) error {
	ensureID(&v.ID)
	if v.Photos == nil {
		v.Photos = dbtypes.StringArray{}
	}
	return nil
}
