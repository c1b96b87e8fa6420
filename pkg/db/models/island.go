package models

import (
	"time"

	"gorm.io/gorm"

	dbtypes "github.com/islandtracker/islandtracker-backend/pkg/db/types"
	"github.com/islandtracker/islandtracker-backend/pkg/enums"
)

type Island struct {
	ID            string              `gorm:"column:id;primaryKey"`
	Name          string              `gorm:"column:name;not null"`
	Atoll         string              `gorm:"column:atoll;not null;index"`
	Lat           float64             `gorm:"column:lat;not null"`
	Lng           float64             `gorm:"column:lng;not null"`
	Type          enums.IslandType    `gorm:"column:type;not null;index"`
	Population    *int                `gorm:"column:population"`
	Description   *string             `gorm:"column:description"`
	Tags          dbtypes.StringArray `gorm:"column:tags;not null"`
	IsFeatured    bool                `gorm:"column:is_featured;not null;default:false"`
	FeaturedOrder *int                `gorm:"column:featured_order"`
	Photos        dbtypes.StringArray `gorm:"column:photos;not null"`
	CreatedAt     time.Time           `gorm:"column:created_at"`
}

func (i *Island) BeforeCreate(*gorm.DB) error {
	ensureID(&i.ID)
	if i.Tags == nil {
		i.Tags = dbtypes.StringArray{}
	}
	if i.Photos == nil {
		i.Photos = dbtypes.StringArray{}
	}
	return nil
}
