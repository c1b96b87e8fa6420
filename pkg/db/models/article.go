package models

import (
	"time"

	"gorm.io/gorm"

	dbtypes "github.com/islandtracker/islandtracker-backend/pkg/db/types"
)

// Article is a blog post. PublishedDate is written once, on first publish.
type Article struct {
	ID            string              `gorm:"column:id;primaryKey"`
	Title         string              `gorm:"column:title;not null"`
	Content       string              `gorm:"column:content;not null"`
	AuthorID      string              `gorm:"column:author_id;not null;index"`
	Slug          string              `gorm:"column:slug;not null;uniqueIndex"`
	Excerpt       *string             `gorm:"column:excerpt"`
	FeaturedImage *string             `gorm:"column:featured_image"`
	Tags          dbtypes.StringArray `gorm:"column:tags;not null"`
	IsPublished   bool                `gorm:"column:is_published;not null"`
	PublishedDate *time.Time          `gorm:"column:published_date"`
	IsFeatured    bool                `gorm:"column:is_featured;not null;default:false"`
	FeaturedOrder *int                `gorm:"column:featured_order"`
	CreatedAt     time.Time           `gorm:"column:created_at"`
	UpdatedAt     time.Time           `gorm:"column:updated_at"`
}

func (a *Article) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	if a.Tags == nil {
		a.Tags = dbtypes.StringArray{}
	}
	return nil
}
