package ads

import (
	"strings"
	"time"

	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	"github.com/islandtracker/islandtracker-backend/pkg/enums"
	"github.com/islandtracker/islandtracker-backend/pkg/visibility"
)

// AdDTO is the promotional placement projection.
type AdDTO struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    *string           `json:"description"`
	Placement      enums.AdPlacement `json:"placement"`
	ImageURL       *string           `json:"image_url"`
	DestinationURL string            `json:"destination_url"`
	AltText        *string           `json:"alt_text"`
	Size           string            `json:"size"`
	IsActive       bool              `json:"is_active"`
	StartDate      *time.Time        `json:"start_date"`
	EndDate        *time.Time        `json:"end_date"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// AdInput is the create and full-replacement payload. IsActive defaults to true.
type AdInput struct {
	Name           string     `json:"name" validate:"required,max=200"`
	Description    *string    `json:"description" validate:"omitempty,max=2000"`
	Placement      string     `json:"placement" validate:"required"`
	ImageURL       *string    `json:"image_url" validate:"omitempty,url"`
	DestinationURL string     `json:"destination_url" validate:"required,url"`
	AltText        *string    `json:"alt_text" validate:"omitempty,max=300"`
	Size           string     `json:"size" validate:"required,max=32"`
	IsActive       *bool      `json:"is_active"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}

func FromModel(m *models.Ad) *AdDTO {
	if m == nil {
		return nil
	}
	return &AdDTO{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Placement:      m.Placement,
		ImageURL:       m.ImageURL,
		DestinationURL: m.DestinationURL,
		AltText:        m.AltText,
		Size:           m.Size,
		IsActive:       m.IsActive,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func FromModels(list []models.Ad) []AdDTO {
	out := make([]AdDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

func window(m *models.Ad) visibility.Window {
	return visibility.Window{Active: m.IsActive, Start: m.StartDate, End: m.EndDate}
}

func (in AdInput) apply(m *models.Ad, placement enums.AdPlacement) {
	m.Name = strings.TrimSpace(in.Name)
	m.Description = in.Description
	m.Placement = placement
	m.ImageURL = in.ImageURL
	m.DestinationURL = strings.TrimSpace(in.DestinationURL)
	m.AltText = in.AltText
	m.Size = strings.TrimSpace(in.Size)
	m.IsActive = in.IsActive == nil || *in.IsActive
	m.StartDate = utcPtr(in.StartDate)
	m.EndDate = utcPtr(in.EndDate)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
