package islands

import (
	"strings"
	"time"

	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	dbtypes "github.com/islandtracker/islandtracker-backend/pkg/db/types"
	"github.com/islandtracker/islandtracker-backend/pkg/enums"
)

// IslandDTO is the public projection of a catalog island.
type IslandDTO struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Atoll         string           `json:"atoll"`
	Lat           float64          `json:"lat"`
	Lng           float64          `json:"lng"`
	Type          enums.IslandType `json:"type"`
	Population    *int             `json:"population"`
	Description   *string          `json:"description"`
	Tags          []string         `json:"tags"`
	IsFeatured    bool             `json:"is_featured"`
	FeaturedOrder *int             `json:"featured_order"`
	Photos        []string         `json:"photos"`
	CreatedAt     time.Time        `json:"created_at"`
}

// IslandInput is the create and full-replacement payload.
type IslandInput struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Atoll         string   `json:"atoll" validate:"required,max=100"`
	Lat           float64  `json:"lat" validate:"gte=-90,lte=90"`
	Lng           float64  `json:"lng" validate:"gte=-180,lte=180"`
	Type          string   `json:"type" validate:"required"`
	Population    *int     `json:"population" validate:"omitempty,gte=0"`
	Description   *string  `json:"description"`
	Tags          []string `json:"tags" validate:"omitempty,dive,required"`
	IsFeatured    bool     `json:"is_featured"`
	FeaturedOrder *int     `json:"featured_order" validate:"omitempty,gte=0"`
	Photos        []string `json:"photos" validate:"omitempty,dive,required"`
}

// ListFilter narrows the public catalog listing. Empty fields do not filter.
type ListFilter struct {
	Type   string
	Atoll  string
	Search string
}

func FromModel(m *models.Island) *IslandDTO {
	if m == nil {
		return nil
	}
	return &IslandDTO{
		ID:            m.ID,
		Name:          m.Name,
		Atoll:         m.Atoll,
		Lat:           m.Lat,
		Lng:           m.Lng,
		Type:          m.Type,
		Population:    m.Population,
		Description:   m.Description,
		Tags:          nonNil(m.Tags),
		IsFeatured:    m.IsFeatured,
		FeaturedOrder: m.FeaturedOrder,
		Photos:        nonNil(m.Photos),
		CreatedAt:     m.CreatedAt,
	}
}

func FromModels(list []models.Island) []IslandDTO {
	out := make([]IslandDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

// apply overwrites every mutable field of m with the input.
func (in IslandInput) apply(m *models.Island, islandType enums.IslandType) {
	m.Name = strings.TrimSpace(in.Name)
	m.Atoll = strings.TrimSpace(in.Atoll)
	m.Lat = in.Lat
	m.Lng = in.Lng
	m.Type = islandType
	m.Population = in.Population
	m.Description = in.Description
	m.Tags = cleanList(in.Tags)
	m.IsFeatured = in.IsFeatured
	m.FeaturedOrder = in.FeaturedOrder
	m.Photos = cleanList(in.Photos)
}

func cleanList(values []string) dbtypes.StringArray {
	out := make(dbtypes.StringArray, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func nonNil(values dbtypes.StringArray) []string {
	if values == nil {
		return []string{}
	}
	return []string(values)
}
