package visits

import (
	"strings"
	"time"

	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	dbtypes "github.com/islandtracker/islandtracker-backend/pkg/db/types"
)

// VisitDTO is the ledger entry returned to its owner.
type VisitDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	IslandID  string    `json:"island_id"`
	VisitDate time.Time `json:"visit_date"`
	Notes     *string   `json:"notes"`
	Photos    []string  `json:"photos"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordVisitInput is the client payload. The owner always comes from the token.
type RecordVisitInput struct {
	IslandID  string    `json:"island_id" validate:"required"`
	VisitDate time.Time `json:"visit_date" validate:"required"`
	Notes     *string   `json:"notes" validate:"omitempty,max=4000"`
	Photos    []string  `json:"photos" validate:"omitempty,dive,required"`
}

func FromModel(m *models.Visit) *VisitDTO {
	if m == nil {
		return nil
	}
	photos := []string(m.Photos)
	if photos == nil {
		photos = []string{}
	}
	return &VisitDTO{
		ID:        m.ID,
		UserID:    m.UserID,
		IslandID:  m.IslandID,
		VisitDate: m.VisitDate,
		Notes:     m.Notes,
		Photos:    photos,
		CreatedAt: m.CreatedAt,
	}
}

func FromModels(list []models.Visit) []VisitDTO {
	out := make([]VisitDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

func (in RecordVisitInput) toModel(userID string, createdAt time.Time) *models.Visit {
	photos := make(dbtypes.StringArray, 0, len(in.Photos))
	for _, p := range in.Photos {
		if p = strings.TrimSpace(p); p != "" {
			photos = append(photos, p)
		}
	}
	return &models.Visit{
		UserID:    userID,
		IslandID:  strings.TrimSpace(in.IslandID),
		VisitDate: in.VisitDate.UTC(),
		Notes:     in.Notes,
		Photos:    photos,
		CreatedAt: createdAt,
	}
}
