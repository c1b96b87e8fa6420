package visits

import (
	"context"

	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/internal/repo"
	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
)

// Repository persists the visit ledger. Entries are append-only.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) Create(ctx context.Context, visit *models.Visit) error {
	return r.DB(ctx).Create(visit).Error
}

// ListByUser returns the user's visits, most recent visit first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]models.Visit, error) {
	var out []models.Visit
	err := r.DB(ctx).
		Where("user_id = ?", userID).
		Order("visit_date DESC").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// DistinctIslandIDs lists every island the user has at least one visit for.
func (r *Repository) DistinctIslandIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.DB(ctx).
		Model(&models.Visit{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("island_id", &ids).Error
	return ids, err
}

func (r *Repository) CountByIsland(ctx context.Context, islandID string) (int64, error) {
	var count int64
	err := r.DB(ctx).Model(&models.Visit{}).Where("island_id = ?", islandID).Count(&count).Error
	return count, err
}
