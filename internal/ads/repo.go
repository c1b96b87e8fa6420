package ads

import (
	"context"

	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/internal/repo"
	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	"github.com/islandtracker/islandtracker-backend/pkg/enums"
)

// Repository persists promotional placements.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) Create(ctx context.Context, ad *models.Ad) error {
	return r.DB(ctx).Create(ad).Error
}

func (r *Repository) FindByID(ctx context.Context, id string) (*models.Ad, error) {
	var ad models.Ad
	if err := r.DB(ctx).First(&ad, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

// ListActive returns flagged placements, optionally for one zone. The date
// window is checked by the caller.
func (r *Repository) ListActive(ctx context.Context, placement enums.AdPlacement) ([]models.Ad, error) {
	tx := r.DB(ctx).Where("is_active = ?", true)
	if placement != "" {
		tx = tx.Where("placement = ?", placement)
	}
	var out []models.Ad
	err := tx.Order("created_at ASC").Order("id ASC").Find(&out).Error
	return out, err
}

// ListAll pages through every placement regardless of state.
func (r *Repository) ListAll(ctx context.Context, skip, limit int) ([]models.Ad, error) {
	var out []models.Ad
	err := r.DB(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *Repository) Save(ctx context.Context, ad *models.Ad) error {
	return r.DB(ctx).Save(ad).Error
}

// Delete removes the placement. It reports gorm.ErrRecordNotFound for unknown ids.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.DB(ctx).Delete(&models.Ad{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
