package islands

import (
	"context"

	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/internal/repo"
	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	"github.com/islandtracker/islandtracker-backend/pkg/enums"
)

// Repository persists catalog islands.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ListQuery holds the filters applied in SQL. Search is evaluated by the service.
type ListQuery struct {
	Type  enums.IslandType
	Atoll string
}

func (r *Repository) Create(ctx context.Context, island *models.Island) error {
	return r.DB(ctx).Create(island).Error
}

// CreateBatch inserts islands in slice order.
func (r *Repository) CreateBatch(ctx context.Context, list []models.Island) error {
	if len(list) == 0 {
		return nil
	}
	return r.DB(ctx).Create(&list).Error
}

func (r *Repository) FindByID(ctx context.Context, id string) (*models.Island, error) {
	var island models.Island
	if err := r.DB(ctx).First(&island, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &island, nil
}

// FindByIDs loads every island whose id is in ids. Unknown ids are skipped.
func (r *Repository) FindByIDs(ctx context.Context, ids []string) ([]models.Island, error) {
	out := []models.Island{}
	if len(ids) == 0 {
		return out, nil
	}
	err := r.DB(ctx).
		Where("id IN ?", ids).
		Order("created_at ASC").
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *Repository) List(ctx context.Context, q ListQuery) ([]models.Island, error) {
	tx := r.DB(ctx).Model(&models.Island{})
	if q.Type != "" {
		tx = tx.Where("type = ?", q.Type)
	}
	if q.Atoll != "" {
		tx = tx.Where("LOWER(atoll) = LOWER(?)", q.Atoll)
	}
	var out []models.Island
	err := tx.Order("created_at ASC").Order("id ASC").Find(&out).Error
	return out, err
}

// ListFeatured returns every flagged island, unordered.
func (r *Repository) ListFeatured(ctx context.Context) ([]models.Island, error) {
	var out []models.Island
	err := r.DB(ctx).Where("is_featured = ?", true).Find(&out).Error
	return out, err
}

// Save writes every column of an existing island.
func (r *Repository) Save(ctx context.Context, island *models.Island) error {
	return r.DB(ctx).Save(island).Error
}

// Delete removes the island. It reports gorm.ErrRecordNotFound for unknown ids.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.DB(ctx).Delete(&models.Island{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB(ctx).Model(&models.Island{}).Count(&count).Error
	return count, err
}
