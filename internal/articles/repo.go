package articles

import (
	"context"

	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/internal/repo"
	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	dbtypes "github.com/islandtracker/islandtracker-backend/pkg/db/types"
)

// Repository persists blog articles.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ListQuery filters in SQL. A Limit of zero returns every matching row.
type ListQuery struct {
	PublishedOnly bool
	Tag           string
	Skip          int
	Limit         int
}

func (r *Repository) Create(ctx context.Context, article *models.Article) error {
	return r.DB(ctx).Create(article).Error
}

func (r *Repository) FindByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	if err := r.DB(ctx).First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	if err := r.DB(ctx).First(&article, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// SlugTaken reports whether another article already owns slug.
func (r *Repository) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	tx := r.DB(ctx).Model(&models.Article{}).Where("slug = ?", slug)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns articles newest first. A tag narrows by a LIKE over the stored
// JSON array; the caller confirms exact membership.
func (r *Repository) List(ctx context.Context, q ListQuery) ([]models.Article, error) {
	tx := r.DB(ctx).Model(&models.Article{})
	if q.PublishedOnly {
		tx = tx.Where("is_published = ?", true)
	}
	if q.Tag != "" {
		pattern, err := dbtypes.ElementPattern(q.Tag)
		if err != nil {
			return nil, err
		}
		tx = tx.Where(`tags LIKE ? ESCAPE '\'`, pattern)
	}
	tx = tx.Order("created_at DESC").Order("id DESC")
	if q.Skip > 0 {
		tx = tx.Offset(q.Skip)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	var out []models.Article
	err := tx.Find(&out).Error
	return out, err
}

// ListFeatured returns every published, flagged article, unordered.
func (r *Repository) ListFeatured(ctx context.Context) ([]models.Article, error) {
	var out []models.Article
	err := r.DB(ctx).
		Where("is_featured = ? AND is_published = ?", true, true).
		Find(&out).Error
	return out, err
}

func (r *Repository) Save(ctx context.Context, article *models.Article) error {
	return r.DB(ctx).Save(article).Error
}

// Delete removes the article. It reports gorm.ErrRecordNotFound for unknown ids.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.DB(ctx).Delete(&models.Article{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
