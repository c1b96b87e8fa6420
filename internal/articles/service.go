package articles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/pkg/db"
	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
	"github.com/islandtracker/islandtracker-backend/pkg/pagination"
	"github.com/islandtracker/islandtracker-backend/pkg/slug"
	"github.com/islandtracker/islandtracker-backend/pkg/visibility"
)

// FeaturedLimit caps the curated article list.
const FeaturedLimit = 8

const (
	notFoundMessage  = "Blog post not found"
	slugTakenMessage = "Blog post with this slug already exists"
)

// Service exposes the blog for readers and editors.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]ArticleDTO, error)
	GetBySlug(ctx context.Context, slug string) (*ArticleDTO, error)
	Get(ctx context.Context, id string) (*ArticleDTO, error)
	Featured(ctx context.Context) ([]ArticleDTO, error)
	Create(ctx context.Context, authorID string, input ArticleInput) (*ArticleDTO, error)
	Update(ctx context.Context, id string, input ArticleInput) (*ArticleDTO, error)
	Delete(ctx context.Context, id string) error
}

type articleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	FindByID(ctx context.Context, id string) (*models.Article, error)
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugTaken(ctx context.Context, slug, excludeID string) (bool, error)
	List(ctx context.Context, q ListQuery) ([]models.Article, error)
	ListFeatured(ctx context.Context) ([]models.Article, error)
	Save(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo articleRepository
	now  func() time.Time
}

func NewService(repo articleRepository, now func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("article repository required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, now: now}, nil
}

// List pages through articles newest first. The tag filter is an exact,
// case-sensitive match against the article's tag set.
func (s *service) List(ctx context.Context, filter ListFilter) ([]ArticleDTO, error) {
	page := filter.Page.Normalize(pagination.ArticleBounds)
	tag := strings.TrimSpace(filter.Tag)

	if tag == "" {
		list, err := s.repo.List(ctx, ListQuery{PublishedOnly: filter.PublishedOnly, Skip: page.Skip, Limit: page.Limit})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list articles")
		}
		return FromModels(list), nil
	}

	candidates, err := s.repo.List(ctx, ListQuery{PublishedOnly: filter.PublishedOnly, Tag: tag})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list articles")
	}
	matched := candidates[:0]
	for _, article := range candidates {
		if article.Tags.Contains(tag) {
			matched = append(matched, article)
		}
	}
	if page.Skip >= len(matched) {
		return []ArticleDTO{}, nil
	}
	end := page.Skip + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return FromModels(matched[page.Skip:end]), nil
}

func (s *service) GetBySlug(ctx context.Context, value string) (*ArticleDTO, error) {
	article, err := s.repo.FindBySlug(ctx, strings.TrimSpace(value))
	if err != nil {
		return nil, mapLoadErr(err)
	}
	return FromModel(article), nil
}

func (s *service) Get(ctx context.Context, id string) (*ArticleDTO, error) {
	article, err := s.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, mapLoadErr(err)
	}
	return FromModel(article), nil
}

func (s *service) Featured(ctx context.Context) ([]ArticleDTO, error) {
	list, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list featured articles")
	}
	list = visibility.SortFeatured(list, func(m models.Article) visibility.Featured {
		return visibility.Featured{Order: m.FeaturedOrder, CreatedAt: m.CreatedAt}
	}, FeaturedLimit)
	return FromModels(list), nil
}

func (s *service) Create(ctx context.Context, authorID string, input ArticleInput) (*ArticleDTO, error) {
	authorID = strings.TrimSpace(authorID)
	if authorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Could not validate credentials")
	}
	articleSlug, err := s.claimSlug(ctx, input, "")
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	article := &models.Article{
		AuthorID:  authorID,
		Slug:      articleSlug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.apply(article)
	article.PublishedDate = visibility.FirstPublishedAt(article.IsPublished, nil, input.PublishedDate, now)

	if err := s.repo.Create(ctx, article); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, slugTakenMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create article")
	}
	return FromModel(article), nil
}

// Update replaces every editable field. A published article cannot return to
// draft, and its first-published timestamp is never rewritten.
func (s *service) Update(ctx context.Context, id string, input ArticleInput) (*ArticleDTO, error) {
	article, err := s.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, mapLoadErr(err)
	}
	if article.IsPublished && !input.Publishing() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "published articles cannot be unpublished")
	}

	articleSlug, err := s.claimSlug(ctx, input, article.ID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	current := article.PublishedDate
	input.apply(article)
	article.Slug = articleSlug
	article.PublishedDate = visibility.FirstPublishedAt(article.IsPublished, current, input.PublishedDate, now)
	article.UpdatedAt = now

	if err := s.repo.Save(ctx, article); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, slugTakenMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update article")
	}
	return FromModel(article), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return mapLoadErr(err)
	}
	return nil
}

func (s *service) claimSlug(ctx context.Context, input ArticleInput, excludeID string) (string, error) {
	articleSlug := slug.Normalize(input.Slug, input.Title)
	if articleSlug == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "slug must contain at least one letter or digit")
	}
	taken, err := s.repo.SlugTaken(ctx, articleSlug, excludeID)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check slug")
	}
	if taken {
		return "", pkgerrors.New(pkgerrors.CodeConflict, slugTakenMessage)
	}
	return articleSlug, nil
}

func mapLoadErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load article")
}
