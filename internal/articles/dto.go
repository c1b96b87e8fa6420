package articles

import (
	"strings"
	"time"

	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	dbtypes "github.com/islandtracker/islandtracker-backend/pkg/db/types"
	"github.com/islandtracker/islandtracker-backend/pkg/pagination"
)

// ArticleDTO is the blog post projection shared by public and admin routes.
type ArticleDTO struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	AuthorID      string     `json:"author_id"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featured_image"`
	Tags          []string   `json:"tags"`
	IsPublished   bool       `json:"is_published"`
	PublishedDate *time.Time `json:"published_date"`
	IsFeatured    bool       `json:"is_featured"`
	FeaturedOrder *int       `json:"featured_order"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ArticleInput is the create and full-replacement payload. IsPublished
// defaults to true when omitted; Slug is derived from Title when blank.
type ArticleInput struct {
	Title         string     `json:"title" validate:"required,max=300"`
	Content       string     `json:"content" validate:"required"`
	Slug          string     `json:"slug" validate:"omitempty,max=200"`
	Excerpt       *string    `json:"excerpt" validate:"omitempty,max=1000"`
	FeaturedImage *string    `json:"featured_image" validate:"omitempty,url"`
	Tags          []string   `json:"tags" validate:"omitempty,dive,required"`
	IsPublished   *bool      `json:"is_published"`
	PublishedDate *time.Time `json:"published_date"`
	IsFeatured    bool       `json:"is_featured"`
	FeaturedOrder *int       `json:"featured_order" validate:"omitempty,gte=0"`
}

// Publishing reports the requested published flag with its default applied.
func (in ArticleInput) Publishing() bool {
	return in.IsPublished == nil || *in.IsPublished
}

// ListFilter drives the public and admin listings.
type ListFilter struct {
	Page          pagination.Params
	Tag           string
	PublishedOnly bool
}

func FromModel(m *models.Article) *ArticleDTO {
	if m == nil {
		return nil
	}
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &ArticleDTO{
		ID:            m.ID,
		Title:         m.Title,
		Content:       m.Content,
		AuthorID:      m.AuthorID,
		Slug:          m.Slug,
		Excerpt:       m.Excerpt,
		FeaturedImage: m.FeaturedImage,
		Tags:          tags,
		IsPublished:   m.IsPublished,
		PublishedDate: m.PublishedDate,
		IsFeatured:    m.IsFeatured,
		FeaturedOrder: m.FeaturedOrder,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func FromModels(list []models.Article) []ArticleDTO {
	out := make([]ArticleDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

// apply copies the editable fields. Slug and the publish stamp are owned by the service.
func (in ArticleInput) apply(m *models.Article) {
	m.Title = strings.TrimSpace(in.Title)
	m.Content = in.Content
	m.Excerpt = in.Excerpt
	m.FeaturedImage = in.FeaturedImage
	tags := make(dbtypes.StringArray, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	m.Tags = tags
	m.IsPublished = in.Publishing()
	m.IsFeatured = in.IsFeatured
	m.FeaturedOrder = in.FeaturedOrder
}
