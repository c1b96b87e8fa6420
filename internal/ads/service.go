package ads

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	"github.com/islandtracker/islandtracker-backend/pkg/enums"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
	"github.com/islandtracker/islandtracker-backend/pkg/pagination"
)

const notFoundMessage = "Ad not found"

// Service serves live placements publicly and full CRUD to admins.
type Service interface {
	// ListLive returns placements whose active window contains now.
	ListLive(ctx context.Context, placement string) ([]AdDTO, error)
	// GetLive hides placements outside their window behind NOT_FOUND.
	GetLive(ctx context.Context, id string) (*AdDTO, error)
	Get(ctx context.Context, id string) (*AdDTO, error)
	List(ctx context.Context, page pagination.Params) ([]AdDTO, error)
	Create(ctx context.Context, input AdInput) (*AdDTO, error)
	Update(ctx context.Context, id string, input AdInput) (*AdDTO, error)
	Delete(ctx context.Context, id string) error
}

type adRepository interface {
	Create(ctx context.Context, ad *models.Ad) error
	FindByID(ctx context.Context, id string) (*models.Ad, error)
	ListActive(ctx context.Context, placement enums.AdPlacement) ([]models.Ad, error)
	ListAll(ctx context.Context, skip, limit int) ([]models.Ad, error)
	Save(ctx context.Context, ad *models.Ad) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo adRepository
	now  func() time.Time
}

func NewService(repo adRepository, now func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ad repository required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, now: now}, nil
}

func (s *service) ListLive(ctx context.Context, placement string) ([]AdDTO, error) {
	var zone enums.AdPlacement
	if raw := strings.TrimSpace(placement); raw != "" {
		parsed, err := enums.ParseAdPlacement(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid placement")
		}
		zone = parsed
	}

	list, err := s.repo.ListActive(ctx, zone)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list ads")
	}

	now := s.now()
	out := make([]AdDTO, 0, len(list))
	for i := range list {
		if window(&list[i]).Live(now) {
			out = append(out, *FromModel(&list[i]))
		}
	}
	return out, nil
}

func (s *service) GetLive(ctx context.Context, id string) (*AdDTO, error) {
	ad, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !window(ad).Live(s.now()) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return FromModel(ad), nil
}

func (s *service) Get(ctx context.Context, id string) (*AdDTO, error) {
	ad, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(ad), nil
}

func (s *service) List(ctx context.Context, page pagination.Params) ([]AdDTO, error) {
	page = page.Normalize(pagination.AdminBounds)
	list, err := s.repo.ListAll(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list ads")
	}
	return FromModels(list), nil
}

func (s *service) Create(ctx context.Context, input AdInput) (*AdDTO, error) {
	placement, err := validateInput(input)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	ad := &models.Ad{CreatedAt: now, UpdatedAt: now}
	input.apply(ad, placement)
	if err := s.repo.Create(ctx, ad); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create ad")
	}
	return FromModel(ad), nil
}

func (s *service) Update(ctx context.Context, id string, input AdInput) (*AdDTO, error) {
	placement, err := validateInput(input)
	if err != nil {
		return nil, err
	}
	ad, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	input.apply(ad, placement)
	ad.UpdatedAt = s.now().UTC()
	if err := s.repo.Save(ctx, ad); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update ad")
	}
	return FromModel(ad), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete ad")
	}
	return nil
}

func (s *service) load(ctx context.Context, id string) (*models.Ad, error) {
	ad, err := s.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load ad")
	}
	return ad, nil
}

func validateInput(input AdInput) (enums.AdPlacement, error) {
	placement, err := enums.ParseAdPlacement(input.Placement)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "placement must be one of header, sidebar, footer, blog-inline, island-detail")
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "end_date must not be before start_date")
	}
	return placement, nil
}
