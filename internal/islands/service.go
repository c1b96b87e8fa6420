package islands

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
	"github.com/islandtracker/islandtracker-backend/pkg/visibility"
)

// FeaturedLimit caps the curated island list.
const FeaturedLimit = 10

const notFoundMessage = "Island not found"

// Service exposes catalog reads and admin mutations for islands.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]IslandDTO, error)
	Get(ctx context.Context, id string) (*IslandDTO, error)
	Featured(ctx context.Context) ([]IslandDTO, error)
	Create(ctx context.Context, input IslandInput) (*IslandDTO, error)
	Update(ctx context.Context, id string, input IslandInput) (*IslandDTO, error)
	// Delete refuses while any visit still references the island.
	Delete(ctx context.Context, id string) error
}

type islandRepository interface {
	Create(ctx context.Context, island *models.Island) error
	FindByID(ctx context.Context, id string) (*models.Island, error)
	List(ctx context.Context, q ListQuery) ([]models.Island, error)
	ListFeatured(ctx context.Context) ([]models.Island, error)
	Save(ctx context.Context, island *models.Island) error
	Delete(ctx context.Context, id string) error
}

type visitCounter interface {
	CountByIsland(ctx context.Context, islandID string) (int64, error)
}

// ServiceParams bundles the island service dependencies.
type ServiceParams struct {
	Repo   islandRepository
	Visits visitCounter
	Now    func() time.Time
}

type service struct {
	repo   islandRepository
	visits visitCounter
	now    func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("island repository required")
	}
	if params.Visits == nil {
		return nil, fmt.Errorf("visit counter required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, visits: params.Visits, now: now}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]IslandDTO, error) {
	query := ListQuery{Atoll: strings.TrimSpace(filter.Atoll)}
	if raw := strings.TrimSpace(filter.Type); raw != "" && !strings.EqualFold(raw, enums.IslandTypeAll) {
		islandType, err := enums.ParseIslandType(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid island type")
		}
		query.Type = islandType
	}

	list, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list islands")
	}

	out := make([]IslandDTO, 0, len(list))
	for i := range list {
		island := &list[i]
		if !visibility.MatchesSearch(filter.Search, island.Name, island.Atoll, island.Tags) {
			continue
		}
		out = append(out, *FromModel(island))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (*IslandDTO, error) {
	island, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(island), nil
}

func (s *service) Featured(ctx context.Context) ([]IslandDTO, error) {
	list, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list featured islands")
	}
	list = visibility.SortFeatured(list, func(m models.Island) visibility.Featured {
		return visibility.Featured{Order: m.FeaturedOrder, CreatedAt: m.CreatedAt}
	}, FeaturedLimit)
	return FromModels(list), nil
}

func (s *service) Create(ctx context.Context, input IslandInput) (*IslandDTO, error) {
	islandType, err := parseType(input.Type)
	if err != nil {
		return nil, err
	}

	island := &models.Island{CreatedAt: s.now().UTC()}
	input.apply(island, islandType)
	if err := s.repo.Create(ctx, island); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create island")
	}
	return FromModel(island), nil
}

func (s *service) Update(ctx context.Context, id string, input IslandInput) (*IslandDTO, error) {
	islandType, err := parseType(input.Type)
	if err != nil {
		return nil, err
	}

	island, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	input.apply(island, islandType)
	if err := s.repo.Save(ctx, island); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update island")
	}
	return FromModel(island), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	island, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.visits.CountByIsland(ctx, island.ID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count island visits")
	}
	if count > 0 {
		return pkgerrors.Newf(pkgerrors.CodePrecondition, "Cannot delete island with %d visits", count).
			WithDetails(map[string]any{"visits": count})
	}

	if err := s.repo.Delete(ctx, island.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete island")
	}
	return nil
}

func (s *service) load(ctx context.Context, id string) (*models.Island, error) {
	island, err := s.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load island")
	}
	return island, nil
}

func parseType(raw string) (enums.IslandType, error) {
	islandType, err := enums.ParseIslandType(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "type must be one of resort, inhabited, uninhabited, industrial")
	}
	return islandType, nil
}
