package visits

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/internal/islands"
	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
	"github.com/islandtracker/islandtracker-backend/pkg/logger"
	"github.com/islandtracker/islandtracker-backend/pkg/metrics"
)

// Service records visits and derives the visited-island view.
type Service interface {
	RecordVisit(ctx context.Context, userID string, input RecordVisitInput) (*VisitDTO, error)
	ListForUser(ctx context.Context, userID string) ([]VisitDTO, error)
	ListVisitedIslands(ctx context.Context, userID string) ([]islands.IslandDTO, error)
}

type visitRepository interface {
	Create(ctx context.Context, visit *models.Visit) error
	ListByUser(ctx context.Context, userID string) ([]models.Visit, error)
	DistinctIslandIDs(ctx context.Context, userID string) ([]string, error)
}

type islandReader interface {
	FindByID(ctx context.Context, id string) (*models.Island, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Island, error)
}

type visitCounter interface {
	IncrementVisits(ctx context.Context, userID string) error
}

// ServiceParams bundles the visit service dependencies.
type ServiceParams struct {
	Repo    visitRepository
	Islands islandReader
	Users   visitCounter
	Metrics *metrics.DomainMetrics
	Logger  *logger.Logger
	Now     func() time.Time
}

type service struct {
	repo    visitRepository
	islands islandReader
	users   visitCounter
	metrics *metrics.DomainMetrics
	logg    *logger.Logger
	now     func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("visit repository required")
	}
	if params.Islands == nil {
		return nil, fmt.Errorf("island repository required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("user repository required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:    params.Repo,
		islands: params.Islands,
		users:   params.Users,
		metrics: params.Metrics,
		logg:    logg,
		now:     now,
	}, nil
}

// RecordVisit writes the ledger entry, then bumps the owner's counter in a
// separate statement. A failure between the two under-counts, never double-counts.
func (s *service) RecordVisit(ctx context.Context, userID string, input RecordVisitInput) (*VisitDTO, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Could not validate credentials")
	}

	if _, err := s.islands.FindByID(ctx, strings.TrimSpace(input.IslandID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Island not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load island")
	}

	visit := input.toModel(userID, s.now().UTC())
	if err := s.repo.Create(ctx, visit); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create visit")
	}

	if err := s.users.IncrementVisits(ctx, userID); err != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{"visit_id": visit.ID, "island_id": visit.IslandID})
		s.logg.Error(ctx, "visit counter increment failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "increment visit counter")
	}

	s.metrics.IncVisit()
	return FromModel(visit), nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]VisitDTO, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list visits")
	}
	return FromModels(list), nil
}

func (s *service) ListVisitedIslands(ctx context.Context, userID string) ([]islands.IslandDTO, error) {
	ids, err := s.repo.DistinctIslandIDs(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list visited island ids")
	}
	if len(ids) == 0 {
		return []islands.IslandDTO{}, nil
	}

	list, err := s.islands.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load visited islands")
	}
	return islands.FromModels(list), nil
}
