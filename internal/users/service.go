package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
	"github.com/islandtracker/islandtracker-backend/pkg/pagination"
)

// Service backs the admin user-management endpoints.
type Service interface {
	Get(ctx context.Context, id string) (*UserDTO, error)
	List(ctx context.Context, page pagination.Params) ([]UserDTO, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) (*UserDTO, error)
}

type userRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
}

type service struct {
	repo userRepository
}

func NewService(repo userRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, id string) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return FromModel(user), nil
}

func (s *service) List(ctx context.Context, page pagination.Params) ([]UserDTO, error) {
	page = page.Normalize(pagination.AdminBounds)
	list, err := s.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users")
	}
	return FromModels(list), nil
}

func (s *service) SetAdmin(ctx context.Context, id string, isAdmin bool) (*UserDTO, error) {
	id = strings.TrimSpace(id)
	if err := s.repo.SetAdmin(ctx, id, isAdmin); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update user role")
	}
	return s.Get(ctx, id)
}
