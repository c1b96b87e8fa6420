package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/internal/users"
	"github.com/islandtracker/islandtracker-backend/pkg/config"
	"github.com/islandtracker/islandtracker-backend/pkg/db"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
	"github.com/islandtracker/islandtracker-backend/pkg/security"
)

// AdminBootstrapper guarantees the configured administrator exists at startup.
type AdminBootstrapper interface {
	EnsureAdmin(ctx context.Context, cfg config.BootstrapConfig) (*users.UserDTO, error)
}

// AdminBootstrapParams names the dependencies for the admin bootstrap flow.
type AdminBootstrapParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type adminBootstrapper struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

func NewAdminBootstrapper(params AdminBootstrapParams) (AdminBootstrapper, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &adminBootstrapper{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// EnsureAdmin creates the admin when the email is unknown, or promotes the
// existing principal. The stored password of an existing account is left alone.
func (s *adminBootstrapper) EnsureAdmin(ctx context.Context, cfg config.BootstrapConfig) (*users.UserDTO, error) {
	email := users.NormalizeEmail(cfg.AdminEmail)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bootstrap admin email is required")
	}
	if cfg.AdminPassword == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bootstrap admin password is required")
	}
	username := strings.TrimSpace(cfg.AdminUsername)
	if username == "" {
		username = "admin"
	}

	var ensured *users.UserDTO
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		existing, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			if !existing.IsAdmin {
				if err := userRepo.SetAdmin(ctx, existing.ID, true); err != nil {
					return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "promote bootstrap admin")
				}
				existing.IsAdmin = true
			}
			ensured = users.FromModel(existing)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check admin email")
		}

		passwordHash, err := security.HashPassword(cfg.AdminPassword, s.passwordCfg)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:        email,
			Username:     username,
			PasswordHash: passwordHash,
			IsAdmin:      true,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create admin")
		}

		ensured = users.FromModel(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ensured, nil
}
