package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base is embedded by the domain repositories so every query is issued
// against the request context.
type Base struct {
	db *gorm.DB
}

func NewBase(conn *gorm.DB) Base {
	return Base{db: conn}
}

// DB scopes the shared connection to ctx. A nil ctx yields the unscoped handle,
// which seeding and bootstrap code paths rely on.
func (b Base) DB(ctx context.Context) *gorm.DB {
	switch {
	case ctx == nil:
		return b.db
	default:
		return b.db.WithContext(ctx)
	}
}
