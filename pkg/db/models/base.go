package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// AutoMigrate creates every table for the embedded sqlite store and tests.
// Postgres deployments use the goose migrations instead.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&User{},
		&Island{},
		&Visit{},
		&Article{},
		&Ad{},
	)
}
