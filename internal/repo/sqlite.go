package repo

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/islandtracker/islandtracker-backend/pkg/db"
	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
)

// NewSQLiteTestDB opens a private in-memory database with every table migrated.
// A single pooled connection keeps the in-memory database alive for the test.
func NewSQLiteTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	conn, err := db.Open(sqlite.Open("file::memory:"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := models.AutoMigrate(conn); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}
