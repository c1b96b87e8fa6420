package migrate

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"github.com/islandtracker/islandtracker-backend/pkg/config"
	"github.com/islandtracker/islandtracker-backend/pkg/db"
	"github.com/islandtracker/islandtracker-backend/pkg/logger"
)

func TestMigrationsDirIsValid(t *testing.T) {
	require.NoError(t, ValidateDir("migrations"))
}

func TestMigrationsCreateEveryTable(t *testing.T) {
	var all strings.Builder
	matches, err := filepath.Glob(filepath.Join("migrations", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	for _, path := range matches {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		all.Write(data)
	}
	content := all.String()

	for _, table := range []string{"users", "islands", "visits", "articles", "ads"} {
		assert.Contains(t, content, "CREATE TABLE IF NOT EXISTS "+table+" (")
		assert.Contains(t, content, "DROP TABLE IF EXISTS "+table+";")
	}
	assert.Contains(t, content, "CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email);")
	assert.Contains(t, content, "CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_slug ON articles (slug);")
}

func TestValidateDirRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, ValidateDir(dir), "empty dir has no migrations")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad-name.sql"), []byte("-- +goose Up\n-- +goose Down\n"), 0o644))
	assert.ErrorContains(t, ValidateDir(dir), "invalid migration filename")

	require.NoError(t, os.Remove(filepath.Join(dir, "bad-name.sql")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20260101000000_no_down.sql"), []byte("-- +goose Up\n"), 0o644))
	assert.ErrorContains(t, ValidateDir(dir), "missing \"-- +goose Down\"")
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Island Ratings")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_add_island_ratings.sql"))
	require.NoError(t, ValidateDir(dir))

	_, err = CreateSQLMigration(dir, "!!!")
	assert.Error(t, err)
}

func TestMaybeRunAutoMigratesSQLite(t *testing.T) {
	conn, err := db.Open(sqlite.Open("file::memory:"))
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	client := db.NewFromConn(conn)

	cfg := &config.Config{App: config.AppConfig{Env: config.AppEnvProd}}
	require.NoError(t, MaybeRun(context.Background(), cfg, logger.Nop(), client))

	for _, table := range []string{"users", "islands", "visits", "articles", "ads"} {
		assert.True(t, conn.Migrator().HasTable(table), "table %s", table)
	}
}

func TestEmbeddedSourceMatchesTree(t *testing.T) {
	source, err := Source("")
	require.NoError(t, err)
	embeddedFiles, err := fs.Glob(source, "*.sql")
	require.NoError(t, err)

	onDisk, err := filepath.Glob(filepath.Join("migrations", "*.sql"))
	require.NoError(t, err)
	require.Len(t, embeddedFiles, len(onDisk))
	for _, path := range onDisk {
		assert.Contains(t, embeddedFiles, filepath.Base(path))
	}
}

func TestNewRunnerRequiresHandle(t *testing.T) {
	source, err := Source("")
	require.NoError(t, err)
	_, err = NewRunner(nil, source)
	assert.Error(t, err)
}
