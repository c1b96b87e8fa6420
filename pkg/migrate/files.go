package migrate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const versionLayout = "20060102150405"

var (
	migrationFileRe = regexp.MustCompile(`^(\d{14})_([a-z0-9_]+)\.sql$`)
	slugBreakRe     = regexp.MustCompile(`[^a-z0-9]+`)

	gooseUp   = []byte("-- +goose Up")
	gooseDown = []byte("-- +goose Down")
)

const skeleton = `-- +goose Up
-- +goose StatementBegin
-- %[1]s: forward statements
-- +goose StatementEnd

-- +goose Down
-- +goose StatementBegin
-- %[1]s: rollback statements
-- +goose StatementEnd
`

// CreateSQLMigration writes an empty goose migration named
// <version>_<slug>.sql into dir and returns its path.
func CreateSQLMigration(dir, name string) (string, error) {
	switch {
	case strings.TrimSpace(dir) == "":
		return "", fmt.Errorf("migration dir is required")
	case strings.TrimSpace(name) == "":
		return "", fmt.Errorf("migration name is required")
	}

	slug := migrationSlug(name)
	if slug == "" {
		return "", fmt.Errorf("migration name %q has no usable characters", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create migration dir: %w", err)
	}

	path := filepath.Join(dir, time.Now().UTC().Format(versionLayout)+"_"+slug+".sql")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create migration %s: %w", filepath.Base(path), err)
	}
	if _, err := fmt.Fprintf(f, skeleton, slug); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write migration %s: %w", filepath.Base(path), err)
	}
	return path, f.Close()
}

func migrationSlug(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	return strings.Trim(slugBreakRe.ReplaceAllString(lowered, "_"), "_")
}

// ValidateDir checks that every .sql file in dir follows the naming scheme,
// versions are unique, and both goose sections are present.
func ValidateDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("migration dir is required")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	versions := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".sql" {
			continue
		}
		parts := migrationFileRe.FindStringSubmatch(name)
		if parts == nil {
			return fmt.Errorf("invalid migration filename %q: want <%s>_<name>.sql", name, versionLayout)
		}
		if other, dup := versions[parts[1]]; dup {
			return fmt.Errorf("version %s used by both %s and %s", parts[1], other, name)
		}
		versions[parts[1]] = name

		if err := checkSections(filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	if len(versions) == 0 {
		return fmt.Errorf("no migrations in %s", dir)
	}
	return nil
}

func checkSections(path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	for _, marker := range [][]byte{gooseUp, gooseDown} {
		if !bytes.Contains(body, marker) {
			return fmt.Errorf("migration %s missing %q", filepath.Base(path), marker)
		}
	}
	return nil
}
