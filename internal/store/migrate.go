package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// migrationPrefix matches the YYYY-MM-DD-NNN- ordering prefix of a migration file.
var migrationPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{3}-`)

// MigrationResult reports what Migrate did with one file.
type MigrationResult struct {
	Name    string
	Applied bool // false = already recorded in the migrations table, skipped
}

// Migrate runs pending migrations in filename order. Each migration and its
// row in the migrations table are written in a single transaction, so a
// failed file leaves no trace and is retried on the next run.
func Migrate(ctx context.Context, db *gorm.DB) ([]MigrationResult, error) {
	db = db.WithContext(ctx)

	if err := db.Exec(`CREATE TABLE IF NOT EXISTS migrations (
		migration TEXT PRIMARY KEY,
		description TEXT,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`).Error; err != nil {
		return nil, fmt.Errorf("create migrations table: %w", err)
	}

	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil || len(files) == 0 {
		return nil, fmt.Errorf("no embedded migrations found")
	}
	sort.Strings(files)

	var done []string
	if err := db.Table("migrations").Pluck("migration", &done).Error; err != nil {
		return nil, fmt.Errorf("read applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(done))
	for _, name := range done {
		applied[name] = true
	}

	results := make([]MigrationResult, 0, len(files))
	for _, f := range files {
		filename := path.Base(f)
		if applied[filename] {
			results = append(results, MigrationResult{Name: filename})
			continue
		}

		content, err := migrationFS.ReadFile(f)
		if err != nil {
			return results, fmt.Errorf("read %s: %w", filename, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(content)).Error; err != nil {
				return fmt.Errorf("run %s: %w", filename, err)
			}
			if err := tx.Exec("INSERT INTO migrations (migration, description) VALUES (?, ?)",
				filename, descriptionFromFilename(filename)).Error; err != nil {
				return fmt.Errorf("record %s: %w", filename, err)
			}
			return nil
		})
		if err != nil {
			return results, err
		}
		results = append(results, MigrationResult{Name: filename, Applied: true})
	}
	return results, nil
}

// descriptionFromFilename strips the YYYY-MM-DD-NNN- prefix and .sql suffix.
func descriptionFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".sql")
	name = migrationPrefix.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, "-", " ")
}
