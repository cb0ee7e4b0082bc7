package db

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"financial-dashboard-backend/internal/models"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres database driver and file source
	// for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. With MIGRATIONS=1 the versioned SQL
// migrations run via golang-migrate; otherwise gorm AutoMigrate keeps dev
// environments moving without a migrations directory.
func Migrate(gdb *gorm.DB, dsn string) error {
	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		return runSQLMigrations(dsn)
	}
	return gdb.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
	)
}

func runSQLMigrations(dsn string) error {
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = "migrations"
	}
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
