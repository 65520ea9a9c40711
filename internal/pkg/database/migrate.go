package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

// RunMigrations applies all pending migrations from the given directory
func RunMigrations(migrationsPath string, config models.DatabaseConfig) error {
	m, err := migrate.New("file://"+migrationsPath, ConnString(config))
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
