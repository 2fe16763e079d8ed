package database

import (
	"embed"
	"errors"
	"fmt"

	"health-tracker/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func newMigrator(cfg config.DBConfig) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration. Steps <= 0 means all of them.
func MigrateUp(cfg config.DBConfig, steps int, log *logrus.Logger) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(m, log)

	if steps > 0 {
		err = m.Steps(steps)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}

	logVersion(m, log)
	return nil
}

// MigrateDown rolls back the given number of migrations, all of them when steps <= 0
func MigrateDown(cfg config.DBConfig, steps int, log *logrus.Logger) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(m, log)

	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}

	logVersion(m, log)
	return nil
}

func logVersion(m *migrate.Migrate, log *logrus.Logger) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info("Database has no migrations applied")
		return
	}
	if err != nil {
		log.Warnf("Failed to read migration version: %+v", err)
		return
	}
	log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Database schema version")
}

func closeMigrator(m *migrate.Migrate, log *logrus.Logger) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		log.Warnf("Failed to close migration source: %+v", sourceErr)
	}
	if dbErr != nil {
		log.Warnf("Failed to close migration database: %+v", dbErr)
	}
}
