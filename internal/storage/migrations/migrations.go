// Package migrations applies the embedded SQL schema with golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

//go:embed sqlite/*.sql postgres/*.sql
var fs embed.FS

// ErrNoChange is returned when the schema is already at the target version.
var ErrNoChange = migrate.ErrNoChange

// Up applies all pending migrations for driver. For sqlite, target is the
// database file path; for postgres, a postgres:// DSN.
func Up(driver, target string) error {
	return run(driver, target, "up")
}

// Down rolls back every migration for driver.
func Down(driver, target string) error {
	return run(driver, target, "down")
}

func run(driver, target, direction string) error {
	const op = "migrations.run"

	dir, url, err := source(driver, target)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	src, err := iofs.New(fs, dir)
	if err != nil {
		return fmt.Errorf("%s: source: %w", op, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %s: %w", op, direction, err)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		return ErrNoChange
	}

	return nil
}

func source(driver, target string) (dir, url string, err error) {
	if target == "" {
		return "", "", errors.New("migration target is empty")
	}
	switch driver {
	case DriverSQLite:
		return "sqlite", "sqlite3://" + target, nil
	case DriverPostgres:
		return "postgres", target, nil
	default:
		return "", "", fmt.Errorf("unsupported driver %q", driver)
	}
}
