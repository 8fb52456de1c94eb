// Package migrations applies the SQL schema in the migrations directory
// with golang-migrate.
package migrations

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// DefaultPath is the migrations directory relative to the repository root.
const DefaultPath = "migrations"

// Status is the schema version after a command.
type Status struct {
	Version uint
	Dirty   bool
	// Changed is false when there was nothing to apply.
	Changed bool
}

// Runner wraps a migrate instance.
type Runner struct {
	m *migrate.Migrate
}

// New opens the migrations at path against databaseURL.
func New(path, databaseURL string) (*Runner, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path %s: %w", path, err)
	}
	m, err := migrate.New(fmt.Sprintf("file://%s", filepath.ToSlash(abs)), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return &Runner{m: m}, nil
}

// Up applies all pending migrations.
func (r *Runner) Up() (Status, error) {
	return r.apply(r.m.Up)
}

// Down rolls back every migration.
func (r *Runner) Down() (Status, error) {
	return r.apply(r.m.Down)
}

// Steps applies n migrations, rolling back when n is negative.
func (r *Runner) Steps(n int) (Status, error) {
	return r.apply(func() error { return r.m.Steps(n) })
}

// Version reports the current schema version.
func (r *Runner) Version() (Status, error) {
	v, dirty, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("failed to get version: %w", err)
	}
	return Status{Version: v, Dirty: dirty}, nil
}

// Force sets the version without running migrations, clearing the dirty flag.
func (r *Runner) Force(version int) error {
	if err := r.m.Force(version); err != nil {
		return fmt.Errorf("failed to force version %d: %w", version, err)
	}
	return nil
}

func (r *Runner) apply(step func() error) (Status, error) {
	err := step()
	changed := true
	if errors.Is(err, migrate.ErrNoChange) {
		changed, err = false, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("migration failed: %w", err)
	}
	st, err := r.Version()
	st.Changed = changed
	return st, err
}

// Close releases the source and database handles.
func (r *Runner) Close() error {
	srcErr, dbErr := r.m.Close()
	return errors.Join(srcErr, dbErr)
}
