// Package migrator applies the embedded schema migrations with golang-migrate.
package migrator

import (
	"database/sql"
	"errors"
	"fmt"

	"renovo/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

type Mode int

const (
	Up Mode = iota
	DownOne
	ForceTo
	Status
)

type Options struct {
	Mode    Mode
	Version int
}

// Result reports the schema version after a run.
type Result struct {
	Version uint
	Dirty   bool
	Changed bool
}

func Run(dsn string, opts Options) (res Result, err error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return res, fmt.Errorf("open db: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing db: %w", cerr)
		}
	}()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return res, fmt.Errorf("driver: %w", err)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return res, fmt.Errorf("source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return res, fmt.Errorf("migrate init: %w", err)
	}

	switch opts.Mode {
	case Up:
		err = m.Up()
	case DownOne:
		err = m.Steps(-1)
	case ForceTo:
		err = m.Force(opts.Version)
	case Status:
	default:
		return res, fmt.Errorf("unknown migration mode: %v", opts.Mode)
	}

	switch {
	case errors.Is(err, migrate.ErrNoChange):
	case err != nil:
		return res, err
	default:
		res.Changed = opts.Mode != Status
	}

	v, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return res, fmt.Errorf("read version: %w", err)
	}
	res.Version, res.Dirty = v, dirty
	return res, nil
}
