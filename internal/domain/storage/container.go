package storage

import (
	"context"
	"fmt"

	"renovo/internal/domain/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	pool    *pgxpool.Pool // needed by WithCatalogTx and Ping
	Catalog catalog.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:    db,
		Catalog: catalog.NewRepository(db),
	}
}

// WithCatalogTx runs a multi-step catalog change (a product together with its
// attributes and services, for example) atomically.
func (c *Container) WithCatalogTx(ctx context.Context, fn func(tx catalog.Store) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil (did you forget to set pool in NewContainer?)")
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	if err := fn(catalog.NewRepository(tx)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil")
	}
	return c.pool.Ping(ctx)
}
