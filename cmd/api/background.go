package main

import (
	"context"
	"errors"
	"time"

	"renovo/internal/ratelimiter"
	"renovo/internal/snapshot"
)

const (
	sessionSweepInterval = 5 * time.Minute
)

func (app *application) startBackgroundJobs(ctx context.Context) {
	go app.sessions.RunJanitor(ctx, sessionSweepInterval, app.logger)
	go app.refreshCatalogEvery(ctx, app.config.catalogTTL)

	if rl, ok := app.rateLimiter.(*ratelimiter.FixedWindowRateLimiter); ok {
		go rl.Cleanup(ctx, time.Minute)
	}
}

// refreshCatalogEvery keeps the catalog snapshot warm so configurator requests
// rarely pay for a reload.
func (app *application) refreshCatalogEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run once immediately
	app.refreshCatalog(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.refreshCatalog(ctx)
		}
	}
}

func (app *application) refreshCatalog(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	s, err := app.catalog.Refresh(ctx)
	if errors.Is(err, snapshot.ErrStale) {
		// an admin-triggered reload finished first
		return
	}
	if err != nil {
		app.logger.Errorw("catalog snapshot refresh failed", "error", err)
		return
	}
	app.logger.Infow("catalog snapshot refreshed",
		"version", s.Version,
		"categories", len(s.Categories),
		"products", len(s.Products),
		"presets", len(s.Presets),
	)
}
