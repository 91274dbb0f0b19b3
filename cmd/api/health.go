package main

import (
	"context"
	"net/http"
	"time"
)

// healthCheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Reports service status, database reachability and the loaded catalog version
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Failure		503	{object}	error
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	data := map[string]any{
		"status":   "ok",
		"env":      app.config.env,
		"version":  version,
		"sessions": app.sessions.Len(),
	}
	if s := app.catalog.Current(); s != nil {
		data["catalog_version"] = s.Version
		data["catalog_loaded_at"] = s.LoadedAt
	}

	status := http.StatusOK
	if err := app.store.Ping(ctx); err != nil {
		app.logger.Errorw("database ping failed", "error", err.Error())
		data["status"] = "degraded"
		status = http.StatusServiceUnavailable
	}

	if err := app.jsonResponse(w, status, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
