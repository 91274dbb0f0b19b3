package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"renovo/internal/domain/catalog"
)

// listServicesHandler godoc
//
//	@Summary		List services
//	@Description	Installation and finishing services with their base price
//	@Tags			services
//	@Produce		json
//	@Success		200	{array}		catalog.Service
//	@Failure		500	{object}	error
//	@Router			/services [get]
func (app *application) listServicesHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := app.catalog.Get(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, snap.Services)
}

type servicePayload struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// createServiceHandler godoc
//
//	@Summary		Create service
//	@Tags			admin-services
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		servicePayload	true	"Service"
//	@Success		201		{object}	catalog.Service
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/services [post]
func (app *application) createServiceHandler(w http.ResponseWriter, r *http.Request) {
	var payload servicePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := app.store.Catalog.CreateService(ctx, &catalog.Service{
		Name:        payload.Name,
		Description: trimmedOrNil(payload.Description),
		Price:       payload.Price,
	})
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	w.Header().Set("Location", fmt.Sprintf("/v1/services/%d", created.ID))
	app.jsonResponse(w, http.StatusCreated, created)
}

// updateServiceHandler godoc
//
//	@Summary		Update service
//	@Tags			admin-services
//	@Accept			json
//	@Produce		json
//	@Param			serviceID	path		int				true	"Service ID"
//	@Param			payload		body		servicePayload	true	"Service"
//	@Success		200			{object}	catalog.Service
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/services/{serviceID} [put]
func (app *application) updateServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "serviceID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload servicePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := app.store.Catalog.UpdateService(ctx, &catalog.Service{
		ID:          id,
		Name:        payload.Name,
		Description: trimmedOrNil(payload.Description),
		Price:       payload.Price,
	})
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	app.jsonResponse(w, http.StatusOK, updated)
}

// deleteServiceHandler godoc
//
//	@Summary		Delete service
//	@Description	Also detaches the service from every product it was paired with
//	@Tags			admin-services
//	@Param			serviceID	path	int	true	"Service ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/services/{serviceID} [delete]
func (app *application) deleteServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "serviceID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := app.store.Catalog.DeleteService(ctx, id); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	w.WriteHeader(http.StatusNoContent)
}
