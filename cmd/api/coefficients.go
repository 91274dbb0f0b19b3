package main

import (
	"context"
	"net/http"
	"time"

	"renovo/internal/domain/catalog"
)

// listCoefficientsHandler godoc
//
//	@Summary		List price coefficients
//	@Description	Market multipliers applied to service prices
//	@Tags			coefficients
//	@Produce		json
//	@Success		200	{array}		catalog.Coefficient
//	@Failure		500	{object}	error
//	@Router			/coefficients [get]
func (app *application) listCoefficientsHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := app.catalog.Get(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, snap.Coefficients)
}

// getCoefficientHandler godoc
//
//	@Summary		Get coefficient
//	@Tags			admin-coefficients
//	@Produce		json
//	@Param			coefficientID	path		int	true	"Coefficient ID"
//	@Success		200				{object}	catalog.Coefficient
//	@Failure		404				{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/coefficients/{coefficientID} [get]
func (app *application) getCoefficientHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "coefficientID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	c, err := app.store.Catalog.GetCoefficient(ctx, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, c)
}

type coefficientPayload struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Value float64 `json:"value" validate:"gte=0"`
}

// createCoefficientHandler godoc
//
//	@Summary		Create coefficient
//	@Tags			admin-coefficients
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		coefficientPayload	true	"Coefficient"
//	@Success		201		{object}	catalog.Coefficient
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/coefficients [post]
func (app *application) createCoefficientHandler(w http.ResponseWriter, r *http.Request) {
	var payload coefficientPayload
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

	created, err := app.store.Catalog.CreateCoefficient(ctx, &catalog.Coefficient{Name: payload.Name, Value: payload.Value})
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	app.jsonResponse(w, http.StatusCreated, created)
}

// updateCoefficientHandler godoc
//
//	@Summary		Update coefficient
//	@Tags			admin-coefficients
//	@Accept			json
//	@Produce		json
//	@Param			coefficientID	path		int					true	"Coefficient ID"
//	@Param			payload			body		coefficientPayload	true	"Coefficient"
//	@Success		200				{object}	catalog.Coefficient
//	@Failure		400				{object}	error
//	@Failure		404				{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/coefficients/{coefficientID} [put]
func (app *application) updateCoefficientHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "coefficientID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload coefficientPayload
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

	updated, err := app.store.Catalog.UpdateCoefficient(ctx, &catalog.Coefficient{ID: id, Name: payload.Name, Value: payload.Value})
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	app.jsonResponse(w, http.StatusOK, updated)
}

// deleteCoefficientHandler godoc
//
//	@Summary		Delete coefficient
//	@Tags			admin-coefficients
//	@Param			coefficientID	path	int	true	"Coefficient ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/coefficients/{coefficientID} [delete]
func (app *application) deleteCoefficientHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "coefficientID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := app.store.Catalog.DeleteCoefficient(ctx, id); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	w.WriteHeader(http.StatusNoContent)
}
