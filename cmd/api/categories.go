package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"renovo/internal/configurator"
	"renovo/internal/domain/catalog"

	"github.com/go-chi/chi/v5"
)

// idParam reads a positive int64 path parameter.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// listCategoriesHandler godoc
//
//	@Summary		List categories
//	@Description	Flat list of every category; rooms have a null parent_id
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}		catalog.Category
//	@Failure		500	{object}	error
//	@Router			/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := app.catalog.Get(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, snap.Categories)
}

type categoryTreeResponse struct {
	Version uint64 `json:"catalog_version"`
	*configurator.Tree
}

// getCategoryTreeHandler godoc
//
//	@Summary		Category tree
//	@Description	Rooms with their elements and sub-elements. Structural problems found in the data are listed under anomalies.
//	@Tags			categories
//	@Produce		json
//	@Success		200	{object}	categoryTreeResponse
//	@Failure		500	{object}	error
//	@Router			/categories/tree [get]
func (app *application) getCategoryTreeHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := app.catalog.Get(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, categoryTreeResponse{Version: snap.Version, Tree: snap.Tree})
}

// getCategoryHandler godoc
//
//	@Summary		Get category
//	@Tags			categories
//	@Produce		json
//	@Param			categoryID	path		int	true	"Category ID"
//	@Success		200			{object}	catalog.Category
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Router			/categories/{categoryID} [get]
func (app *application) getCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "categoryID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	c, err := app.store.Catalog.GetCategory(ctx, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, c)
}

type categoryPayload struct {
	Name        string  `json:"name" validate:"required,max=255"`
	ParentID    *int64  `json:"parent_id" validate:"omitempty,gt=0"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// createCategoryHandler godoc
//
//	@Summary		Create category
//	@Description	Creates a room (no parent), an element (parent is a room) or a sub-element (parent is an element)
//	@Tags			admin-categories
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		categoryPayload	true	"Category"
//	@Success		201		{object}	catalog.Category
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
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

	created, err := app.store.Catalog.CreateCategory(ctx, &catalog.Category{
		Name:        payload.Name,
		ParentID:    payload.ParentID,
		Description: trimmedOrNil(payload.Description),
	})
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	w.Header().Set("Location", fmt.Sprintf("/v1/categories/%d", created.ID))
	app.jsonResponse(w, http.StatusCreated, created)
}

// updateCategoryHandler godoc
//
//	@Summary		Update category
//	@Description	Renames or re-parents a category. Moves that would create a cycle or nest deeper than sub-elements are rejected.
//	@Tags			admin-categories
//	@Accept			json
//	@Produce		json
//	@Param			categoryID	path		int				true	"Category ID"
//	@Param			payload		body		categoryPayload	true	"Category"
//	@Success		200			{object}	catalog.Category
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/categories/{categoryID} [put]
func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "categoryID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload categoryPayload
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

	updated, err := app.store.Catalog.UpdateCategory(ctx, &catalog.Category{
		ID:          id,
		Name:        payload.Name,
		ParentID:    payload.ParentID,
		Description: trimmedOrNil(payload.Description),
	})
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	app.jsonResponse(w, http.StatusOK, updated)
}

// deleteCategoryHandler godoc
//
//	@Summary		Delete category
//	@Description	Fails with 409 while the category still has children or products
//	@Tags			admin-categories
//	@Param			categoryID	path	int	true	"Category ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Failure		409	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/categories/{categoryID} [delete]
func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "categoryID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := app.store.Catalog.DeleteCategory(ctx, id); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	w.WriteHeader(http.StatusNoContent)
}

// refreshCatalogHandler godoc
//
//	@Summary		Reload catalog snapshot
//	@Description	Forces the in-memory catalog used by configurator sessions to reload now
//	@Tags			admin-catalog
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Security		ApiKeyAuth
//	@Router			/admin/catalog/refresh [post]
func (app *application) refreshCatalogHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	app.catalog.Invalidate()
	snap, err := app.catalog.Get(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, map[string]any{
		"catalog_version": snap.Version,
		"loaded_at":       snap.LoadedAt,
		"anomalies":       snap.Tree.Anomalies,
	})
}
