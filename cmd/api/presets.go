package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"renovo/internal/domain/catalog"
)

// listPresetsHandler godoc
//
//	@Summary		List presets
//	@Description	Presets without their items, newest first
//	@Tags			presets
//	@Produce		json
//	@Success		200	{array}		catalog.Preset
//	@Failure		500	{object}	error
//	@Router			/presets [get]
func (app *application) listPresetsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := app.store.Catalog.ListPresets(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, list)
}

// listPresetsDetailedHandler godoc
//
//	@Summary		List presets with items
//	@Description	Every preset with its ordered product items, as used by the configurator
//	@Tags			presets
//	@Produce		json
//	@Success		200	{array}		catalog.Preset
//	@Failure		500	{object}	error
//	@Router			/presets/detailed [get]
func (app *application) listPresetsDetailedHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := app.catalog.Get(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, snap.Presets)
}

// getPresetHandler godoc
//
//	@Summary		Get preset
//	@Tags			presets
//	@Produce		json
//	@Param			presetID	path		int	true	"Preset ID"
//	@Success		200			{object}	catalog.Preset
//	@Failure		404			{object}	error
//	@Router			/presets/{presetID} [get]
func (app *application) getPresetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "presetID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	p, err := app.store.Catalog.GetPreset(ctx, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, p)
}

type presetPayload struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	ProductIDs  []int64 `json:"product_ids" validate:"required,min=1,max=100,dive,gt=0"`
}

// createPresetHandler godoc
//
//	@Summary		Create preset
//	@Description	Creates a style preset from an ordered list of product ids
//	@Tags			admin-presets
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		presetPayload	true	"Preset"
//	@Success		201		{object}	catalog.Preset
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/presets [post]
func (app *application) createPresetHandler(w http.ResponseWriter, r *http.Request) {
	var payload presetPayload
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

	created, err := app.store.Catalog.CreatePreset(ctx, catalog.PresetInput{
		Name:        payload.Name,
		Description: trimmedOrNil(payload.Description),
		ProductIDs:  payload.ProductIDs,
	})
	if err != nil {
		// an unknown product is part of the request body, not the URL
		if errors.Is(err, catalog.ErrProductNotFound) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	w.Header().Set("Location", fmt.Sprintf("/v1/presets/%d", created.ID))
	app.jsonResponse(w, http.StatusCreated, created)
}

// uploadPresetImageHandler godoc
//
//	@Summary		Upload preset image
//	@Tags			admin-presets
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			presetID	path		int		true	"Preset ID"
//	@Param			image		formData	file	true	"JPEG, PNG or WebP up to 5MB"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/presets/{presetID}/image [put]
func (app *application) uploadPresetImageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "presetID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	file, err := readImageUpload(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer file.Close()
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if _, err := app.store.Catalog.GetPreset(ctx, id); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	publicID := fmt.Sprintf("preset_%d_%d", id, time.Now().UnixNano())
	url, err := app.uploadImage(ctx, file, "presets", publicID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	previous, err := app.store.Catalog.SetPresetImage(ctx, id, &url)
	if err != nil {
		app.deleteImageAsync(url)
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	if previous != nil && *previous != url {
		app.deleteImageAsync(*previous)
	}
	app.jsonResponse(w, http.StatusOK, map[string]string{"image_url": url})
}

// deletePresetHandler godoc
//
//	@Summary		Delete preset
//	@Tags			admin-presets
//	@Param			presetID	path	int	true	"Preset ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/presets/{presetID} [delete]
func (app *application) deletePresetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "presetID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	p, err := app.store.Catalog.GetPreset(ctx, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	if err := app.store.Catalog.DeletePreset(ctx, id); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	if p.ImageURL != nil {
		app.deleteImageAsync(*p.ImageURL)
	}
	w.WriteHeader(http.StatusNoContent)
}
