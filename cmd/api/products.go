package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"renovo/internal/domain/catalog"
	"renovo/internal/params"
)

type productPage struct {
	Products   []catalog.Product `json:"products"`
	Pagination params.Pagination `json:"pagination"`
}

// listProductsHandler godoc
//
//	@Summary		List products
//	@Description	Paginated product list, optionally narrowed to one category
//	@Tags			products
//	@Produce		json
//	@Param			category_id	query		int	false	"Category ID"
//	@Param			page		query		int	false	"Page (default 1)"
//	@Param			limit		query		int	false	"Page size (default 20, max 100)"
//	@Success		200			{object}	productPage
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	categoryID, err := params.OptionalInt64(q, "category_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	p := params.ParsePagination(q)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, total, err := app.store.Catalog.ListProducts(ctx, catalog.ProductFilter{
		CategoryID: categoryID,
		Limit:      p.Limit,
		Offset:     p.Offset,
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)

	app.jsonResponse(w, http.StatusOK, productPage{Products: list, Pagination: p})
}

// listProductsByCategoryHandler godoc
//
//	@Summary		Products of a category
//	@Description	Every product attached to the category, in catalog order
//	@Tags			products
//	@Produce		json
//	@Param			categoryID	path		int	true	"Category ID"
//	@Success		200			{array}		catalog.Product
//	@Failure		400			{object}	error
//	@Router			/products/category/{categoryID} [get]
func (app *application) listProductsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "categoryID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := app.store.Catalog.ListProductsByCategory(ctx, id)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, list)
}

// getProductHandler godoc
//
//	@Summary		Get product
//	@Tags			products
//	@Produce		json
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	catalog.Product
//	@Failure		404			{object}	error
//	@Router			/products/{productID} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	p, err := app.store.Catalog.GetProduct(ctx, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, p)
}

type productPayload struct {
	Name        string              `json:"name" validate:"required,max=255"`
	Price       float64             `json:"price" validate:"gte=0"`
	Description *string             `json:"description" validate:"omitempty,max=5000"`
	CategoryID  int64               `json:"category_id" validate:"required,gt=0"`
	Attributes  []catalog.Attribute `json:"attributes" validate:"omitempty,max=100,dive"`
	ServiceIDs  []int64             `json:"service_ids" validate:"omitempty,max=100,dive,gt=0"`
}

func (p productPayload) toProduct(id int64) *catalog.Product {
	services := make([]catalog.ServiceRef, 0, len(p.ServiceIDs))
	for _, sid := range p.ServiceIDs {
		services = append(services, catalog.ServiceRef{ID: sid})
	}
	return &catalog.Product{
		ID:          id,
		Name:        p.Name,
		Price:       p.Price,
		Description: trimmedOrNil(p.Description),
		CategoryID:  p.CategoryID,
		Attributes:  p.Attributes,
		Services:    services,
	}
}

// createProductHandler godoc
//
//	@Summary		Create product
//	@Description	Creates a product under a sub-element category together with its attributes and paired services
//	@Tags			admin-products
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		productPayload	true	"Product"
//	@Success		201		{object}	catalog.Product
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/products [post]
func (app *application) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
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

	created, err := app.store.Catalog.CreateProduct(ctx, payload.toProduct(0))
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	w.Header().Set("Location", fmt.Sprintf("/v1/products/%d", created.ID))
	app.jsonResponse(w, http.StatusCreated, created)
}

// updateProductHandler godoc
//
//	@Summary		Update product
//	@Tags			admin-products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int				true	"Product ID"
//	@Param			payload		body		productPayload	true	"Product"
//	@Success		200			{object}	catalog.Product
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/products/{productID} [put]
func (app *application) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload productPayload
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

	updated, err := app.store.Catalog.UpdateProduct(ctx, payload.toProduct(id))
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	app.jsonResponse(w, http.StatusOK, updated)
}

// deleteProductHandler godoc
//
//	@Summary		Delete product
//	@Description	Removes the product and its image. Presets keep an empty slot for it.
//	@Tags			admin-products
//	@Param			productID	path	int	true	"Product ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/products/{productID} [delete]
func (app *application) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	p, err := app.store.Catalog.GetProduct(ctx, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	if err := app.store.Catalog.DeleteProduct(ctx, id); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	if p.ImageURL != nil {
		app.deleteImageAsync(*p.ImageURL)
	}
	w.WriteHeader(http.StatusNoContent)
}

// uploadProductImageHandler godoc
//
//	@Summary		Upload product image
//	@Description	Replaces the product image; the previous asset is removed from Cloudinary
//	@Tags			admin-products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			productID	path		int		true	"Product ID"
//	@Param			image		formData	file	true	"JPEG, PNG or WebP up to 5MB"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/products/{productID}/image [put]
func (app *application) uploadProductImageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
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

	if _, err := app.store.Catalog.GetProduct(ctx, id); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	publicID := fmt.Sprintf("product_%d_%d", id, time.Now().UnixNano())
	url, err := app.uploadImage(ctx, file, "products", publicID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	previous, err := app.store.Catalog.SetProductImage(ctx, id, &url)
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

// deleteProductImageHandler godoc
//
//	@Summary		Remove product image
//	@Tags			admin-products
//	@Param			productID	path	int	true	"Product ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/products/{productID}/image [delete]
func (app *application) deleteProductImageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	previous, err := app.store.Catalog.SetProductImage(ctx, id, nil)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	if previous != nil {
		app.deleteImageAsync(*previous)
	}
	w.WriteHeader(http.StatusNoContent)
}

type attributesPayload struct {
	Attributes []catalog.Attribute `json:"attributes" validate:"max=100,dive"`
}

// replaceProductAttributesHandler godoc
//
//	@Summary		Replace product attributes
//	@Description	Swaps the whole attribute list (name, optional unit, value) keeping the submitted order
//	@Tags			admin-products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int					true	"Product ID"
//	@Param			payload		body		attributesPayload	true	"Attributes"
//	@Success		200			{object}	catalog.Product
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/products/{productID}/attributes [put]
func (app *application) replaceProductAttributesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload attributesPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.replaceProductRelations(w, r, id, func(ctx context.Context, tx catalog.Store) error {
		return tx.ReplaceProductAttributes(ctx, id, payload.Attributes)
	})
}

type productServicesPayload struct {
	ServiceIDs []int64 `json:"service_ids" validate:"max=100,dive,gt=0"`
}

// replaceProductServicesHandler godoc
//
//	@Summary		Replace paired services
//	@Description	Sets which services are offered together with the product
//	@Tags			admin-products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int						true	"Product ID"
//	@Param			payload		body		productServicesPayload	true	"Service IDs"
//	@Success		200			{object}	catalog.Product
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/products/{productID}/services [put]
func (app *application) replaceProductServicesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload productServicesPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.replaceProductRelations(w, r, id, func(ctx context.Context, tx catalog.Store) error {
		return tx.ReplaceProductServices(ctx, id, payload.ServiceIDs)
	})
}

// replaceProductRelations checks the product exists and applies fn in one
// transaction, then answers with the updated product.
func (app *application) replaceProductRelations(w http.ResponseWriter, r *http.Request, id int64, fn func(ctx context.Context, tx catalog.Store) error) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := app.store.WithCatalogTx(ctx, func(tx catalog.Store) error {
		if _, err := tx.GetProduct(ctx, id); err != nil {
			return err
		}
		return fn(ctx, tx)
	})
	if err != nil {
		// the product was found, so a missing service is bad input
		if errors.Is(err, catalog.ErrServiceNotFound) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.catalog.Invalidate()

	p, err := app.store.Catalog.GetProduct(ctx, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.jsonResponse(w, http.StatusOK, p)
}
