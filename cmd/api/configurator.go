package main

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"renovo/internal/configurator"
	"renovo/internal/sessions"
	"renovo/internal/snapshot"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type sessionKey string

const sessionCtx sessionKey = "session"

func (app *application) sessionContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
		if err != nil {
			app.badRequestResponse(w, r, errors.New("invalid session id"))
			return
		}

		sess, err := app.sessions.Get(id)
		if err != nil {
			if errors.Is(err, sessions.ErrSessionNotFound) {
				app.notFoundResponse(w, r, err)
				return
			}
			app.internalServerError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtx, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getSessionFromCtx(r *http.Request) *sessions.Session {
	sess, _ := r.Context().Value(sessionCtx).(*sessions.Session)
	return sess
}

// withSnapshot hands the current catalog snapshot to fn, answering 500 when
// no catalog could be loaded at all.
func (app *application) withSnapshot(w http.ResponseWriter, r *http.Request, fn func(snap *snapshot.Snapshot)) {
	snap, err := app.catalog.Get(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	fn(snap)
}

// sessionErrorResponse maps configurator errors onto HTTP statuses.
func (app *application) sessionErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, sessions.ErrUnknownProduct),
		errors.Is(err, sessions.ErrUnknownService),
		errors.Is(err, sessions.ErrUnknownPreset),
		errors.Is(err, sessions.ErrSessionNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, sessions.ErrInvalidSelection):
		app.badRequestResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}

// createSessionHandler godoc
//
//	@Summary		Start a configurator session
//	@Description	Creates an anonymous session with an empty selection and cart
//	@Tags			configurator
//	@Produce		json
//	@Success		201	{object}	sessions.View
//	@Failure		500	{object}	error
//	@Router			/sessions [post]
func (app *application) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		sess := app.sessions.Create(snap)
		w.Header().Set("Location", "/v1/sessions/"+sess.ID.String())
		app.jsonResponse(w, http.StatusCreated, sess.View(snap))
	})
}

// getSessionHandler godoc
//
//	@Summary		Get configurator state
//	@Description	Selection path, the products of the chosen sub-element, the cart and its pricing
//	@Tags			configurator
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Success		200			{object}	sessions.View
//	@Failure		404			{object}	error
//	@Router			/sessions/{sessionID} [get]
func (app *application) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromCtx(r)
	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		app.jsonResponse(w, http.StatusOK, sess.View(snap))
	})
}

// deleteSessionHandler godoc
//
//	@Summary		End configurator session
//	@Tags			configurator
//	@Param			sessionID	path	string	true	"Session ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Router			/sessions/{sessionID} [delete]
func (app *application) deleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	app.sessions.Delete(getSessionFromCtx(r).ID)
	w.WriteHeader(http.StatusNoContent)
}

// getSessionTotalHandler godoc
//
//	@Summary		Price breakdown
//	@Description	Line totals and the grand total; services are scaled by the market coefficient
//	@Tags			configurator
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Success		200			{object}	configurator.Breakdown
//	@Failure		404			{object}	error
//	@Router			/sessions/{sessionID}/total [get]
func (app *application) getSessionTotalHandler(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromCtx(r)
	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		app.jsonResponse(w, http.StatusOK, sess.Price(snap))
	})
}

type selectPayload struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// selectRoomHandler godoc
//
//	@Summary		Choose a room
//	@Description	Clears the element and sub-element choices below it
//	@Tags			configurator
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string			true	"Session ID"
//	@Param			payload		body		selectPayload	true	"Room category ID"
//	@Success		200			{object}	sessions.View
//	@Failure		400			{object}	error
//	@Router			/sessions/{sessionID}/selection/room [put]
func (app *application) selectRoomHandler(w http.ResponseWriter, r *http.Request) {
	app.selectCategory(w, r, (*sessions.Session).SelectRoom)
}

// selectElementHandler godoc
//
//	@Summary		Choose an element of the selected room
//	@Tags			configurator
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string			true	"Session ID"
//	@Param			payload		body		selectPayload	true	"Element category ID"
//	@Success		200			{object}	sessions.View
//	@Failure		400			{object}	error
//	@Router			/sessions/{sessionID}/selection/element [put]
func (app *application) selectElementHandler(w http.ResponseWriter, r *http.Request) {
	app.selectCategory(w, r, (*sessions.Session).SelectElement)
}

// selectSubElementHandler godoc
//
//	@Summary		Choose a sub-element of the selected element
//	@Description	The view then lists the products of that sub-element
//	@Tags			configurator
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string			true	"Session ID"
//	@Param			payload		body		selectPayload	true	"Sub-element category ID"
//	@Success		200			{object}	sessions.View
//	@Failure		400			{object}	error
//	@Router			/sessions/{sessionID}/selection/sub-element [put]
func (app *application) selectSubElementHandler(w http.ResponseWriter, r *http.Request) {
	app.selectCategory(w, r, (*sessions.Session).SelectSubElement)
}

func (app *application) selectCategory(w http.ResponseWriter, r *http.Request, sel func(*sessions.Session, *snapshot.Snapshot, int64) error) {
	var payload selectPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sess := getSessionFromCtx(r)
	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		if err := sel(sess, snap, payload.ID); err != nil {
			app.sessionErrorResponse(w, r, err)
			return
		}
		app.jsonResponse(w, http.StatusOK, sess.View(snap))
	})
}

type addProductPayload struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// addCartProductHandler godoc
//
//	@Summary		Add product to cart
//	@Description	Adds one unit at the current catalog price; adding a product already in the cart changes nothing
//	@Tags			configurator
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string				true	"Session ID"
//	@Param			payload		body		addProductPayload	true	"Product"
//	@Success		200			{object}	sessions.View
//	@Failure		404			{object}	error
//	@Router			/sessions/{sessionID}/products [post]
func (app *application) addCartProductHandler(w http.ResponseWriter, r *http.Request) {
	var payload addProductPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sess := getSessionFromCtx(r)
	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		if err := sess.AddProduct(snap, payload.ProductID); err != nil {
			app.sessionErrorResponse(w, r, err)
			return
		}
		app.jsonResponse(w, http.StatusOK, sess.View(snap))
	})
}

// quantity accepts a JSON number or a numeric string. Anything else decodes
// to NaN, which the cart coerces to 1.
type quantity float64

func (q *quantity) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*q = quantity(math.NaN())
	switch v := v.(type) {
	case float64:
		*q = quantity(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*q = quantity(f)
		}
	}
	return nil
}

type quantityPayload struct {
	Quantity quantity `json:"quantity" swaggertype:"number"`
}

// updateCartProductHandler godoc
//
//	@Summary		Set product quantity
//	@Description	Quantities are whole units of at least 1; fractions are rounded down
//	@Tags			configurator
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string			true	"Session ID"
//	@Param			productID	path		int				true	"Product ID"
//	@Param			payload		body		quantityPayload	true	"Quantity"
//	@Success		200			{object}	sessions.View
//	@Failure		400			{object}	error
//	@Router			/sessions/{sessionID}/products/{productID} [patch]
func (app *application) updateCartProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload quantityPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sess := getSessionFromCtx(r)
	sess.SetProductQuantity(id, float64(payload.Quantity))

	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		app.jsonResponse(w, http.StatusOK, sess.View(snap))
	})
}

// removeCartProductHandler godoc
//
//	@Summary		Remove product from cart
//	@Tags			configurator
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Param			productID	path		int		true	"Product ID"
//	@Success		200			{object}	sessions.View
//	@Router			/sessions/{sessionID}/products/{productID} [delete]
func (app *application) removeCartProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sess := getSessionFromCtx(r)
	sess.RemoveProduct(id)

	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		app.jsonResponse(w, http.StatusOK, sess.View(snap))
	})
}

type addServicePayload struct {
	ServiceID int64 `json:"service_id" validate:"required,gt=0"`
}

// addCartServiceHandler godoc
//
//	@Summary		Add service to cart
//	@Tags			configurator
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string				true	"Session ID"
//	@Param			payload		body		addServicePayload	true	"Service"
//	@Success		200			{object}	sessions.View
//	@Failure		404			{object}	error
//	@Router			/sessions/{sessionID}/services [post]
func (app *application) addCartServiceHandler(w http.ResponseWriter, r *http.Request) {
	var payload addServicePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sess := getSessionFromCtx(r)
	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		if err := sess.AddService(snap, payload.ServiceID); err != nil {
			app.sessionErrorResponse(w, r, err)
			return
		}
		app.jsonResponse(w, http.StatusOK, sess.View(snap))
	})
}

type updateServicePayload struct {
	Quantity *quantity `json:"quantity" swaggertype:"number"`
	Unit     *string   `json:"unit" validate:"omitempty,max=50"`
}

// updateCartServiceHandler godoc
//
//	@Summary		Set service quantity or unit
//	@Description	Service quantities may be fractional (square metres); omitted fields stay unchanged
//	@Tags			configurator
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string					true	"Session ID"
//	@Param			serviceID	path		int						true	"Service ID"
//	@Param			payload		body		updateServicePayload	true	"Quantity and unit"
//	@Success		200			{object}	sessions.View
//	@Failure		400			{object}	error
//	@Router			/sessions/{sessionID}/services/{serviceID} [patch]
func (app *application) updateCartServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "serviceID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload updateServicePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sess := getSessionFromCtx(r)
	var qty *float64
	if payload.Quantity != nil {
		v := float64(*payload.Quantity)
		qty = &v
	}
	sess.UpdateService(id, qty, payload.Unit)

	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		app.jsonResponse(w, http.StatusOK, sess.View(snap))
	})
}

// removeCartServiceHandler godoc
//
//	@Summary		Remove service from cart
//	@Tags			configurator
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Param			serviceID	path		int		true	"Service ID"
//	@Success		200			{object}	sessions.View
//	@Router			/sessions/{sessionID}/services/{serviceID} [delete]
func (app *application) removeCartServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "serviceID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sess := getSessionFromCtx(r)
	sess.RemoveService(id)

	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		app.jsonResponse(w, http.StatusOK, sess.View(snap))
	})
}

type applyPresetResponse struct {
	Added int           `json:"added"`
	View  sessions.View `json:"view"`
}

// applyPresetHandler godoc
//
//	@Summary		Apply a style preset
//	@Description	Adds every preset product not already in the cart; applying twice adds nothing the second time
//	@Tags			configurator
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Param			presetID	path		int		true	"Preset ID"
//	@Success		200			{object}	applyPresetResponse
//	@Failure		404			{object}	error
//	@Router			/sessions/{sessionID}/presets/{presetID} [post]
func (app *application) applyPresetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "presetID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sess := getSessionFromCtx(r)
	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		added, err := sess.ApplyPreset(snap, id)
		if err != nil {
			app.sessionErrorResponse(w, r, err)
			return
		}
		app.jsonResponse(w, http.StatusOK, applyPresetResponse{Added: added, View: sess.View(snap)})
	})
}

type marketPayload struct {
	Market string `json:"market" validate:"market"`
}

// setMarketHandler godoc
//
//	@Summary		Choose the market type
//	@Description	"primary" or "secondary" selects the matching coefficient; an empty value resets to 1
//	@Tags			configurator
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string			true	"Session ID"
//	@Param			payload		body		marketPayload	true	"Market type"
//	@Success		200			{object}	sessions.View
//	@Failure		400			{object}	error
//	@Router			/sessions/{sessionID}/market [put]
func (app *application) setMarketHandler(w http.ResponseWriter, r *http.Request) {
	var payload marketPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sess := getSessionFromCtx(r)
	sess.SetMarket(configurator.ParseMarketType(payload.Market))

	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		app.jsonResponse(w, http.StatusOK, sess.View(snap))
	})
}

// clearCartHandler godoc
//
//	@Summary		Empty the cart
//	@Tags			configurator
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Success		200			{object}	sessions.View
//	@Router			/sessions/{sessionID}/cart [delete]
func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromCtx(r)
	sess.ClearCart()

	app.withSnapshot(w, r, func(snap *snapshot.Snapshot) {
		app.jsonResponse(w, http.StatusOK, sess.View(snap))
	})
}
