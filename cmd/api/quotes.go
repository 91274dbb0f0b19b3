package main

import (
	"errors"
	"net/http"

	"renovo/internal/mailer"
	"renovo/internal/quotes"
	"renovo/internal/snapshot"
)

type QuotePayload struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// sendQuoteHandler godoc
//
//	@Summary		Email the estimate
//	@Description	Issues a numbered quote for the current cart and mails it to the customer
//	@Tags			configurator
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string			true	"Session ID"
//	@Param			payload		body		QuotePayload	true	"Recipient"
//	@Success		201			{object}	quotes.Quote
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/sessions/{sessionID}/quote [post]
func (app *application) sendQuoteHandler(w http.ResponseWriter, r *http.Request) {
	var payload QuotePayload
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
		view := sess.View(snap)
		if len(view.Pricing.Products) == 0 && len(view.Pricing.Services) == 0 {
			app.badRequestResponse(w, r, errors.New("cart is empty"))
			return
		}

		q, err := app.quotes.Issue(payload.Name, payload.Email, view.Market, view.Pricing)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}

		vars := struct {
			*quotes.Quote
			FrontendURL string
		}{q, app.config.frontendURL}

		status, err := app.mailer.Send(mailer.QuoteTemplate, payload.Name, payload.Email, vars)
		if err != nil {
			app.logger.Errorw("error sending quote email", "number", q.Number, "error", err)
			app.internalServerError(w, r, err)
			return
		}

		app.logger.Infow("Quote sent", "number", q.Number, "total", q.Total, "status code", status)

		if err := app.jsonResponse(w, http.StatusCreated, q); err != nil {
			app.internalServerError(w, r, err)
		}
	})
}
