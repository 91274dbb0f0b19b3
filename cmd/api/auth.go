package main

import (
	"net/http"
	"time"

	"renovo/internal/auth"
)

// ErrorBadRequestResponse represents the standard error format for bad request API responses.
//
//	@name			ErrorBadRequestResponse
//	@description	Standard error response format returned by all bad request API endpoints
type ErrorBadRequestResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"It show error from err.Error()"`
	Status  int    `json:"status" example:"400"`
}

// ErrorInternalServerResponse represents the standard error format for internal server API responses.
//
//	@name			ErrorInternalServerResponse
//	@description	Standard error response format returned by all internal server error API endpoints
type ErrorInternalServerResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"the server encountered a problem"`
	Status  int    `json:"status" example:"500"`
}

type AdminAuthPayload struct {
	Secret string `json:"secret" validate:"required,max=72"`
}

type AdminTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// adminAuthHandler godoc
//
//	@Summary		Admin login
//	@Description	Exchanges the shared admin secret for a bearer token used by the /admin routes
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		AdminAuthPayload			true	"Admin secret"
//	@Success		200		{object}	AdminTokenResponse
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		401		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/admin/auth [post]
func (app *application) adminAuthHandler(w http.ResponseWriter, r *http.Request) {
	var payload AdminAuthPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := auth.VerifySecret(app.config.auth.adminSecretHash, payload.Secret); err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	token, err := app.authenticator.GenerateToken(auth.RoleAdmin, auth.RoleAdmin)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := AdminTokenResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(app.config.auth.token.exp),
	}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
