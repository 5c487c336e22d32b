package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dino-explorer/internal/app"
	"dino-explorer/internal/transport/http/response"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Conflicts ride on 400 rather than 409: registered API clients depend on
// the original contract.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrConflict):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, app.ErrInvalidCredential):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, app.ErrForbidden):
		response.Error(c, http.StatusForbidden, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

// writeLoginError keeps every login rejection on 401, matching the auth
// contract: missing fields, unknown usernames, and wrong passwords are
// indistinguishable to the client beyond the message for missing fields.
func writeLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrValidation):
		response.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, app.ErrInvalidCredential):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}
