package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sparkdate/spark/internal/api"
	mm "github.com/sparkdate/spark/internal/middleware"
	"github.com/sparkdate/spark/internal/service"
)

var errInvalidRequest = errors.New("invalid request")

// identity returns the request's identity, routes are guarded by mm.Authenticated.
func identity(r *http.Request) service.Identity {
	id, _ := mm.GetIdentity(r.Context())
	return id
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		api.WriteError(w, http.StatusBadRequest, errInvalidRequest.Error())
		return false
	}

	return true
}

// writeServiceError maps service's errors to statuses, unexpected errors are logged and hidden.
func writeServiceError(ctx context.Context, w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		api.WriteError(w, http.StatusUnauthorized, service.ErrNotAuthenticated.Error())
	case errors.Is(err, service.ErrNotFound):
		api.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrValidation):
		api.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		api.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrForbidden):
		api.WriteError(w, http.StatusForbidden, err.Error())
	default:
		api.WriteInternalErrorf(ctx, w, "failed to %s: %s", action, err.Error())
	}
}
