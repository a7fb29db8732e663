package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoronov/notepad-server/internal/apierrors"
	"github.com/avoronov/notepad-server/internal/logger"
	"github.com/avoronov/notepad-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError funnels service errors into HTTP responses. Only the client-safe
// message of an APIError ever reaches the wire; everything else collapses
// into a generic 500.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
		writeJSON(w, apiErr.Status, errorResponse{Error: apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}

	log.Error("handler: unexpected error", "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
