// Package v1handler contains the chi-routed JSON handlers for the v1 API
// surface: appraisal creation and retrieval plus the standalone comparable
// lookup.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"appraiser/internal/appraisal"
	"appraiser/pkg/logger"
	"appraiser/pkg/serrors"
)

// Deps are the collaborators the handlers delegate to.
type Deps struct {
	// Appraiser runs evaluations and serves stored results.
	Appraiser appraisal.Appraiser
}

// Handler serves the v1 endpoints.
type Handler struct {
	deps Deps
}

// New creates the v1 handler set.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes mounts the v1 endpoints on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/appraisals", h.CreateAppraisal)
	r.Get("/appraisals/{appraisalID}", h.GetAppraisal)
	r.Get("/comparables", h.ListComparables)

	return r
}

// errorResponse is the JSON error envelope of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response body", zap.Error(err))
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Validation and
// not-found details are safe to show the caller; everything else is logged
// and collapsed into a generic 500 so internals never leak.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch kind := serrors.KindOf(err); {
	case errors.Is(kind, serrors.ErrValidation):
		status, message = http.StatusBadRequest, errMessage(err)
	case errors.Is(kind, serrors.ErrNotFound):
		status, message = http.StatusNotFound, errMessage(err)
	case errors.Is(kind, serrors.ErrRateLimited):
		status, message = http.StatusTooManyRequests, "too many requests"
	default:
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	writeJSON(ctx, w, status, errorResponse{Error: message})
}

// errMessage extracts the caller-facing part of a semantic error.
func errMessage(err error) string {
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		return se.Message()
	}

	return err.Error()
}
