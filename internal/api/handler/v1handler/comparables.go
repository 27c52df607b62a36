package v1handler

import (
	"net/http"
	"strconv"

	"appraiser/pkg/domain"
	"appraiser/pkg/serrors"
)

// Bounds on the comparable lookup limit.
const (
	defaultComparableLimit = 5
	maxComparableLimit     = 50
)

// ComparablesResponse is the GET /v1/comparables payload.
type ComparablesResponse struct {
	// Domain echoes the lookup target.
	Domain string `json:"domain"`
	// Comparables lists historical sales ranked by similarity, best first.
	Comparables []domain.ComparableSale `json:"comparables"`
}

// ListComparables ranks historical sales against a domain without running a
// full evaluation. The reporting and UI collaborators call this directly.
func (h *Handler) ListComparables(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	domainName := r.URL.Query().Get("domain")
	if domainName == "" {
		writeError(ctx, w, serrors.With(serrors.ErrValidation, "domain query parameter is required"))

		return
	}

	limit := defaultComparableLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(ctx, w, serrors.With(serrors.ErrValidation, "limit must be a positive integer"))

			return
		}
		limit = min(parsed, maxComparableLimit)
	}

	comparables, err := h.deps.Appraiser.Comparables(ctx, domainName, limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if comparables == nil {
		comparables = []domain.ComparableSale{}
	}

	writeJSON(ctx, w, http.StatusOK, ComparablesResponse{
		Domain:      domainName,
		Comparables: comparables,
	})
}
