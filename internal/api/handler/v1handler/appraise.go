package v1handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"appraiser/pkg/domain"
	"appraiser/pkg/serrors"
)

// CreateAppraisalRequest is the POST /v1/appraisals payload.
type CreateAppraisalRequest struct {
	// Domain is the raw domain to appraise, e.g. "example.com".
	Domain string `json:"domain"`
	// Options tune the evaluation; all fields are optional.
	Options domain.EvaluateOptions `json:"options"`
}

// CreateAppraisal evaluates a domain and returns the completed appraisal.
// Identical requests within the freshness window reuse the cached result.
func (h *Handler) CreateAppraisal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAppraisalRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	res, err := h.deps.Appraiser.Evaluate(ctx, req.Domain, req.Options)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, res)
}

// GetAppraisal returns a stored appraisal by ID, including any WHOIS data
// the background augmentation has patched in since creation.
func (h *Handler) GetAppraisal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "appraisalID"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrValidation, err, "invalid appraisal ID"))

		return
	}

	res, err := h.deps.Appraiser.Result(ctx, domain.AppraisalID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, res)
}

// decodeJSON parses a request body, rejecting unknown fields and trailing
// garbage so malformed payloads fail loudly instead of half-applying.
func decodeJSON(body io.Reader, dest any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dest); err != nil {
		return serrors.Wrap(serrors.ErrValidation, err, "invalid request body")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return serrors.With(serrors.ErrValidation, "unexpected data after request body")
	}

	return nil
}
