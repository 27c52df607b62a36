// Package markerapi provides a trademark.Client implementation backed by the
// MarkerAPI trademark search service.
package markerapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"appraiser/pkg/logger"
	"appraiser/pkg/serrors"
	"appraiser/pkg/trademark"
)

// The MarkerAPI v2 search path carries the credentials as path segments, so
// request URLs must never be logged.
const endpointFmt = "https://markerapi.com/api/v2/trademarks/trademark/%s/status/active/start/1/username/%s/password/%s"

// registrationDateLayout is the US-style date MarkerAPI emits.
const registrationDateLayout = "01/02/2006"

// Client talks to the MarkerAPI REST API and fulfills the trademark.Client
// interface. It is safe for concurrent use.
type Client struct {
	http     *resty.Client
	username string
	password string
}

// New creates a MarkerAPI client. A nil httpClient uses resty defaults.
func New(httpClient *http.Client, username, password string) *Client {
	rc := resty.New()
	if httpClient != nil {
		rc = resty.NewWithClient(httpClient)
	}

	return &Client{http: rc, username: username, password: password}
}

// Search returns active trademark registrations matching term. Unusable
// credentials short-circuit with ErrConfig before any network traffic; the
// reason (absent vs invalid) is logged but never attached to the returned
// error.
func (c *Client) Search(ctx context.Context, term string) ([]trademark.Match, error) {
	if reason := credentialProblem(c.username, c.password); reason != "" {
		logger.Warn(ctx, "trademark search skipped, credentials unusable", zap.String("reason", reason))

		return nil, serrors.With(serrors.ErrConfig, "markerapi credentials not configured")
	}

	// https://markerapi.com/documentation
	endpoint := fmt.Sprintf(endpointFmt,
		url.PathEscape(term), url.PathEscape(c.username), url.PathEscape(c.password))
	resp, err := c.http.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		return nil, wrapTransportErr(err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, serrors.With(serrors.ErrUpstream, "markerapi responded with status %d", resp.StatusCode())
	}

	var body struct {
		Count      int `json:"count"`
		Trademarks []struct {
			SerialNumber     string `json:"serialnumber"`
			Wordmark         string `json:"wordmark"`
			Description      string `json:"description"`
			RegistrationDate string `json:"registrationdate"`
			Owner            string `json:"owner"`
		} `json:"trademarks"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not decode markerapi response")
	}

	matches := make([]trademark.Match, 0, len(body.Trademarks))
	for _, tm := range body.Trademarks {
		match := trademark.Match{
			Wordmark:     tm.Wordmark,
			Owner:        tm.Owner,
			SerialNumber: tm.SerialNumber,
			Description:  tm.Description,
		}
		if t, err := time.Parse(registrationDateLayout, tm.RegistrationDate); err == nil {
			match.RegisteredAt = t
		}
		matches = append(matches, match)
	}

	return matches, nil
}

// credentialProblem reports why the credential pair cannot be used ("absent"
// or "invalid"), or an empty string when it looks usable.
func credentialProblem(username, password string) string {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return "absent"
	}
	switch strings.ToLower(strings.TrimSpace(password)) {
	case "changeme", "demo", "your-password":
		return "invalid"
	}

	return ""
}

func wrapTransportErr(err error) error {
	// url.Error stringifies the request URL, which carries the credentials
	// here. Keep only the underlying cause.
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		err = uerr.Err
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "markerapi request deadline exceeded")
	case errors.As(err, &netErr) && netErr.Timeout():
		return serrors.Wrap(serrors.ErrTimeout, err, "markerapi request timed out")
	default:
		return serrors.Wrap(serrors.ErrUpstream, err, "markerapi request failed")
	}
}
