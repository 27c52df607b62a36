// Package similarweb provides a traffic.Client implementation backed by the
// SimilarWeb REST API.
package similarweb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"appraiser/pkg/logger"
	"appraiser/pkg/serrors"
)

const endpointFmt = "https://api.similarweb.com/v1/website/%s/total-traffic-and-engagement/visits"

// Client talks to the SimilarWeb REST API and fulfills the traffic.Client
// interface. It is safe for concurrent use.
type Client struct {
	http   *resty.Client
	apiKey string
	now    func() time.Time
}

// New creates a SimilarWeb client. A nil httpClient uses resty defaults.
func New(httpClient *http.Client, apiKey string) *Client {
	rc := resty.New()
	if httpClient != nil {
		rc = resty.NewWithClient(httpClient)
	}

	return &Client{http: rc, apiKey: apiKey, now: time.Now}
}

// MonthlyVisits fetches the visit count for the previous full calendar month.
// An unusable API key short-circuits with ErrConfig before any network
// traffic; the reason (absent vs invalid) is logged but never attached to
// the returned error.
func (c *Client) MonthlyVisits(ctx context.Context, domainName string) (int64, error) {
	if reason := credentialProblem(c.apiKey); reason != "" {
		logger.Warn(ctx, "traffic lookup skipped, api key unusable", zap.String("reason", reason))

		return 0, serrors.With(serrors.ErrConfig, "similarweb api key not configured")
	}

	// https://developers.similarweb.com/docs/traffic-and-engagement
	month := lastFullMonth(c.now().UTC()).Format("2006-01")
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key":          c.apiKey,
			"start_date":       month,
			"end_date":         month,
			"country":          "world",
			"granularity":      "monthly",
			"main_domain_only": "false",
		}).
		Get(fmt.Sprintf(endpointFmt, url.PathEscape(domainName)))
	if err != nil {
		return 0, wrapTransportErr(err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return 0, serrors.With(serrors.ErrUpstream, "similarweb responded with status %d", resp.StatusCode())
	}

	var body struct {
		Visits []struct {
			Date   string  `json:"date"`
			Visits float64 `json:"visits"`
		} `json:"visits"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return 0, serrors.Wrap(serrors.ErrUpstream, err, "could not decode similarweb response")
	}
	if len(body.Visits) == 0 {
		return 0, serrors.With(serrors.ErrUpstream, "similarweb returned no datapoints")
	}

	latest := body.Visits[len(body.Visits)-1]

	return int64(math.Round(latest.Visits)), nil
}

// lastFullMonth returns the first day of the month before ref. SimilarWeb
// only serves completed months.
func lastFullMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
}

// credentialProblem reports why the key cannot be used ("absent" or
// "invalid"), or an empty string when it looks usable.
func credentialProblem(key string) string {
	trimmed := strings.ToLower(strings.TrimSpace(key))
	switch trimmed {
	case "":
		return "absent"
	case "demo", "changeme", "your-api-key":
		return "invalid"
	}

	return ""
}

func wrapTransportErr(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "similarweb request deadline exceeded")
	case errors.As(err, &netErr) && netErr.Timeout():
		return serrors.Wrap(serrors.ErrTimeout, err, "similarweb request timed out")
	default:
		return serrors.Wrap(serrors.ErrUpstream, err, "similarweb request failed")
	}
}
