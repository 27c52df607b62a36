// Package whoisxml provides a whois.Client implementation backed by the
// WhoisXML API.
package whoisxml

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"appraiser/pkg/domain"
	"appraiser/pkg/logger"
	"appraiser/pkg/serrors"
)

const endpoint = "https://www.whoisxmlapi.com/whoisserver/WhoisService"

// missingData is the dataError WhoisXML returns for names that have never
// been registered.
const missingData = "MISSING_WHOIS_DATA"

// placeholderKeys are sample values that ship in config templates. A key in
// this set is rejected without a network call.
var placeholderKeys = map[string]struct{}{ //nolint: gochecknoglobals
	"at_demo":      {},
	"changeme":     {},
	"your-api-key": {},
}

// Client talks to the WhoisXML REST API and fulfills the whois.Client
// interface. It is safe for concurrent use.
type Client struct {
	http   *resty.Client // http performs HTTP requests to WhoisXML
	apiKey string        // apiKey is the WhoisXML API key
}

// New creates a WhoisXML client. A nil httpClient uses resty defaults.
func New(httpClient *http.Client, apiKey string) *Client {
	rc := resty.New()
	if httpClient != nil {
		rc = resty.NewWithClient(httpClient)
	}

	return &Client{http: rc, apiKey: apiKey}
}

// Lookup fetches registration data for domainName from the WhoisXML
// WhoisService endpoint. An unusable API key short-circuits with ErrConfig
// before any network traffic; the reason (absent vs invalid) is logged but
// never attached to the returned error.
func (c *Client) Lookup(ctx context.Context, domainName string) (*domain.WhoisSnapshot, error) {
	if reason := credentialProblem(c.apiKey); reason != "" {
		logger.Warn(ctx, "whois lookup skipped, api key unusable", zap.String("reason", reason))

		return nil, serrors.With(serrors.ErrConfig, "whoisxml api key not configured")
	}

	// https://whois.whoisxmlapi.com/documentation/making-requests
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apiKey":       c.apiKey,
			"domainName":   domainName,
			"outputFormat": "JSON",
		}).
		Get(endpoint)
	if err != nil {
		return nil, wrapTransportErr(err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, serrors.With(serrors.ErrUpstream, "whoisxml responded with status %d", resp.StatusCode())
	}

	var body whoisResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not decode whoisxml response")
	}

	return body.WhoisRecord.toSnapshot(time.Now().UTC()), nil
}

// whoisResponse mirrors the subset of the WhoisXML payload the appraiser
// consumes. Registrar-level fields take precedence over registryData, which
// is only consulted when the former are empty.
type whoisResponse struct {
	WhoisRecord whoisRecord `json:"WhoisRecord"`
}

type whoisRecord struct {
	CreatedDate        string `json:"createdDate"`
	UpdatedDate        string `json:"updatedDate"`
	ExpiresDate        string `json:"expiresDate"`
	RegistrarName      string `json:"registrarName"`
	Status             string `json:"status"`
	EstimatedDomainAge int    `json:"estimatedDomainAge"`
	DataError          string `json:"dataError"`
	NameServers        struct {
		HostNames []string `json:"hostNames"`
	} `json:"nameServers"`
	RegistryData struct {
		CreatedDate string `json:"createdDate"`
		UpdatedDate string `json:"updatedDate"`
		ExpiresDate string `json:"expiresDate"`
	} `json:"registryData"`
}

func (r whoisRecord) toSnapshot(fetchedAt time.Time) *domain.WhoisSnapshot {
	if r.DataError == missingData {
		return &domain.WhoisSnapshot{Registered: false, FetchedAt: fetchedAt}
	}

	snap := &domain.WhoisSnapshot{
		Registrar:   r.RegistrarName,
		CreatedDate: parseDate(r.CreatedDate, r.RegistryData.CreatedDate),
		UpdatedDate: parseDate(r.UpdatedDate, r.RegistryData.UpdatedDate),
		ExpiryDate:  parseDate(r.ExpiresDate, r.RegistryData.ExpiresDate),
		NameServers: r.NameServers.HostNames,
		Registered:  true,
		FetchedAt:   fetchedAt,
	}
	if r.Status != "" {
		snap.Statuses = strings.Fields(r.Status)
	}
	switch {
	case r.EstimatedDomainAge > 0:
		snap.AgeYears = float64(r.EstimatedDomainAge) / 365.25
	case !snap.CreatedDate.IsZero():
		snap.AgeYears = fetchedAt.Sub(snap.CreatedDate).Hours() / (24 * 365.25)
	}

	return snap
}

// dateLayouts covers the formats WhoisXML emits across registrars.
var dateLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05 MST",
}

// parseDate returns the first value that parses under any known layout,
// normalized to UTC, or the zero time when none do.
func parseDate(values ...string) time.Time {
	for _, v := range values {
		if v == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC()
			}
		}
	}

	return time.Time{}
}

// credentialProblem reports why the key cannot be used ("absent" or
// "invalid"), or an empty string when it looks usable.
func credentialProblem(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "absent"
	}
	if _, ok := placeholderKeys[strings.ToLower(trimmed)]; ok {
		return "invalid"
	}

	return ""
}

func wrapTransportErr(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "whoisxml request deadline exceeded")
	case errors.As(err, &netErr) && netErr.Timeout():
		return serrors.Wrap(serrors.ErrTimeout, err, "whoisxml request timed out")
	default:
		return serrors.Wrap(serrors.ErrUpstream, err, "whoisxml request failed")
	}
}
