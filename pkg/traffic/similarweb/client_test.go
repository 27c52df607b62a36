package similarweb_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"appraiser/pkg/serrors"
	"appraiser/pkg/traffic/similarweb"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc, key string) *similarweb.Client {
	return similarweb.New(&http.Client{Transport: fn}, key)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestMonthlyVisitsSuccess(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "api.similarweb.com", r.URL.Host)
		require.Equal(t, "/v1/website/cryptopay.com/total-traffic-and-engagement/visits", r.URL.Path)

		q := r.URL.Query()
		require.Equal(t, "test-key", q.Get("api_key"))
		require.Equal(t, "monthly", q.Get("granularity"))
		require.Equal(t, "world", q.Get("country"))
		require.Regexp(t, `^\d{4}-\d{2}$`, q.Get("start_date"))
		require.Equal(t, q.Get("start_date"), q.Get("end_date"))

		return jsonResponse(http.StatusOK, `{
			"meta": {"status": "Success"},
			"visits": [{"date": "2026-07-01", "visits": 48231.6}]
		}`), nil
	}, "test-key")

	visits, err := c.MonthlyVisits(context.Background(), "cryptopay.com")
	require.NoError(t, err)
	require.EqualValues(t, 48232, visits)
}

func TestMonthlyVisitsTakesLatestDatapoint(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"visits": [
				{"date": "2026-06-01", "visits": 100.0},
				{"date": "2026-07-01", "visits": 250.0}
			]
		}`), nil
	}, "test-key")

	visits, err := c.MonthlyVisits(context.Background(), "example.com")
	require.NoError(t, err)
	require.EqualValues(t, 250, visits)
}

func TestMonthlyVisitsConfigErrorWithoutNetworkCall(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"absent key", ""},
		{"placeholder key", "demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			c := newTestClient(func(*http.Request) (*http.Response, error) {
				called = true

				return jsonResponse(http.StatusOK, `{}`), nil
			}, tt.key)

			_, err := c.MonthlyVisits(context.Background(), "example.com")
			require.ErrorIs(t, err, serrors.ErrConfig)
			require.False(t, called)
		})
	}
}

func TestMonthlyVisitsTimeout(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	}, "test-key")

	_, err := c.MonthlyVisits(context.Background(), "example.com")
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestMonthlyVisitsUpstreamErrors(t *testing.T) {
	tests := []struct {
		name string
		resp *http.Response
	}{
		{"not tracked", jsonResponse(http.StatusNotFound, `{"meta":{"status":"Error"}}`)},
		{"server error", jsonResponse(http.StatusBadGateway, `boom`)},
		{"empty datapoints", jsonResponse(http.StatusOK, `{"visits": []}`)},
		{"malformed body", jsonResponse(http.StatusOK, `{"visits": [`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(func(*http.Request) (*http.Response, error) {
				return tt.resp, nil
			}, "test-key")

			_, err := c.MonthlyVisits(context.Background(), "example.com")
			require.ErrorIs(t, err, serrors.ErrUpstream)
		})
	}
}
