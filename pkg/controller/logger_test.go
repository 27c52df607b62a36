package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"appraiser/pkg/controller"
	"appraiser/pkg/logger"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(r *http.Request)
		want    string
	}{
		{
			name: "first forwarded-for entry wins",
			prepare: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
			},
			want: "1.2.3.4",
		},
		{
			name: "real-ip when no forwarded chain",
			prepare: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "9.8.7.6")
			},
			want: "9.8.7.6",
		},
		{
			name: "remote addr without port",
			prepare: func(r *http.Request) {
				r.RemoteAddr = "10.0.0.1:12345"
			},
			want: "10.0.0.1",
		},
		{
			name: "unparseable remote addr passes through",
			prepare: func(r *http.Request) {
				r.RemoteAddr = "not-an-addr"
			},
			want: "not-an-addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)

			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_HonorsClientRequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(controller.RequestIDKey).(string)
		w.WriteHeader(http.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/appraisals", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()

	controller.WithLogger(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "req-42", seen)
	require.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}

func TestWithLogger_GeneratesRequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/comparables", nil))

	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
