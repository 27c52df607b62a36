package controller

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"appraiser/pkg/logger"
)

// CtxKey types the values this package stores in request contexts so they
// cannot collide with other packages' keys.
type CtxKey string

// RequestIDKey is the context key holding the current request ID.
const RequestIDKey CtxKey = "RequestID"

// requestIDHeader carries the request ID in and out of the service.
const requestIDHeader = "X-Request-Id"

// quietPaths are polled by infrastructure and would drown the access log.
var quietPaths = map[string]struct{}{ //nolint: gochecknoglobals
	"/healthz": {},
	"/metrics": {},
}

// statusRecorder captures the status code the downstream handler writes.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// GetClientIP resolves the originating client address: the first entry of
// X-Forwarded-For when a proxy chain reported one, then X-Real-IP, then the
// connection's remote address. The rate limiter keys IP-identified clients
// on this value.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// "client, proxy1, proxy2": the first entry is the original client
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// WithLogger returns a middleware that assigns each request an ID (honoring
// one the client sent), binds a request-scoped logger into the context,
// echoes the ID on the response and emits a structured access-log line once
// the handler returns. Health and metrics polls are not logged.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = context.WithValue(ctx, RequestIDKey, requestID)
		ctx = logger.WithFields(ctx, zap.String(string(RequestIDKey), requestID))

		w.Header().Set(requestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(ctx))

		if _, quiet := quietPaths[r.URL.Path]; quiet {
			return
		}

		logger.Info(ctx, "Access log",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Int("status_code", rec.status),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
		)
	})
}
