package controller

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"appraiser/pkg/logger"
	"appraiser/pkg/ratelimit"
)

// ClientIdentifier derives the rate-limit key for a request: the API key
// when one is presented, otherwise the client IP. Key-based identities are
// prefixed so a crafted header can never collide with an IP bucket.
func ClientIdentifier(r *http.Request) string {
	if key := r.Header.Get("X-Api-Key"); key != "" {
		return "key:" + key
	}

	return "ip:" + GetClientIP(r)
}

// WithRateLimit returns a middleware enforcing the per-client fixed-window
// ceiling. Every response carries the X-RateLimit-* headers; an exhausted
// client receives 429 with Retry-After. When the limiter's store is
// unreachable the request is admitted anyway: valuation availability beats
// strict accounting.
func WithRateLimit(limiter *ratelimit.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		decision, err := limiter.Allow(ctx, ClientIdentifier(r))
		if err != nil {
			logger.Warn(ctx, "rate limiter unavailable, admitting request", zap.Error(err))
			next.ServeHTTP(w, r)

			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(decision.Limit, 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			retryAfter := int64(math.Ceil(decision.RetryAfter(time.Now()).Seconds()))
			w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"too many requests"}`))

			return
		}

		next.ServeHTTP(w, r)
	})
}
