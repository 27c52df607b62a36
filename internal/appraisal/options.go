package appraisal

import (
	"time"

	"appraiser/internal/config"
	"appraiser/pkg/domain"
)

// Options configure the evaluation pipeline: adapter deadlines, the result
// freshness window and how deferred WHOIS jobs are enqueued. These settings
// are typically derived from application configuration.
type Options struct {
	// Weights is the factor weight table applied to every evaluation.
	Weights domain.FactorWeights
	// ResultCacheTTL is the duration during which a completed appraisal makes
	// new requests for the same domain and options reuse that result instead
	// of re-running the evaluation.
	ResultCacheTTL time.Duration
	// ComparablesLimit is how many ranked comparables an evaluation attaches.
	ComparablesLimit int
	// WhoisJobMaxAttempts is the maximum number of attempts the background
	// worker should make for a deferred WHOIS augmentation job.
	WhoisJobMaxAttempts int

	// WhoisTimeout bounds the synchronous WHOIS lookup inside an evaluation.
	WhoisTimeout time.Duration
	// TrafficTimeout bounds the traffic estimate lookup.
	TrafficTimeout time.Duration
	// TrademarkTimeout bounds the trademark registry search.
	TrademarkTimeout time.Duration
	// CommentaryTimeout bounds the commentary generation call.
	CommentaryTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Weights:             domain.DefaultWeights(),
		ResultCacheTTL:      cfg.Appraiser.ResultCacheTTL,
		ComparablesLimit:    cfg.Appraiser.ComparablesLimit,
		WhoisJobMaxAttempts: cfg.Appraiser.WhoisJobMaxAttempts,
		WhoisTimeout:        cfg.Adapters.Whois.Timeout,
		TrafficTimeout:      cfg.Adapters.Traffic.Timeout,
		TrademarkTimeout:    cfg.Adapters.Trademark.Timeout,
		CommentaryTimeout:   cfg.Adapters.Commentary.Timeout,
	}
}
