// Package commentary defines the abstraction for generating free-text
// appraisal commentary. Commentary is decorative: when no provider is
// configured or the provider fails, the engine assembles a plain summary
// from the factor notes instead.
package commentary

import "context"

// Request carries the evaluation facts a generator may draw on.
type Request struct {
	// Domain is the appraised domain name.
	Domain string
	// FinalScore is the gated final score.
	FinalScore float64
	// Bracket is the score bracket label ("premium", "strong", ...).
	Bracket string
	// Highlights are short factor rationales worth mentioning.
	Highlights []string
}

// Client is the abstraction for commentary generators.
type Client interface {
	// Commentary produces a short prose assessment of the appraisal.
	Commentary(ctx context.Context, req Request) (string, error)
}
