// Package trademark defines the abstraction for live trademark-register
// searches. A live search can escalate the legal verdict of a name that the
// static brand table considers clear; when no provider is configured the
// static verdict stands on its own.
package trademark

import (
	"context"
	"time"
)

// Match is one active trademark registration returned by a search.
type Match struct {
	// Wordmark is the registered mark text.
	Wordmark string
	// Owner is the registrant on record.
	Owner string
	// SerialNumber is the register's identifier for the filing.
	SerialNumber string
	// Description is the goods/services description, when provided.
	Description string
	// RegisteredAt is the registration date; zero when unparseable.
	RegisteredAt time.Time
}

// Client is the abstraction for trademark-register providers.
type Client interface {
	// Search returns active registrations whose wordmark matches term.
	// No matches is an empty slice, not an error.
	Search(ctx context.Context, term string) ([]Match, error)
}
