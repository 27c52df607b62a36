// Package whois defines the abstraction used to resolve domain registration
// data. Registration status feeds the availability multiplier and domain age
// feeds the age factor; both degrade to local estimates when no provider is
// configured.
package whois

import (
	"context"

	"appraiser/pkg/domain"
)

// Client is the abstraction for WHOIS providers. Implementations resolve
// registration data for a single domain name.
type Client interface {
	// Lookup fetches registration data for the given domain. A domain that
	// was never registered yields a snapshot with Registered=false, not an
	// error; errors are reserved for the lookup itself failing.
	Lookup(ctx context.Context, domainName string) (*domain.WhoisSnapshot, error)
}
