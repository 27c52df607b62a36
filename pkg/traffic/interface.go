// Package traffic defines the abstraction for website traffic estimates.
// Measured traffic feeds the traffic factor; when no provider is configured
// the factor falls back to a local estimate.
package traffic

import "context"

// Client is the abstraction for traffic data providers.
type Client interface {
	// MonthlyVisits returns the estimated visit count for the most recent
	// full calendar month.
	MonthlyVisits(ctx context.Context, domainName string) (int64, error)
}
