package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// EvaluateOptions tune a single evaluation. The zero value is not ready to
// use; call Normalized to apply defaults.
type EvaluateOptions struct {
	// Country is an optional ISO 3166-1 alpha-2 target market ("us", "de").
	// A country-code TLD matching it earns a bonus.
	Country string `json:"country,omitempty"`
	// MonthlyTraffic is a caller-supplied visits-per-month figure. When set,
	// the traffic adapter is not consulted.
	MonthlyTraffic *int64 `json:"monthlyTraffic,omitempty"`
	// DomainAgeYears is a caller-supplied registration age. When set, the
	// WHOIS adapter is not consulted for scoring.
	DomainAgeYears *float64 `json:"domainAgeYears,omitempty"`
	// UseComps enables the comparable-sales blend. Defaults to true.
	UseComps *bool `json:"useComps,omitempty"`
	// SkipWhois defers the WHOIS lookup to a background job so the response
	// does not wait on the registry ("fast path").
	SkipWhois bool `json:"skipWhois,omitempty"`
}

// Normalized returns a copy with defaults applied and free-form fields
// canonicalized, so that equivalent option sets share one fingerprint.
func (o EvaluateOptions) Normalized() EvaluateOptions {
	out := o
	out.Country = strings.ToLower(strings.TrimSpace(o.Country))
	if out.UseComps == nil {
		t := true
		out.UseComps = &t
	}

	return out
}

// CompsEnabled reports the effective UseComps setting.
func (o EvaluateOptions) CompsEnabled() bool {
	return o.UseComps == nil || *o.UseComps
}

// Fingerprint hashes the normalized options into a stable hex digest used as
// part of the result-cache key and recorded on the Appraisal. Two option sets
// that evaluate identically always share a fingerprint.
func (o EvaluateOptions) Fingerprint() string {
	n := o.Normalized()

	var b strings.Builder
	b.WriteString("country=" + n.Country)
	b.WriteString("|traffic=")
	if n.MonthlyTraffic != nil {
		fmt.Fprintf(&b, "%d", *n.MonthlyTraffic)
	}
	b.WriteString("|age=")
	if n.DomainAgeYears != nil {
		fmt.Fprintf(&b, "%.2f", *n.DomainAgeYears)
	}
	fmt.Fprintf(&b, "|comps=%t", n.CompsEnabled())
	fmt.Fprintf(&b, "|skipwhois=%t", n.SkipWhois)

	sum := sha256.Sum256([]byte(b.String()))

	return hex.EncodeToString(sum[:])
}
