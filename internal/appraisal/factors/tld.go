package factors

import (
	"fmt"
	"strings"

	"appraiser/pkg/domain"
	"appraiser/pkg/serrors"
)

// ParseKey normalizes a raw domain string into its (name, TLD) pair. The TLD
// is the longest suffix of up to three labels found in the multi-level table,
// otherwise the final label. Inputs with fewer than two labels are rejected.
func ParseKey(raw string) (domain.Key, error) {
	normalized := strings.ToLower(strings.Trim(strings.TrimSpace(raw), "."))
	if normalized == "" {
		return domain.Key{}, serrors.With(serrors.ErrValidation, "empty domain")
	}

	labels := strings.Split(normalized, ".")
	if len(labels) < 2 {
		return domain.Key{}, serrors.With(serrors.ErrValidation, "domain %q has no TLD", raw)
	}

	for _, label := range labels {
		if label == "" {
			return domain.Key{}, serrors.With(serrors.ErrValidation, "domain %q has an empty label", raw)
		}
	}

	// prefer the longest known multi-level TLD, leaving at least one label
	// for the name
	for take := 3; take >= 2; take-- {
		if len(labels) <= take {
			continue
		}

		suffix := strings.Join(labels[len(labels)-take:], ".")
		if _, ok := multiLevelTLDs[suffix]; ok {
			return domain.Key{
				Name: strings.Join(labels[:len(labels)-take], "."),
				TLD:  suffix,
			}, nil
		}
	}

	return domain.Key{
		Name: strings.Join(labels[:len(labels)-1], "."),
		TLD:  labels[len(labels)-1],
	}, nil
}

// tldCountry resolves the country code a TLD belongs to, using the final
// label for multi-level TLDs. Empty for non-country TLDs.
func tldCountry(tld string) string {
	last := tld
	if idx := strings.LastIndex(tld, "."); idx >= 0 {
		last = tld[idx+1:]
	}

	return ccTLDCountry[last]
}

// TLDQuality scores a TLD in [0,100]. com is the fixed premium at 100;
// multi-level TLDs score from their bonus table; recognized country codes
// get a flat default; unknown TLDs a conservative floor. A TLD matching the
// caller's target country earns an extra bonus.
func TLDQuality(tld string, country string) (float64, string) {
	tld = strings.ToLower(tld)

	var (
		score float64
		note  string
	)

	switch {
	case tld == "com":
		score, note = genericTLDQuality["com"], "premium .com"
	case multiLevelTLDs[tld] != 0:
		score, note = multiLevelTLDs[tld], fmt.Sprintf("established multi-level TLD .%s", tld)
	case genericTLDQuality[tld] != 0:
		score, note = genericTLDQuality[tld], fmt.Sprintf("recognized TLD .%s", tld)
	case tldCountry(tld) != "":
		score, note = ccTLDQuality, fmt.Sprintf("country-code TLD .%s", tld)
	default:
		score, note = unknownTLDQuality, fmt.Sprintf("uncommon TLD .%s", tld)
	}

	country = strings.ToLower(strings.TrimSpace(country))
	if country != "" && tldCountry(tld) == country {
		score += countryBonus
		note += ", matches target market"
	}

	return clampScore(score), note
}

// ScoreTLD is the TLD factor scorer: the classifier's quality score for the
// key's TLD under the caller's target country.
func ScoreTLD(key domain.Key, country string) (float64, string) {
	return TLDQuality(key.TLD, country)
}
