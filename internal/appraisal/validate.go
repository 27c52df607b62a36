package appraisal

import (
	"strings"

	"appraiser/pkg/serrors"
)

const (
	maxDomainLength = 253
	maxLabelLength  = 63
)

// NormalizeDomain returns a canonical, normalized representation of a raw
// domain string.
//
// The normalization rules are intentionally strict and opinionated to help
// with result de-duplication in the cache:
//   - Trim surrounding whitespace and one trailing dot
//   - Lower-case the whole name
//   - Reject anything that is not a bare registrable name: schemes, paths,
//     query strings, ports, userinfo and embedded whitespace
//   - Require at least two labels of letters, digits and inner hyphens,
//     with a final label of two or more letters
//
// If the input cannot pass as a domain, a validation error is returned.
func NormalizeDomain(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.TrimSuffix(name, ".")

	if name == "" {
		return "", serrors.With(serrors.ErrValidation, "empty domain")
	}
	if len(name) > maxDomainLength {
		return "", serrors.With(serrors.ErrValidation, "domain exceeds %d characters", maxDomainLength)
	}

	// a URL was pasted where a domain belongs; make the rejection specific
	// enough for the caller to fix
	if strings.Contains(name, "://") {
		return "", serrors.With(serrors.ErrValidation, "domain must not include a scheme")
	}
	if strings.ContainsAny(name, "/?#") {
		return "", serrors.With(serrors.ErrValidation, "domain must not include a path or query")
	}
	if strings.ContainsAny(name, "@:") {
		return "", serrors.With(serrors.ErrValidation, "domain must not include a port or userinfo")
	}
	if strings.ContainsAny(name, " \t") {
		return "", serrors.With(serrors.ErrValidation, "domain must not contain whitespace")
	}

	labels := strings.Split(name, ".")
	if len(labels) < 2 {
		return "", serrors.With(serrors.ErrValidation, "domain %q has no TLD", raw)
	}

	for _, label := range labels {
		if err := validateLabel(label); err != nil {
			return "", err
		}
	}

	if err := validateTLDLabel(labels[len(labels)-1]); err != nil {
		return "", err
	}

	return name, nil
}

func validateLabel(label string) error {
	if label == "" {
		return serrors.With(serrors.ErrValidation, "domain has an empty label")
	}
	if len(label) > maxLabelLength {
		return serrors.With(serrors.ErrValidation, "label %q exceeds %d characters", label, maxLabelLength)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return serrors.With(serrors.ErrValidation, "label %q starts or ends with a hyphen", label)
	}

	for _, r := range label {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return serrors.With(serrors.ErrValidation, "label %q contains unsupported character %q", label, r)
		}
	}

	return nil
}

func validateTLDLabel(label string) error {
	if len(label) < 2 {
		return serrors.With(serrors.ErrValidation, "TLD %q is too short", label)
	}

	for _, r := range label {
		if r < 'a' || r > 'z' {
			return serrors.With(serrors.ErrValidation, "TLD %q must be alphabetic", label)
		}
	}

	return nil
}
