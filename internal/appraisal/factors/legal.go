package factors

import (
	"slices"
	"strings"

	"appraiser/pkg/domain"
)

// Multipliers for the two warning match classes. An affix match couples the
// name to the brand more tightly than a standalone word-boundary match.
const (
	affixWarningMultiplier    = 0.5
	boundaryWarningMultiplier = 0.7

	// boundaryMinBrandLength keeps short brand names from flagging innocent
	// words that merely contain them.
	boundaryMinBrandLength = 5
)

// AssessLegal is the static trademark matcher used when the trademark
// adapter fails or reports nothing. Three match classes, strictest first:
// the whole name equals a brand (severe, hard gate), the name starts or ends
// with a brand (warning), or a word segment equals a brand (warning).
func AssessLegal(name string) domain.LegalRisk {
	name = strings.ToLower(name)
	tokens := Tokens(name)

	for _, brand := range protectedBrands {
		if name == brand {
			return domain.LegalRisk{
				Flag:       domain.LegalSevere,
				Multiplier: 0,
				Score:      0,
				Term:       brand,
				Detail:     "exact brand match",
			}
		}
	}

	for _, brand := range protectedBrands {
		if len(name) > len(brand) && (strings.HasPrefix(name, brand) || strings.HasSuffix(name, brand)) {
			return domain.LegalRisk{
				Flag:       domain.LegalWarning,
				Multiplier: affixWarningMultiplier,
				Score:      affixWarningMultiplier * 100,
				Term:       brand,
				Detail:     "brand with affix",
			}
		}
	}

	for _, brand := range protectedBrands {
		if len(brand) >= boundaryMinBrandLength && slices.Contains(tokens, brand) {
			return domain.LegalRisk{
				Flag:       domain.LegalWarning,
				Multiplier: boundaryWarningMultiplier,
				Score:      boundaryWarningMultiplier * 100,
				Term:       brand,
				Detail:     "brand on word boundary",
			}
		}
	}

	return domain.ClearLegalRisk()
}
