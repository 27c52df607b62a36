package factors

import (
	"fmt"

	"appraiser/pkg/domain"
)

// premiumTable is the bonus multiplier by name length for .com (first column)
// and the other eligible TLDs (second column).
var premiumTable = [4][2]float64{ //nolint: gochecknoglobals
	{1.50, 1.35}, // 1 character
	{1.40, 1.25}, // 2 characters
	{1.30, 1.15}, // 3 characters
	{1.15, 1.05}, // 4 characters
}

// PremiumMultiplier returns the scarcity bonus for short, purely alphabetic
// names under liquid TLDs. It is the one multiplier allowed to push the
// final score above the weighted sum. Everything else gets 1.
func PremiumMultiplier(key domain.Key) (float64, string) {
	length := len(key.Name)
	if length < 1 || length > 4 || !IsAlphabetic(key.Name) {
		return 1, ""
	}

	if _, ok := premiumEligibleTLDs[key.TLD]; !ok {
		return 1, ""
	}

	col := 1
	if key.TLD == "com" {
		col = 0
	}

	multiplier := premiumTable[length-1][col]

	return multiplier, fmt.Sprintf("rare %d-letter .%s (x%.2f)", length, key.TLD, multiplier)
}

// availableMultiplier discounts names that are not registered at all: a
// hand-registrable name is worth its registration fee to most buyers.
const availableMultiplier = 0.55

// AvailabilityMultiplier gates the score by registration status. Unknown
// status (nil) is treated as registered so a WHOIS outage never discounts a
// real asset.
func AvailabilityMultiplier(registered *bool) (float64, string) {
	if registered == nil || *registered {
		return 1, ""
	}

	return availableMultiplier, "unregistered, hand-registrable"
}
