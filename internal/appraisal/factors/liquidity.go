package factors

import (
	"fmt"
	"strings"

	"appraiser/pkg/domain"
)

// liquidityTier buckets TLDs by how fast names under them resell.
func liquidityTier(tld string) int {
	switch tld {
	case "com":
		return 0
	case "net", "org", "io", "ai", "co":
		return 1
	default:
		return 2
	}
}

// liquidityBase is the rule table over (TLD tier, name length).
var liquidityBase = [3][5]float64{ //nolint: gochecknoglobals
	{100, 90, 78, 62, 50}, // com
	{88, 78, 66, 52, 42},  // strong alternatives
	{70, 60, 48, 35, 25},  // everything else
}

func lengthBucket(length int) int {
	switch {
	case length <= 3:
		return 0
	case length <= 5:
		return 1
	case length <= 8:
		return 2
	case length <= 12:
		return 3
	default:
		return 4
	}
}

const (
	liquidityHyphenPenalty = 15
	liquidityDigitPenalty  = 10
	liquidityFloor         = 20
)

// ScoreLiquidity estimates how quickly the name would find a buyer: a rule
// table over TLD tier and length, penalized for hyphens and digits. Short
// clean .com names are the most liquid asset in the market.
func ScoreLiquidity(key domain.Key) (float64, string) {
	tier := liquidityTier(key.TLD)
	score := liquidityBase[tier][lengthBucket(len(key.Name))]
	note := fmt.Sprintf("%d-character .%s", len(key.Name), key.TLD)

	if strings.ContainsRune(key.Name, '-') {
		score -= liquidityHyphenPenalty
		note += ", hyphenated"
	}

	if countDigits(key.Name) > 0 {
		score -= liquidityDigitPenalty
		note += ", contains digits"
	}

	if score < liquidityFloor {
		score = liquidityFloor
	}

	return clampScore(score), note
}
