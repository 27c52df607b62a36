package factors

import (
	"strings"

	"appraiser/pkg/domain"
)

// ScoreBrandability is the local estimator used when the commentary adapter
// is unavailable. It approximates how memorable and pronounceable the name
// is from vowel balance, consonant clusters, length and composition.
func ScoreBrandability(key domain.Key) (float64, string) {
	name := key.Name
	score := 50.0

	var hints []string

	switch ratio := vowelRatio(name); {
	case ratio >= 0.3 && ratio <= 0.6:
		score += 20
		hints = append(hints, "balanced vowels")
	case ratio > 0:
		score += 5
	default:
		score -= 10
		hints = append(hints, "no vowels")
	}

	switch run := maxConsonantRun(name); {
	case run >= 4:
		score -= 15
		hints = append(hints, "hard consonant cluster")
	case run == 3:
		score -= 5
	}

	switch length := len(name); {
	case length <= 4:
		score += 15
		hints = append(hints, "very short")
	case length <= 6:
		score += 10
		hints = append(hints, "short")
	case length <= 8:
		score += 5
	case length > 12:
		score -= 10
		hints = append(hints, "long")
	}

	if IsAlphabetic(name) {
		score += 10
	} else {
		if countDigits(name) > 0 {
			score -= 10
			hints = append(hints, "contains digits")
		}
		if strings.ContainsAny(name, "-_") {
			score -= 10
			hints = append(hints, "separators")
		}
	}

	switch key.TLD {
	case "com", "io", "ai", "co":
		score += 5
	}

	note := "heuristic estimate"
	if len(hints) > 0 {
		note += ": " + strings.Join(hints, ", ")
	}

	return clampScore(score), note
}
