package factors

import (
	"fmt"
	"strings"
)

// lengthTier maps a name length to its base score. The curve is steep at the
// short end: one extra character below five costs real money.
func lengthTier(length int) float64 {
	switch {
	case length <= 2:
		return 100
	case length == 3:
		return 98
	case length == 4:
		return 95
	case length == 5:
		return 88
	case length == 6:
		return 82
	case length == 7:
		return 75
	case length == 8:
		return 68
	case length == 9:
		return 60
	case length == 10:
		return 55
	case length <= 12:
		return 45
	case length <= 15:
		return 35
	case length <= 20:
		return 25
	default:
		return 15
	}
}

// Penalties applied per occurrence on top of the length tier.
const (
	hyphenPenalty     = 12
	digitPenalty      = 8
	underscorePenalty = 15
	segmentsPenalty   = 10
)

// ScoreLength scores the name by its length tier minus composition
// penalties: hyphens, digits, underscores and keyword stuffing (more than
// three word segments). Clamped to [0,100].
func ScoreLength(name string) (float64, string) {
	length := len(name)
	score := lengthTier(length)
	note := fmt.Sprintf("%d characters", length)

	if n := countRune(name, '-'); n > 0 {
		score -= float64(n * hyphenPenalty)
		note += fmt.Sprintf(", %d hyphen(s)", n)
	}

	if n := countDigits(name); n > 0 {
		score -= float64(n * digitPenalty)
		note += fmt.Sprintf(", %d digit(s)", n)
	}

	if n := countRune(name, '_'); n > 0 {
		score -= float64(n * underscorePenalty)
		note += fmt.Sprintf(", %d underscore(s)", n)
	}

	if n := len(Segments(name)); n > 3 {
		score -= segmentsPenalty
		note += fmt.Sprintf(", %d word segments", n)
	}

	if strings.Contains(note, ",") {
		note += " (penalized)"
	}

	return clampScore(score), note
}
