package domain

// Bracket is one row of the score-to-price table: a label and a retail
// dollar range.
type Bracket struct {
	Label string `json:"label"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max"`
}

// Midpoint is the center of the bracket's dollar range.
func (b Bracket) Midpoint() int64 { return (b.Min + b.Max) / 2 }

// BracketFor maps a final score to its price bracket. The thresholds are
// fixed; comparable-sale evidence shifts the estimate inside (or beyond) the
// bracket, never the bracket itself.
func BracketFor(score float64) Bracket {
	switch {
	case score >= 80:
		return Bracket{Label: "premium", Min: 50_000, Max: 500_000}
	case score >= 60:
		return Bracket{Label: "strong", Min: 10_000, Max: 50_000}
	case score >= 40:
		return Bracket{Label: "solid", Min: 2_500, Max: 10_000}
	case score >= 20:
		return Bracket{Label: "average", Min: 500, Max: 2_500}
	default:
		return Bracket{Label: "basic", Min: 50, Max: 500}
	}
}
