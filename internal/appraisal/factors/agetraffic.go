package factors

import "fmt"

// Conservative scores used when an adapter fails or is not configured.
const (
	AgeFallbackScore     = 25
	TrafficFallbackScore = 20
)

// ScoreAge maps a registration age in years to its tier score. Old domains
// carry trust and history; anything younger than two years scores as new.
func ScoreAge(years float64) (float64, string) {
	note := fmt.Sprintf("registered %.1f years", years)

	switch {
	case years >= 15:
		return 95, note
	case years >= 10:
		return 85, note
	case years >= 5:
		return 70, note
	case years >= 2:
		return 50, note
	default:
		return AgeFallbackScore, note
	}
}

// ScoreTraffic maps estimated monthly visits to its tier score.
func ScoreTraffic(monthlyVisits int64) (float64, string) {
	note := fmt.Sprintf("%d visits/month", monthlyVisits)

	switch {
	case monthlyVisits >= 1_000_000:
		return 95, note
	case monthlyVisits >= 100_000:
		return 85, note
	case monthlyVisits >= 10_000:
		return 70, note
	case monthlyVisits >= 1_000:
		return 55, note
	case monthlyVisits >= 100:
		return 35, note
	default:
		return TrafficFallbackScore, note
	}
}

// ScoreComparablesQuality converts the mean similarity of the retrieved
// comparables into the comparables factor score. No comparables is neutral,
// not negative: thin markets are common for unusual names.
func ScoreComparablesQuality(meanSimilarity float64, count int) (float64, string) {
	if count == 0 {
		return 50, "no comparable sales found"
	}

	note := fmt.Sprintf("%d comparables, mean similarity %.0f", count, meanSimilarity)

	switch {
	case meanSimilarity >= 80:
		return 85, note
	case meanSimilarity >= 60:
		return 75, note
	case meanSimilarity >= 40:
		return 65, note
	case meanSimilarity >= 20:
		return 55, note
	default:
		return 50, note
	}
}
