package factors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"appraiser/internal/appraisal/factors"
)

func TestScoreAge(t *testing.T) {
	tests := []struct {
		name  string
		years float64
		want  float64
	}{
		{"aged", 17.3, 95},
		{"fifteen exactly", 15, 95},
		{"ten to fifteen", 12, 85},
		{"five to ten", 7, 70},
		{"two to five", 3, 50},
		{"new", 1.5, 25},
		{"zero", 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := factors.ScoreAge(tt.years)
			require.Equal(t, tt.want, score)
		})
	}
}

func TestScoreTraffic(t *testing.T) {
	tests := []struct {
		name   string
		visits int64
		want   float64
	}{
		{"millions", 2_000_000, 95},
		{"hundred thousands", 150_000, 85},
		{"ten thousands", 50_000, 70},
		{"thousands", 5_000, 55},
		{"hundreds", 500, 35},
		{"trickle", 50, 20},
		{"none", 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := factors.ScoreTraffic(tt.visits)
			require.Equal(t, tt.want, score)
		})
	}
}

func TestScoreComparablesQuality(t *testing.T) {
	tests := []struct {
		name    string
		meanSim float64
		count   int
		want    float64
	}{
		{"no comparables is neutral", 0, 0, 50},
		{"tight market evidence", 85, 5, 85},
		{"good evidence", 65, 3, 75},
		{"moderate evidence", 45, 2, 65},
		{"weak evidence", 25, 1, 55},
		{"barely related", 10, 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := factors.ScoreComparablesQuality(tt.meanSim, tt.count)
			require.Equal(t, tt.want, score)
		})
	}
}
