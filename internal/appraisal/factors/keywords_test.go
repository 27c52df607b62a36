package factors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"appraiser/internal/appraisal/factors"
)

func TestScoreKeywords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"no keyword", "qzv", 20},
		{"contained keyword", "paypalace", 86},
		{"exact single keyword gets bonus", "coin", 84 + 10},
		{"bonus capped at 100", "ai", 100},
		{"highest value keyword wins", "cryptoloan", 90},
		{"stuffing penalty", "paycryptocoinwallet", 90 - 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := factors.ScoreKeywords(tt.in)
			require.Equal(t, tt.want, score)
		})
	}
}

func TestScoreKeywordsStuffingFloor(t *testing.T) {
	// many matches of low-value keywords must not fall through the floor
	matches := factors.MatchKeywords("blogrecipechefstudy")
	require.Greater(t, len(matches), 3)

	score, _ := factors.ScoreKeywords("blogrecipechefstudy")
	require.GreaterOrEqual(t, score, 30.0)
}

func TestMatchKeywordsExactFlag(t *testing.T) {
	matches := factors.MatchKeywords("coin")
	require.Len(t, matches, 1)
	require.True(t, matches[0].Exact)
	require.Equal(t, "coin", matches[0].Entry.Keyword)

	matches = factors.MatchKeywords("coinbase")
	require.Len(t, matches, 1)
	require.False(t, matches[0].Exact)
}

func TestScoreIndustry(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"no signal", "qzv", 45},
		{"high value industry", "cryptohouse", 85 + 5},
		{"medium value industry", "hotel", 65},
		{"generic industry", "pizza", 45},
		{"multi keyword bonus capped", "paycryptocoinwallet", 85 + 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := factors.ScoreIndustry(tt.in)
			require.Equal(t, tt.want, score)
		})
	}
}
