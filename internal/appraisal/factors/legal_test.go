package factors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"appraiser/internal/appraisal/factors"
	"appraiser/pkg/domain"
)

func TestAssessLegal(t *testing.T) {
	tests := []struct {
		name           string
		in             string
		wantFlag       domain.LegalFlag
		wantMultiplier float64
		wantTerm       string
	}{
		{"exact brand", "google", domain.LegalSevere, 0, "google"},
		{"exact brand uppercase", "GOOGLE", domain.LegalSevere, 0, "google"},
		{"brand prefix", "googlesearch", domain.LegalWarning, 0.5, "google"},
		{"brand suffix", "mygoogle", domain.LegalWarning, 0.5, "google"},
		{"brand on word boundary", "my-google-site", domain.LegalWarning, 0.7, "google"},
		{"clear short name", "ab", domain.LegalClear, 1, ""},
		{"clear generic word", "house", domain.LegalClear, 1, ""},
		{"brand in the middle is not flagged", "thegooglehouse", domain.LegalClear, 1, ""},
		{"short brand not flagged on word boundary", "my-ebay-alternative", domain.LegalClear, 1, ""},
		{"long brand flagged on word boundary", "cheap-netflix-deals", domain.LegalWarning, 0.7, "netflix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := factors.AssessLegal(tt.in)
			require.Equal(t, tt.wantFlag, risk.Flag)
			require.Equal(t, tt.wantMultiplier, risk.Multiplier)
			require.Equal(t, tt.wantTerm, risk.Term)
		})
	}
}

func TestAssessLegalSevereZeroesScore(t *testing.T) {
	risk := factors.AssessLegal("google")
	require.Equal(t, domain.LegalSevere, risk.Flag)
	require.Zero(t, risk.Multiplier)
	require.Zero(t, risk.Score)
}

func TestAssessLegalClearIsFullScore(t *testing.T) {
	risk := factors.AssessLegal("quiethollow")
	require.Equal(t, domain.LegalClear, risk.Flag)
	require.EqualValues(t, 1, risk.Multiplier)
	require.EqualValues(t, 100, risk.Score)
}
