package factors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"appraiser/internal/appraisal/factors"
	"appraiser/pkg/domain"
)

func TestScoreBrandabilityBounds(t *testing.T) {
	keys := []domain.Key{
		{Name: "ab", TLD: "com"},
		{Name: "melodiq", TLD: "io"},
		{Name: "bcdfgk", TLD: "com"},
		{Name: "x9-z_3", TLD: "zzz"},
		{Name: "averyverylongdomainname", TLD: "info"},
	}

	for _, key := range keys {
		score, note := factors.ScoreBrandability(key)
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 100.0)
		require.NotEmpty(t, note)
	}
}

func TestScoreBrandabilityPrefersPronounceable(t *testing.T) {
	clean, _ := factors.ScoreBrandability(domain.Key{Name: "melo", TLD: "com"})
	cluster, _ := factors.ScoreBrandability(domain.Key{Name: "bcdfgk", TLD: "com"})

	require.Greater(t, clean, cluster)
}

func TestScoreBrandabilityShortAlphabeticComIsTop(t *testing.T) {
	score, _ := factors.ScoreBrandability(domain.Key{Name: "ab", TLD: "com"})
	require.EqualValues(t, 100, score)
}

func TestScoreBrandabilityPenalizesDigitsAndSeparators(t *testing.T) {
	plain, _ := factors.ScoreBrandability(domain.Key{Name: "brandly", TLD: "com"})
	noisy, _ := factors.ScoreBrandability(domain.Key{Name: "brand-7", TLD: "com"})

	require.Greater(t, plain, noisy)
}
