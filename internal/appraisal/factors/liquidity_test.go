package factors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"appraiser/internal/appraisal/factors"
	"appraiser/pkg/domain"
)

func TestScoreLiquidity(t *testing.T) {
	tests := []struct {
		name string
		key  domain.Key
		want float64
	}{
		{"short com", domain.Key{Name: "ab", TLD: "com"}, 100},
		{"five letter com", domain.Key{Name: "house", TLD: "com"}, 90},
		{"eight letter com", domain.Key{Name: "housings", TLD: "com"}, 78},
		{"short strong alternative", domain.Key{Name: "ab", TLD: "io"}, 88},
		{"short exotic tld", domain.Key{Name: "ab", TLD: "zzz"}, 70},
		{"long exotic tld", domain.Key{Name: "averyverylongname", TLD: "zzz"}, 25},
		{"hyphen penalty", domain.Key{Name: "my-shop", TLD: "xyz"}, 48 - 15},
		{"digit penalty", domain.Key{Name: "ab1", TLD: "net"}, 88 - 10},
		{"floor", domain.Key{Name: "my-shop-24", TLD: "zzz"}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := factors.ScoreLiquidity(tt.key)
			require.Equal(t, tt.want, score)
		})
	}
}

func TestScoreLiquidityShortComBeatsEverything(t *testing.T) {
	top, _ := factors.ScoreLiquidity(domain.Key{Name: "abc", TLD: "com"})

	for _, key := range []domain.Key{
		{Name: "abc", TLD: "io"},
		{Name: "abcdef", TLD: "com"},
		{Name: "abc", TLD: "xyz"},
	} {
		score, _ := factors.ScoreLiquidity(key)
		require.Less(t, score, top)
	}
}
