package comps_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"appraiser/internal/comps"
	"appraiser/pkg/domain"
)

func key(name, tld string) domain.Key {
	return domain.Key{Name: name, TLD: tld}
}

func TestLengthSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Key
		want float64
	}{
		{"same length", key("crypto", "com"), key("wallet", "com"), 100},
		{"three apart", key("pay", "com"), key("crypto", "com"), 70},
		{"ten apart floors at zero", key("ab", "com"), key("abcdefghijkl", "com"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, comps.LengthSimilarity(tt.a, tt.b))
		})
	}
}

func TestTLDSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Key
		want float64
	}{
		{"identical", key("a", "io"), key("b", "io"), 100},
		{"one side com", key("a", "com"), key("b", "io"), 60},
		{"both exotic", key("a", "io"), key("b", "ai"), 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, comps.TLDSimilarity(tt.a, tt.b))
		})
	}
}

func TestStructureSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Key
		want float64
	}{
		{"both plain", key("crypto", "com"), key("wallet", "com"), 100},
		{"hyphen usage differs", key("my-shop", "com"), key("myshop", "com"), 70},
		{"digit usage differs", key("shop24", "com"), key("shop", "com"), 80},
		{"both differ", key("my-shop24", "com"), key("myshop", "com"), 50},
		{"both hyphenated", key("my-shop", "com"), key("top-shop", "com"), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, comps.StructureSimilarity(tt.a, tt.b))
		})
	}
}

func TestKeywordSimilarity(t *testing.T) {
	// identical names share all tokens, the affix and the industry keyword
	score := comps.KeywordSimilarity(key("cryptopay", "com"), key("cryptopay", "net"))
	require.Equal(t, 95.0, score)

	// disjoint tokens, no affix, no shared keyword
	score = comps.KeywordSimilarity(key("cryptopay", "com"), key("foodbox", "com"))
	require.Zero(t, score)

	// shared industry keyword without shared tokens
	score = comps.KeywordSimilarity(key("cryptopay", "com"), key("buycrypto", "com"))
	require.Equal(t, 15.0, score)
}

func TestSymmetricSubScores(t *testing.T) {
	pairs := [][2]domain.Key{
		{key("cryptopay", "com"), key("crypto", "io")},
		{key("my-shop", "net"), key("shop24", "com")},
		{key("ab", "ai"), key("abcdefgh", "org")},
		{key("traveldeals", "com"), key("travel-deal", "co.uk")},
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]

		require.Equal(t, comps.LengthSimilarity(a, b), comps.LengthSimilarity(b, a))
		require.Equal(t, comps.TLDSimilarity(a, b), comps.TLDSimilarity(b, a))
		require.Equal(t, comps.StructureSimilarity(a, b), comps.StructureSimilarity(b, a))
		// keyword similarity is symmetric by construction (Jaccard + shared sets)
		require.Equal(t, comps.KeywordSimilarity(a, b), comps.KeywordSimilarity(b, a))
	}
}

func TestSimilarityIdenticalKeys(t *testing.T) {
	k := key("cryptopay", "com")
	require.InDelta(t, 98.5, comps.Similarity(k, k), 0.001)
}

func TestSimilarityWithinBounds(t *testing.T) {
	targets := []domain.Key{key("cryptopay", "com"), key("ab", "io"), key("my-shop24", "zzz")}
	candidates := []domain.Key{key("wallet", "com"), key("abcdefghijklmnop", "info"), key("z9", "ai")}

	for _, target := range targets {
		for _, candidate := range candidates {
			s := comps.Similarity(target, candidate)
			require.GreaterOrEqual(t, s, 0.0)
			require.LessOrEqual(t, s, 100.0)
		}
	}
}
