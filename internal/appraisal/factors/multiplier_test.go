package factors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"appraiser/internal/appraisal/factors"
	"appraiser/pkg/domain"
)

func TestPremiumMultiplier(t *testing.T) {
	tests := []struct {
		name string
		key  domain.Key
		want float64
	}{
		{"single letter com", domain.Key{Name: "a", TLD: "com"}, 1.50},
		{"two letter com", domain.Key{Name: "ab", TLD: "com"}, 1.40},
		{"three letter com", domain.Key{Name: "abc", TLD: "com"}, 1.30},
		{"four letter com", domain.Key{Name: "abcd", TLD: "com"}, 1.15},
		{"two letter io", domain.Key{Name: "ab", TLD: "io"}, 1.25},
		{"three letter ai", domain.Key{Name: "abc", TLD: "ai"}, 1.15},
		{"four letter net", domain.Key{Name: "abcd", TLD: "net"}, 1.05},
		{"five letters is not premium", domain.Key{Name: "abcde", TLD: "com"}, 1},
		{"ineligible tld", domain.Key{Name: "abc", TLD: "xyz"}, 1},
		{"digits disqualify", domain.Key{Name: "a1", TLD: "com"}, 1},
		{"hyphen disqualifies", domain.Key{Name: "a-b", TLD: "com"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			multiplier, note := factors.PremiumMultiplier(tt.key)
			require.Equal(t, tt.want, multiplier)

			if tt.want > 1 {
				require.NotEmpty(t, note)
			} else {
				require.Empty(t, note)
			}
		})
	}
}

func TestAvailabilityMultiplier(t *testing.T) {
	registered := true
	available := false

	tests := []struct {
		name string
		in   *bool
		want float64
	}{
		{"unknown status", nil, 1},
		{"registered", &registered, 1},
		{"hand-registrable", &available, 0.55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			multiplier, _ := factors.AvailabilityMultiplier(tt.in)
			require.Equal(t, tt.want, multiplier)
		})
	}
}
