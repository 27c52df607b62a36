package factors

import "strings"

// Segments splits a domain name on hyphens and underscores. Names with more
// than three segments read as keyword-stuffed and are penalized by the
// length scorer.
func Segments(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
}

// Tokens extracts the alphabetic word-tokens of a domain name: maximal runs
// of letters, so digits, hyphens, underscores and dots all separate tokens.
func Tokens(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
}

// IsAlphabetic reports whether name consists solely of ASCII letters.
func IsAlphabetic(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range strings.ToLower(name) {
		if r < 'a' || r > 'z' {
			return false
		}
	}

	return true
}

func countRune(name string, target rune) int {
	var n int
	for _, r := range name {
		if r == target {
			n++
		}
	}

	return n
}

func countDigits(name string) int {
	var n int
	for _, r := range name {
		if r >= '0' && r <= '9' {
			n++
		}
	}

	return n
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	default:
		return false
	}
}

// vowelRatio is the share of vowels among the letters of name. Names without
// letters yield 0.
func vowelRatio(name string) float64 {
	var letters, vowels int
	for _, r := range strings.ToLower(name) {
		if r < 'a' || r > 'z' {
			continue
		}

		letters++
		if isVowel(r) {
			vowels++
		}
	}

	if letters == 0 {
		return 0
	}

	return float64(vowels) / float64(letters)
}

// maxConsonantRun is the length of the longest run of consecutive consonants
// in name, a proxy for hard-to-pronounce clusters.
func maxConsonantRun(name string) int {
	var run, longest int
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' && !isVowel(r) {
			run++
			if run > longest {
				longest = run
			}

			continue
		}

		run = 0
	}

	return longest
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}

	if score > 100 {
		return 100
	}

	return score
}
