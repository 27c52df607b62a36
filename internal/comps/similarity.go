// Package comps finds and ranks historical domain sales that resemble an
// appraisal target. The ranking feeds the comparables factor score and the
// median sale price blended into the final estimate.
package comps

import (
	"strings"

	"appraiser/internal/appraisal/factors"
	"appraiser/pkg/domain"
)

// Similarity sub-score weights. They sum to 1.
const (
	lengthWeight    = 0.30
	tldWeight       = 0.25
	keywordWeight   = 0.30
	structureWeight = 0.15
)

// SimilarityFloor is the score below which a candidate is discarded: weaker
// matches mislead the price blend more than they inform it.
const SimilarityFloor = 40

// LengthSimilarity compares name lengths: every character of difference
// costs 10 points.
func LengthSimilarity(a, b domain.Key) float64 {
	diff := len(a.Name) - len(b.Name)
	if diff < 0 {
		diff = -diff
	}

	score := 100 - 10*float64(diff)
	if score < 0 {
		return 0
	}

	return score
}

// TLDSimilarity is 100 for identical TLDs, 60 when either side is com (com
// evidence transfers reasonably to any TLD and back), else 40.
func TLDSimilarity(a, b domain.Key) float64 {
	switch {
	case a.TLD == b.TLD:
		return 100
	case a.TLD == "com" || b.TLD == "com":
		return 60
	default:
		return 40
	}
}

// KeywordSimilarity is the Jaccard index over alphabetic word-tokens scaled
// to 60 points, plus 20 for a shared three-character prefix or suffix and 15
// when both names contain the same industry keyword.
func KeywordSimilarity(a, b domain.Key) float64 {
	score := jaccard(factors.Tokens(a.Name), factors.Tokens(b.Name)) * 60

	if sharedAffix(a.Name, b.Name) {
		score += 20
	}

	if sharedKeyword(a.Name, b.Name) {
		score += 15
	}

	if score > 100 {
		return 100
	}

	return score
}

// StructureSimilarity starts at 100 and loses 30 when hyphen usage differs
// and 20 when digit usage differs.
func StructureSimilarity(a, b domain.Key) float64 {
	score := 100.0

	if strings.ContainsRune(a.Name, '-') != strings.ContainsRune(b.Name, '-') {
		score -= 30
	}

	if strings.ContainsAny(a.Name, "0123456789") != strings.ContainsAny(b.Name, "0123456789") {
		score -= 20
	}

	return score
}

// Similarity is the weighted blend of the four sub-scores, in [0,100].
func Similarity(target, candidate domain.Key) float64 {
	return lengthWeight*LengthSimilarity(target, candidate) +
		tldWeight*TLDSimilarity(target, candidate) +
		keywordWeight*KeywordSimilarity(target, candidate) +
		structureWeight*StructureSimilarity(target, candidate)
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, token := range a {
		setA[token] = struct{}{}
	}

	setB := make(map[string]struct{}, len(b))
	for _, token := range b {
		setB[token] = struct{}{}
	}

	var shared int
	for token := range setA {
		if _, ok := setB[token]; ok {
			shared++
		}
	}

	union := len(setA) + len(setB) - shared

	return float64(shared) / float64(union)
}

// sharedAffix reports whether both names start or both end with the same
// three characters.
func sharedAffix(a, b string) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}

	return a[:3] == b[:3] || a[len(a)-3:] == b[len(b)-3:]
}

// sharedKeyword reports whether some industry keyword occurs in both names.
func sharedKeyword(a, b string) bool {
	inB := make(map[string]struct{})
	for _, m := range factors.MatchKeywords(b) {
		inB[m.Entry.Keyword] = struct{}{}
	}

	for _, m := range factors.MatchKeywords(a) {
		if _, ok := inB[m.Entry.Keyword]; ok {
			return true
		}
	}

	return false
}
