package factors

import (
	"fmt"
	"strings"
)

// KeywordMatch is one table entry found in a domain name.
type KeywordMatch struct {
	Entry KeywordEntry
	// Exact is true when the whole name equals the keyword.
	Exact bool
}

// MatchKeywords returns every keyword-table entry contained in name,
// preserving table order.
func MatchKeywords(name string) []KeywordMatch {
	name = strings.ToLower(name)

	var matches []KeywordMatch
	for _, entry := range keywordTable {
		if strings.Contains(name, entry.Keyword) {
			matches = append(matches, KeywordMatch{
				Entry: entry,
				Exact: name == entry.Keyword,
			})
		}
	}

	return matches
}

const (
	keywordDefaultScore = 20
	exactMatchBonus     = 10
	spamMatchLimit      = 3
	spamPenalty         = 15
	spamFloor           = 30
)

// ScoreKeywords scores the name by its most valuable keyword. An exact
// single-keyword match earns a bonus; more than three matching keywords read
// as stuffing and are penalized down to a floor.
func ScoreKeywords(name string) (float64, string) {
	matches := MatchKeywords(name)
	if len(matches) == 0 {
		return keywordDefaultScore, "no known keyword"
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if m.Entry.Value > best.Entry.Value {
			best = m
		}
	}

	score := best.Entry.Value
	note := fmt.Sprintf("keyword %q (%s)", best.Entry.Keyword, best.Entry.Industry)

	if len(matches) == 1 && best.Exact {
		score += exactMatchBonus
		note += ", exact match"
	}

	if len(matches) > spamMatchLimit {
		score -= spamPenalty
		if score < spamFloor {
			score = spamFloor
		}

		note = fmt.Sprintf("%d keywords matched, stuffing penalty", len(matches))
	}

	return clampScore(score), note
}

// Industry tier scores.
const (
	industryHighScore    = 85
	industryMediumScore  = 65
	industryGenericScore = 45

	industryBonusPerKeyword = 5
	industryBonusCap        = 15
)

// ScoreIndustry maps the industries of the matched keywords to a tier score,
// with a small bonus when several keywords point at a market.
func ScoreIndustry(name string) (float64, string) {
	matches := MatchKeywords(name)
	if len(matches) == 0 {
		return industryGenericScore, "no industry signal"
	}

	var (
		score float64 = industryGenericScore
		tier          = "generic"
		top   string
	)

	for _, m := range matches {
		industry := m.Entry.Industry
		if _, ok := highValueIndustries[industry]; ok && score < industryHighScore {
			score, tier, top = industryHighScore, "high-value", industry
		}

		if _, ok := mediumValueIndustries[industry]; ok && score < industryMediumScore {
			score, tier, top = industryMediumScore, "medium-value", industry
		}
	}

	if top == "" {
		top = matches[0].Entry.Industry
	}

	bonus := float64((len(matches) - 1) * industryBonusPerKeyword)
	if bonus > industryBonusCap {
		bonus = industryBonusCap
	}
	score += bonus

	return clampScore(score), fmt.Sprintf("%s industry (%s)", tier, top)
}
