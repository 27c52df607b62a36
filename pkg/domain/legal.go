package domain

// LegalFlag classifies trademark risk for a domain.
type LegalFlag string

const (
	// LegalClear means no known trademark conflict was detected.
	LegalClear LegalFlag = "clear"
	// LegalWarning means a partial or word-boundary brand match was detected.
	LegalWarning LegalFlag = "warning"
	// LegalSevere means the name collides with a known brand outright. A
	// severe flag forces the gating multiplier to 0 and collapses the final
	// score regardless of every other factor.
	LegalSevere LegalFlag = "severe"
)

// LegalRisk is the trademark-risk verdict attached to an Appraisal. It acts
// as a gating multiplier on the weighted sum, not as a weighted input.
type LegalRisk struct {
	// Flag is the risk class.
	Flag LegalFlag `json:"flag"`
	// Multiplier in [0,1] applied to the weighted factor sum. Severe is
	// always 0 by construction.
	Multiplier float64 `json:"multiplier"`
	// Score is an informational 0-100 safety score (100 = clear).
	Score float64 `json:"score"`
	// Term is the brand or trademark term that matched, empty when clear.
	Term string `json:"term,omitempty"`
	// Detail describes how the term matched (exact, affix, word boundary).
	Detail string `json:"detail,omitempty"`
}

// ClearLegalRisk is the verdict for names with no detected conflict.
func ClearLegalRisk() LegalRisk {
	return LegalRisk{Flag: LegalClear, Multiplier: 1, Score: 100}
}
