package domain

import "time"

// ComparableSale is a historical domain sale used as market evidence.
// A sale record is immutable once retrieved; Similarity is computed relative
// to one specific target domain and is not a property of the sale itself.
type ComparableSale struct {
	// Domain is the sold domain, e.g. "voice.com".
	Domain string `json:"domain"`
	// SoldPrice is the recorded sale price in whole US dollars, always > 0.
	SoldPrice int64 `json:"soldPrice"`
	// SoldDate is when the sale closed.
	SoldDate time.Time `json:"soldDate"`
	// Source names the venue or dataset the record came from.
	Source string `json:"source"`
	// Similarity in [0,100] relative to the appraisal target. Zero when the
	// record has not been scored against a target.
	Similarity float64 `json:"similarity,omitempty"`
}
