package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppraisalID uniquely identifies an appraisal record.
// It wraps uuid.UUID to provide type safety at the domain layer.
type AppraisalID uuid.UUID

// String renders the ID in canonical UUID form.
func (id AppraisalID) String() string { return uuid.UUID(id).String() }

// PriceEstimate is the dollar estimate derived from the final score bracket
// blended with comparable-sale evidence.
type PriceEstimate struct {
	// Investor is the wholesale estimate (60% of Retail).
	Investor int64 `json:"investor"`
	// Retail is the end-user asking price estimate.
	Retail int64 `json:"retail"`
	// Explanation describes how the estimate was derived.
	Explanation string `json:"explanation,omitempty"`
}

// WhoisSnapshot is registration data captured from a WHOIS lookup. It is the
// only part of an Appraisal that may be filled in after creation, by the
// deferred augmentation worker.
type WhoisSnapshot struct {
	Registrar   string    `json:"registrar,omitempty"`
	CreatedDate time.Time `json:"createdDate,omitzero"`
	ExpiryDate  time.Time `json:"expiryDate,omitzero"`
	UpdatedDate time.Time `json:"updatedDate,omitzero"`
	NameServers []string  `json:"nameServers,omitempty"`
	Statuses    []string  `json:"statuses,omitempty"`
	// AgeYears is derived from CreatedDate at capture time.
	AgeYears float64 `json:"ageYears,omitempty"`
	// Registered reports whether the domain is currently registered. An
	// unregistered name is hand-registrable and priced accordingly.
	Registered bool `json:"registered"`
	// FetchedAt is when the lookup completed.
	FetchedAt time.Time `json:"fetchedAt,omitzero"`
}

// Appraisal is the completed valuation of one domain under one option set.
// It is created once per fresh evaluation and immutable afterwards, except
// that Whois may be patched in asynchronously.
type Appraisal struct {
	// ID is the unique identifier of the appraisal.
	ID AppraisalID `json:"id"`
	// Domain is the normalized domain that was evaluated.
	Domain string `json:"domain"`

	// FinalScore is the gated weighted sum; >= 0 and unbounded above 100
	// only through the premium multiplier.
	FinalScore float64 `json:"finalScore"`
	// Bracket is the label of the score bracket the price was derived from.
	Bracket string `json:"bracket"`
	// Price is the blended dollar estimate.
	Price PriceEstimate `json:"price"`

	// Factors lists the nine weighted factor scores in FactorOrder.
	Factors []FactorScore `json:"factors"`
	// Legal is the trademark gating verdict.
	Legal LegalRisk `json:"legal"`
	// Commentary is free-text brandability rationale, when available.
	Commentary string `json:"commentary,omitempty"`
	// Comparables lists the market evidence used for the price blend, ranked
	// by similarity.
	Comparables []ComparableSale `json:"comparables,omitempty"`
	// Whois is the registration snapshot; nil until the deferred lookup
	// lands (or forever, when WHOIS is unavailable).
	Whois *WhoisSnapshot `json:"whois,omitempty"`

	// OptionsHash fingerprints the evaluation options for cache addressing.
	OptionsHash string `json:"optionsHash,omitempty"`
	// CreatedAt is when the evaluation completed.
	CreatedAt time.Time `json:"createdAt"`
}
