package domain

// Factor identifies one of the nine weighted scoring signals.
type Factor string

// The nine weighted factors. FactorOrder below fixes the order in which a
// completed evaluation lists them; the order is stable across runs and used
// for display, never for computation.
const (
	FactorLength       Factor = "length"
	FactorKeywords     Factor = "keywords"
	FactorTLD          Factor = "tld"
	FactorIndustry     Factor = "industry"
	FactorLiquidity    Factor = "liquidity"
	FactorBrandability Factor = "brandability"
	FactorComparables  Factor = "comparables"
	FactorAge          Factor = "age"
	FactorTraffic      Factor = "traffic"
)

// FactorOrder is the canonical emission order of factor scores within an
// Appraisal, regardless of which underlying computation finished first.
var FactorOrder = []Factor{ //nolint: gochecknoglobals
	FactorLength,
	FactorKeywords,
	FactorTLD,
	FactorIndustry,
	FactorLiquidity,
	FactorBrandability,
	FactorComparables,
	FactorAge,
	FactorTraffic,
}

// DataSource labels where a factor score came from, so that a reader of an
// Appraisal can tell a live measurement apart from a local estimate or a
// post-failure fallback.
type DataSource string

const (
	// DataSourceComputed marks scores derived purely from the domain string
	// and static tables.
	DataSourceComputed DataSource = "computed"
	// DataSourceProvided marks scores derived from caller-supplied inputs
	// (e.g. a known domain age).
	DataSourceProvided DataSource = "provided"
	// DataSourceAdapter marks scores backed by a successful external lookup.
	DataSourceAdapter DataSource = "adapter"
	// DataSourceEstimated marks scores from a local estimator used because the
	// external integration is not configured; no remote call was attempted.
	DataSourceEstimated DataSource = "estimated"
	// DataSourceFallback marks scores from a local estimator used because the
	// external lookup was attempted and failed (timeout, non-2xx, bad payload).
	DataSourceFallback DataSource = "fallback"
)

// FactorScore is one signal's contribution to the final score.
type FactorScore struct {
	// Factor names the signal.
	Factor Factor `json:"factor"`
	// Score is the raw signal strength in [0,100].
	Score float64 `json:"score"`
	// Weight is the share of the final score this factor carries, in [0,1].
	Weight float64 `json:"weight"`
	// Contribution is Weight multiplied by Score.
	Contribution float64 `json:"contribution"`
	// Note is an optional human-readable rationale.
	Note string `json:"note,omitempty"`
	// DataSource records where the score came from.
	DataSource DataSource `json:"dataSource,omitempty"`
}

// FactorWeights is a named set of weights over the nine weighted factors.
// Legal risk and availability act as gating multipliers and are deliberately
// absent: they must never take part in the weighted sum.
type FactorWeights struct {
	Name string `json:"name"`

	Length       float64 `json:"length"`
	Keywords     float64 `json:"keywords"`
	TLD          float64 `json:"tld"`
	Industry     float64 `json:"industry"`
	Liquidity    float64 `json:"liquidity"`
	Brandability float64 `json:"brandability"`
	Comparables  float64 `json:"comparables"`
	Age          float64 `json:"age"`
	Traffic      float64 `json:"traffic"`
}

// DefaultWeights returns the canonical weight table. The weights sum to 1.0;
// the "short premium" variants that existed in older revisions of the model
// are intentionally not merged in (the premium multiplier covers short names).
func DefaultWeights() FactorWeights {
	return FactorWeights{
		Name:         "default",
		Length:       0.15,
		Keywords:     0.15,
		TLD:          0.15,
		Industry:     0.10,
		Liquidity:    0.10,
		Brandability: 0.10,
		Comparables:  0.10,
		Age:          0.075,
		Traffic:      0.075,
	}
}

// Of returns the weight assigned to the given factor, 0 for unknown factors.
func (w FactorWeights) Of(f Factor) float64 {
	switch f {
	case FactorLength:
		return w.Length
	case FactorKeywords:
		return w.Keywords
	case FactorTLD:
		return w.TLD
	case FactorIndustry:
		return w.Industry
	case FactorLiquidity:
		return w.Liquidity
	case FactorBrandability:
		return w.Brandability
	case FactorComparables:
		return w.Comparables
	case FactorAge:
		return w.Age
	case FactorTraffic:
		return w.Traffic
	default:
		return 0
	}
}

// Sum adds up all nine weights.
func (w FactorWeights) Sum() float64 {
	var total float64
	for _, f := range FactorOrder {
		total += w.Of(f)
	}

	return total
}

// Validate rejects weight sets with negative entries or a sum above 1.
func (w FactorWeights) Validate() error {
	for _, f := range FactorOrder {
		if w.Of(f) < 0 {
			return &WeightError{Factor: f, Reason: "negative weight"}
		}
	}
	if w.Sum() > 1+1e-9 {
		return &WeightError{Reason: "weights sum above 1"}
	}

	return nil
}

// WeightError reports an invalid FactorWeights table.
type WeightError struct {
	Factor Factor
	Reason string
}

func (e *WeightError) Error() string {
	if e.Factor != "" {
		return "invalid factor weights: " + string(e.Factor) + ": " + e.Reason
	}

	return "invalid factor weights: " + e.Reason
}
