package appraisal

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"appraiser/internal/appraisal/factors"
	"appraiser/pkg/commentary"
	"appraiser/pkg/domain"
	"appraiser/pkg/fallback"
	"appraiser/pkg/logger"
	"appraiser/pkg/trademark"
)

// Share of the comparable-sale median in the retail price blend; the rest
// comes from the score bracket midpoint.
const compsBlendWeight = 0.6

// investorShare is the wholesale discount applied to the retail estimate.
const investorShare = 0.6

// evaluate runs one full scoring pass. The nine factors have no data
// dependencies on each other; the adapter-backed ones fan out concurrently
// and every branch recovers to a documented fallback score, so the fan-in
// barrier always completes and evaluate itself cannot fail.
func (a *service) evaluate(ctx context.Context, key domain.Key, opts domain.EvaluateOptions, fingerprint string) domain.Appraisal {
	var (
		comparables []domain.ComparableSale
		snapshot    *domain.WhoisSnapshot
		legal       domain.LegalRisk
		ageFactor   domain.FactorScore
		trafFactor  domain.FactorScore
	)

	// barrier members: none of these return errors, every failure inside
	// degrades to a local estimate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snapshot, ageFactor = a.whoisAndAge(gctx, key, opts)

		return nil
	})
	g.Go(func() error {
		trafFactor = a.trafficFactor(gctx, key, opts)

		return nil
	})
	g.Go(func() error {
		legal = a.legalVerdict(gctx, key)

		return nil
	})
	g.Go(func() error {
		if opts.CompsEnabled() {
			comparables = a.comparables(gctx, key)
		}

		return nil
	})

	// the pure factors run inline while the adapters are in flight
	pure := map[domain.Factor]func() (float64, string){
		domain.FactorLength:       func() (float64, string) { return factors.ScoreLength(key.Name) },
		domain.FactorKeywords:     func() (float64, string) { return factors.ScoreKeywords(key.Name) },
		domain.FactorTLD:          func() (float64, string) { return factors.ScoreTLD(key, opts.Country) },
		domain.FactorIndustry:     func() (float64, string) { return factors.ScoreIndustry(key.Name) },
		domain.FactorLiquidity:    func() (float64, string) { return factors.ScoreLiquidity(key) },
		domain.FactorBrandability: func() (float64, string) { return factors.ScoreBrandability(key) },
	}

	scores := make(map[domain.Factor]domain.FactorScore, len(domain.FactorOrder))
	for f, compute := range pure {
		score, note := compute()
		scores[f] = domain.FactorScore{Factor: f, Score: score, Note: note, DataSource: domain.DataSourceComputed}
	}

	_ = g.Wait()

	scores[domain.FactorAge] = ageFactor
	scores[domain.FactorTraffic] = trafFactor
	scores[domain.FactorComparables] = comparablesFactor(comparables)

	// fan-in: apply weights in the canonical emission order
	ordered := make([]domain.FactorScore, 0, len(domain.FactorOrder))
	var weighted float64
	for _, f := range domain.FactorOrder {
		fs := scores[f]
		fs.Weight = a.options.Weights.Of(f)
		fs.Contribution = round2(fs.Weight * fs.Score)
		weighted += fs.Contribution
		ordered = append(ordered, fs)
	}

	var registered *bool
	if snapshot != nil {
		registered = &snapshot.Registered
	}

	availability, availabilityNote := factors.AvailabilityMultiplier(registered)
	premium, premiumNote := factors.PremiumMultiplier(key)

	final := round2(weighted * legal.Multiplier * availability * premium)
	bracket := domain.BracketFor(final)
	price := blendPrice(bracket, legal, comparables, opts.CompsEnabled())

	appraisal := domain.Appraisal{
		ID:          domain.AppraisalID(uuid.New()),
		Domain:      key.String(),
		FinalScore:  final,
		Bracket:     bracket.Label,
		Price:       price,
		Factors:     ordered,
		Legal:       legal,
		Comparables: comparables,
		Whois:       snapshot,
		OptionsHash: fingerprint,
		CreatedAt:   a.now().UTC(),
	}
	appraisal.Commentary = a.commentaryFor(ctx, appraisal, availabilityNote, premiumNote)

	return appraisal
}

// whoisAndAge resolves the registration snapshot and the age factor in one
// pass, since both hang off the same lookup. The caller-supplied age always
// wins for scoring; the snapshot is still fetched (unless deferred) because
// availability gating and the response payload want it.
func (a *service) whoisAndAge(ctx context.Context, key domain.Key, opts domain.EvaluateOptions) (*domain.WhoisSnapshot, domain.FactorScore) {
	var (
		snapshot  *domain.WhoisSnapshot
		lookupErr error
	)

	if a.deps.Whois != nil && !opts.SkipWhois {
		outcome, err := fallback.Run(ctx, fallback.Tier[*domain.WhoisSnapshot]{
			Name:    "whois",
			Timeout: a.options.WhoisTimeout,
			Fetch: func(ctx context.Context) (*domain.WhoisSnapshot, error) {
				return a.deps.Whois.Lookup(ctx, key.String())
			},
		})
		if err != nil {
			lookupErr = err
			a.deps.Metrics.Fallback(ctx, "whois", fallback.Classify(err))
			logger.Warn(ctx, "whois lookup failed, estimating age locally", zap.Error(err))
		} else {
			snapshot = outcome.Value
		}
	}

	factor := domain.FactorScore{Factor: domain.FactorAge}
	switch {
	case opts.DomainAgeYears != nil:
		factor.Score, factor.Note = factors.ScoreAge(*opts.DomainAgeYears)
		factor.DataSource = domain.DataSourceProvided
	case snapshot != nil && snapshot.Registered:
		factor.Score, factor.Note = factors.ScoreAge(snapshot.AgeYears)
		factor.DataSource = domain.DataSourceAdapter
	case lookupErr != nil && fallback.Classify(lookupErr) != fallback.ReasonConfig:
		factor.Score = factors.AgeFallbackScore
		factor.Note = "whois unavailable, conservative age assumed"
		factor.DataSource = domain.DataSourceFallback
	default:
		factor.Score = factors.AgeFallbackScore
		factor.Note = "age unknown, conservative estimate"
		factor.DataSource = domain.DataSourceEstimated
	}

	return snapshot, factor
}

// trafficFactor scores monthly visits from the caller-supplied figure, the
// traffic adapter or the conservative constant, in that order.
func (a *service) trafficFactor(ctx context.Context, key domain.Key, opts domain.EvaluateOptions) domain.FactorScore {
	factor := domain.FactorScore{Factor: domain.FactorTraffic}

	if opts.MonthlyTraffic != nil {
		factor.Score, factor.Note = factors.ScoreTraffic(*opts.MonthlyTraffic)
		factor.DataSource = domain.DataSourceProvided

		return factor
	}

	if a.deps.Traffic == nil {
		factor.Score = factors.TrafficFallbackScore
		factor.Note = "traffic unknown, conservative estimate"
		factor.DataSource = domain.DataSourceEstimated

		return factor
	}

	outcome, err := fallback.Run(ctx, fallback.Tier[int64]{
		Name:    "traffic",
		Timeout: a.options.TrafficTimeout,
		Fetch: func(ctx context.Context) (int64, error) {
			return a.deps.Traffic.MonthlyVisits(ctx, key.String())
		},
	})
	if err != nil {
		a.deps.Metrics.Fallback(ctx, "traffic", fallback.Classify(err))
		logger.Warn(ctx, "traffic lookup failed, estimating locally", zap.Error(err))

		factor.Score = factors.TrafficFallbackScore
		factor.Note = "traffic unknown, conservative estimate"
		factor.DataSource = domain.DataSourceFallback
		if fallback.Classify(err) == fallback.ReasonConfig {
			factor.DataSource = domain.DataSourceEstimated
		}

		return factor
	}

	factor.Score, factor.Note = factors.ScoreTraffic(outcome.Value)
	factor.DataSource = domain.DataSourceAdapter

	return factor
}

// legalVerdict consults the trademark register first; when the search fails
// or reports nothing relevant, the static brand table decides.
func (a *service) legalVerdict(ctx context.Context, key domain.Key) domain.LegalRisk {
	if a.deps.Trademark == nil {
		return factors.AssessLegal(key.Name)
	}

	outcome, err := fallback.Run(ctx, fallback.Tier[[]trademark.Match]{
		Name:    "trademark",
		Timeout: a.options.TrademarkTimeout,
		Fetch: func(ctx context.Context) ([]trademark.Match, error) {
			return a.deps.Trademark.Search(ctx, key.Name)
		},
	})
	if err != nil {
		a.deps.Metrics.Fallback(ctx, "trademark", fallback.Classify(err))
		logger.Warn(ctx, "trademark search failed, using static brand table", zap.Error(err))

		return factors.AssessLegal(key.Name)
	}

	if verdict, found := registerVerdict(key.Name, outcome.Value); found {
		return verdict
	}

	return factors.AssessLegal(key.Name)
}

// Multiplier for a name containing a live registered mark without matching
// it outright.
const registerContainsMultiplier = 0.6

// registerVerdict turns live register matches into a legal verdict. An exact
// wordmark collision is a hard gate; a contained mark of meaningful length
// is a warning. Anything else defers to the static table.
func registerVerdict(name string, matches []trademark.Match) (domain.LegalRisk, bool) {
	for _, m := range matches {
		mark := strings.ToLower(strings.ReplaceAll(m.Wordmark, " ", ""))
		if mark == "" {
			continue
		}

		if mark == name {
			return domain.LegalRisk{
				Flag:       domain.LegalSevere,
				Multiplier: 0,
				Score:      0,
				Term:       m.Wordmark,
				Detail:     "active trademark registration",
			}, true
		}

		if len(mark) >= 5 && strings.Contains(name, mark) {
			return domain.LegalRisk{
				Flag:       domain.LegalWarning,
				Multiplier: registerContainsMultiplier,
				Score:      registerContainsMultiplier * 100,
				Term:       m.Wordmark,
				Detail:     "name contains an active trademark",
			}, true
		}
	}

	return domain.LegalRisk{}, false
}

// comparables retrieves the ranked market evidence. The matcher degrades to
// its embedded dataset internally, so an error here means the target itself
// could not be parsed, which Evaluate has already ruled out.
func (a *service) comparables(ctx context.Context, key domain.Key) []domain.ComparableSale {
	found, err := a.deps.Matcher.FindComparables(ctx, key.String(), a.options.ComparablesLimit)
	if err != nil {
		logger.Warn(ctx, "comparable lookup failed", zap.Error(err))

		return nil
	}

	return found
}

// comparablesFactor converts the retrieved evidence into the comparables
// quality score.
func comparablesFactor(comparables []domain.ComparableSale) domain.FactorScore {
	var mean float64
	if len(comparables) > 0 {
		for _, c := range comparables {
			mean += c.Similarity
		}
		mean /= float64(len(comparables))
	}

	score, note := factors.ScoreComparablesQuality(mean, len(comparables))

	return domain.FactorScore{
		Factor:     domain.FactorComparables,
		Score:      score,
		Note:       note,
		DataSource: domain.DataSourceComputed,
	}
}

// blendPrice derives the dollar estimate: the bracket midpoint alone, or a
// 60/40 blend with the comparable-sale median when evidence exists. A severe
// legal verdict withholds the estimate entirely; a name that cannot be used
// has no defensible price.
func blendPrice(bracket domain.Bracket, legal domain.LegalRisk, comparables []domain.ComparableSale, compsEnabled bool) domain.PriceEstimate {
	if legal.Flag == domain.LegalSevere {
		return domain.PriceEstimate{
			Explanation: "estimate withheld: the name collides with an active trademark",
		}
	}

	retail := float64(bracket.Midpoint())
	explanation := fmt.Sprintf("%s bracket midpoint", bracket.Label)

	if compsEnabled && len(comparables) > 0 {
		median := medianPrice(comparables)
		retail = compsBlendWeight*float64(median) + (1-compsBlendWeight)*retail
		explanation = fmt.Sprintf("blend of the median of %d comparable sales ($%d) and the %s bracket midpoint",
			len(comparables), median, bracket.Label)
	}

	return domain.PriceEstimate{
		Investor:    int64(retail * investorShare),
		Retail:      int64(retail),
		Explanation: explanation,
	}
}

// medianPrice is the middle sale price of the ranked comparables.
func medianPrice(comparables []domain.ComparableSale) int64 {
	prices := make([]int64, len(comparables))
	for i, c := range comparables {
		prices[i] = c.SoldPrice
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i] < prices[j] })

	mid := len(prices) / 2
	if len(prices)%2 == 0 {
		return (prices[mid-1] + prices[mid]) / 2
	}

	return prices[mid]
}

// commentaryFor asks the configured generator for prose; when that is off or
// fails, the factor notes become a plain summary so the response is never
// silent about its reasoning.
func (a *service) commentaryFor(ctx context.Context, appraisal domain.Appraisal, extraNotes ...string) string {
	highlights := make([]string, 0, len(appraisal.Factors)+len(extraNotes)+1)
	for _, fs := range appraisal.Factors {
		if fs.Note != "" {
			highlights = append(highlights, fmt.Sprintf("%s: %s", fs.Factor, fs.Note))
		}
	}
	if appraisal.Legal.Detail != "" {
		highlights = append(highlights, "legal: "+appraisal.Legal.Detail)
	}
	for _, note := range extraNotes {
		if note != "" {
			highlights = append(highlights, note)
		}
	}

	if a.deps.Commentary != nil {
		outcome, err := fallback.Run(ctx, fallback.Tier[string]{
			Name:    "commentary",
			Timeout: a.options.CommentaryTimeout,
			Fetch: func(ctx context.Context) (string, error) {
				return a.deps.Commentary.Commentary(ctx, commentary.Request{
					Domain:     appraisal.Domain,
					FinalScore: appraisal.FinalScore,
					Bracket:    appraisal.Bracket,
					Highlights: highlights,
				})
			},
		})
		if err == nil {
			return outcome.Value
		}

		a.deps.Metrics.Fallback(ctx, "commentary", fallback.Classify(err))
		logger.Warn(ctx, "commentary generation failed, using factor summary", zap.Error(err))
	}

	return fmt.Sprintf("%s scores %.1f (%s). %s.",
		appraisal.Domain, appraisal.FinalScore, appraisal.Bracket, strings.Join(highlights, "; "))
}

// round2 keeps scores and contributions stable across runs.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
