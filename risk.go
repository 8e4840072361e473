package fincore

import (
	"fmt"
	"sort"
	"time"

	"github.com/Rhymond/go-money"
)

// RiskLevel bands a volatility figure.
type RiskLevel int

const (
	VeryLowRisk RiskLevel = iota
	LowRisk
	MediumRisk
	HighRisk
	VeryHighRisk
)

func (l RiskLevel) String() string {
	switch l {
	case VeryLowRisk:
		return "very low"
	case LowRisk:
		return "low"
	case MediumRisk:
		return "medium"
	case HighRisk:
		return "high"
	case VeryHighRisk:
		return "very high"
	default:
		return "unknown"
	}
}

// RiskLevelFor bands an annualized volatility. A boundary value belongs to
// the upper band: exactly 0.05 is LowRisk, not VeryLowRisk.
func RiskLevelFor(volatility float64) RiskLevel {
	switch {
	case volatility < 0.05:
		return VeryLowRisk
	case volatility < 0.10:
		return LowRisk
	case volatility < 0.20:
		return MediumRisk
	case volatility < 0.30:
		return HighRisk
	default:
		return VeryHighRisk
	}
}

// HedgingStrategy is a closed set of instruments used to hedge currency
// exposure.
type HedgingStrategy int

const (
	NoHedge HedgingStrategy = iota
	ForwardContracts
	CurrencyOptions
	CurrencySwaps
	NaturalHedge
)

func (s HedgingStrategy) String() string {
	switch s {
	case NoHedge:
		return "none"
	case ForwardContracts:
		return "forward contracts"
	case CurrencyOptions:
		return "currency options"
	case CurrencySwaps:
		return "currency swaps"
	case NaturalHedge:
		return "natural hedge"
	default:
		return "unknown"
	}
}

// ParseHedgingStrategy parses a string into a HedgingStrategy.
func ParseHedgingStrategy(s string) (HedgingStrategy, error) {
	switch s {
	case "none":
		return NoHedge, nil
	case "forward contracts", "forwards":
		return ForwardContracts, nil
	case "currency options", "options":
		return CurrencyOptions, nil
	case "currency swaps", "swaps":
		return CurrencySwaps, nil
	case "natural hedge", "natural":
		return NaturalHedge, nil
	default:
		return 0, fmt.Errorf("unknown hedging strategy: %q", s)
	}
}

// CostMultiplier is the annual cost per unit hedged. Options carry the
// premium and cost the most; a natural hedge only carries operational cost.
func (s HedgingStrategy) CostMultiplier() float64 {
	switch s {
	case ForwardContracts:
		return 0.015
	case CurrencySwaps:
		return 0.020
	case CurrencyOptions:
		return 0.045
	case NaturalHedge:
		return 0.005
	default:
		return 0
	}
}

// TypicalEffectiveness is the volatility reduction per unit hedged commonly
// achieved with the strategy.
func (s HedgingStrategy) TypicalEffectiveness() float64 {
	switch s {
	case ForwardContracts:
		return 0.85
	case CurrencySwaps:
		return 0.80
	case CurrencyOptions:
		return 0.70
	case NaturalHedge:
		return 0.50
	default:
		return 0
	}
}

// Priority ranks a hedging recommendation.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// PriorityFor derives a priority from a hedge ratio.
func PriorityFor(hedgeRatio float64) Priority {
	switch {
	case hedgeRatio < 0.4:
		return PriorityLow
	case hedgeRatio < 0.7:
		return PriorityMedium
	case hedgeRatio < 0.9:
		return PriorityHigh
	default:
		return PriorityCritical
	}
}

// Severity bands a stress-test loss.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityExtreme
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityExtreme:
		return "extreme"
	default:
		return "unknown"
	}
}

// SeverityFor bands a projected loss magnitude expressed as a percentage of
// portfolio value.
func SeverityFor(lossPercent float64) Severity {
	if lossPercent < 0 {
		lossPercent = -lossPercent
	}
	switch {
	case lossPercent < 5:
		return SeverityLow
	case lossPercent < 15:
		return SeverityMedium
	case lossPercent < 30:
		return SeverityHigh
	default:
		return SeverityExtreme
	}
}

// CurrencyExposure is the share of a portfolio exposed to one currency.
// Amount is the exposed value expressed in the profile's base currency;
// Percentage is its share of the portfolio in [0,100]; Volatility is the
// currency's annualized volatility against the base; Correlation is its
// average correlation to the rest of the exposures, in [-1,1].
type CurrencyExposure struct {
	Currency    string
	Amount      Money
	Percentage  float64
	Volatility  float64
	Correlation float64
}

// RiskContribution is the exposure's weighted share of portfolio volatility.
func (e CurrencyExposure) RiskContribution() float64 {
	return e.Percentage / 100 * e.Volatility
}

// RiskLevel bands the exposure's own volatility.
func (e CurrencyExposure) RiskLevel() RiskLevel {
	return RiskLevelFor(e.Volatility)
}

func (e CurrencyExposure) validate() error {
	if money.GetCurrency(e.Currency) == nil {
		return fmt.Errorf("exposure %q: %w", e.Currency, ErrUnknownCurrency)
	}
	if e.Percentage < 0 || e.Percentage > 100 {
		return fmt.Errorf("exposure %q: percentage %g out of [0,100]", e.Currency, e.Percentage)
	}
	if e.Volatility < 0 {
		return fmt.Errorf("exposure %q: negative volatility %g", e.Currency, e.Volatility)
	}
	if e.Correlation < -1 || e.Correlation > 1 {
		return fmt.Errorf("exposure %q: correlation %g out of [-1,1]", e.Currency, e.Correlation)
	}
	return nil
}

// StressTestResult is the projected outcome of a named stress scenario.
// ProjectedLoss is expressed as a non-positive amount; LossPercent is its
// magnitude as a percentage of portfolio value.
type StressTestResult struct {
	TestName           string
	Scenario           string
	ProjectedLoss      Money
	LossPercent        float64
	Confidence         float64
	TimeHorizonDays    int
	ImpactedCurrencies []string
}

// Severity bands the projected loss magnitude.
func (r StressTestResult) Severity() Severity {
	return SeverityFor(r.LossPercent)
}

// HedgingRecommendation proposes a hedge for part of the portfolio's
// currency exposure.
type HedgingRecommendation struct {
	Strategy          HedgingStrategy
	HedgeRatio        float64
	EstimatedCost     Money
	ExpectedReduction float64
	TimeHorizonDays   int
	Reasoning         string
	Confidence        float64
}

// Priority derives the recommendation's priority from its hedge ratio.
func (r HedgingRecommendation) Priority() Priority {
	return PriorityFor(r.HedgeRatio)
}

// CurrencyRiskProfile aggregates the currency risk state of one asset or
// portfolio. It is a single mutable aggregate with no internal
// synchronization; the owning workflow serializes access.
//
// Total exposure and dominant currency are computed from the exposure
// collection on demand, never stored, so they cannot desynchronize.
type CurrencyRiskProfile struct {
	assetID      string
	baseCurrency string

	exposures       map[string]CurrencyExposure
	stressTests     map[string]StressTestResult
	recommendations []HedgingRecommendation

	volatility  float64
	volValid    bool
	valueAtRisk Money
	varValid    bool

	hedgingPercentage float64
	hedgingCost       Money
	strategy          HedgingStrategy

	updatedAt time.Time
}

// NewCurrencyRiskProfile creates a profile with zeroed metrics for the given
// asset, reporting in the base currency.
func NewCurrencyRiskProfile(assetID, baseCurrency string) (*CurrencyRiskProfile, error) {
	if money.GetCurrency(baseCurrency) == nil {
		return nil, fmt.Errorf("base currency %q: %w", baseCurrency, ErrUnknownCurrency)
	}
	return &CurrencyRiskProfile{
		assetID:      assetID,
		baseCurrency: baseCurrency,
		exposures:    make(map[string]CurrencyExposure),
		stressTests:  make(map[string]StressTestResult),
		hedgingCost:  M(0, baseCurrency),
	}, nil
}

func (p *CurrencyRiskProfile) touch() { p.updatedAt = time.Now() }

func (p *CurrencyRiskProfile) AssetID() string      { return p.assetID }
func (p *CurrencyRiskProfile) BaseCurrency() string { return p.baseCurrency }
func (p *CurrencyRiskProfile) UpdatedAt() time.Time { return p.updatedAt }

// SetExposure inserts or replaces the exposure for its currency.
func (p *CurrencyRiskProfile) SetExposure(e CurrencyExposure) error {
	if err := e.validate(); err != nil {
		return err
	}
	p.exposures[e.Currency] = e
	p.touch()
	return nil
}

// RemoveExposure drops the exposure for a currency. Removing an unknown
// currency is a no-op.
func (p *CurrencyRiskProfile) RemoveExposure(currency string) {
	if _, ok := p.exposures[currency]; !ok {
		return
	}
	delete(p.exposures, currency)
	p.touch()
}

// Exposure returns the exposure tracked for a currency.
func (p *CurrencyRiskProfile) Exposure(currency string) (CurrencyExposure, bool) {
	e, ok := p.exposures[currency]
	return e, ok
}

// Exposures returns all exposures sorted by currency code.
func (p *CurrencyRiskProfile) Exposures() []CurrencyExposure {
	out := make([]CurrencyExposure, 0, len(p.exposures))
	for _, e := range p.exposures {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}

// ExposedCurrencies returns the currency codes tracked by this profile,
// sorted.
func (p *CurrencyRiskProfile) ExposedCurrencies() []string {
	out := make([]string, 0, len(p.exposures))
	for c := range p.exposures {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// TotalExposure is the sum of all exposure amounts, in the base currency.
func (p *CurrencyRiskProfile) TotalExposure() Money {
	total := M(0, p.baseCurrency)
	for _, e := range p.exposures {
		total = total.Add(e.Amount)
	}
	return total
}

// DominantCurrency is the currency with the largest single exposure amount.
// It reports false when the profile has no exposures. Equal amounts resolve
// to the lexicographically smaller code so the answer is deterministic.
func (p *CurrencyRiskProfile) DominantCurrency() (string, bool) {
	dominant := ""
	var best Money
	for _, e := range p.Exposures() {
		if dominant == "" || e.Amount.GreaterThan(best) {
			dominant = e.Currency
			best = e.Amount
		}
	}
	return dominant, dominant != ""
}

// Concentration is the largest single-currency percentage, in [0,100].
func (p *CurrencyRiskProfile) Concentration() float64 {
	var maxPct float64
	for _, e := range p.exposures {
		if e.Percentage > maxPct {
			maxPct = e.Percentage
		}
	}
	return maxPct
}

// Volatility returns the last computed portfolio volatility, and false when
// no calculation ran yet.
func (p *CurrencyRiskProfile) Volatility() (float64, bool) {
	return p.volatility, p.volValid
}

// ValueAtRisk returns the last computed VaR, and false when no calculation
// ran yet.
func (p *CurrencyRiskProfile) ValueAtRisk() (Money, bool) {
	return p.valueAtRisk, p.varValid
}

// HedgingPercentage is the share of exposure currently hedged, in [0,100].
func (p *CurrencyRiskProfile) HedgingPercentage() float64 { return p.hedgingPercentage }

// SetHedgingPercentage sets the hedged share of exposure.
func (p *CurrencyRiskProfile) SetHedgingPercentage(pct float64) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("hedging percentage %g out of [0,100]", pct)
	}
	p.hedgingPercentage = pct
	p.touch()
	return nil
}

// HedgingCost is the last computed cost of the current hedging strategy.
func (p *CurrencyRiskProfile) HedgingCost() Money { return p.hedgingCost }

// Strategy is the hedging strategy currently in place.
func (p *CurrencyRiskProfile) Strategy() HedgingStrategy { return p.strategy }

// AddStressTest inserts or replaces a stress test result keyed by its name.
func (p *CurrencyRiskProfile) AddStressTest(r StressTestResult) error {
	if r.TestName == "" {
		return fmt.Errorf("stress test needs a name")
	}
	if r.ProjectedLoss.IsPositive() {
		return fmt.Errorf("stress test %q: projected loss must not be positive", r.TestName)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("stress test %q: %w", r.TestName, ErrInvalidConfidence)
	}
	p.stressTests[r.TestName] = r
	p.touch()
	return nil
}

// RemoveStressTest drops a stress test by name.
func (p *CurrencyRiskProfile) RemoveStressTest(name string) {
	if _, ok := p.stressTests[name]; !ok {
		return
	}
	delete(p.stressTests, name)
	p.touch()
}

// StressTests returns all stress test results sorted by name.
func (p *CurrencyRiskProfile) StressTests() []StressTestResult {
	out := make([]StressTestResult, 0, len(p.stressTests))
	for _, r := range p.stressTests {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TestName < out[j].TestName })
	return out
}

// Recommendations returns the hedging recommendations from the last
// generation, in generation order.
func (p *CurrencyRiskProfile) Recommendations() []HedgingRecommendation {
	out := make([]HedgingRecommendation, len(p.recommendations))
	copy(out, p.recommendations)
	return out
}

// BestRecommendation is the recommendation with the highest expected
// reduction; ties resolve to the lowest estimated cost.
func (p *CurrencyRiskProfile) BestRecommendation() (HedgingRecommendation, bool) {
	if len(p.recommendations) == 0 {
		return HedgingRecommendation{}, false
	}
	best := p.recommendations[0]
	for _, r := range p.recommendations[1:] {
		if r.ExpectedReduction > best.ExpectedReduction ||
			(r.ExpectedReduction == best.ExpectedReduction && r.EstimatedCost.LessThan(best.EstimatedCost)) {
			best = r
		}
	}
	return best, true
}
