package fincore

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// defaultConfidence is the confidence level used by the comprehensive
// analysis.
const defaultConfidence = 0.95

// zScore maps a confidence level to its one-tailed normal deviate, using the
// banded approximations the engine documents (z(0.95) ~ 1.65). Levels between
// bands take the next lower band's deviate.
func zScore(confidence float64) (float64, error) {
	if confidence <= 0 || confidence >= 1 {
		return 0, fmt.Errorf("z-score for %g: %w", confidence, ErrInvalidConfidence)
	}
	switch {
	case confidence >= 0.99:
		return 2.33, nil
	case confidence >= 0.95:
		return 1.65, nil
	case confidence >= 0.90:
		return 1.28, nil
	default:
		return 1.0, nil
	}
}

// portfolioVolatility combines the exposures' weighted volatilities and
// applies a diversification reduction. The naive weighted sum is scaled by
// sqrt(rho + (1-rho)·s) where rho is the weight-averaged correlation and s the
// largest normalized weight: a single exposure degenerates to its own
// weighted volatility (s=1, factor 1), and any mix of exposures with average
// correlation below one lands strictly under the naive sum.
func (p *CurrencyRiskProfile) portfolioVolatility() (float64, error) {
	if len(p.exposures) == 0 {
		return 0, fmt.Errorf("portfolio volatility: %w", ErrNoExposures)
	}
	var naive, weightSum, corrSum, maxWeight float64
	for _, e := range p.exposures {
		w := e.Percentage / 100
		naive += w * e.Volatility
		weightSum += w
		corrSum += w * e.Correlation
		if w > maxWeight {
			maxWeight = w
		}
	}
	if weightSum == 0 {
		return 0, nil
	}
	avgCorr := corrSum / weightSum
	if avgCorr > 1 {
		avgCorr = 1
	}
	if avgCorr < 0 {
		// negative average correlation reduces as far as pure concentration allows
		avgCorr = 0
	}
	share := maxWeight / weightSum
	return naive * math.Sqrt(avgCorr+(1-avgCorr)*share), nil
}

// currentVolatility prefers the stored metric and falls back to computing
// one from the exposures.
func (p *CurrencyRiskProfile) currentVolatility() (float64, error) {
	if p.volValid {
		return p.volatility, nil
	}
	return p.portfolioVolatility()
}

// CalculateVolatility recomputes the portfolio volatility from the current
// exposures and stores it on the profile.
func (p *CurrencyRiskProfile) CalculateVolatility() (float64, error) {
	vol, err := p.portfolioVolatility()
	if err != nil {
		return 0, err
	}
	p.volatility = vol
	p.volValid = true
	p.touch()
	return vol, nil
}

// valueAtRiskFor computes parametric VaR as a non-positive loss amount:
// VaR = -z(confidence) * volatility * sqrt(horizon) * portfolioValue.
// The horizon is in base periods; a horizon of 1 applies no scaling.
func valueAtRiskFor(portfolioValue Money, volatility float64, confidence float64, horizon int) (Money, error) {
	if horizon < 1 {
		return Money{}, fmt.Errorf("value at risk over %d periods: %w", horizon, ErrNegativeTenor)
	}
	z, err := zScore(confidence)
	if err != nil {
		return Money{}, fmt.Errorf("value at risk: %w", err)
	}
	loss := -z * volatility * math.Sqrt(float64(horizon))
	return portfolioValue.Mul(decimal.NewFromFloat(loss)), nil
}

// CalculateValueAtRisk recomputes VaR against the supplied portfolio value
// and stores it on the profile. The volatility used is the stored metric
// when present, otherwise one computed from the exposures.
func (p *CurrencyRiskProfile) CalculateValueAtRisk(portfolioValue Money, confidence float64, horizon int) (Money, error) {
	vol, err := p.currentVolatility()
	if err != nil {
		return Money{}, err
	}
	v, err := valueAtRiskFor(portfolioValue, vol, confidence, horizon)
	if err != nil {
		return Money{}, err
	}
	p.valueAtRisk = v
	p.varValid = true
	p.touch()
	return v, nil
}

// HedgingEffectiveness measures how much a hedge reduced volatility:
// 1 - post/pre, clamped to [0,1]. Undefined on a zero pre-hedge volatility.
func (p *CurrencyRiskProfile) HedgingEffectiveness(postHedgeVolatility float64) (float64, error) {
	pre, err := p.currentVolatility()
	if err != nil {
		return 0, err
	}
	if pre == 0 {
		return 0, fmt.Errorf("hedging effectiveness: %w", ErrZeroVolatility)
	}
	eff := 1 - postHedgeVolatility/pre
	if eff < 0 {
		eff = 0
	}
	if eff > 1 {
		eff = 1
	}
	return eff, nil
}

// hedgingCostFor prices a hedge covering `ratio` of the portfolio with the
// strategy over a horizon in days, scaled to the strategy's annual cost.
func hedgingCostFor(portfolioValue Money, ratio float64, strategy HedgingStrategy, horizonDays int) Money {
	cost := ratio * strategy.CostMultiplier() * float64(horizonDays) / 365
	return portfolioValue.Mul(decimal.NewFromFloat(cost))
}

// CalculateHedgingCost prices hedging the profile's current hedging
// percentage with the strategy over the horizon, stores the cost and the
// strategy on the profile, and returns the cost.
func (p *CurrencyRiskProfile) CalculateHedgingCost(portfolioValue Money, strategy HedgingStrategy, horizonDays int) (Money, error) {
	if horizonDays < 1 {
		return Money{}, fmt.Errorf("hedging cost over %d days: %w", horizonDays, ErrNegativeTenor)
	}
	cost := hedgingCostFor(portfolioValue, p.hedgingPercentage/100, strategy, horizonDays)
	p.hedgingCost = cost
	p.strategy = strategy
	p.touch()
	return cost, nil
}

// buildRecommendations derives hedging recommendations from the current
// volatility, VaR share and exposure concentration. The recommended hedge
// ratio grows with each of them.
func (p *CurrencyRiskProfile) buildRecommendations(portfolioValue Money, volatility float64) []HedgingRecommendation {
	const z95 = 1.65
	varShare := z95 * volatility
	concentration := p.Concentration()

	ratio := 0.25 + 1.2*volatility + 0.3*concentration/100 + 0.5*varShare
	if ratio > 0.95 {
		ratio = 0.95
	}
	if ratio < 0.10 {
		ratio = 0.10
	}

	level := RiskLevelFor(volatility)
	recs := []HedgingRecommendation{{
		Strategy:          ForwardContracts,
		HedgeRatio:        ratio,
		EstimatedCost:     hedgingCostFor(portfolioValue, ratio, ForwardContracts, 90),
		ExpectedReduction: ratio * ForwardContracts.TypicalEffectiveness(),
		TimeHorizonDays:   90,
		Reasoning:         fmt.Sprintf("portfolio volatility is %s (%.1f%%); forwards lock the rate on %.0f%% of the exposure at the lowest unit cost", level, 100*volatility, 100*ratio),
		Confidence:        0.80,
	}}

	if volatility >= 0.20 {
		optRatio := 0.9 * ratio
		recs = append(recs, HedgingRecommendation{
			Strategy:          CurrencyOptions,
			HedgeRatio:        optRatio,
			EstimatedCost:     hedgingCostFor(portfolioValue, optRatio, CurrencyOptions, 90),
			ExpectedReduction: optRatio * CurrencyOptions.TypicalEffectiveness(),
			TimeHorizonDays:   90,
			Reasoning:         fmt.Sprintf("volatility above 20%% favors options: downside protection on %.0f%% of the exposure while keeping upside", 100*optRatio),
			Confidence:        0.65,
		})
	}

	if concentration >= 60 {
		recs = append(recs, HedgingRecommendation{
			Strategy:          NaturalHedge,
			HedgeRatio:        0.50,
			EstimatedCost:     hedgingCostFor(portfolioValue, 0.50, NaturalHedge, 365),
			ExpectedReduction: 0.50 * NaturalHedge.TypicalEffectiveness(),
			TimeHorizonDays:   365,
			Reasoning:         fmt.Sprintf("%.0f%% of the exposure sits in a single currency; matching revenues and costs in that currency reduces it structurally", concentration),
			Confidence:        0.60,
		})
	}
	return recs
}

// GenerateRecommendations rebuilds the profile's hedging recommendations
// from its current exposures and metrics.
func (p *CurrencyRiskProfile) GenerateRecommendations(portfolioValue Money) ([]HedgingRecommendation, error) {
	vol, err := p.currentVolatility()
	if err != nil {
		return nil, err
	}
	p.recommendations = p.buildRecommendations(portfolioValue, vol)
	p.touch()
	return p.Recommendations(), nil
}

// RiskAnalysis is the outcome of the comprehensive portfolio risk analysis.
type RiskAnalysis struct {
	AssetID          string
	Volatility       float64
	ValueAtRisk      Money
	OverallRiskLevel RiskLevel
	TotalExposure    Money
	DominantCurrency string
	Recommendations  []HedgingRecommendation
}

func (a RiskAnalysis) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("assetId", a.AssetID)
	w.Append("volatility", a.Volatility)
	w.Append("valueAtRisk", a.ValueAtRisk)
	w.Append("overallRiskLevel", a.OverallRiskLevel.String())
	w.Append("totalExposure", a.TotalExposure)
	w.Optional("dominantCurrency", a.DominantCurrency)
	w.Append("recommendations", len(a.Recommendations))
	return w.MarshalJSON()
}

// AnalyzePortfolioRisk is the single entry point most workflows use. It
// recalculates portfolio volatility from the current exposures, VaR at the
// default 95% confidence over one period against the supplied value,
// regenerates the hedging recommendations, and derives the overall risk
// level. The profile's UpdatedAt is refreshed exactly once.
func (p *CurrencyRiskProfile) AnalyzePortfolioRisk(portfolioValue Money) (RiskAnalysis, error) {
	vol, err := p.portfolioVolatility()
	if err != nil {
		return RiskAnalysis{}, err
	}
	valueAtRisk, err := valueAtRiskFor(portfolioValue, vol, defaultConfidence, 1)
	if err != nil {
		return RiskAnalysis{}, err
	}

	p.volatility = vol
	p.volValid = true
	p.valueAtRisk = valueAtRisk
	p.varValid = true
	p.recommendations = p.buildRecommendations(portfolioValue, vol)
	p.touch()

	dominant, _ := p.DominantCurrency()
	return RiskAnalysis{
		AssetID:          p.assetID,
		Volatility:       vol,
		ValueAtRisk:      valueAtRisk,
		OverallRiskLevel: RiskLevelFor(vol),
		TotalExposure:    p.TotalExposure(),
		DominantCurrency: dominant,
		Recommendations:  p.Recommendations(),
	}, nil
}
