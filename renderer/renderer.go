// Package renderer turns calculation results into markdown reports.
// Output is plain markdown text; the caller decides how to display it.
package renderer

import (
	"fmt"
	"strings"

	"github.com/quantfold/fincore"
)

// FutureValueMarkdown renders a future value calculation.
func FutureValueMarkdown(r fincore.FutureValueResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Future Value\n\n")
	fmt.Fprintf(&b, "Compounding %s at %.2f%% per year over %g years.\n\n", r.PresentValue, 100*r.Rate, r.Years)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Future value | %s |\n", r.FutureValue)
	fmt.Fprintf(&b, "| Total growth | %s |\n", r.TotalGrowth.SignedString())
	fmt.Fprintf(&b, "| Total return | %s |\n", r.TotalReturn.SignedString())

	return b.String()
}

// PresentValueMarkdown renders a present value calculation.
func PresentValueMarkdown(r fincore.PresentValueResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Present Value\n\n")
	fmt.Fprintf(&b, "Discounting %s at %.2f%% per year over %g years.\n\n", r.FutureValue, 100*r.Rate, r.Years)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Present value | %s |\n", r.PresentValue)
	fmt.Fprintf(&b, "| Discount factor | %s |\n", r.DiscountFactor.Round(6))

	return b.String()
}

// CompoundInterestMarkdown renders a compound interest calculation.
func CompoundInterestMarkdown(r fincore.CompoundInterestResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Compound Interest\n\n")
	fmt.Fprintf(&b, "Compounding %s at a nominal %.2f%% per year, %s, over %g years.\n\n", r.Principal, 100*r.Rate, r.Frequency, r.Years)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Maturity amount | %s |\n", r.MaturityAmount)
	fmt.Fprintf(&b, "| Total interest | %s |\n", r.TotalInterest.SignedString())
	fmt.Fprintf(&b, "| Effective annual rate | %.4f%% |\n", 100*r.EffectiveAnnualRate)

	return b.String()
}

// NPVMarkdown renders a net present value analysis with its per-flow
// breakdown, in input order.
func NPVMarkdown(r fincore.NPVResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Net Present Value\n\n")
	fmt.Fprintf(&b, "Initial investment %s, discounted at %.2f%% per year.\n\n", r.InitialInvestment, 100*r.Rate)

	fmt.Fprintln(&b, "| Flow | Year | Amount | Present Value |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|")
	for i, f := range r.Flows {
		fmt.Fprintf(&b, "| %d | %g | %s | %s |\n", i+1, f.CashFlow.Years, f.CashFlow.Amount, f.PresentValue)
	}
	fmt.Fprintf(&b, "\n**NPV: %s**", r.NetPresentValue.SignedString())
	if r.IsPositive {
		fmt.Fprintf(&b, ", the investment adds value at this rate.\n")
	} else {
		fmt.Fprintf(&b, ", the investment does not clear this rate.\n")
	}

	return b.String()
}

// ProjectionMarkdown renders a scenario projection as one row per scenario.
func ProjectionMarkdown(sp fincore.ScenarioProjection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Scenario Projection\n\n")
	if !sp.Goal.IsZero() {
		fmt.Fprintf(&b, "Goal: %s\n\n", sp.Goal)
	}

	fmt.Fprintln(&b, "| Scenario | Probability | Annual Return | Final Value | Total Growth | Meets Goal |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|:---:|")
	for _, s := range sp.All() {
		goal := " "
		if !sp.Goal.IsZero() {
			goal = "no"
			if s.MeetsGoal {
				goal = "yes"
			}
		}
		fmt.Fprintf(&b, "| %s | %s | %.2f%% | %s | %s | %s |\n",
			s.Name,
			s.Probability,
			100*s.Rate,
			s.Projection.FinalValue,
			s.Projection.TotalGrowth.SignedString(),
			goal,
		)
	}

	return b.String()
}

// RiskMarkdown renders a comprehensive risk analysis: headline metrics, the
// exposure table, and the generated hedging recommendations.
func RiskMarkdown(p *fincore.CurrencyRiskProfile, a fincore.RiskAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Currency Risk: %s\n\n", a.AssetID)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Portfolio volatility | %.2f%% (%s) |\n", 100*a.Volatility, a.OverallRiskLevel)
	fmt.Fprintf(&b, "| Value at Risk (95%%) | %s |\n", a.ValueAtRisk)
	fmt.Fprintf(&b, "| Total exposure | %s |\n", a.TotalExposure)
	if a.DominantCurrency != "" {
		fmt.Fprintf(&b, "| Dominant currency | %s |\n", a.DominantCurrency)
	}

	fmt.Fprint(&b, "\n## Exposures\n\n")
	fmt.Fprintln(&b, "| Currency | Amount | Share | Volatility | Risk |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|:---|")
	for _, e := range p.Exposures() {
		fmt.Fprintf(&b, "| %s | %s | %.1f%% | %.2f%% | %s |\n",
			e.Currency, e.Amount, e.Percentage, 100*e.Volatility, e.RiskLevel())
	}

	if len(a.Recommendations) > 0 {
		fmt.Fprint(&b, "\n## Hedging Recommendations\n\n")
		fmt.Fprintln(&b, "| Strategy | Hedge Ratio | Expected Reduction | Est. Cost | Priority |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|:---|")
		for _, r := range a.Recommendations {
			fmt.Fprintf(&b, "| %s | %.0f%% | %.0f%% | %s | %s |\n",
				r.Strategy, 100*r.HedgeRatio, 100*r.ExpectedReduction, r.EstimatedCost, r.Priority())
		}
		for _, r := range a.Recommendations {
			fmt.Fprintf(&b, "\n- **%s**: %s\n", r.Strategy, r.Reasoning)
		}
	}

	if tests := p.StressTests(); len(tests) > 0 {
		fmt.Fprint(&b, "\n## Stress Tests\n\n")
		fmt.Fprintln(&b, "| Test | Projected Loss | Severity | Horizon |")
		fmt.Fprintln(&b, "|:---|---:|:---|---:|")
		for _, s := range tests {
			fmt.Fprintf(&b, "| %s | %s | %s | %dd |\n",
				s.TestName, s.ProjectedLoss, s.Severity(), s.TimeHorizonDays)
		}
	}

	return b.String()
}
