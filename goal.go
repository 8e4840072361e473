package fincore

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxGoalMonths caps the time-to-goal search at 100 years of monthly steps.
const maxGoalMonths = 1200

// RequiredInitialInvestment returns the lump sum that grows to the goal at
// the expected annual return over the horizon.
func RequiredInitialInvestment(goal Money, annualRate, years float64) (Money, error) {
	pv, err := PresentValueOf(goal, annualRate, years)
	if err != nil {
		return Money{}, fmt.Errorf("required initial investment: %w", err)
	}
	return pv.PresentValue, nil
}

// ContributionsPresentValue returns the present value of monthly
// contributions toward a goal, as an annuity at the monthly rate over
// 12 * years payments (truncated to whole months).
func ContributionsPresentValue(monthly Money, annualRate, years float64) (Money, error) {
	if years < 0 {
		return Money{}, fmt.Errorf("contributions present value: %w", ErrNegativeTenor)
	}
	months := int(years * 12)
	if months == 0 {
		return M(0, monthly.Currency()), nil
	}
	pv, err := AnnuityPresentValue(monthly, annualRate/12, months)
	if err != nil {
		return Money{}, fmt.Errorf("contributions present value: %w", err)
	}
	return pv, nil
}

// RequiredMonthlyContribution returns the monthly payment that closes the
// gap between the goal and the future value of current savings. A goal
// already covered by current savings needs no contribution.
func RequiredMonthlyContribution(goal, current Money, annualRate, years float64) (Money, error) {
	if years <= 0 {
		return Money{}, fmt.Errorf("required monthly contribution: %w", ErrNegativeTenor)
	}
	months := int(years * 12)
	if months == 0 {
		return Money{}, fmt.Errorf("required monthly contribution: horizon shorter than one month: %w", ErrNegativeTenor)
	}
	factor, err := growthFactor(annualRate/12, float64(months))
	if err != nil {
		return Money{}, fmt.Errorf("required monthly contribution: %w", err)
	}
	gap := goal.Sub(current.Mul(factor))
	if !gap.IsPositive() {
		return M(0, goal.Currency()), nil
	}
	pmt, err := AnnuityPayment(gap, annualRate/12, months)
	if err != nil {
		return Money{}, fmt.Errorf("required monthly contribution: %w", err)
	}
	return pmt, nil
}

// TimeToGoal is the outcome of the time-to-goal search.
type TimeToGoal struct {
	Months     int
	Years      float64
	FinalValue Money
}

// TimeToGoalWithContribution simulates monthly growth followed by a
// contribution until the accumulated value meets the goal, and returns the
// first month where it does. There is no closed form with a nonzero rate, so
// the search is a bounded forward simulation; past maxGoalMonths it reports
// ErrGoalUnreachable instead of looping on.
func TimeToGoalWithContribution(current, goal, monthlyContribution Money, annualRate float64) (TimeToGoal, error) {
	if !goal.IsPositive() {
		return TimeToGoal{}, fmt.Errorf("time to goal: goal %w", ErrZeroPrincipal)
	}
	if annualRate <= -12 {
		return TimeToGoal{}, fmt.Errorf("time to goal: %w", ErrInvalidRate)
	}
	if current.GreaterThanOrEqual(goal) {
		return TimeToGoal{Months: 0, Years: 0, FinalValue: current}, nil
	}

	growth := decimal.NewFromFloat(1 + annualRate/12)
	balance := current
	for month := 1; month <= maxGoalMonths; month++ {
		balance = balance.Mul(growth).Add(monthlyContribution)
		if balance.GreaterThanOrEqual(goal) {
			return TimeToGoal{
				Months:     month,
				Years:      float64(month) / 12,
				FinalValue: balance,
			}, nil
		}
	}
	return TimeToGoal{}, fmt.Errorf("time to goal after %d months: %w", maxGoalMonths, ErrGoalUnreachable)
}

// Projection is the outcome of compounding a principal with monthly
// contributions over a horizon.
type Projection struct {
	InitialAmount       Money
	MonthlyContribution Money
	AnnualRate          float64
	Years               float64
	FinalValue          Money
	TotalContributions  Money
	TotalGrowth         Money
}

func (p Projection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("initialAmount", p.InitialAmount)
	w.Append("monthlyContribution", p.MonthlyContribution)
	w.Append("annualRate", p.AnnualRate)
	w.Append("years", p.Years)
	w.Append("finalValue", p.FinalValue)
	w.Append("totalContributions", p.TotalContributions)
	w.Append("totalGrowth", p.TotalGrowth)
	return w.MarshalJSON()
}

// ProjectInvestment compounds the initial amount monthly and accumulates
// monthly contributions as an ordinary annuity over the same horizon.
func ProjectInvestment(initial, monthly Money, annualRate, years float64) (Projection, error) {
	if years < 0 {
		return Projection{}, fmt.Errorf("investment projection: %w", ErrNegativeTenor)
	}
	months := int(years * 12)
	monthlyRate := annualRate / 12

	factor, err := growthFactor(monthlyRate, float64(months))
	if err != nil {
		return Projection{}, fmt.Errorf("investment projection: %w", err)
	}
	final := initial.Mul(factor)

	contributions := M(0, monthly.Currency())
	if months > 0 {
		ann, err := AnnuityFutureValue(monthly, monthlyRate, months)
		if err != nil {
			return Projection{}, fmt.Errorf("investment projection: %w", err)
		}
		final = final.Add(ann.FutureValue)
		contributions = ann.TotalPayments
	}

	invested := initial.Add(contributions)
	return Projection{
		InitialAmount:       initial,
		MonthlyContribution: monthly,
		AnnualRate:          annualRate,
		Years:               years,
		FinalValue:          final,
		TotalContributions:  invested,
		TotalGrowth:         final.Sub(invested),
	}, nil
}

// Scenario is one branch of a scenario projection.
type Scenario struct {
	Name        string
	Rate        float64
	Probability Percent
	Projection  Projection
	MeetsGoal   bool
}

// ScenarioProjection projects three one-standard-deviation scenarios around
// an expected return. Probabilities are the fixed normal-approximation bands
// (16% / 68% / 16%).
type ScenarioProjection struct {
	Goal         Money
	Conservative Scenario
	Expected     Scenario
	Optimistic   Scenario
}

// All returns the scenarios in conservative, expected, optimistic order.
func (s ScenarioProjection) All() []Scenario {
	return []Scenario{s.Conservative, s.Expected, s.Optimistic}
}

// ProjectScenarios projects the investment under expected-σ, expected and
// expected+σ annual returns and flags which scenarios meet the goal.
func ProjectScenarios(initial, monthly Money, expectedReturn, volatility, years float64, goal Money) (ScenarioProjection, error) {
	if volatility < 0 {
		return ScenarioProjection{}, fmt.Errorf("scenario projection: negative volatility %g", volatility)
	}
	build := func(name string, rate float64, probability Percent) (Scenario, error) {
		proj, err := ProjectInvestment(initial, monthly, rate, years)
		if err != nil {
			return Scenario{}, fmt.Errorf("scenario projection (%s): %w", name, err)
		}
		return Scenario{
			Name:        name,
			Rate:        rate,
			Probability: probability,
			Projection:  proj,
			MeetsGoal:   proj.FinalValue.GreaterThanOrEqual(goal),
		}, nil
	}

	conservative, err := build("conservative", expectedReturn-volatility, 16)
	if err != nil {
		return ScenarioProjection{}, err
	}
	expected, err := build("expected", expectedReturn, 68)
	if err != nil {
		return ScenarioProjection{}, err
	}
	optimistic, err := build("optimistic", expectedReturn+volatility, 16)
	if err != nil {
		return ScenarioProjection{}, err
	}
	return ScenarioProjection{
		Goal:         goal,
		Conservative: conservative,
		Expected:     expected,
		Optimistic:   optimistic,
	}, nil
}
