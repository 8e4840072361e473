package fincore

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// growthFactor returns (1+rate)^years as a decimal.
//
// Whole-year horizons stay in decimal arithmetic and are exact. Fractional
// horizons route through math.Pow and carry float64 precision (about 1e-9
// relative); the conversion back to decimal happens here and nowhere else.
func growthFactor(rate, years float64) (decimal.Decimal, error) {
	if years < 0 {
		return decimal.Decimal{}, fmt.Errorf("growth factor over %g years: %w", years, ErrNegativeTenor)
	}
	if rate <= -1 {
		return decimal.Decimal{}, fmt.Errorf("growth factor at rate %g: %w", rate, ErrInvalidRate)
	}
	if rate == 0 {
		return one, nil
	}
	if years == math.Trunc(years) {
		base := decimal.NewFromFloat(1 + rate)
		return base.Pow(decimal.NewFromInt(int64(years))), nil
	}
	return decimal.NewFromFloat(math.Pow(1+rate, years)), nil
}

// FutureValueResult is the outcome of compounding a principal forward.
type FutureValueResult struct {
	PresentValue Money
	Rate         float64
	Years        float64
	FutureValue  Money
	TotalGrowth  Money
	TotalReturn  Percent
}

func (r FutureValueResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("presentValue", r.PresentValue)
	w.Append("rate", r.Rate)
	w.Append("years", r.Years)
	w.Append("futureValue", r.FutureValue)
	w.Append("totalGrowth", r.TotalGrowth)
	w.Append("totalReturnPercentage", float64(r.TotalReturn))
	return w.MarshalJSON()
}

// FutureValueOf compounds a principal at an annual rate over a horizon:
// FV = PV × (1+r)^t. The total return percentage is undefined on a zero
// principal, so a zero principal is rejected with ErrZeroPrincipal.
func FutureValueOf(principal Money, rate, years float64) (FutureValueResult, error) {
	if principal.IsZero() {
		return FutureValueResult{}, fmt.Errorf("future value: %w", ErrZeroPrincipal)
	}
	factor, err := growthFactor(rate, years)
	if err != nil {
		return FutureValueResult{}, fmt.Errorf("future value: %w", err)
	}
	fv := principal.Mul(factor)
	growth := fv.Sub(principal)
	return FutureValueResult{
		PresentValue: principal,
		Rate:         rate,
		Years:        years,
		FutureValue:  fv,
		TotalGrowth:  growth,
		TotalReturn:  Percent(100 * growth.AsFloat() / principal.AsFloat()),
	}, nil
}

// PresentValueResult is the outcome of discounting a future amount back.
type PresentValueResult struct {
	FutureValue    Money
	Rate           float64
	Years          float64
	PresentValue   Money
	DiscountFactor decimal.Decimal
}

func (r PresentValueResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("futureValue", r.FutureValue)
	w.Append("rate", r.Rate)
	w.Append("years", r.Years)
	w.Append("presentValue", r.PresentValue)
	w.Append("discountFactor", r.DiscountFactor)
	return w.MarshalJSON()
}

// PresentValueOf discounts a future amount back to today:
// PV = FV / (1+r)^t.
func PresentValueOf(future Money, rate, years float64) (PresentValueResult, error) {
	factor, err := growthFactor(rate, years)
	if err != nil {
		return PresentValueResult{}, fmt.Errorf("present value: %w", err)
	}
	return PresentValueResult{
		FutureValue:    future,
		Rate:           rate,
		Years:          years,
		PresentValue:   future.Div(factor),
		DiscountFactor: factor,
	}, nil
}

// CashFlow is an amount received (positive) or paid (negative) at a point in
// time expressed in years from now.
type CashFlow struct {
	Amount Money
	Years  float64
}

// DiscountedCashFlow pairs a cash flow with its present value.
type DiscountedCashFlow struct {
	CashFlow     CashFlow
	PresentValue Money
}

// NPVResult is the outcome of a net present value analysis. Flows keeps the
// caller's ordering.
type NPVResult struct {
	InitialInvestment Money
	Rate              float64
	Flows             []DiscountedCashFlow
	NetPresentValue   Money
	IsPositive        bool
}

// NetPresentValue discounts each cash flow independently, sums them, and
// subtracts the initial investment.
func NetPresentValue(initialInvestment Money, rate float64, flows []CashFlow) (NPVResult, error) {
	result := NPVResult{
		InitialInvestment: initialInvestment,
		Rate:              rate,
		Flows:             make([]DiscountedCashFlow, 0, len(flows)),
	}
	total := M(0, initialInvestment.Currency())
	for i, f := range flows {
		pv, err := PresentValueOf(f.Amount, rate, f.Years)
		if err != nil {
			return NPVResult{}, fmt.Errorf("net present value: flow %d: %w", i, err)
		}
		result.Flows = append(result.Flows, DiscountedCashFlow{CashFlow: f, PresentValue: pv.PresentValue})
		total = total.Add(pv.PresentValue)
	}
	result.NetPresentValue = total.Sub(initialInvestment)
	result.IsPositive = result.NetPresentValue.IsPositive()
	return result, nil
}

// CompoundInterestResult is the outcome of compounding at a given frequency.
type CompoundInterestResult struct {
	Principal           Money
	Rate                float64
	Years               float64
	Frequency           Compounding
	MaturityAmount      Money
	TotalInterest       Money
	EffectiveAnnualRate float64
}

func (r CompoundInterestResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("principal", r.Principal)
	w.Append("rate", r.Rate)
	w.Append("years", r.Years)
	w.Append("frequency", r.Frequency.String())
	w.Append("maturityAmount", r.MaturityAmount)
	w.Append("totalInterest", r.TotalInterest)
	w.Append("effectiveAnnualRate", r.EffectiveAnnualRate)
	return w.MarshalJSON()
}

// CompoundInterest grows a principal at a nominal annual rate under the given
// compounding frequency, and derives the effective annual rate.
func CompoundInterest(principal Money, rate, years float64, freq Compounding) (CompoundInterestResult, error) {
	if years < 0 {
		return CompoundInterestResult{}, fmt.Errorf("compound interest: %w", ErrNegativeTenor)
	}

	var factor decimal.Decimal
	var effective float64
	if m, ok := freq.PeriodsPerYear(); ok {
		periodic := rate / float64(m)
		f, err := growthFactor(periodic, years*float64(m))
		if err != nil {
			return CompoundInterestResult{}, fmt.Errorf("compound interest: %w", err)
		}
		factor = f
		effective = math.Pow(1+periodic, float64(m)) - 1
	} else {
		// continuous compounding: FV = PV × e^(rt)
		factor = decimal.NewFromFloat(math.Exp(rate * years))
		effective = math.Exp(rate) - 1
	}

	maturity := principal.Mul(factor)
	return CompoundInterestResult{
		Principal:           principal,
		Rate:                rate,
		Years:               years,
		Frequency:           freq,
		MaturityAmount:      maturity,
		TotalInterest:       maturity.Sub(principal),
		EffectiveAnnualRate: effective,
	}, nil
}

// ContinuousFutureValue compounds continuously: FV = PV × e^(rt).
func ContinuousFutureValue(principal Money, rate, years float64) (Money, error) {
	if years < 0 {
		return Money{}, fmt.Errorf("continuous future value: %w", ErrNegativeTenor)
	}
	return principal.Mul(decimal.NewFromFloat(math.Exp(rate * years))), nil
}

// ContinuousPresentValue discounts continuously: PV = FV × e^(-rt).
func ContinuousPresentValue(future Money, rate, years float64) (Money, error) {
	if years < 0 {
		return Money{}, fmt.Errorf("continuous present value: %w", ErrNegativeTenor)
	}
	return future.Mul(decimal.NewFromFloat(math.Exp(-rate * years))), nil
}
