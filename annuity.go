package fincore

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// periodFactor returns (1+rate)^periods for a whole number of periods.
// Pure decimal arithmetic, exact.
func periodFactor(rate float64, periods int) decimal.Decimal {
	if rate == 0 {
		return one
	}
	base := decimal.NewFromFloat(1 + rate)
	return base.Pow(decimal.NewFromInt(int64(periods)))
}

// AnnuityPresentValue values an ordinary annuity of equal payments:
// PV = PMT * (1 - (1+r)^-n) / r, or PMT * n when the rate is zero.
// The rate is per period.
func AnnuityPresentValue(payment Money, rate float64, periods int) (Money, error) {
	if periods <= 0 {
		return Money{}, fmt.Errorf("annuity present value over %d periods: %w", periods, ErrNegativeTenor)
	}
	if rate == 0 {
		return payment.Mul(decimal.NewFromInt(int64(periods))), nil
	}
	if rate <= -1 {
		return Money{}, fmt.Errorf("annuity present value: %w", ErrInvalidRate)
	}
	factor := periodFactor(rate, periods)
	annuityFactor := one.Sub(one.Div(factor)).Div(decimal.NewFromFloat(rate))
	return payment.Mul(annuityFactor), nil
}

// AnnuityProjection is the outcome of accumulating an ordinary annuity.
type AnnuityProjection struct {
	Payment       Money
	Rate          float64
	Periods       int
	FutureValue   Money
	TotalPayments Money
	TotalInterest Money
}

func (p AnnuityProjection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("payment", p.Payment)
	w.Append("rate", p.Rate)
	w.Append("periods", p.Periods)
	w.Append("futureValue", p.FutureValue)
	w.Append("totalPayments", p.TotalPayments)
	w.Append("totalInterest", p.TotalInterest)
	return w.MarshalJSON()
}

// AnnuityFutureValue accumulates an ordinary annuity of equal payments:
// FV = PMT * ((1+r)^n - 1) / r, or PMT * n when the rate is zero (no
// interest is earned). The rate is per period.
func AnnuityFutureValue(payment Money, rate float64, periods int) (AnnuityProjection, error) {
	if periods <= 0 {
		return AnnuityProjection{}, fmt.Errorf("annuity future value over %d periods: %w", periods, ErrNegativeTenor)
	}
	if rate <= -1 {
		return AnnuityProjection{}, fmt.Errorf("annuity future value: %w", ErrInvalidRate)
	}

	n := decimal.NewFromInt(int64(periods))
	totalPayments := payment.Mul(n)

	fv := totalPayments
	if rate != 0 {
		factor := periodFactor(rate, periods)
		annuityFactor := factor.Sub(one).Div(decimal.NewFromFloat(rate))
		fv = payment.Mul(annuityFactor)
	}
	return AnnuityProjection{
		Payment:       payment,
		Rate:          rate,
		Periods:       periods,
		FutureValue:   fv,
		TotalPayments: totalPayments,
		TotalInterest: fv.Sub(totalPayments),
	}, nil
}

// AnnuityPayment solves for the periodic payment that accumulates to a
// target: PMT = FV * r / ((1+r)^n - 1), or FV / n when the rate is zero.
func AnnuityPayment(target Money, rate float64, periods int) (Money, error) {
	if periods <= 0 {
		return Money{}, fmt.Errorf("annuity payment over %d periods: %w", periods, ErrNegativeTenor)
	}
	if rate == 0 {
		return target.Div(decimal.NewFromInt(int64(periods))), nil
	}
	if rate <= -1 {
		return Money{}, fmt.Errorf("annuity payment: %w", ErrInvalidRate)
	}
	factor := periodFactor(rate, periods)
	return target.Mul(decimal.NewFromFloat(rate)).Div(factor.Sub(one)), nil
}

// PerpetuityPresentValue values an endless payment stream: PV = PMT / r.
// The discount rate must be strictly positive; otherwise the stream's value
// is unbounded and ErrInfinitePayment is returned.
func PerpetuityPresentValue(payment Money, rate float64) (Money, error) {
	if rate <= 0 {
		return Money{}, fmt.Errorf("perpetuity at rate %g: %w", rate, ErrInfinitePayment)
	}
	return payment.Div(decimal.NewFromFloat(rate)), nil
}

// GrowingPerpetuityPresentValue values an endless payment stream growing at
// a constant rate: PV = PMT / (r - g). Requires r > 0 and r > g.
func GrowingPerpetuityPresentValue(payment Money, rate, growth float64) (Money, error) {
	if rate <= 0 {
		return Money{}, fmt.Errorf("growing perpetuity at rate %g: %w", rate, ErrInfinitePayment)
	}
	if rate <= growth {
		return Money{}, fmt.Errorf("growing perpetuity with rate %g and growth %g: %w", rate, growth, ErrInvalidGrowth)
	}
	return payment.Div(decimal.NewFromFloat(rate - growth)), nil
}
