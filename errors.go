package fincore

import "errors"

// Domain errors are detected before calculation and returned to the caller.
// A function never computes through an invalid domain and hands back NaN or
// Infinity as if it were a valid number.
var (
	// ErrZeroPrincipal is returned when a calculation needs a non-zero
	// starting amount (return percentages are undefined on a zero base).
	ErrZeroPrincipal = errors.New("principal must not be zero")

	// ErrInvalidRate is returned for rates at or below -100%.
	ErrInvalidRate = errors.New("rate must be greater than -100%")

	// ErrNegativeTenor is returned for negative time horizons or
	// non-positive period counts.
	ErrNegativeTenor = errors.New("time horizon must not be negative")

	// ErrInfinitePayment is returned by perpetuity valuations when the
	// discount rate is not strictly positive: the present value of the
	// payment stream is effectively infinite.
	ErrInfinitePayment = errors.New("perpetuity requires a positive discount rate: present value is effectively infinite")

	// ErrInvalidGrowth is returned by the growing perpetuity when the
	// discount rate does not exceed the growth rate.
	ErrInvalidGrowth = errors.New("discount rate must exceed growth rate")

	// ErrGoalUnreachable is returned by the time-to-goal search when the
	// goal is not reached within the maximum horizon.
	ErrGoalUnreachable = errors.New("goal not reachable within horizon")

	// ErrInvalidConfidence is returned for confidence levels outside (0,1).
	ErrInvalidConfidence = errors.New("confidence must be within (0, 1)")

	// ErrNoExposures is returned by portfolio risk calculations on a
	// profile that holds no currency exposures.
	ErrNoExposures = errors.New("profile has no currency exposures")

	// ErrZeroVolatility is returned by hedging effectiveness when the
	// pre-hedge volatility is zero.
	ErrZeroVolatility = errors.New("pre-hedge volatility is zero")

	// ErrUnknownCurrency is returned when a currency code is not in the
	// ISO 4217 table.
	ErrUnknownCurrency = errors.New("unknown currency code")
)
