package fincore

import (
	"errors"
	"math"
	"testing"
)

// near fails the test when got is farther than tol from want.
func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

func moneyNear(t *testing.T, name string, got Money, want, tol float64) {
	t.Helper()
	near(t, name, got.AsFloat(), want, tol)
}

func TestFutureValueOf(t *testing.T) {
	testCases := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
		wantFV    float64
		wantROI   float64
	}{
		{"100k at 8% for 5 years", 100000, 0.08, 5, 146932.81, 46.93},
		{"10k at 5% for 10 years", 10000, 0.05, 10, 16288.95, 62.89},
		{"fractional horizon", 10000, 0.06, 2.5, 11568.17, 15.68},
		{"negative rate", 10000, -0.02, 3, 9411.92, -5.88},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := FutureValueOf(M(tc.principal, "USD"), tc.rate, tc.years)
			if err != nil {
				t.Fatalf("FutureValueOf() failed: %v", err)
			}
			moneyNear(t, "FutureValue", res.FutureValue, tc.wantFV, 0.01)
			moneyNear(t, "TotalGrowth", res.TotalGrowth, tc.wantFV-tc.principal, 0.01)
			near(t, "TotalReturn", float64(res.TotalReturn), tc.wantROI, 0.01)
		})
	}
}

func TestFutureValueOf_ZeroRateIsExact(t *testing.T) {
	principal := M(12345.67, "EUR")
	res, err := FutureValueOf(principal, 0, 7.5)
	if err != nil {
		t.Fatalf("FutureValueOf() failed: %v", err)
	}
	// the zero-rate path never leaves decimal arithmetic
	if !res.FutureValue.Equal(principal) {
		t.Errorf("FutureValue = %s, want exactly %s", res.FutureValue, principal)
	}
	if !res.TotalGrowth.IsZero() {
		t.Errorf("TotalGrowth = %s, want zero", res.TotalGrowth)
	}
}

func TestFutureValueOf_DomainErrors(t *testing.T) {
	if _, err := FutureValueOf(M(0, "USD"), 0.05, 5); !errors.Is(err, ErrZeroPrincipal) {
		t.Errorf("zero principal: got %v, want ErrZeroPrincipal", err)
	}
	if _, err := FutureValueOf(M(100, "USD"), 0.05, -1); !errors.Is(err, ErrNegativeTenor) {
		t.Errorf("negative tenor: got %v, want ErrNegativeTenor", err)
	}
	if _, err := FutureValueOf(M(100, "USD"), -1, 5); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("rate -100%%: got %v, want ErrInvalidRate", err)
	}
}

func TestFutureValueOf_Monotonicity(t *testing.T) {
	principal := M(10000, "USD")
	prev := 0.0
	for _, rate := range []float64{-0.5, -0.1, 0, 0.03, 0.08, 0.15} {
		res, err := FutureValueOf(principal, rate, 5)
		if err != nil {
			t.Fatalf("FutureValueOf(rate=%v) failed: %v", rate, err)
		}
		if fv := res.FutureValue.AsFloat(); fv <= prev {
			t.Errorf("future value not increasing in rate: fv(%v) = %v <= %v", rate, fv, prev)
		} else {
			prev = fv
		}
	}

	prev = 0.0
	for _, years := range []float64{0.5, 1, 2, 5, 10, 30} {
		res, err := FutureValueOf(principal, 0.05, years)
		if err != nil {
			t.Fatalf("FutureValueOf(years=%v) failed: %v", years, err)
		}
		if fv := res.FutureValue.AsFloat(); fv <= prev {
			t.Errorf("future value not increasing in years: fv(%v) = %v <= %v", years, fv, prev)
		} else {
			prev = fv
		}
	}
}

func TestPresentValueOf(t *testing.T) {
	res, err := PresentValueOf(M(146932.81, "USD"), 0.08, 5)
	if err != nil {
		t.Fatalf("PresentValueOf() failed: %v", err)
	}
	moneyNear(t, "PresentValue", res.PresentValue, 100000.00, 0.01)
	near(t, "DiscountFactor", res.DiscountFactor.InexactFloat64(), 1.46932808, 1e-8)
}

func TestPresentValueOf_RoundTrip(t *testing.T) {
	// PV(FV(x, r, t), r, t) == x within float tolerance, including
	// fractional horizons which route through math.Pow.
	for _, rate := range []float64{-0.5, 0, 0.01, 0.08, 0.25} {
		for _, years := range []float64{0, 0.25, 1, 3.7, 10} {
			fv, err := FutureValueOf(M(5000, "USD"), rate, years)
			if err != nil {
				t.Fatalf("FutureValueOf(r=%v, t=%v) failed: %v", rate, years, err)
			}
			pv, err := PresentValueOf(fv.FutureValue, rate, years)
			if err != nil {
				t.Fatalf("PresentValueOf(r=%v, t=%v) failed: %v", rate, years, err)
			}
			near(t, "round trip", pv.PresentValue.AsFloat(), 5000, 5000*1e-9)
		}
	}
}

func TestPresentValueOf_DecreasingInRateAndTenor(t *testing.T) {
	future := M(10000, "USD")
	prev := math.Inf(1)
	for _, rate := range []float64{0.01, 0.05, 0.10, 0.20} {
		res, err := PresentValueOf(future, rate, 5)
		if err != nil {
			t.Fatalf("PresentValueOf(rate=%v) failed: %v", rate, err)
		}
		if pv := res.PresentValue.AsFloat(); pv >= prev {
			t.Errorf("present value not decreasing in rate: pv(%v) = %v >= %v", rate, pv, prev)
		} else {
			prev = pv
		}
	}
	prev = math.Inf(1)
	for _, years := range []float64{1, 2, 5, 20} {
		res, err := PresentValueOf(future, 0.05, years)
		if err != nil {
			t.Fatalf("PresentValueOf(years=%v) failed: %v", years, err)
		}
		if pv := res.PresentValue.AsFloat(); pv >= prev {
			t.Errorf("present value not decreasing in years: pv(%v) = %v >= %v", years, pv, prev)
		} else {
			prev = pv
		}
	}
}

func TestNetPresentValue(t *testing.T) {
	initial := M(10000, "USD")

	// a single cash flow equal to the initial investment's future value at
	// the same rate nets out to zero
	fv, err := FutureValueOf(initial, 0.07, 4)
	if err != nil {
		t.Fatalf("FutureValueOf() failed: %v", err)
	}
	res, err := NetPresentValue(initial, 0.07, []CashFlow{{Amount: fv.FutureValue, Years: 4}})
	if err != nil {
		t.Fatalf("NetPresentValue() failed: %v", err)
	}
	moneyNear(t, "NPV", res.NetPresentValue, 0, 1e-6)

	// a profitable stream
	flows := []CashFlow{
		{Amount: M(4000, "USD"), Years: 1},
		{Amount: M(4000, "USD"), Years: 2},
		{Amount: M(4000, "USD"), Years: 3},
	}
	res, err = NetPresentValue(initial, 0.05, flows)
	if err != nil {
		t.Fatalf("NetPresentValue() failed: %v", err)
	}
	moneyNear(t, "NPV", res.NetPresentValue, 892.99, 0.01)
	if !res.IsPositive {
		t.Error("IsPositive = false, want true")
	}

	// the per-flow breakdown preserves the input order
	if len(res.Flows) != len(flows) {
		t.Fatalf("got %d flows, want %d", len(res.Flows), len(flows))
	}
	for i := range flows {
		if res.Flows[i].CashFlow.Years != flows[i].Years {
			t.Errorf("flow %d: years = %v, want %v (order not preserved)", i, res.Flows[i].CashFlow.Years, flows[i].Years)
		}
	}
}

func TestCompoundInterest(t *testing.T) {
	testCases := []struct {
		name          string
		freq          Compounding
		wantMaturity  float64
		wantEffective float64
	}{
		{"annually", Annually, 16288.95, 0.0500},
		{"monthly", Monthly, 16470.09, 0.05116},
		{"daily", Daily, 16486.65, 0.05126},
		{"continuous", Continuous, 16487.21, 0.05127},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := CompoundInterest(M(10000, "USD"), 0.05, 10, tc.freq)
			if err != nil {
				t.Fatalf("CompoundInterest() failed: %v", err)
			}
			moneyNear(t, "MaturityAmount", res.MaturityAmount, tc.wantMaturity, 0.01)
			moneyNear(t, "TotalInterest", res.TotalInterest, tc.wantMaturity-10000, 0.01)
			near(t, "EffectiveAnnualRate", res.EffectiveAnnualRate, tc.wantEffective, 0.0001)
		})
	}
}

func TestCompoundInterest_EffectiveRateOrdering(t *testing.T) {
	// more frequent compounding always yields a higher effective rate,
	// with continuous as the supremum
	order := []Compounding{Annually, SemiAnnually, Quarterly, Monthly, Weekly, Daily, Continuous}
	prev := -1.0
	for _, freq := range order {
		res, err := CompoundInterest(M(1000, "USD"), 0.10, 1, freq)
		if err != nil {
			t.Fatalf("CompoundInterest(%s) failed: %v", freq, err)
		}
		if res.EffectiveAnnualRate <= prev {
			t.Errorf("effective rate not increasing at %s: %v <= %v", freq, res.EffectiveAnnualRate, prev)
		}
		prev = res.EffectiveAnnualRate
	}
}

func TestContinuousCompounding(t *testing.T) {
	fv, err := ContinuousFutureValue(M(10000, "USD"), 0.05, 10)
	if err != nil {
		t.Fatalf("ContinuousFutureValue() failed: %v", err)
	}
	moneyNear(t, "FV", fv, 10000*math.Exp(0.5), 0.01)

	pv, err := ContinuousPresentValue(fv, 0.05, 10)
	if err != nil {
		t.Fatalf("ContinuousPresentValue() failed: %v", err)
	}
	moneyNear(t, "PV", pv, 10000, 1e-6)
}

func TestParseCompounding(t *testing.T) {
	for _, freq := range []Compounding{Annually, SemiAnnually, Quarterly, Monthly, Weekly, Daily, Continuous} {
		parsed, err := ParseCompounding(freq.String())
		if err != nil {
			t.Fatalf("ParseCompounding(%q) failed: %v", freq, err)
		}
		if parsed != freq {
			t.Errorf("ParseCompounding(%q) = %v, want %v", freq, parsed, freq)
		}
	}
	if _, err := ParseCompounding("hourly"); err == nil {
		t.Error("ParseCompounding(hourly) succeeded, want error")
	}

	if _, ok := Continuous.PeriodsPerYear(); ok {
		t.Error("Continuous.PeriodsPerYear() reported a period count")
	}
	if n, ok := Monthly.PeriodsPerYear(); !ok || n != 12 {
		t.Errorf("Monthly.PeriodsPerYear() = %d, %v, want 12, true", n, ok)
	}
}

func TestAnalyzeReturn(t *testing.T) {
	res, err := AnalyzeReturn(M(100000, "USD"), M(146932.81, "USD"), 5)
	if err != nil {
		t.Fatalf("AnalyzeReturn() failed: %v", err)
	}
	moneyNear(t, "AbsoluteReturn", res.AbsoluteReturn, 46932.81, 0.01)
	near(t, "ROI", float64(res.ROI), 46.93, 0.01)
	near(t, "AnnualizedReturn", res.AnnualizedReturn, 0.08, 1e-6)

	if _, err := AnalyzeReturn(M(0, "USD"), M(100, "USD"), 5); !errors.Is(err, ErrZeroPrincipal) {
		t.Errorf("zero initial: got %v, want ErrZeroPrincipal", err)
	}
	if _, err := AnalyzeReturn(M(100, "USD"), M(110, "USD"), 0); !errors.Is(err, ErrNegativeTenor) {
		t.Errorf("zero years: got %v, want ErrNegativeTenor", err)
	}
}
