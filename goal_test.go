package fincore

import (
	"errors"
	"testing"
)

func TestRequiredInitialInvestment(t *testing.T) {
	// the lump sum that grows to 146932.81 at 8% over 5 years
	lump, err := RequiredInitialInvestment(M(146932.81, "USD"), 0.08, 5)
	if err != nil {
		t.Fatalf("RequiredInitialInvestment() failed: %v", err)
	}
	moneyNear(t, "RequiredInitialInvestment", lump, 100000, 0.01)
}

func TestContributionsPresentValue(t *testing.T) {
	// 500/month over 10 years at 6% annual, valued at the monthly rate
	pv, err := ContributionsPresentValue(M(500, "USD"), 0.06, 10)
	if err != nil {
		t.Fatalf("ContributionsPresentValue() failed: %v", err)
	}
	moneyNear(t, "ContributionsPresentValue", pv, 45036.73, 0.01)

	// horizons shorter than a month have no payments to value
	pv, err = ContributionsPresentValue(M(500, "USD"), 0.06, 0.05)
	if err != nil {
		t.Fatalf("ContributionsPresentValue(short) failed: %v", err)
	}
	if !pv.IsZero() {
		t.Errorf("ContributionsPresentValue = %s, want zero", pv)
	}
}

func TestRequiredMonthlyContribution(t *testing.T) {
	// no savings yet: the whole goal funds through the annuity
	pmt, err := RequiredMonthlyContribution(M(100000, "USD"), M(0, "USD"), 0.06, 10)
	if err != nil {
		t.Fatalf("RequiredMonthlyContribution() failed: %v", err)
	}
	moneyNear(t, "contribution", pmt, 610.21, 0.01)

	// zero rate divides the gap evenly over the months
	pmt, err = RequiredMonthlyContribution(M(120000, "USD"), M(0, "USD"), 0, 10)
	if err != nil {
		t.Fatalf("RequiredMonthlyContribution(rate=0) failed: %v", err)
	}
	if want := M(1000, "USD"); !pmt.Equal(want) {
		t.Errorf("contribution = %s, want exactly %s", pmt, want)
	}

	// a goal already covered by current savings needs nothing
	pmt, err = RequiredMonthlyContribution(M(50000, "USD"), M(60000, "USD"), 0.05, 5)
	if err != nil {
		t.Fatalf("RequiredMonthlyContribution(covered) failed: %v", err)
	}
	if !pmt.IsZero() {
		t.Errorf("contribution = %s, want zero", pmt)
	}
}

func TestTimeToGoalWithContribution(t *testing.T) {
	t.Run("zero rate is linear", func(t *testing.T) {
		res, err := TimeToGoalWithContribution(M(0, "USD"), M(120000, "USD"), M(1000, "USD"), 0)
		if err != nil {
			t.Fatalf("TimeToGoalWithContribution() failed: %v", err)
		}
		if res.Months != 120 {
			t.Errorf("Months = %d, want exactly 120", res.Months)
		}
		if want := M(120000, "USD"); !res.FinalValue.Equal(want) {
			t.Errorf("FinalValue = %s, want exactly %s", res.FinalValue, want)
		}
	})

	t.Run("growth shortens the search", func(t *testing.T) {
		withGrowth, err := TimeToGoalWithContribution(M(0, "USD"), M(120000, "USD"), M(1000, "USD"), 0.06)
		if err != nil {
			t.Fatalf("TimeToGoalWithContribution() failed: %v", err)
		}
		if withGrowth.Months >= 120 {
			t.Errorf("Months = %d, want fewer than the zero-rate 120", withGrowth.Months)
		}
		if withGrowth.FinalValue.LessThan(M(120000, "USD")) {
			t.Errorf("FinalValue = %s, below the goal", withGrowth.FinalValue)
		}
	})

	t.Run("already funded", func(t *testing.T) {
		res, err := TimeToGoalWithContribution(M(5000, "USD"), M(5000, "USD"), M(100, "USD"), 0.05)
		if err != nil {
			t.Fatalf("TimeToGoalWithContribution() failed: %v", err)
		}
		if res.Months != 0 {
			t.Errorf("Months = %d, want 0", res.Months)
		}
	})

	t.Run("unreachable within horizon", func(t *testing.T) {
		// no contributions and no growth never reach the goal; the search
		// must stop at its bound with a distinct outcome
		_, err := TimeToGoalWithContribution(M(100, "USD"), M(120000, "USD"), M(0, "USD"), 0)
		if !errors.Is(err, ErrGoalUnreachable) {
			t.Errorf("got %v, want ErrGoalUnreachable", err)
		}
	})
}

func TestProjectInvestment(t *testing.T) {
	// 10k initial + 500/month at 6% for 10 years
	proj, err := ProjectInvestment(M(10000, "USD"), M(500, "USD"), 0.06, 10)
	if err != nil {
		t.Fatalf("ProjectInvestment() failed: %v", err)
	}
	moneyNear(t, "FinalValue", proj.FinalValue, 100133.64, 0.05)
	if want := M(70000, "USD"); !proj.TotalContributions.Equal(want) {
		t.Errorf("TotalContributions = %s, want exactly %s", proj.TotalContributions, want)
	}
	moneyNear(t, "TotalGrowth", proj.TotalGrowth, 30133.64, 0.05)
}

func TestProjectScenarios(t *testing.T) {
	res, err := ProjectScenarios(M(10000, "USD"), M(500, "USD"), 0.07, 0.15, 10, M(100000, "USD"))
	if err != nil {
		t.Fatalf("ProjectScenarios() failed: %v", err)
	}

	// fixed one-standard-deviation probability bands
	if res.Conservative.Probability != 16 || res.Expected.Probability != 68 || res.Optimistic.Probability != 16 {
		t.Errorf("probabilities = %v/%v/%v, want 16/68/16",
			res.Conservative.Probability, res.Expected.Probability, res.Optimistic.Probability)
	}

	// rates are expected-/+σ
	near(t, "conservative rate", res.Conservative.Rate, -0.08, 1e-12)
	near(t, "optimistic rate", res.Optimistic.Rate, 0.22, 1e-12)

	// outcomes are ordered
	if !res.Conservative.Projection.FinalValue.LessThan(res.Expected.Projection.FinalValue) {
		t.Error("conservative outcome not below expected")
	}
	if !res.Expected.Projection.FinalValue.LessThan(res.Optimistic.Projection.FinalValue) {
		t.Error("expected outcome not below optimistic")
	}

	// at these values the optimistic branch clears the goal, conservative does not
	if res.Conservative.MeetsGoal {
		t.Error("conservative scenario unexpectedly meets goal")
	}
	if !res.Optimistic.MeetsGoal {
		t.Error("optimistic scenario misses goal")
	}

	if got := len(res.All()); got != 3 {
		t.Errorf("All() returned %d scenarios, want 3", got)
	}
}
