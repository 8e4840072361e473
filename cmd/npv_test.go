package cmd

import (
	"testing"
)

func TestParseCashFlows(t *testing.T) {
	flows, err := parseCashFlows("USD", []string{"4000:1", "-2500.50:2.5", "4000:3"})
	if err != nil {
		t.Fatalf("parseCashFlows() failed: %v", err)
	}
	if len(flows) != 3 {
		t.Fatalf("got %d flows, want 3", len(flows))
	}
	if flows[1].Years != 2.5 || !flows[1].Amount.IsNegative() {
		t.Errorf("flow 1 = %+v, want -2500.50 at 2.5 years", flows[1])
	}
	if flows[0].Amount.Currency() != "USD" {
		t.Errorf("flow currency = %q, want USD", flows[0].Amount.Currency())
	}

	for _, bad := range []string{"4000", "x:1", "4000:y", ""} {
		if _, err := parseCashFlows("USD", []string{bad}); err == nil {
			t.Errorf("parseCashFlows(%q) succeeded, want error", bad)
		}
	}
}
