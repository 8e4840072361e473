package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quantfold/fincore"
)

const profileJSON = `{
	"assetId": "portfolio-1",
	"baseCurrency": "EUR",
	"value": 100000,
	"exposures": [
		{"currency": "USD", "amount": 50000, "percentage": 50, "volatility": 0.12, "correlation": 0.6},
		{"currency": "GBP", "amount": 30000, "percentage": 30, "volatility": 0.10, "correlation": 0.5}
	]
}`

func TestDecodeProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte(profileJSON), 0644); err != nil {
		t.Fatal(err)
	}

	profile, value, err := decodeProfile(path)
	if err != nil {
		t.Fatalf("decodeProfile() failed: %v", err)
	}
	if !value.Equal(fincore.M(100000, "EUR")) {
		t.Errorf("value = %s, want €100,000.00", value)
	}
	if got := profile.ExposedCurrencies(); len(got) != 2 {
		t.Fatalf("got %d exposures, want 2", len(got))
	}
	usd, ok := profile.Exposure("USD")
	if !ok {
		t.Fatal("USD exposure missing")
	}
	if usd.Volatility != 0.12 || usd.Correlation != 0.6 || usd.Percentage != 50 {
		t.Errorf("USD exposure = %+v", usd)
	}
	if !usd.Amount.Equal(fincore.M(50000, "EUR")) {
		t.Errorf("USD amount = %s, want €50,000.00 in the base currency", usd.Amount)
	}
}

func TestDecodeProfile_DefaultsValueToTotalExposure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	doc := `{"assetId": "a", "baseCurrency": "USD",
		"exposures": [{"currency": "EUR", "amount": 25000, "percentage": 25, "volatility": 0.1, "correlation": 0.2}]}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	_, value, err := decodeProfile(path)
	if err != nil {
		t.Fatalf("decodeProfile() failed: %v", err)
	}
	if !value.Equal(fincore.M(25000, "USD")) {
		t.Errorf("value = %s, want $25,000.00", value)
	}
}

func TestDecodeProfile_Errors(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing assetId", `{"baseCurrency": "EUR", "exposures": []}`},
		{"missing exposures", `{"assetId": "a", "baseCurrency": "EUR"}`},
		{"bad currency", `{"assetId": "a", "baseCurrency": "EUR",
			"exposures": [{"currency": "ZZZ", "percentage": 10}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".json")
			if err := os.WriteFile(path, []byte(tc.doc), 0644); err != nil {
				t.Fatal(err)
			}
			if _, _, err := decodeProfile(path); err == nil {
				t.Error("decodeProfile() succeeded, want error")
			}
		})
	}
}
