package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/quantfold/fincore"
	"github.com/quantfold/fincore/renderer"
)

type riskCmd struct {
	profile  string
	value    float64
	strategy string
	days     int
	hedge    float64
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "analyze the currency risk of a portfolio profile" }
func (*riskCmd) Usage() string {
	return `fcs risk -profile <file.json> [-value <amount>] [-strategy <name> [-days <n>]]

  Reads a risk profile (see 'fcs topic risk' for the format), computes the
  portfolio volatility, the 95% value at risk and the hedging
  recommendations. With -strategy, it additionally prices a hedge under
  that strategy over -days.

Usage Examples:
$ fcs risk -profile portfolio.json
$ fcs risk -profile portfolio.json -strategy forwards -days 90

`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.profile, "profile", "portfolio.json", "Path to the risk profile JSON file.")
	f.Float64Var(&c.value, "value", 0, "The portfolio value in the base currency. The total exposure by default.")
	f.StringVar(&c.strategy, "strategy", "", "A hedging strategy to price (forwards, options, swaps, natural).")
	f.IntVar(&c.days, "days", 365, "The hedging horizon in days, used with -strategy.")
	f.Float64Var(&c.hedge, "hedge", 100, "The percentage of the portfolio to hedge, used with -strategy.")
}

func (c *riskCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile, value, err := decodeProfile(c.profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load profile: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.value > 0 {
		value = fincore.M(c.value, value.Currency())
	}

	analysis, err := profile.AnalyzePortfolioRisk(value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RiskMarkdown(profile, analysis))

	if c.strategy != "" {
		strategy, err := fincore.ParseHedgingStrategy(c.strategy)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		if err := profile.SetHedgingPercentage(c.hedge); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		cost, err := profile.CalculateHedgingCost(value, strategy, c.days)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(fmt.Sprintf("Hedging %.0f%% of the portfolio with **%s** over %d days costs %s.\n",
			c.hedge, strategy, c.days, cost))
	}

	return subcommands.ExitSuccess
}

// decodeProfile reads a risk profile from a JSON document. It returns the
// profile and the portfolio value, which defaults to the total exposure when
// the document carries no value field.
func decodeProfile(filename string) (*fincore.CurrencyRiskProfile, fincore.Money, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fincore.Money{}, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fincore.Money{}, fmt.Errorf("invalid JSON in %q: %w", filename, err)
	}

	assetID, err := jstring(jobj, "$.assetId")
	if err != nil {
		return nil, fincore.Money{}, err
	}
	base, err := jstring(jobj, "$.baseCurrency")
	if err != nil {
		return nil, fincore.Money{}, err
	}

	profile, err := fincore.NewCurrencyRiskProfile(assetID, base)
	if err != nil {
		return nil, fincore.Money{}, err
	}

	jexposures, err := jsonpath.Get("$.exposures", jobj)
	if err != nil {
		return nil, fincore.Money{}, fmt.Errorf("missing exposures: %w", err)
	}
	jlist, ok := jexposures.([]any)
	if !ok {
		return nil, fincore.Money{}, fmt.Errorf("exposures is not an array but %T", jexposures)
	}
	for i, je := range jlist {
		e, ok := je.(map[string]any)
		if !ok {
			return nil, fincore.Money{}, fmt.Errorf("exposure %d is not an object but %T", i, je)
		}
		currency, _ := e["currency"].(string)
		exposure := fincore.CurrencyExposure{
			Currency:    currency,
			Amount:      fincore.M(jsonFloat(e["amount"]), base),
			Percentage:  jsonFloat(e["percentage"]),
			Volatility:  jsonFloat(e["volatility"]),
			Correlation: jsonFloat(e["correlation"]),
		}
		if err := profile.SetExposure(exposure); err != nil {
			return nil, fincore.Money{}, fmt.Errorf("exposure %d: %w", i, err)
		}
	}

	value := profile.TotalExposure()
	if v, err := jsonpath.Get("$.value", jobj); err == nil {
		value = fincore.M(jsonFloat(v), base)
	}
	return profile, value, nil
}

// jstring extracts a string at a JSON path.
func jstring(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("missing %s: %w", path, err)
	}
	// jsonpath sometimes wraps a single answer in a list, keep the first one
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string but %T", path, jval)
	}
	return s, nil
}

// jsonFloat reads a JSON number, zero when absent or of another type.
func jsonFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}
