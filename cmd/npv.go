package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/quantfold/fincore"
	"github.com/quantfold/fincore/renderer"
)

type npvCmd struct {
	initial  float64
	rate     float64
	currency string
}

func (*npvCmd) Name() string     { return "npv" }
func (*npvCmd) Synopsis() string { return "compute the net present value of a cash flow stream" }
func (*npvCmd) Usage() string {
	return `fcs npv -initial <amount> -rate <rate> <amount>:<years> [<amount>:<years>...]

  Discounts each cash flow (written amount:years) and subtracts the initial
  investment. Negative amounts are outflows.

Usage Examples:
# 10,000 invested, 4,000 back each of the next 3 years, at 8%.
$ fcs npv -initial 10000 -rate 0.08 4000:1 4000:2 4000:3

`
}

func (c *npvCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.initial, "initial", 0, "The initial investment.")
	f.Float64Var(&c.rate, "rate", 0, "The annual discount rate as a fraction.")
	f.StringVar(&c.currency, "currency", "USD", "The currency of the amounts.")
}

func (c *npvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	flows, err := parseCashFlows(c.currency, f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if len(flows) == 0 {
		fmt.Fprintln(os.Stderr, "at least one cash flow is required, written <amount>:<years>")
		return subcommands.ExitUsageError
	}

	res, err := fincore.NetPresentValue(fincore.M(c.initial, c.currency), c.rate, flows)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.NPVMarkdown(res))
	return subcommands.ExitSuccess
}

// parseCashFlows parses command-line arguments of the form <amount>:<years>.
func parseCashFlows(currency string, args []string) ([]fincore.CashFlow, error) {
	var flows []fincore.CashFlow
	for _, arg := range args {
		amount, years, found := strings.Cut(arg, ":")
		if !found {
			return nil, fmt.Errorf("invalid cash flow %q: want <amount>:<years>", arg)
		}
		a, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cash flow amount %q: %w", amount, err)
		}
		y, err := strconv.ParseFloat(years, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cash flow years %q: %w", years, err)
		}
		flows = append(flows, fincore.CashFlow{Amount: fincore.M(a, currency), Years: y})
	}
	return flows, nil
}
