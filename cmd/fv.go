package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantfold/fincore"
	"github.com/quantfold/fincore/renderer"
)

type fvCmd struct {
	amount      float64
	rate        float64
	years       float64
	currency    string
	compounding string
}

func (*fvCmd) Name() string     { return "fv" }
func (*fvCmd) Synopsis() string { return "compute the future value of an amount" }
func (*fvCmd) Usage() string {
	return `fcs fv -amount <amount> -rate <rate> -years <years> [-compounding <freq>]

  Compounds an amount forward at an annual rate. With -compounding, the
  nominal rate is compounded at the given frequency (annually,
  semi-annually, quarterly, monthly, weekly, daily, continuous) and the
  effective annual rate is reported.

Usage Examples:
# 100,000 at 8% over 5 years.
$ fcs fv -amount 100000 -rate 0.08 -years 5

`
}

func (c *fvCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "The present amount to grow.")
	f.Float64Var(&c.rate, "rate", 0, "The annual rate as a fraction, e.g. 0.08 for 8%.")
	f.Float64Var(&c.years, "years", 0, "The horizon in years, fractional allowed.")
	f.StringVar(&c.currency, "currency", "USD", "The currency of the amount.")
	f.StringVar(&c.compounding, "compounding", "", "Compounding frequency. Annual single compounding by default.")
}

func (c *fvCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal := fincore.M(c.amount, c.currency)

	if c.compounding != "" {
		freq, err := fincore.ParseCompounding(c.compounding)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		res, err := fincore.CompoundInterest(principal, c.rate, c.years, freq)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.CompoundInterestMarkdown(res))
		return subcommands.ExitSuccess
	}

	res, err := fincore.FutureValueOf(principal, c.rate, c.years)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.FutureValueMarkdown(res))
	return subcommands.ExitSuccess
}
