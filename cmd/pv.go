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

type pvCmd struct {
	amount   float64
	rate     float64
	years    float64
	currency string
}

func (*pvCmd) Name() string     { return "pv" }
func (*pvCmd) Synopsis() string { return "compute the present value of a future amount" }
func (*pvCmd) Usage() string {
	return `fcs pv -amount <amount> -rate <rate> -years <years>

  Discounts a future amount back to today at an annual rate. The exact
  inverse of fv at the same rate and horizon.
`
}

func (c *pvCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "The future amount to discount.")
	f.Float64Var(&c.rate, "rate", 0, "The annual discount rate as a fraction.")
	f.Float64Var(&c.years, "years", 0, "The horizon in years, fractional allowed.")
	f.StringVar(&c.currency, "currency", "USD", "The currency of the amount.")
}

func (c *pvCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := fincore.PresentValueOf(fincore.M(c.amount, c.currency), c.rate, c.years)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PresentValueMarkdown(res))
	return subcommands.ExitSuccess
}
