package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/quantfold/fincore"
)

type annuityCmd struct {
	payment  float64
	rate     float64
	periods  int
	target   float64
	currency string
	pv       bool
}

func (*annuityCmd) Name() string     { return "annuity" }
func (*annuityCmd) Synopsis() string { return "value a stream of regular payments" }
func (*annuityCmd) Usage() string {
	return `fcs annuity -payment <amount> -rate <rate> -periods <n> [-pv]
fcs annuity -target <amount> -rate <rate> -periods <n>

  Values an ordinary annuity, payments at the end of each period, rate per
  period. By default it reports the future value; -pv reports the present
  value instead. With -target it inverts the question and reports the
  payment needed to accumulate the target.

Usage Examples:
# A year of monthly 5,000 payments at 1% per month.
$ fcs annuity -payment 5000 -rate 0.01 -periods 12

# Monthly payment to reach 100,000 in 10 years at 0.5% per month.
$ fcs annuity -target 100000 -rate 0.005 -periods 120

`
}

func (c *annuityCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.payment, "payment", 0, "The payment per period.")
	f.Float64Var(&c.rate, "rate", 0, "The rate per period as a fraction.")
	f.IntVar(&c.periods, "periods", 0, "The number of periods.")
	f.Float64Var(&c.target, "target", 0, "A target future value to solve the payment for.")
	f.StringVar(&c.currency, "currency", "USD", "The currency of the amounts.")
	f.BoolVar(&c.pv, "pv", false, "Report the present value instead of the future value.")
}

func (c *annuityCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder

	switch {
	case c.target > 0:
		payment, err := fincore.AnnuityPayment(fincore.M(c.target, c.currency), c.rate, c.periods)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(&b, "# Annuity Payment\n\n")
		fmt.Fprintf(&b, "To accumulate %s in %d periods at %.2f%% per period, pay **%s** per period.\n",
			fincore.M(c.target, c.currency), c.periods, 100*c.rate, payment)

	case c.pv:
		pv, err := fincore.AnnuityPresentValue(fincore.M(c.payment, c.currency), c.rate, c.periods)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(&b, "# Annuity Present Value\n\n")
		fmt.Fprintf(&b, "%d payments of %s at %.2f%% per period are worth **%s** today.\n",
			c.periods, fincore.M(c.payment, c.currency), 100*c.rate, pv)

	default:
		proj, err := fincore.AnnuityFutureValue(fincore.M(c.payment, c.currency), c.rate, c.periods)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(&b, "# Annuity Future Value\n\n")
		fmt.Fprintf(&b, "%d payments of %s at %.2f%% per period.\n\n", proj.Periods, proj.Payment, 100*proj.Rate)
		fmt.Fprintln(&b, "| | |")
		fmt.Fprintln(&b, "|:---|---:|")
		fmt.Fprintf(&b, "| Future value | %s |\n", proj.FutureValue)
		fmt.Fprintf(&b, "| Total payments | %s |\n", proj.TotalPayments)
		fmt.Fprintf(&b, "| Total interest | %s |\n", proj.TotalInterest.SignedString())
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
