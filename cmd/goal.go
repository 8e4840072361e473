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

type goalCmd struct {
	target   float64
	current  float64
	payment  float64
	rate     float64
	years    float64
	currency string
	time     bool
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "plan the saving needed to reach a financial goal" }
func (*goalCmd) Usage() string {
	return `fcs goal -target <amount> [-current <amount>] -rate <rate> -years <years>
fcs goal -time -target <amount> [-current <amount>] -payment <amount> -rate <rate>

  Reports the monthly contribution needed to reach the target, assuming
  monthly compounding at rate/12. With -time it fixes the contribution
  instead and reports how long the goal takes.

Usage Examples:
# Monthly saving for 100,000 in 10 years, starting from 20,000 at 6%.
$ fcs goal -target 100000 -current 20000 -rate 0.06 -years 10

`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.target, "target", 0, "The goal amount.")
	f.Float64Var(&c.current, "current", 0, "The current balance.")
	f.Float64Var(&c.payment, "payment", 0, "The monthly contribution, used with -time.")
	f.Float64Var(&c.rate, "rate", 0, "The expected annual return as a fraction.")
	f.Float64Var(&c.years, "years", 0, "The horizon in years.")
	f.StringVar(&c.currency, "currency", "USD", "The currency of the amounts.")
	f.BoolVar(&c.time, "time", false, "Report the time to reach the goal with a fixed contribution.")
}

func (c *goalCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	goal := fincore.M(c.target, c.currency)
	current := fincore.M(c.current, c.currency)
	var b strings.Builder

	if c.time {
		ttg, err := fincore.TimeToGoalWithContribution(current, goal, fincore.M(c.payment, c.currency), c.rate)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(&b, "# Time to Goal\n\n")
		fmt.Fprintf(&b, "Contributing %s per month at %.2f%% per year, %s grows to the %s goal in **%d months** (%.1f years), ending at %s.\n",
			fincore.M(c.payment, c.currency), 100*c.rate, current, goal, ttg.Months, ttg.Years, ttg.FinalValue)
		printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	payment, err := fincore.RequiredMonthlyContribution(goal, current, c.rate, c.years)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	initial, err := fincore.RequiredInitialInvestment(goal, c.rate, c.years)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(&b, "# Goal Plan\n\n")
	fmt.Fprintf(&b, "Reaching %s in %g years at %.2f%% per year, starting from %s.\n\n", goal, c.years, 100*c.rate, current)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Required monthly contribution | %s |\n", payment)
	fmt.Fprintf(&b, "| Lump sum covering the goal today | %s |\n", initial)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
