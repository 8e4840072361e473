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

type scenarioCmd struct {
	amount   float64
	payment  float64
	rate     float64
	sigma    float64
	years    float64
	goal     float64
	currency string
}

func (*scenarioCmd) Name() string { return "scenario" }
func (*scenarioCmd) Synopsis() string {
	return "project an investment under conservative, expected and optimistic returns"
}
func (*scenarioCmd) Usage() string {
	return `fcs scenario -amount <amount> [-payment <amount>] -rate <rate> [-sigma <sigma>] -years <years> [-goal <amount>]

  Projects the plan under three annual returns one standard deviation apart:
  rate-sigma, rate and rate+sigma, with fixed probabilities 16%, 68% and 16%.
  With -goal, each scenario reports whether its final value meets it.
`
}

func (c *scenarioCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "The initial amount.")
	f.Float64Var(&c.payment, "payment", 0, "The monthly contribution.")
	f.Float64Var(&c.rate, "rate", 0, "The expected annual return as a fraction.")
	f.Float64Var(&c.sigma, "sigma", 0.15, "The standard deviation of the annual return.")
	f.Float64Var(&c.years, "years", 0, "The horizon in years.")
	f.Float64Var(&c.goal, "goal", 0, "An optional goal to check each scenario against.")
	f.StringVar(&c.currency, "currency", "USD", "The currency of the amounts.")
}

func (c *scenarioCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sp, err := fincore.ProjectScenarios(
		fincore.M(c.amount, c.currency),
		fincore.M(c.payment, c.currency),
		c.rate, c.sigma, c.years,
		fincore.M(c.goal, c.currency),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProjectionMarkdown(sp))
	return subcommands.ExitSuccess
}
