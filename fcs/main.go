package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/quantfold/fincore/cmd"
)

func main() {
	// Shell completion. Active only when the shell invokes the binary to
	// complete a command line, a no-op otherwise.
	completion().Complete("fcs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	rate := map[string]complete.Predictor{
		"rate":     predict.Nothing,
		"years":    predict.Nothing,
		"amount":   predict.Nothing,
		"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"fv": {Flags: map[string]complete.Predictor{
				"rate": predict.Nothing, "years": predict.Nothing, "amount": predict.Nothing,
				"currency":    predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
				"compounding": predict.Set{"annually", "semi-annually", "quarterly", "monthly", "weekly", "daily", "continuous"},
			}},
			"pv":  {Flags: rate},
			"npv": {Flags: map[string]complete.Predictor{"initial": predict.Nothing, "rate": predict.Nothing, "currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"}}},
			"annuity": {Flags: map[string]complete.Predictor{
				"payment": predict.Nothing, "rate": predict.Nothing, "periods": predict.Nothing,
				"target": predict.Nothing, "pv": predict.Nothing,
				"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			}},
			"goal": {Flags: map[string]complete.Predictor{
				"target": predict.Nothing, "current": predict.Nothing, "payment": predict.Nothing,
				"rate": predict.Nothing, "years": predict.Nothing, "time": predict.Nothing,
				"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			}},
			"scenario": {Flags: rate},
			"risk": {Flags: map[string]complete.Predictor{
				"profile":  predict.Files("*.json"),
				"value":    predict.Nothing,
				"strategy": predict.Set{"none", "forwards", "options", "swaps", "natural"},
				"days":     predict.Nothing,
			}},
			"topic":  {Args: predict.Set{"readme", "tvm", "annuities", "goals", "risk", "hedging", "*"}},
			"assist": {},
		},
	}
}
