// Package cmd implements the CLI application behind the fcs tool.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fvCmd{}, "time value")
	c.Register(&pvCmd{}, "time value")
	c.Register(&npvCmd{}, "time value")

	c.Register(&annuityCmd{}, "annuities")

	c.Register(&goalCmd{}, "planning")
	c.Register(&scenarioCmd{}, "planning")

	c.Register(&riskCmd{}, "risk")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// printMarkdown renders markdown for the terminal. When rendering fails the
// raw markdown is still readable, so it is printed as-is.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
