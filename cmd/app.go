// Package cmd implements the CLI application to backtest accumulation plans.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lbianchi/pacsim"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&backtestCmd{}, "backtest")
	c.Register(&chartCmd{}, "backtest")
	c.Register(&validateCmd{}, "securities")
}

// parseInstruments parses the positional "TICKER:START:INITIAL:PERIODIC:FREQ"
// arguments of a subcommand.
func parseInstruments(args []string) ([]pacsim.InstrumentRequest, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one instrument spec is required")
	}
	reqs := make([]pacsim.InstrumentRequest, 0, len(args))
	for _, arg := range args {
		req, err := pacsim.ParseInstrument(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid instrument spec %q: %w", arg, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// printMarkdown renders markdown content to the terminal.
// It falls back to plain text when the renderer fails.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

func errorf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
