package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/lbianchi/pacsim/yahoo"
)

// validateCmd holds the flags for the 'validate' subcommand.
type validateCmd struct{}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check that tickers exist and show their details" }
func (*validateCmd) Usage() string {
	return `pacbt validate <ticker>...

  Looks each ticker up on Yahoo Finance and prints its name, trading
  currency and first trading date. Useful before building a backtest spec.

Usage Examples:
$ pacbt validate SWDA.MI CSSPX.MI

`
}

func (*validateCmd) SetFlags(f *flag.FlagSet) {}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one ticker is required\n")
		return subcommands.ExitUsageError
	}

	provider := yahoo.New()
	status := subcommands.ExitSuccess

	var b strings.Builder
	b.WriteString("| Ticker | Name | Currency | First Trade |\n")
	b.WriteString("|:---|:---|:---|:---|\n")
	for _, ticker := range f.Args() {
		info, err := provider.Lookup(strings.ToUpper(ticker))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: ticker %q is not valid: %v\n", ticker, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", info.Symbol, info.Name, info.Currency, info.FirstTradeDate)
	}

	printMarkdown(b.String())
	return status
}
