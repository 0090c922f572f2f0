package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lbianchi/pacsim"
	"github.com/lbianchi/pacsim/renderer"
	"github.com/lbianchi/pacsim/yahoo"
)

// backtestCmd holds the flags for the 'backtest' subcommand.
type backtestCmd struct {
	currency string
	taxRate  float64
	top      int
	asJSON   bool
}

func (*backtestCmd) Name() string     { return "backtest" }
func (*backtestCmd) Synopsis() string { return "backtest a portfolio of periodic accumulation plans" }
func (*backtestCmd) Usage() string {
	return `pacbt backtest [-c <currency>] [-tax <rate>] [-top <n>] [-json] <instrument>...

  Simulates one accumulation plan per instrument and aggregates them into a
  single portfolio report. Each instrument is a colon-separated spec:

      TICKER:START:INITIAL:PERIODIC:FREQUENCY_MONTHS

  Prices and exchange rates come from Yahoo Finance. Instruments whose data
  cannot be fetched are dropped from the portfolio with a warning.

Usage Examples:
# A monthly 100 EUR plan on a Milan-listed world ETF since 2019.
$ pacbt backtest SWDA.MI:2019-01-01:0:100:1

# Two plans, quarterly contributions on the second one.
$ pacbt backtest SWDA.MI:2019-01-01:0:100:1 CSSPX.MI:2020-06-15:1000:250:3

`
}

func (c *backtestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", pacsim.DefaultCurrency, "Reporting currency for the portfolio")
	f.Float64Var(&c.taxRate, "tax", pacsim.DefaultTaxRate, "Tax rate applied to gains and dividends")
	f.IntVar(&c.top, "top", pacsim.DefaultTopDrawdowns, "Number of worst drawdown episodes to report")
	f.BoolVar(&c.asJSON, "json", false, "Emit the raw result as JSON instead of a rendered report")
}

func (c *backtestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reqs, err := parseInstruments(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg := pacsim.Config{
		Currency:     c.currency,
		TaxRate:      c.taxRate,
		TopDrawdowns: c.top,
	}

	p, err := pacsim.Backtest(yahoo.New(), reqs, cfg)
	if err != nil {
		return errorf("Error running backtest: %v", err)
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return errorf("Error encoding result: %v", err)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderReport(renderer.NewReport(p, reqs)))
	return subcommands.ExitSuccess
}
