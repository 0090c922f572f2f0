package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	charts "github.com/vicanso/go-charts/v2"

	"github.com/lbianchi/pacsim"
	"github.com/lbianchi/pacsim/yahoo"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	currency string
	taxRate  float64
	output   string
	width    int
	height   int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a backtest as a PNG chart" }
func (*chartCmd) Usage() string {
	return `pacbt chart [-c <currency>] [-o <file>] <instrument>...

  Runs the same simulation as 'backtest' and renders the portfolio value
  against the invested capital as a PNG line chart.

Usage Examples:
$ pacbt chart -o pac.png SWDA.MI:2019-01-01:0:100:1

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", pacsim.DefaultCurrency, "Reporting currency for the portfolio")
	f.Float64Var(&c.taxRate, "tax", pacsim.DefaultTaxRate, "Tax rate applied to gains and dividends")
	f.StringVar(&c.output, "o", "pacbt.png", "Output PNG file")
	f.IntVar(&c.width, "w", 1200, "Chart width in pixels")
	f.IntVar(&c.height, "h", 600, "Chart height in pixels")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reqs, err := parseInstruments(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg := pacsim.Config{Currency: c.currency, TaxRate: c.taxRate}
	p, err := pacsim.Backtest(yahoo.New(), reqs, cfg)
	if err != nil {
		return errorf("Error running backtest: %v", err)
	}

	png, err := chartPNG(p, c.width, c.height)
	if err != nil {
		return errorf("Error rendering chart: %v", err)
	}
	if err := os.WriteFile(c.output, png, 0644); err != nil {
		return errorf("Error writing %q: %v", c.output, err)
	}
	fmt.Printf("Chart written to %s\n", c.output)
	return subcommands.ExitSuccess
}

// chartXSplit thins the x axis down to a readable number of date labels.
const chartXSplit = 10

// chartPNG renders the portfolio value and invested capital as a line chart.
func chartPNG(p *pacsim.PortfolioResult, width, height int) ([]byte, error) {
	if len(p.Chart) < 2 {
		return nil, errors.New("not enough data points to chart")
	}

	labels := make([]string, len(p.Chart))
	values := make([]float64, len(p.Chart))
	invested := make([]float64, len(p.Chart))
	for i, pt := range p.Chart {
		labels[i] = pt.Date
		values[i] = pt.Value
		invested[i] = pt.Invested
	}

	painter, err := charts.LineRender([][]float64{values, invested},
		charts.TitleTextOptionFunc(fmt.Sprintf("Accumulation Plan Backtest (%s)", p.Currency)),
		charts.LegendLabelsOptionFunc([]string{"Value", "Invested"}),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: chartXSplit}),
		charts.WidthOptionFunc(width),
		charts.HeightOptionFunc(height),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
