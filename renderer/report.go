// Package renderer turns backtest results into markdown reports.
//
// It builds a presentation view model from the engine's raw figures, so that
// templates only ever deal with preformatted strings.
package renderer

import (
	"github.com/lbianchi/pacsim"
)

// Report is the view model for the portfolio report template.
type Report struct {
	Currency    string
	Invested    pacsim.Money
	GrossValue  pacsim.Money
	NetValue    pacsim.Money
	NetProfit   pacsim.Money
	TotalTax    pacsim.Money
	ROI         pacsim.Percent
	Instruments []InstrumentRow
	Drawdowns   []DrawdownRow
}

// InstrumentRow is one instrument line in the report.
type InstrumentRow struct {
	Ticker     string
	Plan       string // e.g. "monthly from 2019-01-01"
	Invested   pacsim.Money
	FinalValue pacsim.Money
	Dividends  pacsim.Money
	Taxes      pacsim.Money
	NetProfit  pacsim.Money
	ROI        pacsim.Percent
}

// DrawdownRow is one drawdown episode line in the report.
type DrawdownRow struct {
	Period string
	Depth  pacsim.Percent
	Loss   pacsim.Money
}

// NewReport shapes a PortfolioResult into the report view model. The requests
// describe the instrument plans; they are matched to results by ticker, and a
// missing match leaves the plan column empty.
func NewReport(p *pacsim.PortfolioResult, reqs []pacsim.InstrumentRequest) *Report {
	plans := make(map[string]string, len(reqs))
	for _, req := range reqs {
		plans[req.Ticker] = req.Frequency() + " from " + req.Start.String()
	}

	r := &Report{
		Currency:   p.Currency,
		Invested:   pacsim.M(p.Invested, p.Currency),
		GrossValue: pacsim.M(p.GrossValue, p.Currency),
		NetValue:   pacsim.M(p.NetValue, p.Currency),
		NetProfit:  pacsim.M(p.NetProfit, p.Currency),
		TotalTax:   pacsim.M(p.TotalTax, p.Currency),
		ROI:        pacsim.Percent(p.ROI),
	}

	for _, sim := range p.Instruments {
		roi := 0.0
		if sim.Invested != 0 {
			roi = sim.NetProfit / sim.Invested * 100
		}
		r.Instruments = append(r.Instruments, InstrumentRow{
			Ticker:     sim.Ticker,
			Plan:       plans[sim.Ticker],
			Invested:   pacsim.M(sim.Invested, p.Currency),
			FinalValue: pacsim.M(sim.FinalValue, p.Currency),
			Dividends:  pacsim.M(sim.NetDividends, p.Currency),
			Taxes:      pacsim.M(sim.TotalTax, p.Currency),
			NetProfit:  pacsim.M(sim.NetProfit, p.Currency),
			ROI:        pacsim.Percent(roi),
		})
	}

	for _, e := range p.Drawdowns {
		r.Drawdowns = append(r.Drawdowns, DrawdownRow{
			Period: e.Period(),
			Depth:  pacsim.Percent(e.Depth),
			Loss:   pacsim.M(e.Loss, p.Currency),
		})
	}

	return r
}
