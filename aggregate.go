package pacsim

import (
	"slices"

	"github.com/lbianchi/pacsim/date"
)

// Aggregate merges per-instrument simulations into one portfolio result.
//
// The daily columns are aligned on the union of all instruments' trading
// calendars: each instrument's series is forward-filled over its gaps and
// zero-filled before its start, then the contributed, value and liquidity
// columns are summed element-wise.
//
// The scalar totals are plain sums of the instruments' terminal figures,
// never derived from the filled daily series, so forward-filling cannot
// double-count anything.
func Aggregate(results []*SimulationResult, cfg Config) (*PortfolioResult, error) {
	cfg = cfg.withDefaults()
	if len(results) == 0 {
		return nil, &NoInstrumentsError{}
	}

	calendars := make([]*date.History[float64], 0, len(results))
	for _, r := range results {
		calendars = append(calendars, r.Series.Value)
	}
	union := slices.Collect(date.Iterate(calendars...))
	days := func(yield func(date.Date) bool) {
		for _, on := range union {
			if !yield(on) {
				return
			}
		}
	}

	total := newSimulationSeries()
	for _, r := range results {
		for on, v := range r.Series.Invested.Reindex(days, false).Values() {
			total.Invested.AppendAdd(on, v)
		}
		for on, v := range r.Series.Value.Reindex(days, false).Values() {
			total.Value.AppendAdd(on, v)
		}
		for on, v := range r.Series.Liquidity.Reindex(days, false).Values() {
			total.Liquidity.AppendAdd(on, v)
		}
	}

	p := &PortfolioResult{
		Currency:    cfg.Currency,
		Instruments: results,
		Series:      total,
	}
	for _, r := range results {
		p.Invested += r.Invested
		p.GrossValue += r.FinalValue
		p.NetValue += r.NetFinalValue
		p.NetProfit += r.NetProfit
		p.TotalTax += r.TotalTax
	}
	if p.Invested != 0 {
		p.ROI = p.NetProfit / p.Invested * 100
	}
	return p, nil
}
