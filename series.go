package pacsim

import (
	"github.com/lbianchi/pacsim/date"
)

// PriceSeries is one clean daily price series for an instrument, with its
// sparse per-unit dividend series. It is the output of the Series Normalizer
// and, after currency conversion, the input of the simulator.
//
// Days without an entry are calendar gaps: there are no explicit nulls.
type PriceSeries struct {
	Ticker    string
	Currency  string
	Prices    *date.History[float64]
	Dividends *date.History[float64] // per-unit amounts; zero entries are absent
}

// SimulationSeries is the daily time series of a simulation: how much cash
// was contributed, what the position was worth, and how much net dividend
// cash had accrued, day by day. The three histories share the same calendar.
type SimulationSeries struct {
	Invested  *date.History[float64]
	Value     *date.History[float64]
	Liquidity *date.History[float64]
}

func newSimulationSeries() SimulationSeries {
	return SimulationSeries{
		Invested:  &date.History[float64]{},
		Value:     &date.History[float64]{},
		Liquidity: &date.History[float64]{},
	}
}

// SimulationResult is the terminal outcome of one instrument's plan.
type SimulationResult struct {
	Ticker   string
	Currency string
	Series   SimulationSeries

	Units          float64 // units owned at the end
	Invested       float64 // total cash contributed
	FinalValue     float64 // mark-to-market value of the position at the end
	GrossDividends float64
	NetDividends   float64
	DividendTax    float64
	GrossGain      float64 // FinalValue - Invested
	NetGain        float64
	CapitalTax     float64 // tax on GrossGain, zero when the gain is not positive
	TotalTax       float64 // CapitalTax + DividendTax
	NetFinalValue  float64 // Invested + NetGain + NetDividends
	NetProfit      float64 // NetFinalValue - Invested
}

// ChartPoint is one chart-ready day of the aggregate portfolio, shaped for
// a presentation layer that knows nothing about time series.
type ChartPoint struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Value    float64 `json:"value"`
	Invested float64 `json:"invested"`
}

// DrawdownEpisode is one maximal underwater period of the portfolio value:
// from the peak preceding the decline to the trough where it bottomed.
type DrawdownEpisode struct {
	Peak   date.Date
	Trough date.Date
	Depth  float64 // percentage, negative
	Loss   float64 // monetary, negative
}

// periodLabelFormat is the human readable form used in reports.
const periodLabelFormat = "02/01/06"

// Period returns the episode as a "dd/mm/yy - dd/mm/yy" label.
func (e DrawdownEpisode) Period() string {
	return e.Peak.Format(periodLabelFormat) + " - " + e.Trough.Format(periodLabelFormat)
}

// PortfolioResult is the aggregate outcome of a whole batch of instrument
// plans. It is built fresh per request and never persisted.
type PortfolioResult struct {
	Currency    string
	Instruments []*SimulationResult
	Series      SimulationSeries // aggregate daily series on the union calendar

	Invested   float64
	GrossValue float64 // sum of final position values
	NetValue   float64 // sum of net final values (after taxes, with dividends)
	NetProfit  float64
	ROI        float64 // percent; 0 when nothing was invested
	TotalTax   float64

	Drawdowns []DrawdownEpisode
	Chart     []ChartPoint
}
