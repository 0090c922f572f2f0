package pacsim

import (
	"github.com/lbianchi/pacsim/date"
	"github.com/shopspring/decimal"
)

// round2 rounds a monetary or percentage figure to 2 decimal places for
// presentation. The engine itself always computes on unrounded values.
func round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// totalValue is the portfolio value used for drawdowns and charting:
// mark-to-market position value plus the dividend cash accrued so far.
func totalValue(s SimulationSeries) *date.History[float64] {
	out := &date.History[float64]{}
	for on, v := range s.Value.Values() {
		liq, _ := s.Liquidity.Get(on)
		out.Append(on, v+liq)
	}
	return out
}

// BuildReport shapes a PortfolioResult for presentation: it computes the
// ranked drawdown episodes, builds the chart-ready series, and rounds every
// monetary and percentage figure to 2 decimal places.
func BuildReport(p *PortfolioResult, cfg Config) *PortfolioResult {
	cfg = cfg.withDefaults()

	value := totalValue(p.Series)
	p.Drawdowns = Drawdowns(value, cfg)
	for i, e := range p.Drawdowns {
		p.Drawdowns[i].Depth = round2(e.Depth)
		p.Drawdowns[i].Loss = round2(e.Loss)
	}

	p.Chart = chartSeries(value, p.Series.Invested)

	p.Invested = round2(p.Invested)
	p.GrossValue = round2(p.GrossValue)
	p.NetValue = round2(p.NetValue)
	p.NetProfit = round2(p.NetProfit)
	p.ROI = round2(p.ROI)
	p.TotalTax = round2(p.TotalTax)
	return p
}

// chartSeries flattens the aggregate daily series into plain chart points,
// skipping the leading days where no instrument has accrued any value yet.
func chartSeries(value, invested *date.History[float64]) []ChartPoint {
	var points []ChartPoint
	for on, v := range value.Values() {
		if len(points) == 0 && v == 0 {
			continue
		}
		inv, _ := invested.Get(on)
		points = append(points, ChartPoint{
			Date:     on.String(),
			Value:    round2(v),
			Invested: round2(inv),
		})
	}
	return points
}
