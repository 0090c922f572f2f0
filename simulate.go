package pacsim

import (
	"github.com/lbianchi/pacsim/date"
)

// Simulate replays a recurring investment plan over a currency-normalized
// daily price series, one trading day at a time.
//
// The purchase calendar is derived from the instrument's own trading
// calendar: the series is resampled to month-start anchors and every Nth
// anchor (N = the contribution frequency in months) becomes a scheduled
// purchase date. A scheduled purchase executes on the first trading day at
// or after its date that has a positive price, and never more than once per
// scheduled date; a purchase that cannot execute is deferred, not lost.
//
// Dividends accrue as cash: when a per-unit dividend is present on a day
// where units are owned, the gross amount is taxed at the configured rate
// and the net is added to the accrued liquidity. Dividends never buy units.
func Simulate(ps *PriceSeries, req InstrumentRequest, cfg Config) (*SimulationResult, error) {
	cfg = cfg.withDefaults()
	if ps == nil || ps.Prices == nil || ps.Prices.Len() == 0 {
		return nil, &NoDataError{Ticker: req.Ticker}
	}

	schedule := purchaseSchedule(ps.Prices, req.FrequencyMonths)

	var (
		units       float64
		invested    float64
		grossDiv    float64
		netDiv      float64
		divTax      float64
		next        int  // index of the next scheduled purchase date
		lumpPending = req.Initial > 0
		lastPrice   float64
	)

	series := newSimulationSeries()

	for on, price := range ps.Prices.Values() {
		// The initial lump sum buys at the first available trading price.
		if lumpPending && price > 0 {
			units += req.Initial / price
			invested += req.Initial
			lumpPending = false
		}

		// At most one scheduled purchase per day; a missed date is retried
		// the next day until it executes (catch-up semantics).
		if next < len(schedule) && !on.Before(schedule[next]) && price > 0 {
			units += req.Periodic / price
			invested += req.Periodic
			next++
		}

		if div, ok := ps.Dividends.Get(on); ok && div > 0 && units > 0 {
			gross := units * div
			tax := gross * cfg.TaxRate
			grossDiv += gross
			divTax += tax
			netDiv += gross - tax
		}

		series.Invested.Append(on, invested)
		series.Value.Append(on, units*price)
		series.Liquidity.Append(on, netDiv)
		lastPrice = price
	}

	grossGain := units*lastPrice - invested
	var capitalTax float64
	if grossGain > 0 {
		capitalTax = grossGain * cfg.TaxRate
	}
	netGain := grossGain - capitalTax
	netFinal := invested + netGain + netDiv

	return &SimulationResult{
		Ticker:         req.Ticker,
		Currency:       ps.Currency,
		Series:         series,
		Units:          units,
		Invested:       invested,
		FinalValue:     units * lastPrice,
		GrossDividends: grossDiv,
		NetDividends:   netDiv,
		DividendTax:    divTax,
		GrossGain:      grossGain,
		NetGain:        netGain,
		CapitalTax:     capitalTax,
		TotalTax:       capitalTax + divTax,
		NetFinalValue:  netFinal,
		NetProfit:      netFinal - invested,
	}, nil
}

// purchaseSchedule resamples a trading calendar to month-start anchors and
// keeps every Nth one. The schedule is entirely derived from the
// instrument's own calendar, not from any fixed calendar.
func purchaseSchedule(prices *date.History[float64], everyMonths int) []date.Date {
	first, _ := prices.First()
	last, _ := prices.Latest()

	var schedule []date.Date
	for anchor := first.StartOfMonth(); !anchor.After(last); anchor = anchor.AddMonths(everyMonths) {
		schedule = append(schedule, anchor)
	}
	return schedule
}
