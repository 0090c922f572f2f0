package pacsim

import (
	"github.com/lbianchi/pacsim/date"
)

// Convert rescales a price series into the reporting currency using the
// given exchange rate series (instrument currency → reporting currency).
//
// The FX market trades on its own calendar, so the rate series is first
// reindexed onto the instrument's trading days: gaps are forward-filled,
// and a leading gap (instrument days before the first known rate) is
// back-filled with the earliest rate, so that every trading day has one.
//
// When the instrument already trades in the reporting currency the series
// is returned unchanged.
func Convert(ps *PriceSeries, fx *date.History[float64], reporting string) (*PriceSeries, error) {
	if ps.Currency == reporting {
		return ps, nil
	}
	if fx == nil || fx.Len() == 0 {
		return nil, &FxUnavailableError{Base: ps.Currency, Quote: reporting}
	}

	rates := fx.Reindex(ps.Prices.Days(), true)

	prices := &date.History[float64]{}
	for on, p := range ps.Prices.Values() {
		rate, _ := rates.Get(on)
		prices.Append(on, p*rate)
	}

	dividends := &date.History[float64]{}
	for on, d := range ps.Dividends.Values() {
		rate, ok := rates.Get(on)
		if !ok {
			// Dividend ex-dates may fall outside the price calendar.
			rate, _ = rates.ValueAsOf(on)
		}
		dividends.Append(on, d*rate)
	}

	return &PriceSeries{
		Ticker:    ps.Ticker,
		Currency:  reporting,
		Prices:    prices,
		Dividends: dividends,
	}, nil
}
