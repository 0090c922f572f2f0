package pacsim

import (
	"math"
	"testing"

	"github.com/lbianchi/pacsim/date"
)

// dailySeries builds a PriceSeries of n consecutive calendar days starting
// at start, pricing day i with price(i).
func dailySeries(t *testing.T, ticker, currency, start string, n int, price func(i int) float64) *PriceSeries {
	t.Helper()
	prices := &date.History[float64]{}
	on := date.MustParse(start)
	for i := 0; i < n; i++ {
		prices.Append(on, price(i))
		on = on.Add(1)
	}
	return &PriceSeries{
		Ticker:    ticker,
		Currency:  currency,
		Prices:    prices,
		Dividends: &date.History[float64]{},
	}
}

// flatSeries is a dailySeries with a constant price.
func flatSeries(t *testing.T, start string, n int, price float64) *PriceSeries {
	t.Helper()
	return dailySeries(t, "TEST.MI", "EUR", start, n, func(int) float64 { return price })
}

// monthlyRequest is the default plan used across tests: no lump sum, 100
// per month, starting with the series.
func monthlyRequest(ticker, start string) InstrumentRequest {
	return InstrumentRequest{
		Ticker:          ticker,
		Start:           date.MustParse(start),
		Periodic:        100,
		FrequencyMonths: 1,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// checkAlmost fails the test when got and want differ beyond noise.
func checkAlmost(t *testing.T, what string, got, want float64) {
	t.Helper()
	if !almostEqual(got, want) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}
