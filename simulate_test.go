package pacsim

import (
	"errors"
	"testing"

	"github.com/lbianchi/pacsim/date"
)

// Two full years of a flat price: every monthly purchase executes on the
// month start, nothing is gained, nothing is taxed.
func TestSimulateFlatSeries(t *testing.T) {
	ps := flatSeries(t, "2019-01-01", 731, 10) // 2019-01-01 .. 2020-12-31
	req := monthlyRequest("TEST.MI", "2019-01-01")

	r, err := Simulate(ps, req, Config{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	checkAlmost(t, "Invested", r.Invested, 24*100)
	checkAlmost(t, "Units", r.Units, 24*100/10.0)
	checkAlmost(t, "FinalValue", r.FinalValue, 2400)
	checkAlmost(t, "NetProfit", r.NetProfit, 0)
	checkAlmost(t, "TotalTax", r.TotalTax, 0)
	checkAlmost(t, "GrossDividends", r.GrossDividends, 0)
}

func TestSimulateQuarterlyFrequency(t *testing.T) {
	ps := flatSeries(t, "2019-01-01", 365, 10)
	req := monthlyRequest("TEST.MI", "2019-01-01")
	req.FrequencyMonths = 3

	r, err := Simulate(ps, req, Config{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	// Anchors: Jan, Apr, Jul, Oct.
	checkAlmost(t, "Invested", r.Invested, 4*100)
}

// A scheduled date falling in a calendar gap defers the purchase to the next
// trading day; the contribution is not lost.
func TestSimulateCatchUpPurchase(t *testing.T) {
	prices := &date.History[float64]{}
	for _, day := range []string{
		"2019-01-01", "2019-01-15",
		// February starts trading only on the 10th.
		"2019-02-10", "2019-02-20",
	} {
		prices.Append(date.MustParse(day), 10)
	}
	ps := &PriceSeries{Ticker: "T", Currency: "EUR", Prices: prices, Dividends: &date.History[float64]{}}

	r, err := Simulate(ps, monthlyRequest("T", "2019-01-01"), Config{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	checkAlmost(t, "Invested", r.Invested, 200)

	// The February purchase must land on the 10th, not the 1st.
	inv, ok := r.Series.Invested.Get(date.MustParse("2019-02-10"))
	if !ok {
		t.Fatal("no point recorded on 2019-02-10")
	}
	checkAlmost(t, "Invested on catch-up day", inv, 200)
	inv, _ = r.Series.Invested.Get(date.MustParse("2019-01-15"))
	checkAlmost(t, "Invested before catch-up", inv, 100)
}

func TestSimulateInitialLumpSum(t *testing.T) {
	ps := flatSeries(t, "2019-01-01", 40, 20)
	req := monthlyRequest("TEST.MI", "2019-01-01")
	req.Initial = 1000

	r, err := Simulate(ps, req, Config{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	// 1000 lump + 2 monthly purchases (Jan 1, Feb 1).
	checkAlmost(t, "Invested", r.Invested, 1000+200)
	checkAlmost(t, "Units", r.Units, 1000/20.0+200/20.0)
}

func TestSimulateDividends(t *testing.T) {
	ps := flatSeries(t, "2019-01-01", 60, 10)
	// 1 per unit, after the first two purchases (20 units held).
	ps.Dividends.Append(date.MustParse("2019-02-15"), 1)

	r, err := Simulate(ps, monthlyRequest("TEST.MI", "2019-01-01"), Config{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	gross := 20.0 // 20 units x 1
	checkAlmost(t, "GrossDividends", r.GrossDividends, gross)
	checkAlmost(t, "DividendTax", r.DividendTax, gross*0.26)
	checkAlmost(t, "NetDividends", r.NetDividends, gross*0.74)
	// Flat price: no capital gain, so the only tax is the dividend tax.
	checkAlmost(t, "TotalTax", r.TotalTax, gross*0.26)

	// Liquidity accrues from the ex-date onwards.
	liq, _ := r.Series.Liquidity.Get(date.MustParse("2019-02-14"))
	checkAlmost(t, "Liquidity before ex-date", liq, 0)
	liq, _ = r.Series.Liquidity.Get(date.MustParse("2019-02-15"))
	checkAlmost(t, "Liquidity on ex-date", liq, gross*0.74)
}

// A dividend paid before any purchase has units == 0 and must not accrue.
// The zero price on the first day also keeps the scheduled purchase from
// executing there: it is deferred to the next day with a positive price.
func TestSimulateDividendWithoutUnits(t *testing.T) {
	prices := &date.History[float64]{}
	prices.Append(date.MustParse("2019-01-10"), 0)
	prices.Append(date.MustParse("2019-01-15"), 10)
	ps := &PriceSeries{Ticker: "T", Currency: "EUR", Prices: prices, Dividends: &date.History[float64]{}}
	ps.Dividends.Append(date.MustParse("2019-01-10"), 5)

	r, err := Simulate(ps, monthlyRequest("T", "2019-01-01"), Config{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	checkAlmost(t, "GrossDividends", r.GrossDividends, 0)
	// The January purchase executed on the 15th.
	checkAlmost(t, "Invested", r.Invested, 100)
	inv, _ := r.Series.Invested.Get(date.MustParse("2019-01-10"))
	checkAlmost(t, "Invested on zero-price day", inv, 0)
}

// Capital gains are taxed only when positive; a declining series pays no
// capital-gains tax at all.
func TestSimulateDecliningSeriesTax(t *testing.T) {
	ps := dailySeries(t, "TEST.MI", "EUR", "2019-01-01", 365, func(i int) float64 { return 100 - float64(i)*0.2 })
	ps.Dividends.Append(date.MustParse("2019-06-03"), 0.5)

	r, err := Simulate(ps, monthlyRequest("TEST.MI", "2019-01-01"), Config{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if r.GrossGain >= 0 {
		t.Fatalf("expected a loss, got gain %v", r.GrossGain)
	}
	checkAlmost(t, "CapitalTax", r.CapitalTax, 0)
	checkAlmost(t, "TotalTax", r.TotalTax, r.DividendTax)
	// A loss is never shrunk by taxation.
	checkAlmost(t, "NetGain", r.NetGain, r.GrossGain)
}

// Contributed cash and units owned never decrease over the daily series.
func TestSimulateMonotonicInvariants(t *testing.T) {
	ps := dailySeries(t, "TEST.MI", "EUR", "2019-01-01", 400, func(i int) float64 {
		// Some noise, always positive.
		return 50 + float64((i*37)%23) - 11
	})
	ps.Dividends.Append(date.MustParse("2019-05-02"), 0.3)

	r, err := Simulate(ps, monthlyRequest("TEST.MI", "2019-01-01"), Config{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	prev := 0.0
	for on, v := range r.Series.Invested.Values() {
		if v < prev {
			t.Fatalf("invested decreased on %s: %v -> %v", on, prev, v)
		}
		prev = v
	}
	prevLiq := 0.0
	for on, v := range r.Series.Liquidity.Values() {
		if v < prevLiq {
			t.Fatalf("liquidity decreased on %s: %v -> %v", on, prevLiq, v)
		}
		prevLiq = v
	}
}

func TestSimulateEmptySeries(t *testing.T) {
	ps := &PriceSeries{Ticker: "T", Currency: "EUR", Prices: &date.History[float64]{}, Dividends: &date.History[float64]{}}
	_, err := Simulate(ps, monthlyRequest("T", "2019-01-01"), Config{})
	var noData *NoDataError
	if !errors.As(err, &noData) {
		t.Fatalf("Simulate on empty series = %v, want NoDataError", err)
	}
}
