package pacsim

import (
	"github.com/lbianchi/pacsim/date"
)

// Column is one raw value column from a provider response. Providers are not
// trusted to return a uniform layout: a response may carry an adjusted close,
// a plain close, or several columns for the same ticker.
type Column struct {
	Field  string     // e.g. "adjclose", "close"
	Ticker string     // the ticker the column belongs to, for duplicate detection
	Values []*float64 // aligned with ProviderResponse.Days; nil marks a missing value
}

// Well-known column fields, in normalization priority order.
const (
	FieldAdjClose = "adjclose"
	FieldClose    = "close"
)

// ProviderResponse holds the raw daily data returned by a market data
// provider for a single instrument. It is the untrusted shape the Series
// Normalizer turns into a PriceSeries.
type ProviderResponse struct {
	Ticker    string
	Currency  string // ISO 4217 code of the instrument's trading currency
	Days      []date.Date
	Columns   []Column
	Dividends map[date.Date]float64 // per-unit cash dividends, by ex-date
}

// Provider is the market data boundary. Implementations fetch daily series
// over the network; the engine only ever sees materialized data.
type Provider interface {
	// Chart returns the raw daily series for a ticker from a given day.
	Chart(ticker string, from date.Date) (*ProviderResponse, error)
	// FxHistory returns the base→quote daily exchange rate series from a
	// given day, on the FX market's own calendar.
	FxHistory(base, quote string, from date.Date) (*date.History[float64], error)
}
