package pacsim

import (
	"github.com/lbianchi/pacsim/date"
)

// Normalize extracts exactly one clean price series (and the dividend series,
// when present) from a raw provider response.
//
// Providers report the same data under shifting layouts, so the choice of
// column is a fixed policy, applied once here and nowhere else:
//
//  1. an adjusted (total-return) close column is preferred,
//  2. a plain close column is the fallback,
//  3. among duplicate candidates the first one wins.
//
// Missing values inside the chosen column are dropped: a day the provider
// could not price simply does not exist in the output calendar.
func Normalize(raw *ProviderResponse) (*PriceSeries, error) {
	if raw == nil || len(raw.Days) == 0 {
		return nil, &NoDataError{Ticker: tickerOf(raw)}
	}

	col, ok := pickColumn(raw.Columns, FieldAdjClose)
	if !ok {
		col, ok = pickColumn(raw.Columns, FieldClose)
	}
	if !ok {
		return nil, &NoDataError{Ticker: raw.Ticker}
	}

	prices := &date.History[float64]{}
	for i, on := range raw.Days {
		if i >= len(col.Values) || col.Values[i] == nil {
			continue // provider-malformed entry, normalized away
		}
		prices.Append(on, *col.Values[i])
	}
	if prices.Len() == 0 {
		return nil, &NoDataError{Ticker: raw.Ticker}
	}

	dividends := &date.History[float64]{}
	for on, amount := range raw.Dividends {
		if amount > 0 {
			dividends.Append(on, amount)
		}
	}

	return &PriceSeries{
		Ticker:    raw.Ticker,
		Currency:  raw.Currency,
		Prices:    prices,
		Dividends: dividends,
	}, nil
}

// pickColumn returns the first column carrying the wanted field.
func pickColumn(cols []Column, field string) (Column, bool) {
	for _, c := range cols {
		if c.Field == field {
			return c, true
		}
	}
	return Column{}, false
}

func tickerOf(raw *ProviderResponse) string {
	if raw == nil {
		return ""
	}
	return raw.Ticker
}
