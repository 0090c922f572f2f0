// Package yahoo implements the market data provider boundary on top of the
// Yahoo Finance chart and search APIs.
//
// The chart payload is not trusted to be uniform: the adjusted close block
// may be missing, quote blocks may be duplicated, and individual days may
// carry null prices. The package extracts the candidate columns leniently
// (jsonpath over a decoded any-tree) and hands them over as a raw
// pacsim.ProviderResponse; committing to one column is the normalizer's job.
package yahoo

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/lbianchi/pacsim"
	"github.com/lbianchi/pacsim/date"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client talks to the Yahoo Finance API. Responses are cached on disk with
// a daily expiry, so repeated backtests of the same tickers hit the network
// at most once a day.
type Client struct {
	BaseURL string
	client  *http.Client
}

// New returns a Client with the daily disk-cached transport.
func New() *Client {
	return &Client{BaseURL: defaultBaseURL, client: daily()}
}

// NewWithClient returns a Client using the given http.Client, for tests.
func NewWithClient(baseURL string, client *http.Client) *Client {
	return &Client{BaseURL: baseURL, client: client}
}

var _ pacsim.Provider = (*Client)(nil)

// Chart returns the raw daily series for a ticker from a given day.
func (c *Client) Chart(ticker string, from date.Date) (*pacsim.ProviderResponse, error) {
	jobj, err := c.chart(ticker, from)
	if err != nil {
		return nil, err
	}
	return parseChart(ticker, jobj)
}

// FxHistory returns the base→quote daily exchange rate series. Yahoo quotes
// currency pairs as chart symbols of the form "EURUSD=X".
func (c *Client) FxHistory(base, quote string, from date.Date) (*date.History[float64], error) {
	symbol := base + quote + "=X"
	raw, err := c.Chart(symbol, from)
	if err != nil {
		return nil, fmt.Errorf("fetching fx %s/%s: %w", base, quote, err)
	}
	ps, err := pacsim.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("fetching fx %s/%s: %w", base, quote, err)
	}
	return ps.Prices, nil
}

// chart fetches and decodes the chart endpoint into an any-tree.
func (c *Client) chart(symbol string, from date.Date) (any, error) {
	period1 := int64(0) // full history when no start is given
	if !from.IsZero() {
		period1 = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC).Unix()
	}
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d&events=div",
		c.BaseURL, url.PathEscape(symbol), period1, time.Now().Unix())

	var jobj any
	if err := jwget(c.client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch chart for %q: %w", symbol, err)
	}
	if msg, err := jsonpath.Get("$.chart.error.description", jobj); err == nil && msg != nil {
		return nil, fmt.Errorf("chart error for %q: %v", symbol, msg)
	}
	return jobj, nil
}

// parseChart turns a decoded chart payload into the raw provider shape.
func parseChart(ticker string, jobj any) (*pacsim.ProviderResponse, error) {
	raw := &pacsim.ProviderResponse{
		Ticker:    ticker,
		Dividends: make(map[date.Date]float64),
	}

	if cur, err := jsonpath.Get("$.chart.result[0].meta.currency", jobj); err == nil {
		if s, ok := cur.(string); ok {
			raw.Currency = s
		}
	}

	stamps, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		// An empty result carries no timestamps at all.
		return raw, nil
	}
	for _, ts := range asList(stamps) {
		sec, ok := asFloat(ts)
		if !ok {
			return nil, fmt.Errorf("chart for %q: timestamp is not a number: %v", ticker, ts)
		}
		raw.Days = append(raw.Days, date.Unix(int64(sec)))
	}

	// The adjusted close block is optional and the quote block may appear
	// several times for the same ticker; collect every candidate column.
	if cols, err := jsonpath.Get("$.chart.result[0].indicators.adjclose[*].adjclose", jobj); err == nil {
		for _, col := range asList(cols) {
			raw.Columns = append(raw.Columns, column(pacsim.FieldAdjClose, ticker, col))
		}
	}
	if cols, err := jsonpath.Get("$.chart.result[0].indicators.quote[*].close", jobj); err == nil {
		for _, col := range asList(cols) {
			raw.Columns = append(raw.Columns, column(pacsim.FieldClose, ticker, col))
		}
	}

	if divs, err := jsonpath.Get("$.chart.result[0].events.dividends", jobj); err == nil {
		if m, ok := divs.(map[string]any); ok {
			for _, v := range m {
				entry, ok := v.(map[string]any)
				if !ok {
					continue
				}
				sec, okSec := asFloat(entry["date"])
				amount, okAmount := asFloat(entry["amount"])
				if okSec && okAmount {
					raw.Dividends[date.Unix(int64(sec))] = amount
				}
			}
		}
	}

	return raw, nil
}

// column converts a decoded JSON array into a raw value column, keeping
// nulls as nil so that the normalizer can drop them.
func column(field, ticker string, values any) pacsim.Column {
	col := pacsim.Column{Field: field, Ticker: ticker}
	for _, v := range asList(values) {
		if f, ok := asFloat(v); ok {
			col.Values = append(col.Values, &f)
		} else {
			col.Values = append(col.Values, nil)
		}
	}
	return col
}

// asList flattens the jsonpath result: the library is never clear about
// whether it returns a list of answers or a single one.
func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	if v == nil {
		return nil
	}
	return []any{v}
}

// asFloat reads a JSON number that may arrive as float64 or string.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
