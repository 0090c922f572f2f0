package yahoo

import (
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/lbianchi/pacsim/date"
)

// TickerInfo holds the metadata used to validate a user-supplied ticker
// before running a backtest on it.
type TickerInfo struct {
	Symbol         string
	Name           string
	Currency       string
	FirstTradeDate date.Date // earliest day with available history
}

// Lookup checks that a ticker exists at the provider and returns its
// long name, currency and first available trading day.
func (c *Client) Lookup(ticker string) (*TickerInfo, error) {
	jobj, err := c.chart(ticker, date.Date{})
	if err != nil {
		return nil, fmt.Errorf("ticker %q not found: %w", ticker, err)
	}

	info := &TickerInfo{Symbol: ticker}

	if cur, err := jsonpath.Get("$.chart.result[0].meta.currency", jobj); err == nil {
		if s, ok := cur.(string); ok {
			info.Currency = s
		}
	}
	if name, err := jsonpath.Get("$.chart.result[0].meta.longName", jobj); err == nil {
		if s, ok := name.(string); ok {
			info.Name = s
		}
	}
	if sec, err := jsonpath.Get("$.chart.result[0].meta.firstTradeDate", jobj); err == nil {
		if f, ok := asFloat(sec); ok {
			info.FirstTradeDate = date.Unix(int64(f))
		}
	}

	// Fall back on the search endpoint for a display name.
	if info.Name == "" {
		info.Name = c.searchName(ticker)
	}
	if info.Name == "" {
		info.Name = ticker
	}

	if info.FirstTradeDate.IsZero() {
		return nil, fmt.Errorf("no history available for ticker %q", ticker)
	}
	return info, nil
}

// searchName queries the search endpoint for a human readable name.
// A failure here is cosmetic, so it degrades to an empty string.
func (c *Client) searchName(ticker string) string {
	addr := fmt.Sprintf("%s/v1/finance/search?q=%s&quotesCount=1&newsCount=0", c.BaseURL, url.QueryEscape(ticker))
	var jobj any
	if err := jwget(c.client, addr, &jobj); err != nil {
		return ""
	}
	for _, path := range []string{"$.quotes[0].longname", "$.quotes[0].shortname"} {
		if name, err := jsonpath.Get(path, jobj); err == nil {
			if s, ok := name.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
