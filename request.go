package pacsim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lbianchi/pacsim/date"
)

// MinPeriodic is the smallest periodic contribution accepted.
const MinPeriodic = 10.0

// validFrequencies are the supported contribution frequencies, in months.
var validFrequencies = map[int]string{1: "monthly", 3: "quarterly", 6: "half-yearly", 12: "yearly"}

// InstrumentRequest describes one recurring investment plan on a single
// instrument. It is immutable input: one per instrument in a portfolio.
type InstrumentRequest struct {
	// Ticker identifies the instrument at the market data provider.
	Ticker string
	// Start is the first day of the plan. Price history is fetched from here.
	Start date.Date
	// Initial is an optional lump sum invested at the first available price.
	Initial float64
	// Periodic is the amount invested at every scheduled purchase.
	Periodic float64
	// FrequencyMonths is the number of months between purchases: 1, 3, 6 or 12.
	FrequencyMonths int
}

// Validate checks the request against the plan constraints.
func (r InstrumentRequest) Validate() error {
	if strings.TrimSpace(r.Ticker) == "" {
		return fmt.Errorf("missing ticker")
	}
	if r.Start.IsZero() {
		return fmt.Errorf("%s: missing start date", r.Ticker)
	}
	if r.Initial < 0 {
		return fmt.Errorf("%s: initial amount must be >= 0, got %v", r.Ticker, r.Initial)
	}
	if r.Periodic < MinPeriodic {
		return fmt.Errorf("%s: periodic amount must be >= %v, got %v", r.Ticker, MinPeriodic, r.Periodic)
	}
	if _, ok := validFrequencies[r.FrequencyMonths]; !ok {
		return fmt.Errorf("%s: frequency must be one of 1, 3, 6 or 12 months, got %d", r.Ticker, r.FrequencyMonths)
	}
	return nil
}

// Frequency returns a human name for the contribution frequency.
func (r InstrumentRequest) Frequency() string {
	if name, ok := validFrequencies[r.FrequencyMonths]; ok {
		return name
	}
	return fmt.Sprintf("every %d months", r.FrequencyMonths)
}

// ParseInstrument parses the compact "TICKER:START:INITIAL:PERIODIC:FREQ"
// form used on the command line, e.g. "SWDA.MI:2019-01-01:0:100:1".
func ParseInstrument(s string) (InstrumentRequest, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 5 {
		return InstrumentRequest{}, fmt.Errorf("invalid instrument %q: want TICKER:START:INITIAL:PERIODIC:FREQ", s)
	}
	start, err := date.Parse(parts[1])
	if err != nil {
		return InstrumentRequest{}, fmt.Errorf("invalid instrument %q: %w", s, err)
	}
	initial, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return InstrumentRequest{}, fmt.Errorf("invalid instrument %q: bad initial amount: %w", s, err)
	}
	periodic, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return InstrumentRequest{}, fmt.Errorf("invalid instrument %q: bad periodic amount: %w", s, err)
	}
	freq, err := strconv.Atoi(parts[4])
	if err != nil {
		return InstrumentRequest{}, fmt.Errorf("invalid instrument %q: bad frequency: %w", s, err)
	}
	req := InstrumentRequest{
		Ticker:          strings.ToUpper(strings.TrimSpace(parts[0])),
		Start:           start,
		Initial:         initial,
		Periodic:        periodic,
		FrequencyMonths: freq,
	}
	if err := req.Validate(); err != nil {
		return InstrumentRequest{}, err
	}
	return req, nil
}
