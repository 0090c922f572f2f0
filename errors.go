package pacsim

import "fmt"

// NoDataError reports that a provider returned an empty or unusable series
// for an instrument. The instrument is dropped from the portfolio; the batch
// goes on.
type NoDataError struct {
	Ticker string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no usable price data for %q", e.Ticker)
}

// FxUnavailableError reports that a currency conversion was required but the
// exchange-rate series could not be obtained.
type FxUnavailableError struct {
	Base, Quote string
}

func (e *FxUnavailableError) Error() string {
	return fmt.Sprintf("no exchange rate series for %s/%s", e.Base, e.Quote)
}

// NoInstrumentsError reports that every instrument in the batch failed, so
// no portfolio can be computed. It is the only per-batch hard failure.
type NoInstrumentsError struct{}

func (e *NoInstrumentsError) Error() string {
	return "no instrument survived the simulation, nothing to aggregate"
}
