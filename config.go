package pacsim

// Default policy values. The tax rate matches the Italian flat rate on
// capital gains and dividends; the peak tolerance absorbs floating-point
// noise when matching a drawdown trough back to its peak.
const (
	DefaultCurrency      = "EUR"
	DefaultTaxRate       = 0.26
	DefaultPeakTolerance = 1e-5 // 0.001%, relative
	DefaultTopDrawdowns  = 5
)

// Config carries the policy knobs of a backtest. The zero value is usable:
// every field falls back to its default.
type Config struct {
	// Currency is the reporting currency every instrument is converted to.
	Currency string
	// TaxRate is the flat rate applied to positive dividend and capital gains.
	TaxRate float64
	// PeakTolerance is the relative tolerance used to match a drawdown
	// trough back to the peak that preceded it.
	PeakTolerance float64
	// TopDrawdowns is how many of the worst underwater episodes to keep.
	TopDrawdowns int
}

// DefaultConfig returns a Config with every knob at its default.
func DefaultConfig() Config {
	return Config{
		Currency:      DefaultCurrency,
		TaxRate:       DefaultTaxRate,
		PeakTolerance: DefaultPeakTolerance,
		TopDrawdowns:  DefaultTopDrawdowns,
	}
}

// withDefaults fills the zero fields of c with their defaults.
func (c Config) withDefaults() Config {
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if c.TaxRate == 0 {
		c.TaxRate = DefaultTaxRate
	}
	if c.PeakTolerance == 0 {
		c.PeakTolerance = DefaultPeakTolerance
	}
	if c.TopDrawdowns == 0 {
		c.TopDrawdowns = DefaultTopDrawdowns
	}
	return c
}
