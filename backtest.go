package pacsim

import (
	"fmt"
	"log"
	"sync"
)

// Backtest runs the whole pipeline for a batch of instrument plans: fetch,
// normalize, convert, simulate, aggregate, analyze, report.
//
// Per-instrument failures (bad request, no data, missing FX series) are
// logged and degrade to dropping that instrument; they never abort the
// batch. Only when every instrument fails does Backtest return an error,
// a NoInstrumentsError.
//
// Instruments share no state, so their simulations run concurrently; the
// aggregator only reads the completed, immutable results.
func Backtest(provider Provider, reqs []InstrumentRequest, cfg Config) (*PortfolioResult, error) {
	cfg = cfg.withDefaults()

	var wg sync.WaitGroup
	simulations := make([]*SimulationResult, len(reqs))
	for i, req := range reqs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := backtestOne(provider, req, cfg)
			if err != nil {
				log.Printf("dropping %s from the portfolio: %v", req.Ticker, err)
				return
			}
			simulations[i] = r
		}()
	}
	wg.Wait()

	// Keep the surviving results in request order.
	results := make([]*SimulationResult, 0, len(simulations))
	for _, r := range simulations {
		if r != nil {
			results = append(results, r)
		}
	}

	p, err := Aggregate(results, cfg)
	if err != nil {
		return nil, err
	}
	return BuildReport(p, cfg), nil
}

// backtestOne runs the per-instrument pipeline.
func backtestOne(provider Provider, req InstrumentRequest, cfg Config) (*SimulationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	raw, err := provider.Chart(req.Ticker, req.Start)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", req.Ticker, err)
	}

	ps, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	if ps.Currency != cfg.Currency {
		fx, err := provider.FxHistory(ps.Currency, cfg.Currency, req.Start)
		if err != nil {
			return nil, &FxUnavailableError{Base: ps.Currency, Quote: cfg.Currency}
		}
		ps, err = Convert(ps, fx, cfg.Currency)
		if err != nil {
			return nil, err
		}
	}

	return Simulate(ps, req, cfg)
}
