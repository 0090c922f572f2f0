// Package pacsim simulates recurring ("Piano di Accumulo del Capitale")
// investment plans against historical market data and aggregates them into a
// portfolio-level performance report.
//
// The pipeline flows strictly leaf to root: a raw provider response is
// normalized into one clean daily price series (Normalize), converted into
// the reporting currency (Convert), replayed day by day into a simulation
// (Simulate), merged with the other instruments on a union calendar
// (Aggregate), analyzed for underwater periods (Drawdowns) and finally
// rounded and shaped for presentation (BuildReport). Backtest drives the
// whole pipeline for a batch of instrument requests.
//
// Everything is computed fresh per request and nothing is persisted.
package pacsim
