package pacsim

import (
	"math"
	"sort"

	"github.com/lbianchi/pacsim/date"
)

// Drawdowns detects every underwater period in a daily value series and
// returns the worst episodes, most negative depth first, truncated to
// cfg.TopDrawdowns.
//
// A day is underwater when its value sits below the running maximum of the
// series; a maximal contiguous run of such days is one episode. Within a
// run, the trough is the day of deepest percentage drawdown, and the peak is
// the latest day at or before the trough whose value matches the run's
// starting running maximum within cfg.PeakTolerance (relative), which guards
// the match against floating-point noise. Days where the running maximum is
// zero are never underwater: their drawdown is defined as zero.
func Drawdowns(value *date.History[float64], cfg Config) []DrawdownEpisode {
	cfg = cfg.withDefaults()

	n := value.Len()
	if n == 0 {
		return nil
	}
	days := make([]date.Date, 0, n)
	values := make([]float64, 0, n)
	for on, v := range value.Values() {
		days = append(days, on)
		values = append(values, v)
	}

	runmax := make([]float64, n)
	pct := make([]float64, n)
	peak := 0.0
	for i, v := range values {
		if v > peak {
			peak = v
		}
		runmax[i] = peak
		if peak != 0 {
			pct[i] = (v - peak) / peak
		}
	}

	var episodes []DrawdownEpisode
	for i := 0; i < n; {
		if pct[i] >= 0 {
			i++
			continue
		}
		// A maximal underwater run starts here; it ends when the drawdown
		// returns to exactly zero (or the series does).
		start := i
		trough := i
		for i < n && pct[i] < 0 {
			if pct[i] < pct[trough] {
				trough = i
			}
			i++
		}
		episodes = append(episodes, episode(days, values, runmax, pct, start, trough, cfg.PeakTolerance))
	}

	sort.Slice(episodes, func(i, j int) bool { return episodes[i].Depth < episodes[j].Depth })
	if len(episodes) > cfg.TopDrawdowns {
		episodes = episodes[:cfg.TopDrawdowns]
	}
	return episodes
}

// episode builds one DrawdownEpisode from an underwater run [start, trough].
func episode(days []date.Date, values, runmax, pct []float64, start, trough int, tolerance float64) DrawdownEpisode {
	top := runmax[start]

	// The actual peak day precedes the run; walk back from the trough to the
	// latest day whose value matches the run's starting maximum.
	peakIdx := start
	for i := trough; i >= 0; i-- {
		if math.Abs(values[i]-top) <= tolerance*top {
			peakIdx = i
			break
		}
	}

	return DrawdownEpisode{
		Peak:   days[peakIdx],
		Trough: days[trough],
		Depth:  pct[trough] * 100,
		Loss:   values[trough] - values[peakIdx],
	}
}
