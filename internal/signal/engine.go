package signal

import (
	"math"
	"time"

	"vgs-buy-tracker/internal/domain"
)

// Decorate turns a raw daily price series into the decorated series the
// simulation runs on: trailing SMA, percent deviation from it, the weekly
// downtrend flag, and the combined buy flag.
//
// Rows where the SMA is undefined (the first window-1 dates) are dropped, not
// zero-filled; everything downstream only ever sees rows with a defined SMA.
func Decorate(bars []domain.Bar, window int, threshold float64) ([]domain.DecoratedPoint, error) {
	if len(bars) == 0 {
		return nil, domain.ErrDataUnavailable
	}

	closes := make([]float64, len(bars))
	usable := false
	for i, b := range bars {
		closes[i] = b.Close
		if b.Close > 0 && !math.IsNaN(b.Close) {
			usable = true
		}
	}
	if !usable {
		return nil, domain.ErrDataUnavailable
	}

	sma := SMASeries(closes, window)

	points := make([]domain.DecoratedPoint, 0, len(bars))
	for i, b := range bars {
		if math.IsNaN(sma[i]) || math.IsNaN(b.Close) || b.Close <= 0 {
			continue
		}
		points = append(points, domain.DecoratedPoint{
			Date:        b.Date,
			Close:       b.Close,
			SMA:         sma[i],
			PctBelowSMA: (b.Close - sma[i]) / sma[i] * 100,
		})
	}
	if len(points) == 0 {
		return nil, domain.ErrDataUnavailable
	}

	markDowntrends(points)

	for i := range points {
		points[i].Buy = points[i].PctBelowSMA < threshold || points[i].Downtrend
	}

	return points, nil
}

// SMASeries computes the trailing simple moving average over a fixed,
// inclusive window. Positions with fewer than window observations behind
// them are NaN. The window never looks forward.
func SMASeries(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	if window <= 0 || len(values) < window {
		return out
	}

	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

type week struct {
	anchor time.Time // the Friday this week resamples to
	close  float64   // last close on or before that Friday
}

// markDowntrends resamples the daily series to Friday-anchored weeks, computes
// weekly percent returns, and flags weeks with three consecutive negative
// returns. The flag is set only on the daily row whose date is exactly the
// weekly anchor date; other days of a flagged week stay false.
func markDowntrends(points []domain.DecoratedPoint) {
	weeks := resampleWeekly(points)
	if len(weeks) < 4 {
		return
	}

	// returns[w] is defined for w >= 1
	returns := make([]float64, len(weeks))
	for w := 1; w < len(weeks); w++ {
		prev := weeks[w-1].close
		returns[w] = (weeks[w].close - prev) / prev * 100
	}

	flagged := make(map[time.Time]bool)
	for w := 3; w < len(weeks); w++ {
		if returns[w] < 0 && returns[w-1] < 0 && returns[w-2] < 0 {
			flagged[weeks[w].anchor] = true
		}
	}

	for i := range points {
		if flagged[points[i].Date] {
			points[i].Downtrend = true
		}
	}
}

// resampleWeekly groups the daily series into weeks ending on Friday and
// keeps the last close of each week. Weeks with no observations are simply
// absent, matching a last-value resample of a trading calendar.
func resampleWeekly(points []domain.DecoratedPoint) []week {
	var weeks []week
	for _, p := range points {
		anchor := fridayAnchor(p.Date)
		if n := len(weeks); n > 0 && weeks[n-1].anchor.Equal(anchor) {
			weeks[n-1].close = p.Close
			continue
		}
		weeks = append(weeks, week{anchor: anchor, close: p.Close})
	}
	return weeks
}

// fridayAnchor returns the Friday on or after d. Saturdays and Sundays roll
// into the following week, the same as a W-FRI resample.
func fridayAnchor(d time.Time) time.Time {
	offset := (int(time.Friday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}
