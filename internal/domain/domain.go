package domain

import (
	"errors"
	"time"
)

// DefaultSymbol is the single tracked ETF.
const DefaultSymbol = "VGS.AX"

// LookbackDays is the trailing window of daily history the tracker works on.
const LookbackDays = 365

// TableRows is how many decorated rows the dashboard table shows.
const TableRows = 90

// ErrDataUnavailable is returned when the price feed produced nothing usable:
// an empty series or bars without a close price.
var ErrDataUnavailable = errors.New("no valid price data available")

// Params are the user-adjustable inputs to the signal and simulation engines.
// Changing any of them re-runs the whole pipeline from scratch.
type Params struct {
	SMAWindow        int     `json:"sma_window"`
	Threshold        float64 `json:"threshold"`
	InvestmentAmount float64 `json:"investment_amount"`
}

// Parameter domains for the dashboard sliders.
const (
	MinSMAWindow = 5
	MaxSMAWindow = 60
	MinThreshold = -10.0
	MaxThreshold = -1.0
	MinAmount    = 500.0
	MaxAmount    = 10000.0
)

// DefaultParams returns the dashboard's initial slider positions.
func DefaultParams() Params {
	return Params{
		SMAWindow:        20,
		Threshold:        -3,
		InvestmentAmount: 1500,
	}
}

// Clamp forces each parameter into its allowed domain.
func (p Params) Clamp() Params {
	if p.SMAWindow < MinSMAWindow {
		p.SMAWindow = MinSMAWindow
	}
	if p.SMAWindow > MaxSMAWindow {
		p.SMAWindow = MaxSMAWindow
	}
	if p.Threshold < MinThreshold {
		p.Threshold = MinThreshold
	}
	if p.Threshold > MaxThreshold {
		p.Threshold = MaxThreshold
	}
	if p.InvestmentAmount < MinAmount {
		p.InvestmentAmount = MinAmount
	}
	if p.InvestmentAmount > MaxAmount {
		p.InvestmentAmount = MaxAmount
	}
	return p
}

// DecoratedPoint is one row of the decorated series: a daily close extended
// with the moving average and the derived signal fields. Rows only exist for
// dates where the SMA is defined.
type DecoratedPoint struct {
	Date        time.Time `json:"date"`
	Close       float64   `json:"close"`
	SMA         float64   `json:"sma"`
	PctBelowSMA float64   `json:"pct_below_sma"`
	Downtrend   bool      `json:"downtrend"`
	Buy         bool      `json:"buy"`
}

// SimulationResult is the aggregate outcome of buying a fixed amount on every
// buy-flagged day. GainPct is nil when nothing was invested: a percentage
// gain on zero capital is undefined, not zero.
type SimulationResult struct {
	TotalInvested float64  `json:"total_invested"`
	TotalUnits    float64  `json:"total_units"`
	CurrentValue  float64  `json:"current_value"`
	Gain          float64  `json:"gain"`
	GainPct       *float64 `json:"gain_pct,omitempty"`
}

// Dashboard is the single-page view: metrics, the tail of the decorated
// series, and the chart series with buy markers.
type Dashboard struct {
	Symbol     string           `json:"symbol"`
	Params     Params           `json:"params"`
	Synthetic  bool             `json:"synthetic"`
	Simulation SimulationResult `json:"simulation"`
	Table      []DecoratedPoint `json:"table"`
	Chart      ChartSeries      `json:"chart"`
}

// ChartSeries carries the close and SMA lines plus marker points at
// buy-flagged dates, with the vertical axis bounds to render against.
type ChartSeries struct {
	Dates      []time.Time  `json:"dates"`
	Close      []float64    `json:"close"`
	SMA        []float64    `json:"sma"`
	BuyMarkers []ChartPoint `json:"buy_markers"`
	YMin       float64      `json:"y_min"`
	YMax       float64      `json:"y_max"`
}

// ChartPoint is a single marker on the chart.
type ChartPoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}
