package service

import (
	"context"
	"time"

	"vgs-buy-tracker/internal/domain"
	"vgs-buy-tracker/internal/signal"
	"vgs-buy-tracker/internal/simulation"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// HistoryLoader is the data-loading seam the dashboard sits behind.
type HistoryLoader interface {
	GetHistory(ctx context.Context) (domain.History, error)
}

// DashboardService re-runs the whole pipeline on every call: load history,
// decorate, simulate, assemble the view. No intermediate signal state is kept
// between calls; only the raw fetch is cached, one layer down.
type DashboardService struct {
	tracer  trace.Tracer
	history HistoryLoader
}

func NewDashboardService(tracer trace.Tracer, history HistoryLoader) *DashboardService {
	return &DashboardService{tracer: tracer, history: history}
}

// GetDashboard computes the full single-page view. yMin/yMax override the
// chart's vertical bounds; nil derives them from the data.
func (s *DashboardService) GetDashboard(ctx context.Context, params domain.Params, yMin, yMax *float64) (*domain.Dashboard, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard-service.get-dashboard")
	defer span.End()

	params = params.Clamp()
	span.SetAttributes(
		attribute.Int("sma_window", params.SMAWindow),
		attribute.Float64("threshold", params.Threshold),
	)

	hist, err := s.history.GetHistory(ctx)
	if err != nil {
		return nil, err
	}

	points, err := signal.Decorate(hist.Bars, params.SMAWindow, params.Threshold)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Symbol:     hist.Symbol,
		Params:     params,
		Synthetic:  hist.Synthetic,
		Simulation: simulation.Run(points, params.InvestmentAmount),
		Table:      tailRows(points, domain.TableRows),
		Chart:      buildChart(points, yMin, yMax),
	}, nil
}

// GetSimulation computes just the strategy outcome, skipping the view
// assembly.
func (s *DashboardService) GetSimulation(ctx context.Context, params domain.Params) (domain.SimulationResult, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard-service.get-simulation")
	defer span.End()

	params = params.Clamp()

	hist, err := s.history.GetHistory(ctx)
	if err != nil {
		return domain.SimulationResult{}, err
	}
	points, err := signal.Decorate(hist.Bars, params.SMAWindow, params.Threshold)
	if err != nil {
		return domain.SimulationResult{}, err
	}
	return simulation.Run(points, params.InvestmentAmount), nil
}

func tailRows(points []domain.DecoratedPoint, n int) []domain.DecoratedPoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

func buildChart(points []domain.DecoratedPoint, yMin, yMax *float64) domain.ChartSeries {
	chart := domain.ChartSeries{
		Dates: make([]time.Time, len(points)),
		Close: make([]float64, len(points)),
		SMA:   make([]float64, len(points)),
	}

	lo, hi := points[0].Close, points[0].Close
	for i, p := range points {
		chart.Dates[i] = p.Date
		chart.Close[i] = p.Close
		chart.SMA[i] = p.SMA
		if p.Buy {
			chart.BuyMarkers = append(chart.BuyMarkers, domain.ChartPoint{Date: p.Date, Close: p.Close})
		}
		for _, v := range [2]float64{p.Close, p.SMA} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	// Derived bounds get a 2% margin so the lines never hug the frame.
	pad := (hi - lo) * 0.02
	chart.YMin = lo - pad
	chart.YMax = hi + pad
	if yMin != nil {
		chart.YMin = *yMin
	}
	if yMax != nil {
		chart.YMax = *yMax
	}
	return chart
}
