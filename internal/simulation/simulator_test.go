package simulation

import (
	"math"
	"testing"
	"time"

	"vgs-buy-tracker/internal/domain"
)

func day(n int) time.Time {
	return time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestRunEmptySeries(t *testing.T) {
	t.Parallel()

	res := Run(nil, 1500)
	if res.TotalInvested != 0 || res.TotalUnits != 0 || res.CurrentValue != 0 || res.Gain != 0 {
		t.Fatalf("empty series should produce zero result, got %+v", res)
	}
	if res.GainPct != nil {
		t.Fatalf("gain pct should be undefined, got %f", *res.GainPct)
	}
}

func TestRunNoBuySignals(t *testing.T) {
	t.Parallel()

	points := []domain.DecoratedPoint{
		{Date: day(0), Close: 100},
		{Date: day(1), Close: 110},
		{Date: day(2), Close: 120},
	}
	res := Run(points, 1500)
	if res.TotalInvested != 0 || res.TotalUnits != 0 || res.CurrentValue != 0 {
		t.Fatalf("no signals should invest nothing, got %+v", res)
	}
	if res.GainPct != nil {
		t.Fatal("gain pct should be undefined with zero invested")
	}
}

func TestRunFourBuys(t *testing.T) {
	t.Parallel()

	// Exactly four flagged rows with closes 90, 85, 80, 75.
	points := []domain.DecoratedPoint{
		{Date: day(0), Close: 100},
		{Date: day(1), Close: 90, Buy: true},
		{Date: day(2), Close: 85, Buy: true},
		{Date: day(3), Close: 80, Buy: true},
		{Date: day(4), Close: 75, Buy: true},
	}
	res := Run(points, 1500)

	if res.TotalInvested != 6000 {
		t.Fatalf("expected total invested 6000, got %f", res.TotalInvested)
	}
	wantUnits := 1500.0/90 + 1500.0/85 + 1500.0/80 + 1500.0/75
	if math.Abs(res.TotalUnits-wantUnits) > 1e-6 {
		t.Fatalf("expected %f units, got %f", wantUnits, res.TotalUnits)
	}
	if math.Abs(res.CurrentValue-wantUnits*75) > 1e-6 {
		t.Fatalf("expected value %f, got %f", wantUnits*75, res.CurrentValue)
	}
	if math.Abs(res.Gain-(res.CurrentValue-6000)) > 1e-9 {
		t.Fatalf("gain inconsistent: %+v", res)
	}
	if res.GainPct == nil {
		t.Fatal("gain pct should be defined")
	}
	if math.Abs(*res.GainPct-res.Gain/6000*100) > 1e-9 {
		t.Fatalf("unexpected gain pct %f", *res.GainPct)
	}
}

func TestRunInvestedIsAmountTimesBuyCount(t *testing.T) {
	t.Parallel()

	amounts := []float64{500, 1500, 10000}
	for _, amount := range amounts {
		points := make([]domain.DecoratedPoint, 40)
		buys := 0
		for i := range points {
			points[i] = domain.DecoratedPoint{Date: day(i), Close: 100 + float64(i%7), Buy: i%3 == 0}
			if i%3 == 0 {
				buys++
			}
		}
		res := Run(points, amount)
		if res.TotalInvested != amount*float64(buys) {
			t.Fatalf("amount %f: expected invested %f, got %f", amount, amount*float64(buys), res.TotalInvested)
		}
	}
}
