package simulation

import "vgs-buy-tracker/internal/domain"

// Run folds a decorated series into the outcome of a fixed-amount
// dollar-cost-averaging strategy: invest amount on every buy-flagged day,
// then mark the accumulated units against the last available close.
//
// The fold is pure and deterministic; it is recomputed in full on every
// parameter change rather than updated incrementally.
func Run(points []domain.DecoratedPoint, amount float64) domain.SimulationResult {
	var res domain.SimulationResult
	if len(points) == 0 {
		return res
	}

	for _, p := range points {
		if !p.Buy {
			continue
		}
		res.TotalUnits += amount / p.Close
		res.TotalInvested += amount
	}

	lastClose := points[len(points)-1].Close
	res.CurrentValue = res.TotalUnits * lastClose
	res.Gain = res.CurrentValue - res.TotalInvested

	// With zero invested the percentage gain is undefined, not 0/0.
	if res.TotalInvested > 0 {
		pct := res.Gain / res.TotalInvested * 100
		res.GainPct = &pct
	}

	return res
}
