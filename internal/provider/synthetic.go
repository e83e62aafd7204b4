package provider

import (
	"math/rand"
	"time"

	"vgs-buy-tracker/internal/domain"
)

// syntheticSeed fixes the random walk so the fallback series is identical
// across runs. The fallback exists to keep the pipeline renderable when the
// live feed fails, and a deterministic series keeps it debuggable.
const syntheticSeed = 20240101

// SyntheticBars generates a weekday-only daily series ending at end: a gentle
// linear uptrend with a random walk layered on top. It stands in for the live
// feed when Yahoo returns nothing usable, and callers must flag the result as
// non-authoritative.
func SyntheticBars(symbol string, end time.Time, days int) []domain.Bar {
	rng := rand.New(rand.NewSource(syntheticSeed))

	endDay := midnightUTC(end)
	start := endDay.AddDate(0, 0, -days)
	var bars []domain.Bar

	price := 100.0
	drift := 0.03 // linear component, ~0.03 per trading day
	for d := start; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		step := rng.NormFloat64() * 0.8
		price += drift + step
		if price < 1 {
			price = 1
		}
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		spread := rng.Float64() * 0.6
		bars = append(bars, domain.Bar{
			Symbol: symbol,
			Date:   d,
			Open:   price - spread/2,
			High:   price + spread,
			Low:    price - spread,
			Close:  price,
			Volume: 50000 + rng.Float64()*25000,
		})
	}

	return bars
}
