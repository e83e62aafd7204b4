package domain

import "time"

// Bar represents a single daily OHLCV observation for the tracked symbol.
// Date is midnight UTC; bars in a series are unique and strictly increasing.
type Bar struct {
	Symbol string    `json:"symbol"`
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// History is a raw daily price series as delivered by the loading layer.
// Synthetic marks a fallback series that did not come from the live feed;
// it must be surfaced to the user as non-authoritative.
type History struct {
	Symbol    string    `json:"symbol"`
	Bars      []Bar     `json:"bars"`
	Synthetic bool      `json:"synthetic"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Closes extracts the close column.
func (h History) Closes() []float64 {
	out := make([]float64, len(h.Bars))
	for i, b := range h.Bars {
		out[i] = b.Close
	}
	return out
}
