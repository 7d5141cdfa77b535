package model

import "time"

// PriceObservation is a single month-end price point.
type PriceObservation struct {
	Time  time.Time `json:"timestamp"`
	Price float64   `json:"price"`
}

// PriceSeries holds an ordered sequence of month-end observations.
type PriceSeries struct {
	Observations []PriceObservation `json:"observations"`
}

// Len returns the number of observations (periods) in the series.
func (s PriceSeries) Len() int { return len(s.Observations) }

// Prices returns the raw price values in order.
func (s PriceSeries) Prices() []float64 {
	out := make([]float64, len(s.Observations))
	for i, obs := range s.Observations {
		out[i] = obs.Price
	}
	return out
}
