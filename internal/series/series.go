package series

import (
	"fmt"
	"time"

	"DCASimulator/internal/model"
)

// New builds a month-end PriceSeries from raw values. The first observation
// lands on the last day of the start date's month, each following value one
// calendar month later.
func New(values []float64, start time.Time) (model.PriceSeries, error) {
	if len(values) < 2 {
		return model.PriceSeries{}, fmt.Errorf("%w: need at least 2 values, got %d", model.ErrInvalidSeries, len(values))
	}
	obs := make([]model.PriceObservation, len(values))
	for i, v := range values {
		if v <= 0 {
			return model.PriceSeries{}, fmt.Errorf("%w: non-positive price %.2f at index %d", model.ErrInvalidSeries, v, i)
		}
		obs[i] = model.PriceObservation{
			Time:  monthEnd(start.Year(), start.Month()+time.Month(i)),
			Price: v,
		}
	}
	return model.PriceSeries{Observations: obs}, nil
}

// monthEnd returns the last day of the given month in UTC. Day 0 of the next
// month normalizes to the last day of this one.
func monthEnd(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}
