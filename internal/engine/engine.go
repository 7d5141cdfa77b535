package engine

import (
	"fmt"

	"DCASimulator/internal/model"
)

// Simulate folds the per-period transition over the series and returns one
// snapshot per observation, in order. It is a pure function of its inputs:
// repeated calls with the same series and parameters yield the same result,
// and concurrent calls share no state.
func Simulate(s model.PriceSeries, p model.Parameters) ([]model.PortfolioSnapshot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := validateSeries(s); err != nil {
		return nil, err
	}

	baseAmount := p.InitialCapital / float64(s.Len())
	st := model.PortfolioState{Cash: p.InitialCapital}
	snaps := make([]model.PortfolioSnapshot, 0, s.Len())

	prevPrice := 0.0
	for _, obs := range s.Observations {
		var snap model.PortfolioSnapshot
		st, snap = Step(st, obs, prevPrice, baseAmount, p)
		snaps = append(snaps, snap)
		prevPrice = obs.Price
	}
	return snaps, nil
}

func validateSeries(s model.PriceSeries) error {
	if s.Len() < 2 {
		return fmt.Errorf("%w: need at least 2 observations, got %d", model.ErrInvalidSeries, s.Len())
	}
	for i, obs := range s.Observations {
		if obs.Price <= 0 {
			return fmt.Errorf("%w: non-positive price %.2f at index %d", model.ErrInvalidSeries, obs.Price, i)
		}
		if i > 0 && !obs.Time.After(s.Observations[i-1].Time) {
			return fmt.Errorf("%w: observations out of order at index %d", model.ErrInvalidSeries, i)
		}
	}
	return nil
}
