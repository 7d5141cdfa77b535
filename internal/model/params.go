package model

import "fmt"

// Parameters configures a single simulation run. A value is captured once
// before the run starts and never mutated by the engine.
type Parameters struct {
	InitialCapital    float64 `yaml:"initial_capital" json:"initial_capital"`
	AnnualCashYield   float64 `yaml:"annual_cash_yield" json:"annual_cash_yield"`
	DropTrigger       float64 `yaml:"drop_trigger" json:"drop_trigger"`
	DropMultiplier    int     `yaml:"drop_multiplier" json:"drop_multiplier"`
	ProfitTakeEnabled bool    `yaml:"profit_take_enabled" json:"profit_take_enabled"`
	ProfitTakeTarget  float64 `yaml:"profit_take_target" json:"profit_take_target"`
	EquityRatio       float64 `yaml:"equity_ratio" json:"equity_ratio"`
}

// Validate checks that every parameter sits inside its declared domain.
func (p Parameters) Validate() error {
	if p.InitialCapital <= 0 {
		return fmt.Errorf("%w: initial_capital must be positive, got %.2f", ErrInvalidParameters, p.InitialCapital)
	}
	if p.AnnualCashYield < 0 {
		return fmt.Errorf("%w: annual_cash_yield must be >= 0, got %.4f", ErrInvalidParameters, p.AnnualCashYield)
	}
	if p.DropTrigger <= 0 {
		return fmt.Errorf("%w: drop_trigger must be positive, got %.4f", ErrInvalidParameters, p.DropTrigger)
	}
	if p.DropMultiplier < 1 {
		return fmt.Errorf("%w: drop_multiplier must be >= 1, got %d", ErrInvalidParameters, p.DropMultiplier)
	}
	if p.ProfitTakeTarget <= 0 {
		return fmt.Errorf("%w: profit_take_target must be positive, got %.4f", ErrInvalidParameters, p.ProfitTakeTarget)
	}
	if p.EquityRatio < 0 || p.EquityRatio > 1 {
		return fmt.Errorf("%w: equity_ratio must be within [0,1], got %.4f", ErrInvalidParameters, p.EquityRatio)
	}
	return nil
}
