package model

import "time"

// PortfolioState tracks the running portfolio between periods. It is owned
// exclusively by the engine during a run and discarded afterwards.
type PortfolioState struct {
	Cash          float64
	Shares        float64
	InvestedBasis float64
}

// PortfolioSnapshot is the per-period output record. TotalValue must equal
// Cash + EquityValue for every snapshot.
type PortfolioSnapshot struct {
	Time          time.Time `json:"timestamp"`
	Price         float64   `json:"price"`
	TotalValue    float64   `json:"total_value"`
	Cash          float64   `json:"cash"`
	EquityValue   float64   `json:"equity_value"`
	TriggerActive bool      `json:"trigger_active"`
}

// Summary condenses a finished run into its headline figures.
type Summary struct {
	FinalValue float64 `json:"final_value"`
	ROIPercent float64 `json:"roi_percent"`
	FinalCash  float64 `json:"final_cash"`
}
