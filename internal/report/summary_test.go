package report

import (
	"math"
	"testing"
	"time"

	"DCASimulator/internal/model"
)

func TestSummarize(t *testing.T) {
	snaps := []model.PortfolioSnapshot{
		{Time: time.Now(), Price: 100, TotalValue: 50500, Cash: 10500, EquityValue: 40000},
		{Time: time.Now(), Price: 110, TotalValue: 60000, Cash: 12000, EquityValue: 48000},
	}
	sum := Summarize(50000, snaps)
	if sum.FinalValue != 60000 {
		t.Errorf("final value %.2f, want 60000", sum.FinalValue)
	}
	if diff := math.Abs(sum.ROIPercent - 20); diff > 1e-9 {
		t.Errorf("ROI %.6f%%, want 20%%", sum.ROIPercent)
	}
	if sum.FinalCash != 12000 {
		t.Errorf("final cash %.2f, want 12000", sum.FinalCash)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if sum := Summarize(50000, nil); sum != (model.Summary{}) {
		t.Errorf("expected zero summary for empty run, got %+v", sum)
	}
}
