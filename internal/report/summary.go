package report

import "DCASimulator/internal/model"

// Summarize condenses a snapshot sequence into the headline run figures:
// final portfolio value, total ROI percent, and final cash.
func Summarize(initialCapital float64, snaps []model.PortfolioSnapshot) model.Summary {
	if len(snaps) == 0 {
		return model.Summary{}
	}
	last := snaps[len(snaps)-1]
	return model.Summary{
		FinalValue: last.TotalValue,
		ROIPercent: (last.TotalValue/initialCapital - 1) * 100,
		FinalCash:  last.Cash,
	}
}
