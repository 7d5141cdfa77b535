package chart

import (
	"errors"

	"github.com/vicanso/go-charts/v2"

	"DCASimulator/internal/model"
)

// Portfolio renders the total-value trajectory as a PNG line chart, with a
// flat baseline series at the initial capital for comparison.
func Portfolio(snaps []model.PortfolioSnapshot, initialCapital float64) ([]byte, error) {
	if len(snaps) == 0 {
		return nil, errors.New("no snapshots to render")
	}
	totals := make([]float64, len(snaps))
	baseline := make([]float64, len(snaps))
	for i, s := range snaps {
		totals[i] = s.TotalValue
		baseline[i] = initialCapital
	}
	return render([][]float64{totals, baseline},
		"Portfolio Evolution",
		[]string{"Portfolio Value", "Initial Capital"},
		xLabels(snaps))
}

// PriceTriggers renders the price series with a second series marking the
// months where the drop trigger fired; non-trigger months hold null points.
func PriceTriggers(snaps []model.PortfolioSnapshot) ([]byte, error) {
	if len(snaps) == 0 {
		return nil, errors.New("no snapshots to render")
	}
	prices := make([]float64, len(snaps))
	triggers := make([]float64, len(snaps))
	for i, s := range snaps {
		prices[i] = s.Price
		if s.TriggerActive {
			triggers[i] = s.Price
		} else {
			triggers[i] = charts.GetNullValue()
		}
	}
	return render([][]float64{prices, triggers},
		"Accelerated Buy Points",
		[]string{"Price", "Trigger Fired"},
		xLabels(snaps))
}

func render(values [][]float64, title string, names []string, labels []string) ([]byte, error) {
	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 12}),
		charts.YAxisOptionFunc(charts.YAxisOption{DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

func xLabels(snaps []model.PortfolioSnapshot) []string {
	labels := make([]string, len(snaps))
	for i, s := range snaps {
		labels[i] = s.Time.Format("2006-01")
	}
	return labels
}
