package util

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"lapangin-web/catalog"
)

// rating categories in display order
var ratingBreakdownLabels = []string{"Keseluruhan", "Kebersihan", "Kondisi Lapangan", "Komunikasi"}

// RenderRatingBreakdown writes an HTML bar chart of the review summary.
func RenderRatingBreakdown(w io.Writer, venueName string, summary catalog.ReviewSummary) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Rating " + venueName,
			Width:     "640px",
			Height:    "360px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    venueName,
			Subtitle: fmt.Sprintf("%d ulasan", summary.Count),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: 0,
			Max: catalog.MaxStars,
		}),
	)

	scores := []float64{summary.Average, summary.Cleanliness, summary.CourtCondition, summary.Communication}
	data := make([]opts.BarData, 0, len(scores))
	for _, s := range scores {
		data = append(data, opts.BarData{Value: math.Round(s*10) / 10})
	}

	bar.SetXAxis(ratingBreakdownLabels).
		AddSeries("Rating", data,
			charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render rating chart: %w", err)
	}
	return nil
}
