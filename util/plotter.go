package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// SlotScore is one bar in the match-score chart: the primary venue chosen for
// a slot and its score against the slot's requirements.
type SlotScore struct {
	SlotTitle string
	VenueName string
	Score     int
}

// PlotMatchScores generates an HTML file rendering the per-slot match scores
// of a planned trip. Debug aid, enabled by the PLOT_SCORES flag.
func PlotMatchScores(tripID string, scores []SlotScore) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Match Scores",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Venue match scores",
			Subtitle: "trip " + tripID,
		}),
	)

	labels := make([]string, 0, len(scores))
	values := make([]opts.BarData, 0, len(scores))
	for _, s := range scores {
		labels = append(labels, fmt.Sprintf("%s (%s)", s.SlotTitle, s.VenueName))
		values = append(values, opts.BarData{Value: s.Score})
	}

	bar.SetXAxis(labels).AddSeries("score", values)

	filename := fmt.Sprintf("match_scores_%s.html", tripID)
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Println("Match score chart generated: " + filename)
	return nil
}
