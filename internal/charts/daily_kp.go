package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"spacecast/internal/models"
)

// GenerateDailyKpChart renders the 3-day Kp forecast as a static PNG bar
// chart for embedding in stored report folders.
func (cg *ChartGenerator) GenerateDailyKpChart(forecast *models.Forecast3Day) (string, error) {
	if forecast.Empty() {
		return "", fmt.Errorf("no forecast records to chart")
	}

	if err := os.MkdirAll(cg.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create chart output directory: %w", err)
	}
	filename := filepath.Join(cg.outputDir, "daily_kp.png")

	bars := make([]chart.Value, 0, len(forecast.Records))
	for _, rec := range forecast.Records {
		kp := valueOrZero(rec.KpIndex)
		bars = append(bars, chart.Value{
			Value: kp,
			Label: fmt.Sprintf("%s\nKp=%.2f", shortDate(rec.Date), kp),
			Style: chart.Style{
				FillColor:   kpLevelColor(kp),
				StrokeColor: drawing.Color{R: 52, G: 58, B: 64, A: 255},
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.BarChart{
		Title: "3-Day Kp Index Forecast",
		TitleStyle: chart.Style{
			FontSize:  18,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   80,
				Right:  50,
				Bottom: 80,
			},
			FillColor: drawing.Color{R: 248, G: 249, B: 250, A: 255},
		},
		Height:   400,
		Width:    600,
		BarWidth: 120,
		XAxis: chart.Style{
			FontSize:  12,
			FontColor: drawing.Color{R: 52, G: 58, B: 64, A: 255},
		},
		YAxis: chart.YAxis{
			Name: "Kp Index",
			NameStyle: chart.Style{
				FontSize:  14,
				FontColor: drawing.Color{R: 52, G: 58, B: 64, A: 255},
			},
			Style: chart.Style{
				FontSize:  11,
				FontColor: drawing.Color{R: 108, G: 117, B: 125, A: 255},
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 9,
			},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0"},
				{Value: 2, Label: "2 (Quiet)"},
				{Value: 4, Label: "4 (Active)"},
				{Value: 5, Label: "5 (G1)"},
				{Value: 7, Label: "7 (G3)"},
				{Value: 9, Label: "9 (G5)"},
			},
		},
		Bars: bars,
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create daily Kp chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render daily Kp chart: %w", err)
	}

	return filename, nil
}

// kpLevelColor returns the conventional activity color for a Kp value
func kpLevelColor(kp float64) drawing.Color {
	switch {
	case kp >= 7:
		return drawing.Color{R: 128, G: 0, B: 128, A: 255}
	case kp >= 5:
		return drawing.Color{R: 220, G: 53, B: 69, A: 255}
	case kp >= 4:
		return drawing.Color{R: 253, G: 126, B: 20, A: 255}
	case kp >= 3:
		return drawing.Color{R: 255, G: 193, B: 7, A: 255}
	default:
		return drawing.Color{R: 40, G: 167, B: 69, A: 255}
	}
}
