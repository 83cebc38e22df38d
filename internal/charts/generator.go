package charts

import (
	"spacecast/internal/models"
)

// ChartSnippet represents an embeddable go-echarts chart fragment.
// HTML contains the complete snippet (root div plus init script) ready
// for template substitution.
type ChartSnippet struct {
	ID    string
	Title string
	HTML  string
}

// ChartGenerator builds the report's interactive chart snippets and
// static chart images.
type ChartGenerator struct {
	outputDir string
}

// NewChartGenerator creates a new chart generator
func NewChartGenerator(outputDir string) *ChartGenerator {
	return &ChartGenerator{
		outputDir: outputDir,
	}
}

// GenerateSnippets creates all embeddable chart fragments for a forecast
func (cg *ChartGenerator) GenerateSnippets(forecast *models.Forecast3Day) ([]ChartSnippet, error) {
	var snippets []ChartSnippet

	if kpChart, err := cg.generateKpTrendChart(forecast); err == nil {
		snippets = append(snippets, ChartSnippet{
			ID:    "chart-kp-trend",
			Title: "Kp Index Trend",
			HTML:  kpChart,
		})
	}

	if blackoutChart, err := cg.generateBlackoutChart(forecast); err == nil {
		snippets = append(snippets, ChartSnippet{
			ID:    "chart-radio-blackout",
			Title: "Radio Blackout Outlook",
			HTML:  blackoutChart,
		})
	}

	if solarChart, err := cg.generateSolarChart(forecast); err == nil {
		snippets = append(snippets, ChartSnippet{
			ID:    "chart-solar-radiation",
			Title: "Solar Radiation Outlook",
			HTML:  solarChart,
		})
	}

	if table := cg.GenerateMatrixTable(forecast.KpMatrix); table != "" {
		snippets = append(snippets, ChartSnippet{
			ID:    "table-kp-breakdown",
			Title: "Kp Index Breakdown",
			HTML:  table,
		})
	}

	return snippets, nil
}
