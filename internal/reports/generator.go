package reports

import (
	"spacecast/internal/charts"
	"spacecast/internal/logger"
	"spacecast/internal/models"
)

// GeneratedFiles holds the rendered artifacts of one report run, keyed
// by the filenames they are stored under.
type GeneratedFiles struct {
	TextReport string // forecast.txt
	Markdown   string // report.md
	HTML       string // index.html
	ChartFiles []string
}

// ReportGenerator renders a normalized forecast into the full set of
// report artifacts.
type ReportGenerator struct {
	chartGen    *charts.ChartGenerator
	htmlBuilder *HTMLBuilder
	log         *logger.Logger
}

// NewReportGenerator creates a new report generator writing static chart
// images into outputDir.
func NewReportGenerator(outputDir string) *ReportGenerator {
	return &ReportGenerator{
		chartGen:    charts.NewChartGenerator(outputDir),
		htmlBuilder: NewHTMLBuilder(),
		log:         logger.GetGlobalLogger().WithComponent("reports"),
	}
}

// Generate renders all report artifacts for a forecast. Chart image
// failures degrade the report instead of failing it.
func (rg *ReportGenerator) Generate(forecast *models.Forecast3Day, alerts []models.AlertItem, rationale Rationale, commentary string) (*GeneratedFiles, error) {
	rg.log.Info("generating report artifacts")

	textReport := GenerateForecastText(forecast, rationale)

	snippets, err := rg.chartGen.GenerateSnippets(forecast)
	if err != nil {
		rg.log.Warn("chart snippet generation failed", logger.Fields{"reason": err.Error()})
	}

	markdownBody := BuildMarkdown(forecast, alerts, textReport, commentary)

	htmlPage, err := rg.htmlBuilder.BuildPage(markdownBody, snippets)
	if err != nil {
		return nil, err
	}

	files := &GeneratedFiles{
		TextReport: textReport,
		Markdown:   markdownBody,
		HTML:       htmlPage,
	}

	if pngPath, err := rg.chartGen.GenerateDailyKpChart(forecast); err == nil {
		files.ChartFiles = append(files.ChartFiles, pngPath)
	} else {
		rg.log.Warn("daily Kp chart generation failed", logger.Fields{"reason": err.Error()})
	}

	rg.log.Info("report artifacts generated", logger.Fields{
		"html_bytes": len(htmlPage),
		"charts":     len(files.ChartFiles),
	})
	return files, nil
}
