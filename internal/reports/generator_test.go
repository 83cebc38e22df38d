package reports

import (
	"strings"
	"testing"
	"time"

	"spacecast/internal/models"
)

func TestBuildMarkdown(t *testing.T) {
	alerts := []models.AlertItem{
		{
			Source:      "SIDC",
			Title:       "M-class flare activity continues",
			Severity:    "Severe",
			PublishedAt: time.Date(2025, 9, 22, 8, 0, 0, 0, time.UTC),
		},
	}
	text := GenerateForecastText(testForecast(), Rationale{})
	md := BuildMarkdown(testForecast(), alerts, text, "Discussion text here.")

	for _, want := range []string{
		"# 3-Day Geomagnetic Forecast",
		"| 2025-09-23 | 3.00 | 15.00 | 1% | 35% | 1% |",
		"| 2025-09-24 | 5.33 | 67.00 | 10% | 55% | 10% |",
		"{{.KpTrendChart}}",
		"{{.KpBreakdownTable}}",
		"## Forecast Discussion",
		"Discussion text here.",
		"**Severe** [SIDC] M-class flare activity continues",
		":Product: 3-Day Forecast",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}
}

func TestBuildMarkdownNoAlertsNoCommentary(t *testing.T) {
	text := GenerateForecastText(testForecast(), Rationale{})
	md := BuildMarkdown(testForecast(), nil, text, "")

	if strings.Contains(md, "## Recent Alerts") {
		t.Error("Alerts section should be omitted when empty")
	}
	if strings.Contains(md, "## Forecast Discussion") {
		t.Error("Discussion section should be omitted when empty")
	}
}

func TestMarkdownToHTML(t *testing.T) {
	builder := NewHTMLBuilder()
	html := builder.MarkdownToHTML("# Title\n\nSome **bold** text.")

	if !strings.Contains(html, "<h1") {
		t.Error("Expected heading in HTML output")
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Error("Expected bold text in HTML output")
	}
}

func TestReportGeneratorGenerate(t *testing.T) {
	tempDir := t.TempDir()
	rg := NewReportGenerator(tempDir)

	files, err := rg.Generate(testForecast(), nil, Rationale{}, "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.HasPrefix(files.TextReport, ":Product: 3-Day Forecast") {
		t.Error("Text report should be the NOAA-style product")
	}
	if !strings.Contains(files.Markdown, "## Daily Summary") {
		t.Error("Markdown should contain the summary table")
	}
	if !strings.Contains(files.HTML, "<!DOCTYPE html>") {
		t.Error("HTML should be a complete document")
	}
	// Placeholders must be substituted, not left in the page.
	if strings.Contains(files.HTML, "{{.KpTrendChart}}") {
		t.Error("Chart placeholders should be substituted in the HTML page")
	}
	if len(files.ChartFiles) != 1 {
		t.Errorf("Expected 1 static chart file, got %d", len(files.ChartFiles))
	}
}

func TestReportGeneratorEmptyForecastStillRenders(t *testing.T) {
	tempDir := t.TempDir()
	rg := NewReportGenerator(tempDir)

	forecast := &models.Forecast3Day{GeneratedAt: time.Now().UTC()}
	files, err := rg.Generate(forecast, nil, Rationale{}, "")
	if err != nil {
		t.Fatalf("Generate failed for empty forecast: %v", err)
	}
	if !strings.Contains(files.TextReport, "Insufficient forecast data") {
		t.Error("Empty forecast should yield the apology text product")
	}
	if !strings.Contains(files.HTML, "<!DOCTYPE html>") {
		t.Error("HTML page should render even without records")
	}
}
