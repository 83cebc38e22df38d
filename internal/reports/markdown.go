package reports

import (
	"fmt"
	"strings"

	"spacecast/internal/models"
)

// BuildMarkdown assembles the markdown body of the report: a day summary
// table, alert headlines, commentary, and the text product verbatim in a
// code block. Chart placeholders are substituted later by the HTML
// builder.
func BuildMarkdown(forecast *models.Forecast3Day, alerts []models.AlertItem, textProduct, commentary string) string {
	var b strings.Builder

	b.WriteString("# 3-Day Geomagnetic Forecast\n\n")
	fmt.Fprintf(&b, "Generated %s\n\n", forecast.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	b.WriteString("## Daily Summary\n\n")
	b.WriteString("| Date | Kp Index | Ap Index | S1+ | R1-R2 | R3+ |\n")
	b.WriteString("|------|----------|----------|-----|-------|-----|\n")
	for _, rec := range forecast.Records {
		fmt.Fprintf(&b, "| %s | %s | %s | %.0f%% | %s | %s |\n",
			rec.Date,
			indexCell(rec.KpIndex),
			indexCell(rec.ApIndex),
			rec.SolarRadiation,
			blackoutCell(rec.RadioBlackout.R1R2),
			blackoutCell(rec.RadioBlackout.R3Plus),
		)
	}
	b.WriteString("\n")

	b.WriteString("## Charts\n\n")
	b.WriteString("{{.KpTrendChart}}\n\n")
	b.WriteString("{{.BlackoutChart}}\n\n")
	b.WriteString("{{.SolarChart}}\n\n")
	b.WriteString("{{.KpBreakdownTable}}\n\n")

	if commentary != "" {
		b.WriteString("## Forecast Discussion\n\n")
		b.WriteString(commentary)
		b.WriteString("\n\n")
	}

	if len(alerts) > 0 {
		b.WriteString("## Recent Alerts\n\n")
		for _, alert := range alerts {
			fmt.Fprintf(&b, "- **%s** [%s] %s (%s)\n",
				alert.Severity, alert.Source, alert.Title,
				alert.PublishedAt.Format("Jan 02 15:04 UTC"))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Text Product\n\n")
	b.WriteString("```\n")
	b.WriteString(textProduct)
	if !strings.HasSuffix(textProduct, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	return b.String()
}

func indexCell(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}
