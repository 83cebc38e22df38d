package reports

import (
	"fmt"
	"strings"
	"time"

	"spacecast/internal/models"
)

// stormKpThreshold is the Kp level at which a 3-hour slot is flagged
// with the G1 storm marker in the breakdown table.
const stormKpThreshold = 4.67

// Rationale carries the per-section commentary lines of the text
// product. Empty fields fall back to fixed wording.
type Rationale struct {
	Geomagnetic string
	Radiation   string
	Blackout    string
}

func (r Rationale) withDefaults() Rationale {
	if r.Geomagnetic == "" {
		r.Geomagnetic = "No significant geomagnetic disturbances are expected."
	}
	if r.Radiation == "" {
		r.Radiation = "Solar radiation storm levels are expected to remain below S1."
	}
	if r.Blackout == "" {
		r.Blackout = "A chance of minor radio blackouts exists throughout the period."
	}
	return r
}

// GenerateForecastText renders the forecast as a NOAA-style plain text
// product. Requires exactly three day records; anything else yields a
// short apology line instead of a malformed table.
func GenerateForecastText(forecast *models.Forecast3Day, rationale Rationale) string {
	if forecast == nil || len(forecast.Records) != models.ForecastDays {
		return "Insufficient forecast data (need exactly 3 days)."
	}
	rationale = rationale.withDefaults()

	dates := make([]time.Time, models.ForecastDays)
	dateStrs := make([]string, models.ForecastDays)
	for i, rec := range forecast.Records {
		t, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			return "Insufficient forecast data (need exactly 3 days)."
		}
		dates[i] = t
		dateStrs[i] = t.Format("Jan 02")
	}
	dateRange := fmt.Sprintf("%s-%s %d", dateStrs[0], dateStrs[2], dates[2].Year())

	var b strings.Builder
	fmt.Fprintf(&b, ":Product: 3-Day Forecast\n")
	fmt.Fprintf(&b, ":Issued: %s 1230 UTC\n", dates[0].Format("2006 Jan 02"))
	b.WriteString("# Prepared by the Spacecast forecast service\n#\n")

	writeGeomagneticSection(&b, forecast, dateStrs, dateRange, rationale.Geomagnetic)
	writeRadiationSection(&b, forecast, dateStrs, rationale.Radiation)
	writeBlackoutSection(&b, forecast, dateStrs, rationale.Blackout)

	return b.String()
}

// writeGeomagneticSection renders section A: the peak Kp line and the
// 3-hourly breakdown table with G1 markers.
func writeGeomagneticSection(b *strings.Builder, forecast *models.Forecast3Day, dateStrs []string, dateRange, rationale string) {
	b.WriteString("A. Geomagnetic Activity Forecast\n\n")
	fmt.Fprintf(b, "The greatest expected 3 hr Kp for %s is %.2f.\n\n", dateRange, greatestKp(forecast))
	fmt.Fprintf(b, "Kp index breakdown %s\n\n", dateRange)

	b.WriteString("             " + strings.Join(dateStrs, "       ") + "\n")
	for r := 0; r < models.MatrixRows; r++ {
		row := fmt.Sprintf("%-12s", models.UTSlots[r])
		for d := 0; d < models.ForecastDays; d++ {
			val := matrixCell(forecast, r, d)
			suffix := ""
			if val >= stormKpThreshold {
				suffix = " (G1)"
			}
			row += fmt.Sprintf("%-6.2f%-6s   ", val, suffix)
		}
		b.WriteString(strings.TrimRight(row, " ") + "\n")
	}
	fmt.Fprintf(b, "Rationale: %s\n", rationale)
}

// writeRadiationSection renders section B: the S1+ likelihood row.
func writeRadiationSection(b *strings.Builder, forecast *models.Forecast3Day, dateStrs []string, rationale string) {
	b.WriteString("\nB. Solar Radiation Activity Forecast\n\n")
	b.WriteString("              " + strings.Join(dateStrs, "  ") + "\n")
	row := "S1 or greater "
	for _, rec := range forecast.Records {
		row += fmt.Sprintf("%.0f%%     ", rec.SolarRadiation)
	}
	b.WriteString(strings.TrimRight(row, " ") + "\n")
	fmt.Fprintf(b, "Rationale: %s\n", rationale)
}

// writeBlackoutSection renders section C: both blackout band rows.
func writeBlackoutSection(b *strings.Builder, forecast *models.Forecast3Day, dateStrs []string, rationale string) {
	b.WriteString("\nC. Radio Blackout Forecast\n\n")
	b.WriteString("              " + strings.Join(dateStrs, "  ") + "\n")

	r1Row := make([]string, 0, models.ForecastDays)
	r3Row := make([]string, 0, models.ForecastDays)
	for _, rec := range forecast.Records {
		r1Row = append(r1Row, blackoutCell(rec.RadioBlackout.R1R2))
		r3Row = append(r3Row, blackoutCell(rec.RadioBlackout.R3Plus))
	}
	b.WriteString("R1-R2         " + strings.Join(r1Row, "  ") + "\n")
	b.WriteString("R3 or greater " + strings.Join(r3Row, "  ") + "\n")
	fmt.Fprintf(b, "Rationale: %s\n", rationale)
}

// greatestKp finds the peak Kp across the matrix, falling back to the
// daily records when no matrix was built.
func greatestKp(forecast *models.Forecast3Day) float64 {
	peak := 0.0
	if !forecast.KpMatrix.Empty() {
		for r := 0; r < models.MatrixRows; r++ {
			for d := 0; d < models.ForecastDays; d++ {
				if cell := forecast.KpMatrix.Rows[r][d]; cell != nil && *cell > peak {
					peak = *cell
				}
			}
		}
		return peak
	}
	for _, rec := range forecast.Records {
		if rec.KpIndex != nil && *rec.KpIndex > peak {
			peak = *rec.KpIndex
		}
	}
	return peak
}

// matrixCell reads one breakdown cell, substituting the day's Kp when
// the matrix is absent and 0 when nothing is known.
func matrixCell(forecast *models.Forecast3Day, row, day int) float64 {
	if !forecast.KpMatrix.Empty() {
		if cell := forecast.KpMatrix.Rows[row][day]; cell != nil {
			return *cell
		}
		return 0
	}
	if kp := forecast.Records[day].KpIndex; kp != nil {
		return *kp
	}
	return 0
}

// blackoutCell renders a blackout band value: percentages get a percent
// sign, severity words pass through.
func blackoutCell(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%.0f%%", models.BlackoutNumeric(v))
}
