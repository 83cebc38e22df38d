package charts

import (
	"fmt"
	"html/template"
	"strings"

	"spacecast/internal/models"
)

// stormKpThreshold marks cells at or above minor storm level (G1).
const stormKpThreshold = 4.67

// GenerateMatrixTable renders the 3-hourly Kp breakdown as an HTML
// table. Cells at storm level get a highlight class; nil cells render as
// a dash. Returns "" when the matrix carries no values.
func (cg *ChartGenerator) GenerateMatrixTable(matrix *models.HourlyMatrix) string {
	if matrix.Empty() {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<table class="kp-breakdown-table">`)
	buf.WriteString(`<thead><tr><th>UT</th>`)
	for _, date := range matrix.Dates {
		fmt.Fprintf(&buf, `<th>%s</th>`, template.HTMLEscapeString(shortDate(date)))
	}
	buf.WriteString(`</tr></thead><tbody>`)

	for r := 0; r < models.MatrixRows; r++ {
		fmt.Fprintf(&buf, `<tr><td>%s</td>`, models.UTSlots[r])
		for d := 0; d < models.ForecastDays; d++ {
			cell := matrix.Rows[r][d]
			if cell == nil {
				buf.WriteString(`<td>-</td>`)
				continue
			}
			if *cell >= stormKpThreshold {
				fmt.Fprintf(&buf, `<td class="storm-level">%.2f (G1)</td>`, *cell)
			} else {
				fmt.Fprintf(&buf, `<td>%.2f</td>`, *cell)
			}
		}
		buf.WriteString(`</tr>`)
	}

	buf.WriteString(`</tbody></table>`)
	return buf.String()
}
