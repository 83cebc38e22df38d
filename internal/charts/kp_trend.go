package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"spacecast/internal/models"
)

// generateKpTrendChart creates a Kp/Ap line chart across the three
// forecast days.
func (cg *ChartGenerator) generateKpTrendChart(forecast *models.Forecast3Day) (string, error) {
	if forecast.Empty() {
		return "", fmt.Errorf("no forecast records to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Geomagnetic Activity Forecast",
			Subtitle: "Daily Kp and Ap index",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Index",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	xAxis := make([]string, 0, len(forecast.Records))
	kpData := make([]opts.LineData, 0, len(forecast.Records))
	apData := make([]opts.LineData, 0, len(forecast.Records))
	for _, rec := range forecast.Records {
		xAxis = append(xAxis, shortDate(rec.Date))
		kpData = append(kpData, opts.LineData{Value: valueOrZero(rec.KpIndex)})
		apData = append(apData, opts.LineData{Value: valueOrZero(rec.ApIndex)})
	}

	line.SetXAxis(xAxis).
		AddSeries("Kp Index", kpData).
		AddSeries("Ap Index", apData).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// shortDate renders a YYYY-MM-DD date as "Sep 23" for axis labels
func shortDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 02")
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
