package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"spacecast/internal/models"
)

// generateBlackoutChart creates a grouped bar chart of the radio
// blackout likelihood per band per day. Severity words are mapped onto
// the numeric scale before charting.
func (cg *ChartGenerator) generateBlackoutChart(forecast *models.Forecast3Day) (string, error) {
	if forecast.Empty() {
		return "", fmt.Errorf("no forecast records to chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Radio Blackout Forecast",
			Subtitle: "R1-R2 and R3+ likelihood per day",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Likelihood",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	xAxis := make([]string, 0, len(forecast.Records))
	r1r2Data := make([]opts.BarData, 0, len(forecast.Records))
	r3Data := make([]opts.BarData, 0, len(forecast.Records))
	for _, rec := range forecast.Records {
		xAxis = append(xAxis, shortDate(rec.Date))
		r1r2Data = append(r1r2Data, opts.BarData{Value: models.BlackoutNumeric(rec.RadioBlackout.R1R2)})
		r3Data = append(r3Data, opts.BarData{Value: models.BlackoutNumeric(rec.RadioBlackout.R3Plus)})
	}

	bar.SetXAxis(xAxis).
		AddSeries("R1-R2", r1r2Data).
		AddSeries("R3 or greater", r3Data)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// generateSolarChart creates a bar chart of the solar radiation storm
// likelihood per day.
func (cg *ChartGenerator) generateSolarChart(forecast *models.Forecast3Day) (string, error) {
	if forecast.Empty() {
		return "", fmt.Errorf("no forecast records to chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Solar Radiation Forecast",
			Subtitle: "S1 or greater likelihood per day",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Likelihood (%)",
		}),
	)

	xAxis := make([]string, 0, len(forecast.Records))
	solarData := make([]opts.BarData, 0, len(forecast.Records))
	for _, rec := range forecast.Records {
		xAxis = append(xAxis, shortDate(rec.Date))
		solarData = append(solarData, opts.BarData{Value: rec.SolarRadiation})
	}

	bar.SetXAxis(xAxis).
		AddSeries("S1 or greater", solarData)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
