package models

import "time"

// MatrixRows is the number of 3-hour UT slots in a forecast day.
const MatrixRows = 8

// ForecastDays is the number of days covered by a forecast.
const ForecastDays = 3

// UTSlots are the row labels for the 3-hourly breakdown table.
var UTSlots = [MatrixRows]string{
	"00-03UT", "03-06UT", "06-09UT", "09-12UT",
	"12-15UT", "15-18UT", "18-21UT", "21-00UT",
}

// RadioBlackout is the per-day radio blackout breakdown. Each band holds
// either a likelihood percentage (float64) or a severity word such as
// "Minor". Both bands are always populated from the same origin: either
// both come from the backend or both are deployment defaults.
type RadioBlackout struct {
	R1R2   interface{} `json:"r1r2"`
	R3Plus interface{} `json:"r3_plus"`
}

// DayRecord is the canonical per-day forecast record served to the
// display layer. Date is always a YYYY-MM-DD string. KpIndex and ApIndex
// are nil only when no signal of any shape existed in the source.
type DayRecord struct {
	Date           string        `json:"date"`
	KpIndex        *float64      `json:"kp_index"`
	ApIndex        *float64      `json:"ap_index"`
	SolarRadiation float64       `json:"solar_radiation"`
	RadioBlackout  RadioBlackout `json:"radio_blackout"`
	Source         string        `json:"source"`
}

// HourlyMatrix is an 8-row by 3-day grid of 3-hourly values. A nil cell
// means no value was available for that slot.
type HourlyMatrix struct {
	Dates [ForecastDays]string               `json:"dates"`
	Rows  [MatrixRows][ForecastDays]*float64 `json:"rows"`
}

// Empty reports whether every cell of the matrix is nil.
func (m *HourlyMatrix) Empty() bool {
	if m == nil {
		return true
	}
	for _, row := range m.Rows {
		for _, cell := range row {
			if cell != nil {
				return false
			}
		}
	}
	return true
}

// Forecast3Day is the complete normalized result: exactly three day
// records in ascending date order, plus the 3-hourly matrices where the
// source supplied a usable series.
type Forecast3Day struct {
	Records     []DayRecord   `json:"records"`
	KpMatrix    *HourlyMatrix `json:"kp_matrix,omitempty"`
	ApMatrix    *HourlyMatrix `json:"ap_matrix,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Empty reports whether normalization produced no usable days.
func (f *Forecast3Day) Empty() bool {
	return f == nil || len(f.Records) == 0
}

// SeverityScale maps radio blackout severity words to chart-friendly
// numeric levels.
var SeverityScale = map[string]float64{
	"None":     0,
	"Minor":    1,
	"Moderate": 2,
	"Severe":   3,
	"Extreme":  4,
}

// BlackoutNumeric converts a radio blackout band value (percentage or
// severity word) to a numeric level for charting. Unknown words map to 0.
func BlackoutNumeric(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		return SeverityScale[val]
	default:
		return 0
	}
}

// AlertItem is a space weather alert headline from the advisories feed.
type AlertItem struct {
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Severity    string    `json:"severity"`
	PublishedAt time.Time `json:"published_at"`
}
