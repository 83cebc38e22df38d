package models

import "testing"

func TestBlackoutNumeric(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected float64
	}{
		{"percentage passes through", 35.0, 35},
		{"int percentage", 10, 10},
		{"severity word Minor", "Minor", 1},
		{"severity word Extreme", "Extreme", 4},
		{"unknown severity word", "Catastrophic", 0},
		{"nil value", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlackoutNumeric(tt.value); got != tt.expected {
				t.Errorf("BlackoutNumeric(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestHourlyMatrixEmpty(t *testing.T) {
	var nilMatrix *HourlyMatrix
	if !nilMatrix.Empty() {
		t.Error("nil matrix should be empty")
	}

	m := &HourlyMatrix{Dates: [ForecastDays]string{"2025-09-23", "2025-09-24", "2025-09-25"}}
	if !m.Empty() {
		t.Error("matrix with only dates should be empty")
	}

	v := 4.33
	m.Rows[3][1] = &v
	if m.Empty() {
		t.Error("matrix with one cell set should not be empty")
	}
}

func TestForecast3DayEmpty(t *testing.T) {
	var nilForecast *Forecast3Day
	if !nilForecast.Empty() {
		t.Error("nil forecast should be empty")
	}

	f := &Forecast3Day{}
	if !f.Empty() {
		t.Error("forecast without records should be empty")
	}

	f.Records = []DayRecord{{Date: "2025-09-23"}}
	if f.Empty() {
		t.Error("forecast with records should not be empty")
	}
}

func TestUTSlotCount(t *testing.T) {
	if len(UTSlots) != MatrixRows {
		t.Errorf("Expected %d UT slot labels, got %d", MatrixRows, len(UTSlots))
	}
}
