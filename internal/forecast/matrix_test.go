package forecast

import (
	"testing"

	"spacecast/internal/models"
)

var testDates = [models.ForecastDays]string{"2025-09-23", "2025-09-24", "2025-09-25"}

func seq(vals ...float64) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

func TestBuildMatrixFlat24(t *testing.T) {
	vals := make([]float64, 24)
	for i := range vals {
		vals[i] = float64(i)
	}
	m, ok := BuildMatrix([]interface{}{seq(vals...), nil, nil}, testDates)
	if !ok {
		t.Fatal("expected matrix from 24-element series")
	}
	// Day 1 = elements [0..7], day 2 = [8..15], day 3 = [16..23].
	for d := 0; d < 3; d++ {
		for r := 0; r < 8; r++ {
			want := float64(d*8 + r)
			got := m.Rows[r][d]
			if got == nil || *got != want {
				t.Fatalf("cell[%d][%d] = %v, want %v", r, d, got, want)
			}
		}
	}
}

func TestBuildMatrixScalarReplication(t *testing.T) {
	m, ok := BuildMatrix([]interface{}{3.5, nil, 2.0}, testDates)
	if !ok {
		t.Fatal("expected matrix from scalar inputs")
	}
	for r := 0; r < 8; r++ {
		if m.Rows[r][0] == nil || *m.Rows[r][0] != 3.5 {
			t.Errorf("day 1 row %d = %v, want 3.5 replicated", r, m.Rows[r][0])
		}
		if m.Rows[r][1] != nil {
			t.Errorf("day 2 row %d should be nil", r)
		}
		if m.Rows[r][2] == nil || *m.Rows[r][2] != 2.0 {
			t.Errorf("day 3 row %d = %v, want 2.0 replicated", r, m.Rows[r][2])
		}
	}
}

func TestBuildMatrixShortSeriesPadding(t *testing.T) {
	m, ok := BuildMatrix([]interface{}{seq(1, 2, 3), seq(4, 5, 6), seq(7, 8)}, testDates)
	if !ok {
		t.Fatal("expected matrix")
	}
	// Short series pad by repeating the last element.
	if *m.Rows[2][0] != 3 || *m.Rows[7][0] != 3 {
		t.Errorf("day 1 padding broken: row2=%v row7=%v", *m.Rows[2][0], *m.Rows[7][0])
	}
	if *m.Rows[7][2] != 8 {
		t.Errorf("day 3 padding broken: row7=%v", *m.Rows[7][2])
	}
}

func TestBuildMatrixLongSeriesTruncation(t *testing.T) {
	m, ok := BuildMatrix([]interface{}{seq(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), seq(1), seq(2)}, testDates)
	if !ok {
		t.Fatal("expected matrix")
	}
	if *m.Rows[7][0] != 8 {
		t.Errorf("day 1 should truncate to first 8 elements, row7=%v", *m.Rows[7][0])
	}
}

func TestBuildMatrixNoData(t *testing.T) {
	if _, ok := BuildMatrix([]interface{}{nil, nil, nil}, testDates); ok {
		t.Error("all-nil input should signal no data")
	}
	if _, ok := BuildMatrix([]interface{}{"garbage", nil, nil}, testDates); ok {
		t.Error("non-numeric input should signal no data")
	}
}

func TestDeriveApMatrix(t *testing.T) {
	kp, ok := BuildMatrix([]interface{}{3.0, 4.0, 5.0}, testDates)
	if !ok {
		t.Fatal("expected kp matrix")
	}
	ap := DeriveApMatrix(kp)
	if ap == nil {
		t.Fatal("expected derived ap matrix")
	}
	if *ap.Rows[0][0] != 15 || *ap.Rows[0][1] != 27 || *ap.Rows[0][2] != 48 {
		t.Errorf("derived ap values wrong: %v %v %v",
			*ap.Rows[0][0], *ap.Rows[0][1], *ap.Rows[0][2])
	}
	if DeriveApMatrix(nil) != nil {
		t.Error("DeriveApMatrix(nil) should be nil")
	}
}
