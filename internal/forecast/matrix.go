package forecast

import "spacecast/internal/models"

// Matrix building: reshapes whatever per-day series the extractor located
// into the fixed 8-row by 3-day grid the breakdown table and graphs use.

// BuildMatrix builds an HourlyMatrix from up to three per-day raw series
// values (one per output slot, nil allowed). The second return value is
// false when every cell came out nil, so the caller can omit the table
// instead of rendering a grid of dashes.
//
// Reshape rules per day: a scalar is replicated across all 8 slots; an
// array shorter than 8 is padded by repeating its last element; an array
// longer than 8 is truncated. A single 24-element flat series is treated
// as three consecutive days and split into 8-element chunks.
func BuildMatrix(perDay []interface{}, dates [models.ForecastDays]string) (*models.HourlyMatrix, bool) {
	m := &models.HourlyMatrix{Dates: dates}

	if day := soleFlat24(perDay); day != nil {
		for d := 0; d < models.ForecastDays; d++ {
			for r := 0; r < models.MatrixRows; r++ {
				v := day[d*models.MatrixRows+r]
				m.Rows[r][d] = &v
			}
		}
		return m, true
	}

	for d := 0; d < models.ForecastDays && d < len(perDay); d++ {
		col := daySlots(perDay[d])
		for r := 0; r < models.MatrixRows; r++ {
			m.Rows[r][d] = col[r]
		}
	}
	if m.Empty() {
		return nil, false
	}
	return m, true
}

// DeriveApMatrix converts a Kp matrix cell-by-cell through the Kp to Ap
// table, for backends that supply an hourly Kp series but no Ap series.
func DeriveApMatrix(kp *models.HourlyMatrix) *models.HourlyMatrix {
	if kp == nil {
		return nil
	}
	m := &models.HourlyMatrix{Dates: kp.Dates}
	for r := 0; r < models.MatrixRows; r++ {
		for d := 0; d < models.ForecastDays; d++ {
			m.Rows[r][d] = KpToAp(kp.Rows[r][d])
		}
	}
	return m
}

// soleFlat24 detects the one-document 24-value shape: a single series
// covering all three days hour-slot by hour-slot.
func soleFlat24(perDay []interface{}) []float64 {
	var sole interface{}
	count := 0
	for _, v := range perDay {
		if v == nil {
			continue
		}
		sole = v
		count++
	}
	if count != 1 {
		return nil
	}
	nums := FlattenNumbers(sole)
	if len(nums) == models.MatrixRows*models.ForecastDays {
		return nums
	}
	return nil
}

// daySlots normalizes one day's raw series value to exactly 8 slots.
func daySlots(v interface{}) [models.MatrixRows]*float64 {
	var col [models.MatrixRows]*float64
	if v == nil {
		return col
	}
	nums := FlattenNumbers(v)
	if len(nums) == 0 {
		return col
	}
	for r := 0; r < models.MatrixRows; r++ {
		var val float64
		if r < len(nums) {
			val = nums[r]
		} else {
			val = nums[len(nums)-1]
		}
		cell := val
		col[r] = &cell
	}
	return col
}
