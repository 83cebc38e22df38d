package forecast

import "math"

// kpToApTable is the NOAA Kp to ap conversion table at one-third-of-a-step
// resolution: index 0 is Kp 0o, index 1 is Kp 0+, index 2 is Kp 1-, and so
// on up to index 27 for Kp 9o. Source Kp predictions are fractional
// (e.g. 4.655), so integer-only conversion would lose most of the scale.
var kpToApTable = [28]float64{
	0, 2, 3, 4, 5, 6, 7, 9, 12, 15,
	18, 22, 27, 32, 39, 48, 56, 67, 80, 94,
	111, 132, 154, 179, 207, 236, 300, 400,
}

// KpToAp converts a (possibly fractional) Kp value to the equivalent Ap
// value via table lookup at round(kp*3), clamped into the table range.
// The mapping is monotonically non-decreasing in Kp. Nil input yields nil.
func KpToAp(kp *float64) *float64 {
	if kp == nil {
		return nil
	}
	idx := int(math.Round(*kp * 3))
	if idx < 0 {
		idx = 0
	}
	if idx > len(kpToApTable)-1 {
		idx = len(kpToApTable) - 1
	}
	ap := kpToApTable[idx]
	return &ap
}
