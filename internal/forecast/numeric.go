package forecast

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ToNumber coerces a JSON value to a finite float64. It accepts numbers
// and numeric strings; everything else (including NaN and Inf) yields nil.
func ToNumber(v interface{}) *float64 {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return &val
	case float32:
		f := float64(val)
		return &f
	case int:
		f := float64(val)
		return &f
	case int64:
		f := float64(val)
		return &f
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// FlattenNumbers flattens an arbitrary JSON value into a slice of finite
// numbers. Scalars become a single-element slice, sequences are flattened
// recursively, objects contribute their values in sorted key order, and
// anything non-numeric is dropped.
func FlattenNumbers(v interface{}) []float64 {
	switch val := v.(type) {
	case nil:
		return nil
	case []interface{}:
		var out []float64
		for _, item := range val {
			out = append(out, FlattenNumbers(item)...)
		}
		return out
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []float64
		for _, k := range keys {
			out = append(out, FlattenNumbers(val[k])...)
		}
		return out
	default:
		if n := ToNumber(val); n != nil {
			return []float64{*n}
		}
		return nil
	}
}

// Mean returns the arithmetic mean of the slice, or nil when it is empty.
func Mean(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	m := sum / float64(len(xs))
	return &m
}

// Max returns the largest value in the slice, or nil when it is empty.
func Max(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return &max
}

// round2 rounds to two decimal places, the precision the display layer
// renders Kp values at.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
