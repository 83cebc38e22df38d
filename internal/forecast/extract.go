package forecast

// Field extraction: each quantity has an ordered chain of accessors, and
// the first one that yields a value wins. This keeps the "try many
// backend shapes" behavior in one place instead of scattering untyped
// property probing through the codebase.

// apKeys are the candidate explicit Ap / A-index field names.
var apKeys = []string{"a_index", "ap", "ap_index", "Ap"}

// solarKeys are the candidate solar radiation field names, with the
// radio flux proxy last.
var solarKeys = []string{"solar_radiation", "solar_radiation_pct", "solar", "radio_flux"}

// radioKeys are the candidate radio blackout field names.
var radioKeys = []string{"radio_blackout", "radio", "radio_blackout_obj"}

// r1r2Aliases and r3PlusAliases are the accepted spellings of the two
// severity band keys inside a blackout object.
var r1r2Aliases = []string{"R1-R2", "R1_R2", "r1_r2", "r1r2", "r1"}
var r3PlusAliases = []string{"R3 or greater", "R3_or_greater", "R3+", "r3_plus", "r3"}

// extractKpPerDay resolves a day's Kp from a single per-day document:
// hourly/3-hourly series first (greatest value of the day), then scalar
// fields.
func extractKpPerDay(doc RawDocument) *float64 {
	for _, key := range kpSeriesKeys {
		seq, ok := doc[key].([]interface{})
		if !ok {
			continue
		}
		if max := Max(FlattenNumbers(seq)); max != nil {
			return max
		}
	}
	for _, key := range kpScalarKeys {
		if v, ok := doc[key]; ok {
			if n := ToNumber(v); n != nil {
				return n
			}
		}
	}
	return nil
}

// extractKpForward resolves slot idx's Kp in the forward-array regime:
// element idx of every document's forward array, combined by mean across
// the documents that supply a value at that index. The forward-array
// element is authoritative; per-document scalars are not averaged in.
func extractKpForward(docs []RawDocument, idx int) *float64 {
	var values []float64
	for _, doc := range docs {
		for _, key := range forwardArrayKeys {
			seq, ok := doc[key].([]interface{})
			if !ok || len(seq) < 2 || idx >= len(seq) {
				continue
			}
			if n := ToNumber(seq[idx]); n != nil {
				values = append(values, *n)
				break
			}
		}
	}
	return Mean(values)
}

// extractAp resolves a day's explicit Ap value: a scalar field, or
// element idx of a per-day array field. The caller derives Ap from Kp
// only when this returns nil; an explicit backend value always wins.
func extractAp(doc RawDocument, idx int) *float64 {
	for _, key := range apKeys {
		v, ok := doc[key]
		if !ok {
			continue
		}
		if n := ToNumber(v); n != nil {
			return n
		}
		if seq, ok := v.([]interface{}); ok && idx < len(seq) {
			if n := ToNumber(seq[idx]); n != nil {
				return n
			}
		}
	}
	return nil
}

// extractSolar resolves a day's solar radiation value: scalar, first
// element of an array, or first value of an object, across the candidate
// keys in order. Nil means the caller substitutes the fixed default.
func extractSolar(doc RawDocument) *float64 {
	for _, key := range solarKeys {
		v, ok := doc[key]
		if !ok {
			continue
		}
		if n := ToNumber(v); n != nil {
			return n
		}
		if nums := FlattenNumbers(v); len(nums) > 0 {
			first := nums[0]
			return &first
		}
	}
	return nil
}

// extractBlackout resolves a day's radio blackout breakdown. Recognized
// shapes: an object carrying both severity bands (any alias spelling),
// or a bare scalar/string which applies to both bands. Anything else
// yields (nil, nil, false) and the caller substitutes the default object
// whole; the record never mixes a real band with a defaulted one.
func extractBlackout(doc RawDocument) (r1r2, r3plus interface{}, ok bool) {
	for _, key := range radioKeys {
		v, present := doc[key]
		if !present || v == nil {
			continue
		}
		switch val := v.(type) {
		case map[string]interface{}:
			r1, ok1 := lookupAlias(val, r1r2Aliases)
			r3, ok2 := lookupAlias(val, r3PlusAliases)
			if ok1 && ok2 {
				return blackoutValue(r1), blackoutValue(r3), true
			}
			// Partial objects fall through to the default rather than
			// mixing real and defaulted bands.
		case string:
			if val != "" {
				return val, val, true
			}
		default:
			if n := ToNumber(val); n != nil {
				return *n, *n, true
			}
		}
	}
	return nil, nil, false
}

func lookupAlias(obj map[string]interface{}, aliases []string) (interface{}, bool) {
	for _, alias := range aliases {
		if v, ok := obj[alias]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// blackoutValue normalizes a blackout band value: numeric-looking values
// become float64, severity words stay strings.
func blackoutValue(v interface{}) interface{} {
	if n := ToNumber(v); n != nil {
		return *n
	}
	if s, ok := v.(string); ok {
		return s
	}
	return v
}

// kpSeriesRaw returns the day's raw hourly/3-hourly Kp series value, if
// the document carries one. Used by the matrix builder, which applies
// its own reshape rules.
func kpSeriesRaw(doc RawDocument) (interface{}, bool) {
	for _, key := range kpSeriesKeys {
		if seq, ok := doc[key].([]interface{}); ok && len(FlattenNumbers(seq)) > 0 {
			return seq, true
		}
	}
	for _, key := range kpScalarKeys {
		if v, ok := doc[key]; ok && ToNumber(v) != nil {
			return v, true
		}
	}
	return nil, false
}

// apSeriesRaw is kpSeriesRaw's counterpart for explicit Ap series.
func apSeriesRaw(doc RawDocument) (interface{}, bool) {
	for _, key := range apKeys {
		if seq, ok := doc[key].([]interface{}); ok && len(FlattenNumbers(seq)) > 0 {
			return seq, true
		}
	}
	return nil, false
}
