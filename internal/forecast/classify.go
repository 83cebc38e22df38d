package forecast

// Regime describes how the unwrapped documents map onto forecast days.
type Regime int

const (
	// RegimeNone means no usable day structure was recognized.
	RegimeNone Regime = iota
	// RegimePerDay means each document represents exactly one day.
	RegimePerDay
	// RegimeForward means documents carry short forward-looking arrays
	// (one element per future day), e.g. daily_avg_kp_next3days.
	RegimeForward
)

// maxPerDayDocuments bounds the per-day regime: a backend dumping dozens
// of documents is a history export, not a day-per-document forecast.
const maxPerDayDocuments = 7

// forwardArrayKeys are the field names that carry forward-looking
// multi-day arrays, in probe order.
var forwardArrayKeys = []string{
	"daily_avg_kp_next3days",
	"kp_next3days",
	"next3days",
	"daily_kp_forecast",
	"kp_forecast",
}

// kpScalarKeys are the candidate scalar Kp field names.
var kpScalarKeys = []string{"kp", "kp_value", "kp_index", "kp_val", "Kp"}

// kpSeriesKeys are the candidate hourly/3-hourly Kp series field names.
var kpSeriesKeys = []string{"kp_index", "kp", "kp_values", "kp_series"}

// Classify decides which regime the document sequence follows and how
// many forecast days it spans. A zero day count means the input carries
// no recognizable forecast and the engine should yield an empty result.
func Classify(docs []RawDocument) (Regime, int) {
	if len(docs) == 0 {
		return RegimeNone, 0
	}

	// Forward-array regime wins whenever any document carries a
	// multi-element forward array; day count is the longest such array.
	maxDays := 0
	for _, doc := range docs {
		if n := forwardArrayLen(doc); n > maxDays {
			maxDays = n
		}
	}
	if maxDays >= 2 {
		return RegimeForward, maxDays
	}

	// Per-day regime: a small document set where every document has at
	// least one recognizable Kp-ish or date-ish field.
	if len(docs) > maxPerDayDocuments {
		return RegimeNone, 0
	}
	for _, doc := range docs {
		if !hasKpField(doc) && !hasDateField(doc) {
			return RegimeNone, 0
		}
	}
	return RegimePerDay, len(docs)
}

// forwardArrayLen returns the length of the longest forward-looking array
// in the document, or 0 when it has none.
func forwardArrayLen(doc RawDocument) int {
	longest := 0
	for _, key := range forwardArrayKeys {
		seq, ok := doc[key].([]interface{})
		if !ok || len(seq) < 2 {
			continue
		}
		if len(FlattenNumbers(seq)) == 0 {
			continue
		}
		if len(seq) > longest {
			longest = len(seq)
		}
	}
	return longest
}

func hasKpField(doc RawDocument) bool {
	for _, key := range kpScalarKeys {
		if v, ok := doc[key]; ok {
			if ToNumber(v) != nil {
				return true
			}
			if len(FlattenNumbers(v)) > 0 {
				return true
			}
		}
	}
	return false
}

func hasDateField(doc RawDocument) bool {
	_, ok := documentDate(doc)
	return ok
}
