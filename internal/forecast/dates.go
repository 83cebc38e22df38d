package forecast

import (
	"strings"
	"time"
)

// dateKeys are the candidate field names that may carry a document's
// forecast date, in probe order.
var dateKeys = []string{"date", "forecast_date", "timestamp", "dt", "issued", "time_tag", "day"}

// dateLayouts are tried in order against string date fields. Backends have
// been observed emitting bare dates, ISO timestamps with and without zone,
// Mongo-ish timestamps, and JavaScript toDateString() output.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000",
	"Mon Jan 02 2006",
	time.RFC1123,
}

// ParseDate extracts a UTC calendar date from a JSON value. Only the date
// part survives; time-of-day is truncated so output dates never drift.
func ParseDate(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t.UTC()), true
		}
	}
	return time.Time{}, false
}

// documentDate probes a document's date-ish fields and returns the first
// parseable calendar date.
func documentDate(doc RawDocument) (time.Time, bool) {
	for _, key := range dateKeys {
		if v, ok := doc[key]; ok {
			if t, ok := ParseDate(v); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// anchorDate picks the date for output slot 0: the earliest parseable
// date found anywhere in the input. The first document is deliberately
// not trusted, since re-fetched or unordered responses put stale
// documents first. When no document carries a date, the anchor falls back
// to tomorrow relative to wall-clock UTC midnight so the dashboard always
// shows future-looking content.
func anchorDate(docs []RawDocument, now time.Time) time.Time {
	var earliest time.Time
	found := false
	for _, doc := range docs {
		t, ok := documentDate(doc)
		if !ok {
			continue
		}
		if !found || t.Before(earliest) {
			earliest = t
			found = true
		}
	}
	if found {
		return earliest
	}
	return dateOnly(now.UTC()).AddDate(0, 0, 1)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
