package forecast

import (
	"sort"
	"strconv"
)

// RawDocument is a single prediction document as received from the
// backend. The schema is not under our control, so it stays an untyped
// JSON object and the extractor probes it through candidate key lists.
type RawDocument map[string]interface{}

// wrapperKeys are checked first, in priority order, when the response is
// an object wrapping the document sequence.
var wrapperKeys = []string{"data", "predictions", "results"}

// Unwrap locates the prediction document sequence inside an arbitrary
// parsed JSON value. It never fails: unrecognizable input yields an empty
// sequence.
func Unwrap(v interface{}) []RawDocument {
	switch val := v.(type) {
	case []interface{}:
		return toDocuments(val)
	case map[string]interface{}:
		// Known wrapper keys first.
		for _, key := range wrapperKeys {
			if seq, ok := val[key].([]interface{}); ok {
				return toDocuments(seq)
			}
		}
		// Otherwise the first key (in sorted order, for determinism)
		// whose value is a sequence.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if seq, ok := val[k].([]interface{}); ok {
				return toDocuments(seq)
			}
		}
		// Index-keyed object acting as an implicit array: {"0": {...}, "1": {...}}.
		if docs, ok := unwrapIndexKeyed(val); ok {
			return docs
		}
		return nil
	default:
		return nil
	}
}

// unwrapIndexKeyed reconstructs a sequence from an object whose keys are
// all decimal digit strings, ordered by their numeric value.
func unwrapIndexKeyed(obj map[string]interface{}) ([]RawDocument, bool) {
	if len(obj) == 0 {
		return nil, false
	}
	type indexed struct {
		idx int
		doc RawDocument
	}
	entries := make([]indexed, 0, len(obj))
	for k, v := range obj {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 {
			return nil, false
		}
		doc, ok := v.(map[string]interface{})
		if !ok {
			return nil, false
		}
		entries = append(entries, indexed{idx: idx, doc: doc})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })
	docs := make([]RawDocument, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, e.doc)
	}
	return docs, true
}

// toDocuments keeps the object entries of a sequence, dropping scalars
// and nested arrays that cannot act as documents.
func toDocuments(seq []interface{}) []RawDocument {
	var docs []RawDocument
	for _, item := range seq {
		if doc, ok := item.(map[string]interface{}); ok {
			docs = append(docs, doc)
		}
	}
	return docs
}
