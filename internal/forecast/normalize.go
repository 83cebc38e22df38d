package forecast

import (
	"time"

	"spacecast/internal/models"
)

// Provenance markers recorded on each day record. Diagnostic only.
const (
	sourcePerDay  = "per_day"
	sourceForward = "forward_array"
	sourceDefault = "default"
)

// Normalize turns an arbitrary parsed JSON value into the canonical
// 3-day forecast. It is a pure function of its input, the options, and
// the injected clock: no I/O, no retained state, never panics. Garbage
// input yields an empty result; partial input yields three complete
// records with fixed defaults filling the holes.
func Normalize(raw interface{}, opts Options) models.Forecast3Day {
	result := models.Forecast3Day{GeneratedAt: opts.now().UTC()}

	docs := Unwrap(raw)
	regime, days := Classify(docs)
	if regime == RegimeNone || days == 0 {
		return result
	}

	anchor := anchorDate(docs, opts.now())
	dates := slotDates(anchor)

	switch regime {
	case RegimePerDay:
		result.Records = normalizePerDay(docs, dates, opts)
		result.KpMatrix, result.ApMatrix = buildMatrices(docs, dates)
	case RegimeForward:
		result.Records = normalizeForward(docs, dates, opts)
	}
	return result
}

// DefaultResult synthesizes three fully-defaulted day records anchored at
// tomorrow. Callers use it when Normalize came back empty but the display
// layer still needs a complete, internally consistent structure.
func DefaultResult(opts Options) models.Forecast3Day {
	anchor := dateOnly(opts.now().UTC()).AddDate(0, 0, 1)
	dates := slotDates(anchor)
	result := models.Forecast3Day{GeneratedAt: opts.now().UTC()}
	for i := 0; i < models.ForecastDays; i++ {
		result.Records = append(result.Records, defaultRecord(dates[i], opts))
	}
	return result
}

// normalizePerDay maps documents 1:1 onto output slots in their given
// order; slots beyond the document count get fully-defaulted records.
func normalizePerDay(docs []RawDocument, dates [models.ForecastDays]string, opts Options) []models.DayRecord {
	records := make([]models.DayRecord, 0, models.ForecastDays)
	for i := 0; i < models.ForecastDays; i++ {
		if i >= len(docs) {
			records = append(records, defaultRecord(dates[i], opts))
			continue
		}
		doc := docs[i]
		rec := models.DayRecord{Date: dates[i], Source: sourcePerDay}
		rec.KpIndex = roundKp(extractKpPerDay(doc))
		rec.ApIndex = extractAp(doc, i)
		if rec.ApIndex == nil {
			rec.ApIndex = KpToAp(rec.KpIndex)
		}
		fillSolarAndBlackout(&rec, doc, opts)
		records = append(records, rec)
	}
	return records
}

// normalizeForward pulls slot i's values from element i of each
// document's forward arrays, combined by mean across documents. Scalar
// per-document fields (Ap, solar, blackout) are taken from the first
// document that supplies them, since in this regime the documents
// describe the same forecast issue.
func normalizeForward(docs []RawDocument, dates [models.ForecastDays]string, opts Options) []models.DayRecord {
	records := make([]models.DayRecord, 0, models.ForecastDays)
	for i := 0; i < models.ForecastDays; i++ {
		rec := models.DayRecord{Date: dates[i], Source: sourceForward}
		rec.KpIndex = roundKp(extractKpForward(docs, i))
		if rec.KpIndex == nil {
			records = append(records, defaultRecord(dates[i], opts))
			continue
		}
		for _, doc := range docs {
			if ap := extractAp(doc, i); ap != nil {
				rec.ApIndex = ap
				break
			}
		}
		if rec.ApIndex == nil {
			rec.ApIndex = KpToAp(rec.KpIndex)
		}
		doc := firstDocWithSignal(docs)
		fillSolarAndBlackout(&rec, doc, opts)
		records = append(records, rec)
	}
	return records
}

// buildMatrices assembles the Kp and Ap hourly matrices for the per-day
// regime. The Ap matrix prefers explicit backend series and falls back
// to deriving from the Kp matrix through the conversion table.
func buildMatrices(docs []RawDocument, dates [models.ForecastDays]string) (*models.HourlyMatrix, *models.HourlyMatrix) {
	kpRaw := make([]interface{}, models.ForecastDays)
	apRaw := make([]interface{}, models.ForecastDays)
	apExplicit := false
	for i := 0; i < models.ForecastDays && i < len(docs); i++ {
		if v, ok := kpSeriesRaw(docs[i]); ok {
			kpRaw[i] = v
		}
		if v, ok := apSeriesRaw(docs[i]); ok {
			apRaw[i] = v
			apExplicit = true
		}
	}

	kpMatrix, ok := BuildMatrix(kpRaw, dates)
	if !ok {
		return nil, nil
	}
	if apExplicit {
		if apMatrix, ok := BuildMatrix(apRaw, dates); ok {
			return kpMatrix, apMatrix
		}
	}
	return kpMatrix, DeriveApMatrix(kpMatrix)
}

func fillSolarAndBlackout(rec *models.DayRecord, doc RawDocument, opts Options) {
	if doc != nil {
		if solar := extractSolar(doc); solar != nil {
			rec.SolarRadiation = round2(*solar)
		} else {
			rec.SolarRadiation = opts.SolarDefault
		}
		if r1, r3, ok := extractBlackout(doc); ok {
			rec.RadioBlackout = models.RadioBlackout{R1R2: r1, R3Plus: r3}
			return
		}
	} else {
		rec.SolarRadiation = opts.SolarDefault
	}
	r1, r3 := opts.defaultBlackout()
	rec.RadioBlackout = models.RadioBlackout{R1R2: r1, R3Plus: r3}
}

func defaultRecord(date string, opts Options) models.DayRecord {
	r1, r3 := opts.defaultBlackout()
	return models.DayRecord{
		Date:           date,
		SolarRadiation: opts.SolarDefault,
		RadioBlackout:  models.RadioBlackout{R1R2: r1, R3Plus: r3},
		Source:         sourceDefault,
	}
}

// firstDocWithSignal returns the first document carrying any recognizable
// field, or nil for an empty set.
func firstDocWithSignal(docs []RawDocument) RawDocument {
	for _, doc := range docs {
		if len(doc) > 0 {
			return doc
		}
	}
	return nil
}

func slotDates(anchor time.Time) [models.ForecastDays]string {
	var dates [models.ForecastDays]string
	for i := 0; i < models.ForecastDays; i++ {
		dates[i] = anchor.AddDate(0, 0, i).Format("2006-01-02")
	}
	return dates
}

func roundKp(kp *float64) *float64 {
	if kp == nil {
		return nil
	}
	v := round2(*kp)
	return &v
}
