package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/go-resty/resty/v2"

	"spacecast/internal/logger"
)

// PredictionsFetcher pulls the raw 3-day forecast payload from the
// backend. The payload shape varies between backend releases, so the
// body is returned as an untyped parsed value for the normalization
// engine to sort out.
type PredictionsFetcher struct {
	client *resty.Client
	log    *logger.Logger
}

// NewPredictionsFetcher creates a new predictions fetcher instance
func NewPredictionsFetcher(timeout time.Duration, retries int) *PredictionsFetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(retries)
	client.SetRetryWaitTime(2 * time.Second)

	return &PredictionsFetcher{
		client: client,
		log:    logger.GetGlobalLogger().WithComponent("predictions-fetcher"),
	}
}

// Fetch tries each candidate URL in order and returns the first payload
// that yields parseable JSON. A 200 with an unparseable body is run
// through JSON repair before the candidate is given up on, since the
// backend has shipped truncated and single-quoted payloads before.
func (f *PredictionsFetcher) Fetch(ctx context.Context, candidates []string) (interface{}, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no forecast endpoints configured")
	}

	var lastErr error
	for _, url := range candidates {
		raw, err := f.fetchOne(ctx, url)
		if err != nil {
			f.log.Warn("forecast endpoint failed", logger.Fields{"url": url, "reason": err.Error()})
			lastErr = err
			continue
		}
		f.log.Debug("forecast payload fetched", logger.Fields{"url": url})
		return raw, nil
	}
	return nil, fmt.Errorf("all forecast endpoints failed: %w", lastErr)
}

func (f *PredictionsFetcher) fetchOne(ctx context.Context, url string) (interface{}, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode())
	}

	return parseBody(resp.Body())
}

// parseBody parses a response body as JSON, falling back to repair for
// malformed payloads.
func parseBody(body []byte) (interface{}, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err == nil {
		return raw, nil
	}

	repaired, err := jsonrepair.RepairJSON(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse forecast response: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse repaired forecast response: %w", err)
	}
	return raw, nil
}
