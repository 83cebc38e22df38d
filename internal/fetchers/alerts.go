package fetchers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"spacecast/internal/models"
)

// AlertsFetcher pulls recent space weather alerts from the SIDC feed.
// Alerts decorate the report; a feed outage never blocks forecast
// generation.
type AlertsFetcher struct {
	client *resty.Client
	parser *gofeed.Parser
}

// NewAlertsFetcher creates a new alerts fetcher instance
func NewAlertsFetcher(client *resty.Client) *AlertsFetcher {
	return &AlertsFetcher{
		client: client,
		parser: gofeed.NewParser(),
	}
}

// Fetch fetches and classifies alert items published in the last 3 days
func (f *AlertsFetcher) Fetch(ctx context.Context, url string) ([]models.AlertItem, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch alerts feed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("alerts feed returned status %d", resp.StatusCode())
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse alerts feed: %w", err)
	}

	cutoff := time.Now().Add(-72 * time.Hour)
	var alerts []models.AlertItem
	for _, item := range feed.Items {
		if item.PublishedParsed == nil || item.PublishedParsed.Before(cutoff) {
			continue
		}
		alerts = append(alerts, models.AlertItem{
			Source:      "SIDC",
			Title:       item.Title,
			Severity:    classifySeverity(item.Title),
			PublishedAt: *item.PublishedParsed,
		})
	}
	return alerts, nil
}

// classifySeverity maps an alert title onto the severity ladder used by
// the blackout breakdown, based on flare class keywords.
func classifySeverity(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "x-class") || strings.Contains(t, "extreme"):
		return "Extreme"
	case strings.Contains(t, "m-class") || strings.Contains(t, "severe") || strings.Contains(t, "major"):
		return "Severe"
	case strings.Contains(t, "c-class") || strings.Contains(t, "moderate"):
		return "Moderate"
	case strings.Contains(t, "minor"):
		return "Minor"
	default:
		return "None"
	}
}
