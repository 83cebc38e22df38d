package fetchers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"spacecast/internal/logger"
	"spacecast/internal/models"
)

// SourceData bundles everything one fetch cycle collected: the raw
// forecast payload for the normalization engine, plus any recent alerts.
type SourceData struct {
	RawForecast interface{}
	Alerts      []models.AlertItem
	FetchedAt   time.Time
}

// DataFetcher handles fetching data from all external sources
type DataFetcher struct {
	predictions *PredictionsFetcher
	alerts      *AlertsFetcher
	log         *logger.Logger
}

// NewDataFetcher creates a new data fetcher instance
func NewDataFetcher(timeout time.Duration, retries int) *DataFetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(retries)
	client.SetRetryWaitTime(2 * time.Second)

	return &DataFetcher{
		predictions: NewPredictionsFetcher(timeout, retries),
		alerts:      NewAlertsFetcher(client),
		log:         logger.GetGlobalLogger().WithComponent("fetcher"),
	}
}

// FetchAll fetches forecast and alert data concurrently. The forecast
// payload is required; alerts are best-effort and an alerts failure only
// logs a warning.
func (f *DataFetcher) FetchAll(ctx context.Context, endpoints []string, alertsURL string) (*SourceData, error) {
	f.log.Info("starting data fetch from all sources")

	forecastChan := make(chan interface{}, 1)
	alertsChan := make(chan []models.AlertItem, 1)
	errChan := make(chan error, 2)

	go func() {
		raw, err := f.predictions.Fetch(ctx, endpoints)
		if err != nil {
			errChan <- fmt.Errorf("forecast fetch failed: %w", err)
			return
		}
		forecastChan <- raw
	}()

	go func() {
		alerts, err := f.alerts.Fetch(ctx, alertsURL)
		if err != nil {
			errChan <- fmt.Errorf("alerts fetch failed: %w", err)
			return
		}
		alertsChan <- alerts
	}()

	data := &SourceData{FetchedAt: time.Now().UTC()}
	var forecastErr error
	haveForecast := false

	for completed := 0; completed < 2; completed++ {
		select {
		case raw := <-forecastChan:
			data.RawForecast = raw
			haveForecast = true
		case alerts := <-alertsChan:
			data.Alerts = alerts
		case err := <-errChan:
			f.log.Warn("data fetch error", logger.Fields{"reason": err.Error()})
			forecastErr = err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if !haveForecast {
		return nil, forecastErr
	}

	f.log.Info("data fetch completed", logger.Fields{"alerts": len(data.Alerts)})
	return data, nil
}
