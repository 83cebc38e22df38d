package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"spacecast/internal/config"
	"spacecast/internal/fetchers"
	"spacecast/internal/forecast"
	"spacecast/internal/llm"
	"spacecast/internal/logger"
	"spacecast/internal/models"
	"spacecast/internal/reports"
	"spacecast/internal/storage"
)

// The local runner executes one full report cycle against the real
// backends and writes every artifact under the local reports directory.
// It exists so a change to the pipeline can be eyeballed end to end
// without starting the HTTP server.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel, "text", "development")
	log := logger.GetGlobalLogger().WithComponent("local-runner")

	started := time.Now()
	log.Info("starting local report run", logger.Fields{
		"endpoints":   cfg.ForecastEndpoints,
		"reports_dir": cfg.LocalReportsDir,
	})

	store, err := storage.NewLocalStorageClient(cfg.LocalReportsDir)
	if err != nil {
		log.Fatal("failed to initialize local storage", err)
	}
	defer store.Close()

	opts := forecast.Options{
		SolarDefault:       cfg.SolarRadiationDefault,
		RadioR1R2Default:   cfg.RadioBlackoutR1R2Default,
		RadioR3PlusDefault: cfg.RadioBlackoutR3Default,
	}

	timeout := time.Duration(cfg.RequestTimeoutMs) * time.Millisecond
	fetcher := fetchers.NewDataFetcher(timeout, cfg.RequestRetries)

	result := forecast.DefaultResult(opts)
	var alerts []models.AlertItem

	data, err := fetcher.FetchAll(ctx, cfg.EndpointCandidates(), cfg.AlertsFeedURL)
	if err != nil {
		log.Warn("backend fetch failed, rendering the defaulted forecast", logger.Fields{
			"reason": err.Error(),
		})
	} else {
		alerts = data.Alerts
		if normalized := forecast.Normalize(data.RawForecast, opts); !normalized.Empty() {
			result = normalized
		} else {
			log.Warn("backend payload yielded no usable days, rendering defaults")
		}
	}

	for _, rec := range result.Records {
		kp := "n/a"
		if rec.KpIndex != nil {
			kp = fmt.Sprintf("%.2f", *rec.KpIndex)
		}
		log.Info("day record", logger.Fields{
			"date":   rec.Date,
			"kp":     kp,
			"source": rec.Source,
		})
	}

	llmClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	commentary := llmClient.GenerateDiscussion(ctx, &result, alerts)

	generator := reports.NewReportGenerator(cfg.LocalReportsDir)
	files, err := generator.Generate(&result, alerts, reports.Rationale{}, commentary)
	if err != nil {
		log.Fatal("report generation failed", err)
	}

	folder, err := reports.NewStorageOrchestrator(store).Store(ctx, files, &result)
	if err != nil {
		log.Fatal("report archival failed", err)
	}

	log.Info("local report run complete", logger.Fields{
		"folder":   folder,
		"duration": time.Since(started).String(),
	})
	fmt.Printf("\nReport written to %s/%s/index.html\n", cfg.LocalReportsDir, folder)
}
