package server

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"spacecast/internal/cache"
	"spacecast/internal/config"
	"spacecast/internal/fetchers"
	"spacecast/internal/forecast"
	"spacecast/internal/llm"
	"spacecast/internal/logger"
	"spacecast/internal/reports"
	"spacecast/internal/storage"
)

// Server wires the fetch, normalization, report, and storage components
// behind the HTTP API.
type Server struct {
	cfg       *config.Config
	fetcher   *fetchers.DataFetcher
	llmClient *llm.OpenAIClient
	generator *reports.ReportGenerator
	archive   *reports.StorageOrchestrator
	storage   storage.StorageClient
	snapshots *cache.SnapshotCache
	log       *logger.Logger

	// generateMu makes report generation single-flight: a second request
	// while one is running is rejected, not queued.
	generateMu sync.Mutex
}

// NewServer creates a new server instance
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	log := logger.GetGlobalLogger().WithComponent("server")

	mode := storage.ResolveDeploymentMode(cfg)
	storageClient, err := storage.NewStorageClient(ctx, mode, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("storage backend initialized", logger.Fields{"mode": string(mode)})

	// The snapshot cache is optional: without a Redis address the server
	// runs with no cache, and an unreachable Redis downgrades to the same.
	var snapshots *cache.SnapshotCache
	if cfg.RedisAddr != "" {
		ttl := time.Duration(cfg.CacheTTLMin) * time.Minute
		snapshots, err = cache.NewSnapshotCache(ctx, cfg.RedisAddr, cfg.RedisPassword, ttl)
		if err != nil {
			log.Warn("snapshot cache unavailable, continuing without it", logger.Fields{
				"addr":   cfg.RedisAddr,
				"reason": err.Error(),
			})
			snapshots = nil
		}
	}

	timeout := time.Duration(cfg.RequestTimeoutMs) * time.Millisecond
	reportsDir := cfg.LocalReportsDir
	if mode == storage.DeploymentGCS {
		reportsDir = "/tmp/reports"
	}

	return &Server{
		cfg:       cfg,
		fetcher:   fetchers.NewDataFetcher(timeout, cfg.RequestRetries),
		llmClient: llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		generator: reports.NewReportGenerator(reportsDir),
		archive:   reports.NewStorageOrchestrator(storageClient),
		storage:   storageClient,
		snapshots: snapshots,
		log:       log,
	}, nil
}

// Router configures the HTTP routes for the server
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/predictions/3day", s.handlePredictions).Methods("GET")
	r.HandleFunc("/api/predictions/3day/summary", s.handleSummary).Methods("GET")
	r.HandleFunc("/generate", s.handleGenerate).Methods("POST")
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/reports", s.handleListReports).Methods("GET")
	r.HandleFunc("/files/{path:.*}", s.handleFiles).Methods("GET")
	r.HandleFunc("/", s.handleRoot).Methods("GET")

	return r
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.snapshots != nil {
		if err := s.snapshots.Close(); err != nil {
			s.log.Warn("failed to close snapshot cache", logger.Fields{"reason": err.Error()})
		}
	}
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}

// forecastOptions maps the deployment configuration onto the
// normalization engine's substitution policy.
func (s *Server) forecastOptions() forecast.Options {
	return forecast.Options{
		SolarDefault:       s.cfg.SolarRadiationDefault,
		RadioR1R2Default:   s.cfg.RadioBlackoutR1R2Default,
		RadioR3PlusDefault: s.cfg.RadioBlackoutR3Default,
	}
}
