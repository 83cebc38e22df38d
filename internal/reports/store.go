package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"spacecast/internal/logger"
	"spacecast/internal/models"
	"spacecast/internal/storage"
)

// StorageOrchestrator persists a generated report run to the configured
// storage backend under the run's timestamped folder.
type StorageOrchestrator struct {
	storage storage.StorageClient
	log     *logger.Logger
}

// NewStorageOrchestrator creates a storage orchestrator
func NewStorageOrchestrator(client storage.StorageClient) *StorageOrchestrator {
	return &StorageOrchestrator{
		storage: client,
		log:     logger.GetGlobalLogger().WithComponent("report_store"),
	}
}

// Store writes all artifacts of one report run. It returns the storage
// folder path the run was stored under. Chart images that cannot be read
// back from disk are skipped with a warning.
func (so *StorageOrchestrator) Store(ctx context.Context, files *GeneratedFiles, forecast *models.Forecast3Day) (string, error) {
	if so.storage == nil {
		return "", fmt.Errorf("no storage client configured")
	}

	timestamp := forecast.GeneratedAt
	folder := storage.ReportFolderPath(timestamp)

	artifacts := map[string][]byte{
		"forecast.txt": []byte(files.TextReport),
		"report.md":    []byte(files.Markdown),
		"index.html":   []byte(files.HTML),
	}

	if data, err := json.MarshalIndent(forecast, "", "  "); err == nil {
		artifacts["forecast.json"] = data
	} else {
		so.log.Warn("failed to marshal forecast snapshot", logger.Fields{"reason": err.Error()})
	}

	for _, chartPath := range files.ChartFiles {
		data, err := os.ReadFile(chartPath)
		if err != nil {
			so.log.Warn("skipping unreadable chart image", logger.Fields{
				"path":   chartPath,
				"reason": err.Error(),
			})
			continue
		}
		artifacts[filepath.Base(chartPath)] = data
	}

	for filename, data := range artifacts {
		if err := so.storage.StoreFile(ctx, data, filename, timestamp); err != nil {
			return "", fmt.Errorf("failed to store %s: %w", filename, err)
		}
	}

	so.log.Info("report run stored", logger.Fields{
		"folder": folder,
		"files":  len(artifacts),
	})
	return folder, nil
}
