package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"spacecast/internal/forecast"
	"spacecast/internal/logger"
	"spacecast/internal/models"
	"spacecast/internal/reports"
	"spacecast/internal/storage"
)

// currentForecast produces the canonical 3-day forecast for API requests.
// Backend failure falls back to the cached snapshot; an empty or missing
// snapshot falls back to the fully-defaulted result. The returned alerts
// are empty on any fallback path.
func (s *Server) currentForecast(ctx context.Context) (*models.Forecast3Day, []models.AlertItem) {
	opts := s.forecastOptions()

	data, err := s.fetcher.FetchAll(ctx, s.cfg.EndpointCandidates(), s.cfg.AlertsFeedURL)
	if err != nil {
		s.log.Warn("backend fetch failed, trying cached snapshot", logger.Fields{"reason": err.Error()})
		if cached := s.cachedForecast(ctx); cached != nil {
			return cached, nil
		}
		fallback := forecast.DefaultResult(opts)
		return &fallback, nil
	}

	result := forecast.Normalize(data.RawForecast, opts)
	if result.Empty() {
		s.log.Warn("backend payload yielded no usable days, serving defaults")
		if cached := s.cachedForecast(ctx); cached != nil {
			return cached, data.Alerts
		}
		fallback := forecast.DefaultResult(opts)
		return &fallback, data.Alerts
	}

	if s.snapshots != nil {
		if err := s.snapshots.SetLatest(ctx, &result); err != nil {
			s.log.Warn("failed to cache forecast snapshot", logger.Fields{"reason": err.Error()})
		}
	}
	return &result, data.Alerts
}

func (s *Server) cachedForecast(ctx context.Context) *models.Forecast3Day {
	if s.snapshots == nil {
		return nil
	}
	cached, err := s.snapshots.GetLatest(ctx)
	if err != nil {
		s.log.Warn("snapshot cache read failed", logger.Fields{"reason": err.Error()})
		return nil
	}
	if cached.Empty() {
		return nil
	}
	s.log.Info("serving cached forecast snapshot")
	return cached
}

// handlePredictions serves the canonical normalized forecast as JSON.
func (s *Server) handlePredictions(w http.ResponseWriter, r *http.Request) {
	result, _ := s.currentForecast(r.Context())
	writeJSON(w, http.StatusOK, result)
}

// handleSummary serves the fixed-width text product for the current
// forecast.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	result, _ := s.currentForecast(r.Context())
	text := reports.GenerateForecastText(result, reports.Rationale{})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, text)
}

// handleGenerate runs a full report cycle: fetch, normalize, render,
// archive. Only one generation runs at a time.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !s.generateMu.TryLock() {
		s.log.Warn("report generation already in progress, rejecting request")
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":  "report generation already in progress",
			"status": "conflict",
		})
		return
	}
	defer s.generateMu.Unlock()

	ctx := r.Context()
	s.log.Info("starting report generation")
	started := time.Now()

	result, alerts := s.currentForecast(ctx)
	commentary := s.llmClient.GenerateDiscussion(ctx, result, alerts)

	files, err := s.generator.Generate(result, alerts, reports.Rationale{}, commentary)
	if err != nil {
		s.log.Error("report generation failed", err)
		http.Error(w, "report generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	folder, err := s.archive.Store(ctx, files, result)
	if err != nil {
		s.log.Error("report archival failed", err)
		http.Error(w, "report archival failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("report generation completed", logger.Fields{
		"folder":   folder,
		"duration": time.Since(started).String(),
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"report_url": "/files/" + folder + "/index.html",
		"records":    len(result.Records),
		"alerts":     len(alerts),
	})
}

// handleHealth provides the health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"storage": "ok",
		"cache":   "disabled",
	}
	if s.snapshots != nil {
		checks["cache"] = "ok"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}

// handleRoot redirects to the latest archived report, or serves a
// placeholder page when nothing has been generated yet.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	latest, err := s.storage.GetLatestReport(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, initialPage)
		return
	}
	http.Redirect(w, r, "/files/"+latest, http.StatusFound)
}

// handleListReports lists recently archived report runs.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 100 {
		limit = 100
	}

	list, err := s.storage.ListReports(r.Context(), limit)
	if err != nil {
		s.log.Error("failed to list reports", err)
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports":   list,
		"count":     len(list),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleFiles proxies archived report files out of the storage backend.
func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	filePath := mux.Vars(r)["path"]
	if filePath == "" {
		http.Error(w, "file path required", http.StatusBadRequest)
		return
	}
	if strings.Contains(filePath, "..") {
		http.Error(w, "invalid file path", http.StatusBadRequest)
		return
	}

	data, err := s.storage.GetFile(r.Context(), filePath)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.ContentType(filePath))
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

const initialPage = `<!DOCTYPE html>
<html>
<head><title>Spacecast</title></head>
<body>
<h1>Spacecast</h1>
<p>No forecast reports have been generated yet.</p>
<p>POST to <code>/generate</code> to create the first one, or query
<code>/api/predictions/3day</code> for the live forecast.</p>
</body>
</html>
`
