package fetchers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseBody(t *testing.T) {
	// Well-formed JSON
	raw, err := parseBody([]byte(`{"data": [{"kp": 3}]}`))
	if err != nil {
		t.Fatalf("Expected no error for valid JSON, got: %v", err)
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		t.Errorf("Expected object, got %T", raw)
	}

	// Malformed JSON that the repair pass can recover
	raw, err = parseBody([]byte(`{'data': [{'kp': 3}]`))
	if err != nil {
		t.Fatalf("Expected repaired parse to succeed, got: %v", err)
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		t.Errorf("Expected repaired object, got %T", raw)
	}
}

func TestFetchTriesCandidatesInOrder(t *testing.T) {
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `[{"date": "2025-09-23", "kp": 3}]`)
	}))
	defer server.Close()

	fetcher := NewPredictionsFetcher(5*time.Second, 0)
	raw, err := fetcher.Fetch(context.Background(), []string{
		server.URL + "/broken",
		server.URL + "/ok",
	})
	if err != nil {
		t.Fatalf("Expected fallback to second candidate, got: %v", err)
	}
	if raw == nil {
		t.Fatal("Expected parsed payload")
	}
	if len(calls) != 2 || calls[0] != "/broken" || calls[1] != "/ok" {
		t.Errorf("Expected candidates tried in order, got calls: %v", calls)
	}
}

func TestFetchAllCandidatesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewPredictionsFetcher(5*time.Second, 0)
	_, err := fetcher.Fetch(context.Background(), []string{server.URL + "/a", server.URL + "/b"})
	if err == nil {
		t.Error("Expected error when all candidates fail")
	}
}

func TestFetchNoEndpoints(t *testing.T) {
	fetcher := NewPredictionsFetcher(5*time.Second, 0)
	_, err := fetcher.Fetch(context.Background(), nil)
	if err == nil {
		t.Error("Expected error with no endpoints configured")
	}
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"X-class flare observed on the western limb", "Extreme"},
		{"M-class flare activity continues", "Severe"},
		{"C-class flares only, quiet conditions", "Moderate"},
		{"Minor geomagnetic disturbance expected", "Minor"},
		{"Routine weekly bulletin", "None"},
	}
	for _, tt := range tests {
		if got := classifySeverity(tt.title); got != tt.expected {
			t.Errorf("classifySeverity(%q) = %q, want %q", tt.title, got, tt.expected)
		}
	}
}

func TestFetchAllAlertsFailureIsNonFatal(t *testing.T) {
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"date": "2025-09-23", "kp": 3}]`)
	}))
	defer forecast.Close()

	alerts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer alerts.Close()

	fetcher := NewDataFetcher(5*time.Second, 0)
	data, err := fetcher.FetchAll(context.Background(), []string{forecast.URL}, alerts.URL)
	if err != nil {
		t.Fatalf("Alerts failure should not block forecast fetch, got: %v", err)
	}
	if data.RawForecast == nil {
		t.Error("Expected raw forecast payload")
	}
	if len(data.Alerts) != 0 {
		t.Errorf("Expected no alerts, got %d", len(data.Alerts))
	}
}

func TestFetchAllForecastFailureIsFatal(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	fetcher := NewDataFetcher(5*time.Second, 0)
	_, err := fetcher.FetchAll(context.Background(), []string{broken.URL + "/forecast"}, broken.URL+"/alerts")
	if err == nil {
		t.Error("Expected error when forecast fetch fails")
	}
}

func TestFetchAllParsesAlertsFeed(t *testing.T) {
	now := time.Now().UTC()
	rss := fmt.Sprintf(`<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Space Weather Bulletins</title>
    <item>
      <title>M-class flare activity continues</title>
      <pubDate>%s</pubDate>
    </item>
    <item>
      <title>Archived bulletin from last month</title>
      <pubDate>%s</pubDate>
    </item>
  </channel>
</rss>`, now.Format(time.RFC1123Z), now.Add(-30*24*time.Hour).Format(time.RFC1123Z))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/alerts" {
			fmt.Fprint(w, rss)
			return
		}
		fmt.Fprint(w, `[{"date": "2025-09-23", "kp": 3}]`)
	}))
	defer server.Close()

	fetcher := NewDataFetcher(5*time.Second, 0)
	data, err := fetcher.FetchAll(context.Background(), []string{server.URL + "/forecast"}, server.URL+"/alerts")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(data.Alerts) != 1 {
		t.Fatalf("Expected 1 recent alert, got %d", len(data.Alerts))
	}
	if data.Alerts[0].Severity != "Severe" {
		t.Errorf("Expected severity 'Severe', got '%s'", data.Alerts[0].Severity)
	}
	if data.Alerts[0].Source != "SIDC" {
		t.Errorf("Expected source 'SIDC', got '%s'", data.Alerts[0].Source)
	}
}
