package config

import (
	"context"
	"os"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(*Config)
	}{
		{
			name:    "defaults with empty environment",
			envVars: map[string]string{},
			validate: func(cfg *Config) {
				if cfg.Port != "8980" {
					t.Errorf("Expected default Port to be '8980', got '%s'", cfg.Port)
				}
				if cfg.RequestTimeoutMs != 15000 {
					t.Errorf("Expected default RequestTimeoutMs to be 15000, got %d", cfg.RequestTimeoutMs)
				}
				if cfg.RequestRetries != 2 {
					t.Errorf("Expected default RequestRetries to be 2, got %d", cfg.RequestRetries)
				}
				if cfg.SolarRadiationDefault != 1 {
					t.Errorf("Expected default SolarRadiationDefault to be 1, got %v", cfg.SolarRadiationDefault)
				}
				if cfg.RadioBlackoutR1R2Default != 35 {
					t.Errorf("Expected default RadioBlackoutR1R2Default to be 35, got %v", cfg.RadioBlackoutR1R2Default)
				}
				if cfg.RadioBlackoutR3Default != 1 {
					t.Errorf("Expected default RadioBlackoutR3Default to be 1, got %v", cfg.RadioBlackoutR3Default)
				}
				if cfg.AlertsFeedURL != "https://www.sidc.be/products/meu" {
					t.Errorf("Expected default AlertsFeedURL, got '%s'", cfg.AlertsFeedURL)
				}
				if cfg.LocalReportsDir != "./reports" {
					t.Errorf("Expected default LocalReportsDir to be './reports', got '%s'", cfg.LocalReportsDir)
				}
				if cfg.Environment != "development" {
					t.Errorf("Expected default Environment to be 'development', got '%s'", cfg.Environment)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("Expected default LogLevel to be 'info', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "auto" {
					t.Errorf("Expected default LogFormat to be 'auto', got '%s'", cfg.LogFormat)
				}
				if cfg.CacheTTLMin != 60 {
					t.Errorf("Expected default CacheTTLMin to be 60, got %d", cfg.CacheTTLMin)
				}
			},
		},
		{
			name: "custom configuration values",
			envVars: map[string]string{
				"PORT":               "9000",
				"FORECAST_ENDPOINTS": "https://backend.example.com/api",
				"REQUEST_TIMEOUT_MS": "5000",
				"REDIS_ADDR":         "localhost:6379",
				"OPENAI_API_KEY":     "custom-key",
				"OPENAI_MODEL":       "gpt-3.5-turbo",
				"GCS_BUCKET":         "test-bucket",
				"LOCAL_REPORTS_DIR":  "/custom/reports",
				"ENVIRONMENT":        "production",
				"LOG_LEVEL":          "debug",
				"LOG_FORMAT":         "json",
			},
			validate: func(cfg *Config) {
				if cfg.Port != "9000" {
					t.Errorf("Expected Port to be '9000', got '%s'", cfg.Port)
				}
				if cfg.ForecastEndpoints != "https://backend.example.com/api" {
					t.Errorf("Expected custom ForecastEndpoints, got '%s'", cfg.ForecastEndpoints)
				}
				if cfg.RequestTimeoutMs != 5000 {
					t.Errorf("Expected RequestTimeoutMs to be 5000, got %d", cfg.RequestTimeoutMs)
				}
				if cfg.RedisAddr != "localhost:6379" {
					t.Errorf("Expected RedisAddr to be 'localhost:6379', got '%s'", cfg.RedisAddr)
				}
				if cfg.OpenAIAPIKey != "custom-key" {
					t.Errorf("Expected OpenAIAPIKey to be 'custom-key', got '%s'", cfg.OpenAIAPIKey)
				}
				if cfg.OpenAIModel != "gpt-3.5-turbo" {
					t.Errorf("Expected OpenAIModel to be 'gpt-3.5-turbo', got '%s'", cfg.OpenAIModel)
				}
				if cfg.GCSBucket != "test-bucket" {
					t.Errorf("Expected GCSBucket to be 'test-bucket', got '%s'", cfg.GCSBucket)
				}
				if cfg.LocalReportsDir != "/custom/reports" {
					t.Errorf("Expected LocalReportsDir to be '/custom/reports', got '%s'", cfg.LocalReportsDir)
				}
				if cfg.Environment != "production" {
					t.Errorf("Expected Environment to be 'production', got '%s'", cfg.Environment)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("Expected LogLevel to be 'debug', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "json" {
					t.Errorf("Expected LogFormat to be 'json', got '%s'", cfg.LogFormat)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()

			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load(context.Background())
			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}

			tt.validate(cfg)

			clearEnv()
		})
	}
}

func TestEndpointCandidates(t *testing.T) {
	tests := []struct {
		name      string
		endpoints string
		expected  []string
	}{
		{
			name:      "single URL without trailing slash",
			endpoints: "https://a.example.com/api/predictions/3day",
			expected: []string{
				"https://a.example.com/api/predictions/3day",
				"https://a.example.com/api/predictions/3day/",
			},
		},
		{
			name:      "single URL with trailing slash",
			endpoints: "https://a.example.com/api/",
			expected: []string{
				"https://a.example.com/api/",
				"https://a.example.com/api",
			},
		},
		{
			name:      "multiple URLs with whitespace",
			endpoints: "https://a.example.com/api, https://b.example.com/api",
			expected: []string{
				"https://a.example.com/api",
				"https://a.example.com/api/",
				"https://b.example.com/api",
				"https://b.example.com/api/",
			},
		},
		{
			name:      "empty entries skipped",
			endpoints: ",https://a.example.com/api,,",
			expected: []string{
				"https://a.example.com/api",
				"https://a.example.com/api/",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ForecastEndpoints: tt.endpoints}
			got := cfg.EndpointCandidates()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("EndpointCandidates() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// Helper function to clear relevant environment variables
func clearEnv() {
	envVars := []string{
		"PORT", "FORECAST_ENDPOINTS", "REQUEST_TIMEOUT_MS", "REQUEST_RETRIES",
		"SOLAR_RADIATION_DEFAULT", "RADIO_BLACKOUT_R1R2_DEFAULT", "RADIO_BLACKOUT_R3_DEFAULT",
		"ALERTS_FEED_URL", "REDIS_ADDR", "REDIS_PASSWORD", "CACHE_TTL_MIN",
		"OPENAI_API_KEY", "OPENAI_MODEL", "GCP_PROJECT_ID", "GCS_BUCKET",
		"LOCAL_REPORTS_DIR", "ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, env := range envVars {
		os.Unsetenv(env)
	}
}
