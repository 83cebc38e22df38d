package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the forecast service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8980"`

	// Forecast backend configuration
	ForecastEndpoints string `env:"FORECAST_ENDPOINTS,default=https://forecast-backend.onrender.com/api/predictions/3day"`
	RequestTimeoutMs  int    `env:"REQUEST_TIMEOUT_MS,default=15000"`
	RequestRetries    int    `env:"REQUEST_RETRIES,default=2"`

	// Fixed substitution values for days the backend leaves incomplete
	SolarRadiationDefault    float64 `env:"SOLAR_RADIATION_DEFAULT,default=1"`
	RadioBlackoutR1R2Default float64 `env:"RADIO_BLACKOUT_R1R2_DEFAULT,default=35"`
	RadioBlackoutR3Default   float64 `env:"RADIO_BLACKOUT_R3_DEFAULT,default=1"`

	// Alerts feed configuration
	AlertsFeedURL string `env:"ALERTS_FEED_URL,default=https://www.sidc.be/products/meu"`

	// Redis cache configuration (optional; empty disables caching)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTLMin   int    `env:"CACHE_TTL_MIN,default=60"`

	// OpenAI configuration (optional; empty disables generated commentary)
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4.1"`

	// GCP configuration (optional for local testing)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Local testing configuration
	LocalReportsDir string `env:"LOCAL_REPORTS_DIR,default=./reports"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=auto"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// EndpointCandidates returns the configured backend URLs, comma-separated
// in the environment, each expanded into with- and without-trailing-slash
// variants. Deployed backends have disagreed on the trailing slash across
// releases, so the fetcher tries both.
func (c *Config) EndpointCandidates() []string {
	var urls []string
	seen := make(map[string]bool)
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	for _, raw := range strings.Split(c.ForecastEndpoints, ",") {
		u := strings.TrimSpace(raw)
		if u == "" {
			continue
		}
		add(u)
		if strings.HasSuffix(u, "/") {
			add(strings.TrimSuffix(u, "/"))
		} else {
			add(u + "/")
		}
	}
	return urls
}
