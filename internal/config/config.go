package config

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"

	"jan-server/services/chat-insights/internal/domain/textnorm"
)

// Config holds the environment driven configuration for the chat insights service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"chat-insights"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8190"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	EnableMetrics   bool          `env:"ENABLE_METRICS" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DatasetPath      string `env:"DATASET_PATH" envDefault:"BiztelAI_DS_Dataset_Mar'25.json"`
	NormalizerPolicy string `env:"NORMALIZER_POLICY" envDefault:"basic"`
	StopwordsFile    string `env:"STOPWORDS_FILE"`
	ReloadEnabled    bool   `env:"RELOAD_ENABLED" envDefault:"false"`

	// WorkerPoolSize <= 0 means GOMAXPROCS.
	WorkerPoolSize   int `env:"WORKER_POOL_SIZE" envDefault:"0"`
	WorkerQueueSize  int `env:"WORKER_QUEUE_SIZE" envDefault:"64"`
	SummaryCacheSize int `env:"SUMMARY_CACHE_SIZE" envDefault:"1024"`
}

// Load parses environment variables into Config.
//
// Configuration Loading Order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (if present)
// 3. Default values from struct tags
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints and fills derived defaults.
func (c *Config) Validate() error {
	policy, err := textnorm.ParsePolicy(c.NormalizerPolicy)
	if err != nil {
		return fmt.Errorf("NORMALIZER_POLICY: %w", err)
	}
	c.NormalizerPolicy = string(policy)
	if strings.TrimSpace(c.DatasetPath) == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	if c.WorkerPoolSize <= 0 {
		c.WorkerPoolSize = runtime.GOMAXPROCS(0)
	}
	if c.WorkerQueueSize < 0 {
		return fmt.Errorf("WORKER_QUEUE_SIZE must be >= 0")
	}
	if c.SummaryCacheSize <= 0 {
		return fmt.Errorf("SUMMARY_CACHE_SIZE must be > 0")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
