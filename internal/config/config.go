package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Resultstore connection
	ResultstoreURL    string
	ResultstoreAPIKey string

	// Auth
	OutlinerAPIKey string

	// Outline inference
	Strategy      string
	NoiseWords    []string
	TitleMergeGap float64

	// Worker pool
	WorkerCount        int
	MaxQueueSize       int
	MaxConcurrentStore int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		ResultstoreURL:    os.Getenv("RESULTSTORE_URL"),
		ResultstoreAPIKey: os.Getenv("RESULTSTORE_API_KEY"),

		OutlinerAPIKey: os.Getenv("OUTLINER_API_KEY"),

		Strategy:      envOr("STRATEGY", "threshold"),
		NoiseWords:    envList("NOISE_WORDS"),
		TitleMergeGap: envFloat("TITLE_MERGE_GAP", 20),

		WorkerCount:        envInt("WORKER_COUNT", 4),
		MaxQueueSize:       envInt("MAX_QUEUE_SIZE", 100),
		MaxConcurrentStore: envInt("MAX_CONCURRENT_STORE", 10),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxConcurrentStore <= 0 {
		cfg.MaxConcurrentStore = 10
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.TitleMergeGap <= 0 {
		cfg.TitleMergeGap = 20
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.OutlinerAPIKey == "" {
		return fmt.Errorf("OUTLINER_API_KEY is required")
	}
	// Resultstore is optional; if a URL is set the key must come with it.
	if c.ResultstoreURL != "" && c.ResultstoreAPIKey == "" {
		return fmt.Errorf("RESULTSTORE_API_KEY is required when RESULTSTORE_URL is set")
	}
	if c.Strategy != "threshold" && c.Strategy != "rank" {
		return fmt.Errorf("STRATEGY must be %q or %q, got %q", "threshold", "rank", c.Strategy)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// envList parses a comma-separated env var, trimming blanks. An unset or
// empty var returns nil so callers can fall back to their own defaults.
func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
