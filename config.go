package rematch

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	ENV_CACHE_SIZE    = "REMATCH_CACHE_SIZE"
	ENV_MATCH_TIMEOUT = "REMATCH_MATCH_TIMEOUT"
)

type config struct {
	cacheSize    int
	matchTimeout time.Duration
	cache        *Cache
	logger       zerolog.Logger
}

type option func(*config) *config

func defaultConfig() *config {
	return &config{cacheSize: DefaultCacheSize, logger: zerolog.Nop()}
}

// WithCacheSize bounds the number of compiled patterns kept around.
func WithCacheSize(size int) option {
	return func(cfg *config) *config {
		cfg.cacheSize = size
		return cfg
	}
}

// WithMatchTimeout makes every match attempt fail with a
// MatchEvaluationError once it runs longer than timeout.
func WithMatchTimeout(timeout time.Duration) option {
	return func(cfg *config) *config {
		cfg.matchTimeout = timeout
		return cfg
	}
}

// WithCache shares an existing cache, WithCacheSize and
// WithMatchTimeout are then ignored.
func WithCache(cache *Cache) option {
	return func(cfg *config) *config {
		cfg.cache = cache
		return cfg
	}
}

// WithLogger sets the logger receiving flag warnings. Warnings are
// dropped by default.
func WithLogger(logger zerolog.Logger) option {
	return func(cfg *config) *config {
		cfg.logger = logger
		return cfg
	}
}

// ConfigFromEnv turns REMATCH_CACHE_SIZE and REMATCH_MATCH_TIMEOUT into
// options. Unset variables produce no option.
func ConfigFromEnv() ([]option, error) {
	var opts []option
	if v, ok := os.LookupEnv(ENV_CACHE_SIZE); ok && v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("%s: expected a positive integer, got %q", ENV_CACHE_SIZE, v)
		}
		opts = append(opts, WithCacheSize(size))
	}
	if v, ok := os.LookupEnv(ENV_MATCH_TIMEOUT); ok && v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil || timeout < 0 {
			return nil, fmt.Errorf("%s: expected a non-negative duration, got %q", ENV_MATCH_TIMEOUT, v)
		}
		opts = append(opts, WithMatchTimeout(timeout))
	}
	return opts, nil
}
