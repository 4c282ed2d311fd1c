package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr             string
	LogLevel         string
	ShutdownTimeout  time.Duration
	BatchLimit       int
	GenerateMaxCount int
	Redis            RedisConfig
}

// RedisConfig tunes the optional Redis-backed stats store. An empty URL
// disables Redis and the service falls back to the in-memory store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StatsRetention bounds how long daily validation counters are kept.
var StatsRetention = 30 * 24 * time.Hour

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:             envString("SAUDIID_ADDR", ":8080"),
		LogLevel:         envString("SAUDIID_LOG_LEVEL", "info"),
		ShutdownTimeout:  envDuration("SAUDIID_SHUTDOWN_TIMEOUT", 10*time.Second),
		BatchLimit:       envInt("SAUDIID_BATCH_LIMIT", 100),
		GenerateMaxCount: envInt("SAUDIID_GENERATE_MAX_COUNT", 100),
		Redis: RedisConfig{
			URL:          envString("SAUDIID_REDIS_URL", ""),
			PoolSize:     envInt("SAUDIID_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("SAUDIID_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("SAUDIID_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("SAUDIID_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("SAUDIID_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
