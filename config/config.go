// Package config reads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration
	Env           string
}

const (
	defaultAddr       = ":8080"
	defaultSessionTTL = 24 * time.Hour
)

// Load reads configuration with defaults. DATABASE_URL is required by the
// server but validated at the call site so the migrate and createadmin
// commands can share this loader.
func Load() *Config {
	return &Config{
		Addr:          readEnv("ADDR", defaultAddr),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       readInt("REDIS_DB", 0),
		SessionTTL:    readDuration("SESSION_TTL", defaultSessionTTL),
		Env:           readEnv("ENV", "production"),
	}
}

func readEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func readInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func readDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
