// Package config reads runtime settings from the environment.
//
// Values come from the process environment, optionally seeded from a .env
// file by the caller (godotenv). Malformed numbers, durations and booleans
// fall back to their defaults with a warning.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// MemoryDB selects the in-memory store instead of a SQLite file.
const MemoryDB = "memory"

// Config holds application configuration.
type Config struct {
	Port           string
	LogLevel       string
	LogPretty      bool
	DBPath         string
	WordsFile      string
	ClientOrigin   string
	RateLimitRPS   int
	RateLimitBurst int
	RequestTimeout time.Duration
	ShareURL       string
	StrictGuesses  bool
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      getEnvBool("LOG_PRETTY", false),
		DBPath:         getEnv("DB_PATH", "./data/wordly.db"),
		WordsFile:      os.Getenv("WORDS_FILE"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		ShareURL:       os.Getenv("SHARE_URL"),
		StrictGuesses:  getEnvBool("STRICT_GUESSES", false),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("invalid int, using default")
		return def
	}
	return n
}

func getEnvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Bool("default", def).Msg("invalid bool, using default")
		return def
	}
	return b
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", k).Str("value", v).Dur("default", def).Msg("invalid duration, using default")
		return def
	}
	return d
}
