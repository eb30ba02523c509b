// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server and the CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// GoogleAPIKey authenticates against the Gemini API.
	// Required unless LLMMock is set.
	GoogleAPIKey string

	// GenAIModel is the Gemini model used for plans and chat.
	GenAIModel string

	// LLMMock swaps the Gemini client for a canned offline generator.
	LLMMock bool

	// WeatherAPIKey authenticates against OpenWeatherMap. Required.
	WeatherAPIKey string

	// WeatherBaseURL is the OpenWeatherMap API root, overridable for tests.
	WeatherBaseURL string

	// SessionIdleTTL ends chat sessions that have not been used for this long.
	// Zero keeps sessions until they are ended explicitly.
	SessionIdleTTL time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory, if present, is loaded first; values
// already set in the environment win over it.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		GenAIModel:     getEnv("GENAI_MODEL", "gemini-2.5-flash"),
		WeatherBaseURL: strings.TrimRight(getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org"), "/"),
	}

	var err error
	if cfg.LLMMock, err = strconv.ParseBool(getEnv("LLM_MOCK", "false")); err != nil {
		return Config{}, fmt.Errorf("LLM_MOCK: %w", err)
	}
	if cfg.SessionIdleTTL, err = time.ParseDuration(getEnv("SESSION_IDLE_TTL", "0s")); err != nil {
		return Config{}, fmt.Errorf("SESSION_IDLE_TTL: %w", err)
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	if cfg.GoogleAPIKey == "" && !cfg.LLMMock {
		missing = append(missing, "GOOGLE_API_KEY")
	}

	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	if cfg.WeatherAPIKey == "" {
		missing = append(missing, "WEATHER_API_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadDatabaseURL is Load for commands that only touch the store, such as
// migrate and trips list: only DATABASE_URL is required.
func LoadDatabaseURL() (string, error) {
	if err := loadDotEnv(); err != nil {
		return "", err
	}
	u := os.Getenv("DATABASE_URL")
	if u == "" {
		return "", errors.New("required environment variables not set: DATABASE_URL")
	}
	return u, nil
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
