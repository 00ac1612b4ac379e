package config

import (
	"os"
	"strconv"
	"time"
)

// APIConfig holds settings for the remote todo API.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds settings for the session cookie carrying the bearer token.
type SessionConfig struct {
	CookieName string
	Secure     bool
}

// LogConfig controls application and access logging.
type LogConfig struct {
	Level    string
	Timezone string
}

// AppConfig is everything the web server reads from the environment.
type AppConfig struct {
	Port    string
	API     APIConfig
	Session SessionConfig
	Log     LogConfig
}

// Load builds the config from the environment, falling back to local
// development defaults. main imports godotenv/autoload so a .env file is
// picked up first; variables already set in the process win.
func Load() *AppConfig {
	return &AppConfig{
		Port:    getEnv("PORT", "8080"),
		API: APIConfig{
			BaseURL: getEnv("API_URL", "http://localhost:1234"),
			Timeout: getEnvDuration("API_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			CookieName: getEnv("JWT_COOKIE", "jwt"),
			Secure:     getEnvBool("COOKIE_SECURE", false),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Timezone: getEnv("LOG_TIMEZONE", "UTC"),
		},
	}
}

// Location resolves the configured log timezone, falling back to UTC.
func (c LogConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("15s") or a plain number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs := getEnvInt(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
