// Package config loads application configuration from environment
// variables.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	ListenAddr     string
	DBPath         string
	TripID         string
	SyncPollMS     int
	SuggestBackend string
	GeminiAPIKey   string
	GeminiModel    string
	ClaudeAPIKey   string
	ClaudeModel    string
	CORSOrigins    string
	LogLevel       string
	LogFile        string
}

func Load() *Config {
	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		DBPath:         getEnv("DB_PATH", "/data/tabinote.db"),
		TripID:         getEnv("TRIP_ID", "helsinki-trip-2026"),
		SyncPollMS:     getEnvInt("SYNC_POLL_MS", 2000),
		SuggestBackend: getEnv("SUGGEST_BACKEND", "gemini"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ClaudeAPIKey:   getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:    getEnv("CLAUDE_MODEL", "claude-3-5-haiku-latest"),
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:5173"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
