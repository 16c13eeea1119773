package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string
	// Fallback coordinate used when the model omits a user location in a
	// tool call. A stand-in for a client-supplied location.
	DefaultLat float64
	DefaultLon float64
	StaticDir  string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "google/gemini-2.5-flash"),
		OpenRouterAppTitle: getEnv("APP_TITLE", "Smart Health Connect"),
		OpenRouterReferer:  os.Getenv("HTTP_REFERER"),
		DefaultLat:         getEnvFloat("DEFAULT_LAT", 40.7128),
		DefaultLon:         getEnvFloat("DEFAULT_LON", -74.0060),
		StaticDir:          getEnv("STATIC_DIR", "web"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
