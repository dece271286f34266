package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string

	// TMDb API
	TMDbToken   string
	TMDbBaseURL string

	// Database
	DBPath string

	// Sessions
	JWTSecret string
}

// Load reads configuration from environment variables, with an optional
// .env file for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not loaded: %v", err)
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		TMDbToken:   getEnv("TMDB_API_TOKEN", ""),
		TMDbBaseURL: getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		DBPath:      getEnv("DB_PATH", "./flickfinder.db"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
