package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL         string
	AIAPIKey            string
	EmbedModel          string
	EmbedDim            int
	EmbedConcurrency    int
	SimilarityThreshold float64
	TopK                int
	StagingDir          string
	Port                string
}

// LoadConfig loads the environment variables and returns the config.
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		AIAPIKey:            getEnv("GEMINI_API_KEY", ""),
		EmbedModel:          getEnv("EMBED_MODEL", "text-embedding-004"),
		EmbedDim:            getEnvInt("EMBED_DIM", 768),
		EmbedConcurrency:    getEnvInt("EMBED_CONCURRENCY", 4),
		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", 0.7),
		TopK:                getEnvInt("TOP_K", 5),
		StagingDir:          getEnv("STAGING_DIR", os.TempDir()),
		Port:                getEnv("PORT", "8080"),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	return cfg
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("WARN: %s=%q not a float, using default %g", key, v, def)
		return def
	}
	return f
}
