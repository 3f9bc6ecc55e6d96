package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
// Secrets live here and get injected where they are used; nothing
// reads os.Getenv() outside this package.
type Config struct {
	Port        string
	DatabaseURL string
	APIKey      string
	JWTSecret   string
	TokenTTL    time.Duration
	UploadDir   string
}

func Load() *Config {
	// .env is optional; in deployment the variables come from the host.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=password dbname=jobboard port=5432 sslmode=disable"),
		APIKey:      os.Getenv("API_KEY"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    getEnvDuration("TOKEN_TTL", 24*time.Hour),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
	}

	if cfg.APIKey == "" {
		log.Fatal("API_KEY is empty. Set it in the environment or .env file")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty. Set it in the environment or .env file")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, falling back to %s", key, v, fallback)
		return fallback
	}
	return d
}
