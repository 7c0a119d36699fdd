package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime settings for the Plantify API.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	JWTSecret     string
	TokenExpiry   time.Duration
	CloudinaryURL string
	UploadFolder  string
}

// LoadConfig reads settings from the environment (.env is loaded when present).
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, relying on environment variables")
	}

	expiry := 24 * time.Hour
	if raw := os.Getenv("TOKEN_EXPIRY"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			expiry = parsed
		} else {
			logrus.WithError(err).Warn("Invalid TOKEN_EXPIRY, falling back to 24h")
		}
	}

	return &Config{
		Port:          getEnv("PORT", "5000"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "plantify"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenExpiry:   expiry,
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		UploadFolder:  getEnv("UPLOAD_FOLDER", "plantify"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
