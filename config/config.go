package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort string
	Host    string
	AppEnv  string

	// Database Settings
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBReset    bool

	// JWT Settings
	JWTSecret     string
	JWTExpiration time.Duration

	// CORS Settings
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	config := &Config{
		AppPort: getEnv("PORT", "3000"),
		Host:    getEnv("HOST", "0.0.0.0"),
		AppEnv:  getEnv("APP_ENV", "development"),

		DBHost:     getEnv("POSTGRES_HOST", "localhost"),
		DBPort:     getEnv("POSTGRES_PORT", "5432"),
		DBUser:     os.Getenv("POSTGRES_USER"),
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
		DBName:     os.Getenv("POSTGRES_DB"),
		DBReset:    os.Getenv("DB_RESET") == "true",

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: parseDuration(os.Getenv("JWT_EXPIRES_IN"), 72*time.Hour),

		CORSAllowOrigins: []string{"*"},
		CORSAllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}

	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration %q, using default %s", value, fallback)
		return fallback
	}
	return d
}
