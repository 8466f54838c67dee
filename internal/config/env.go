package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr       string
	GinMode       string
	JWTSecret     string
	OverdueCron   string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBName        string
	MetricsEnable bool
}

// LoadEnv reads configuration from the environment, with .env as a
// development convenience. Missing keys fall back to local defaults.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:       getEnv("APP_ADDR", ":8080"),
		GinMode:       getEnv("GIN_MODE", ""),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
		OverdueCron:   getEnv("OVERDUE_SWEEP_CRON", "0 1 * * *"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBHost:        getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName:        getEnv("DB_NAME", "car_rental"),
		MetricsEnable: strings.EqualFold(getEnv("METRICS_ENABLED", "true"), "true"),
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
