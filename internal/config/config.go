package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	AppPort        string
	AppEnv         string
	JWTSecret      string
	InitialBalance decimal.Decimal
	CORSOrigins    []string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      os.Getenv("DB_PORT"),
		AppPort:     os.Getenv("APP_PORT"),
		AppEnv:      os.Getenv("APP_ENV"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	cfg.InitialBalance = parseInitialBalance(os.Getenv("INITIAL_BALANCE"))

	return cfg
}

// parseInitialBalance falls back to 20.00, the credit every new account starts with.
func parseInitialBalance(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.NewFromInt(20)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		log.Fatalf("invalid INITIAL_BALANCE: %q", raw)
	}
	return d
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
