package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	JWT       JWTConfig
	Detection DetectionConfig
	Data      DataConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

// JWTConfig holds the token signing secret and the shared operator key
// exchanged for admin tokens. An empty OperatorKey disables token issuing.
type JWTConfig struct {
	SecretKey   string
	OperatorKey string
}

// DetectionConfig carries the env-overridable subset of the detection
// tree; zero values mean "keep the built-in default".
type DetectionConfig struct {
	RequireVendorMatch      bool
	FuzzyThreshold          float64
	FuzzySecondaryThreshold float64
	HighThreshold           float64
	LikelyThreshold         float64
	MaxDaysAfter            int
}

// DataConfig points at optional seed files of plain JSON award/contract
// arrays. Empty paths start the service with empty repositories.
type DataConfig struct {
	AwardsFile    string
	ContractsFile string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Transition Radar API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		JWT: JWTConfig{
			SecretKey:   getEnv("JWT_SECRET", ""),
			OperatorKey: getEnv("OPERATOR_KEY", ""),
		},
		Detection: DetectionConfig{
			RequireVendorMatch:      getEnvBool("DETECT_REQUIRE_VENDOR_MATCH", true),
			FuzzyThreshold:          getEnvFloat("DETECT_FUZZY_THRESHOLD", 0),
			FuzzySecondaryThreshold: getEnvFloat("DETECT_FUZZY_SECONDARY_THRESHOLD", 0),
			HighThreshold:           getEnvFloat("DETECT_HIGH_THRESHOLD", 0),
			LikelyThreshold:         getEnvFloat("DETECT_LIKELY_THRESHOLD", 0),
			MaxDaysAfter:            getEnvInt("DETECT_MAX_DAYS_AFTER", 0),
		},
		Data: DataConfig{
			AwardsFile:    getEnv("AWARDS_FILE", ""),
			ContractsFile: getEnv("CONTRACTS_FILE", ""),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
