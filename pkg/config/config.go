package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"

	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Dataset  DatasetConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Pricing  PricingConfig
	JWT      JWTConfig
	Log      LogConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type DatasetConfig struct {
	Backend     string
	Dir         string
	Format      string
	SQLitePath  string
	AutoMigrate bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

type PricingConfig struct {
	DisplayPrecision int32
}

type JWTConfig struct {
	SecretKey string
}

type LogConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	precision, err := getEnvInt("PRICE_DISPLAY_PRECISION", 2)
	if err != nil {
		return nil, err
	}

	timeout, err := getEnvDuration("REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cacheTTL, err := getEnvDuration("DATASET_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Ideal Price API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "5000"),
			RequestTimeout: timeout,
			AllowOrigins:   splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		},
		Dataset: DatasetConfig{
			Backend:     strings.ToLower(getEnv("DATASET_BACKEND", BackendFile)),
			Dir:         getEnv("DATASET_DIR", "demo_dataset"),
			Format:      strings.ToLower(getEnv("DATASET_FORMAT", FormatCSV)),
			SQLitePath:  getEnv("SQLITE_PATH", "demo_dataset/datasets.sqlite"),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "ideal_price"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:       getEnvBool("REDIS_ENABLED", false),
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			CacheTTL:      cacheTTL,
		},
		Pricing: PricingConfig{
			DisplayPrecision: int32(precision),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	switch c.Dataset.Backend {
	case BackendFile:
		if c.Dataset.Format != FormatCSV && c.Dataset.Format != FormatXLSX {
			return fmt.Errorf("dataset format must be one of: %s, %s", FormatCSV, FormatXLSX)
		}
		if c.Dataset.Dir == "" {
			return errors.New("missing dataset directory")
		}
	case BackendPostgres:
		if c.Database.Password == "" {
			return errors.New("missing database password")
		}
	case BackendSQLite:
		if c.Dataset.SQLitePath == "" {
			return errors.New("missing sqlite path")
		}
	default:
		return fmt.Errorf("dataset backend must be one of: %s, %s, %s", BackendFile, BackendPostgres, BackendSQLite)
	}

	if c.Pricing.DisplayPrecision < 0 {
		return errors.New("price display precision cannot be negative")
	}

	if c.Server.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}

	if c.Redis.Enabled && c.Redis.CacheTTL <= 0 {
		return errors.New("dataset cache ttl must be positive when redis is enabled")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}

	return b
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return d, nil
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
