package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // minutes
}

type Config struct {
	Port        string
	MetricsPort string
	LogLevel    string

	DB DBConfig

	RedisAddr     string
	OutboxKey     string
	NotifyWorkers int

	CatalogAddr string

	JWTSecret    string
	AuthDisabled bool

	ExpirySweepInterval time.Duration
	RetentionDays       int
}

// Load reads the process environment. Callers load .env beforehand.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "50051"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Host:            getEnv("PGHOST", "localhost"),
			User:            getEnv("PGUSER", "postgres"),
			Password:        getEnv("PGPASSWORD", ""),
			Name:            getEnv("PGDATABASE", "reservations"),
			SSLMode:         getEnv("PGSSLMODE", "disable"),
			TimeZone:        getEnv("PGTIMEZONE", "UTC"),
			Port:            getEnvInt("PGPORT", 5432),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		},
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		OutboxKey:           getEnv("OUTBOX_KEY", "reservation:outbox"),
		NotifyWorkers:       getEnvInt("NOTIFY_WORKERS", 2),
		CatalogAddr:         getEnv("CATALOG_ADDR", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		AuthDisabled:        getEnvBool("AUTH_DISABLED", false),
		ExpirySweepInterval: getEnvDuration("EXPIRY_SWEEP_INTERVAL", time.Hour),
		RetentionDays:       getEnvInt("RESERVATION_RETENTION_DAYS", 90),
	}

	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
	}
	if !cfg.AuthDisabled && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("invalid auth config: JWT_SECRET is required unless AUTH_DISABLED=true")
	}
	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = 1
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = 90
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
