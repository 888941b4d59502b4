package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"boba-storefront/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	Port string
	Env  string

	DB    database.Config
	JWT   JWT
	Redis Redis
	Kafka Kafka
	Rate  RateLimit
}

type JWT struct {
	AccessSecret string
	Issuer       string
	Audience     string
	AccessTTL    time.Duration
}

type Redis struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type Kafka struct {
	Enabled bool
	Brokers []string
	Topic   string
}

type RateLimit struct {
	Backend string // "memory" or "redis"
	Window  time.Duration
	Max     int
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port: getEnvDefault("APP_PORT", ":8080"),
		Env:  getEnvDefault("ENV", "development"),
		DB: database.Config{
			Host:     getEnv("DB_HOST", log),
			Port:     getEnv("DB_PORT", log),
			User:     getEnv("DB_USER", log),
			Password: getEnv("DB_PASSWORD", log),
			Name:     getEnv("DB_NAME", log),
			SSLMode:  getEnvDefault("DB_SSLMODE", "disable"),
		},
		JWT: JWT{
			AccessSecret: getEnv("JWT_ACCESS_SECRET", log),
			Issuer:       getEnvDefault("JWT_ISSUER", "boba-storefront"),
			Audience:     getEnvDefault("JWT_AUDIENCE", "boba-storefront"),
			AccessTTL:    durationDefault(os.Getenv("JWT_ACCESS_TTL"), 24*time.Hour),
		},
		Redis: Redis{
			Enabled:  os.Getenv("REDIS_ENABLED") == "true",
			Addr:     getEnvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       atoiDefault(os.Getenv("REDIS_DB"), 0),
		},
		Kafka: Kafka{
			Enabled: os.Getenv("KAFKA_ENABLED") == "true",
			Brokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnvDefault("KAFKA_TOPIC_ORDERS", "storefront.orders"),
		},
		Rate: RateLimit{
			Backend: getEnvDefault("RATE_LIMIT_BACKEND", "memory"),
			Window:  durationDefault(os.Getenv("RATE_LIMIT_WINDOW"), 60*time.Second),
			Max:     atoiDefault(os.Getenv("RATE_LIMIT_MAX"), 100),
		},
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return def
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func durationDefault(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
