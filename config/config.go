package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"

	FixturesStatic   = "static"
	FixturesPostgres = "postgres"
)

type Config struct {
	Port           string
	Env            string // development | production
	LogLevel       string
	JWTSecret      string
	SessionTTL     time.Duration
	SessionStore   string // memory | redis
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	FixturesSource string // static | postgres
	DatabaseURL    string // only read when FixturesSource is postgres
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:           get("PORT", "8080"),
		Env:            get("APP_ENV", "development"),
		LogLevel:       get("LOG_LEVEL", "info"),
		JWTSecret:      must("JWT_SECRET"),
		SessionTTL:     duration("SESSION_TTL", 24*time.Hour),
		SessionStore:   oneOf("SESSION_STORE", StoreMemory, StoreRedis),
		RedisAddr:      get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  get("REDIS_PASSWORD", ""),
		RedisDB:        integer("REDIS_DB", 0),
		FixturesSource: oneOf("FIXTURES_SOURCE", FixturesStatic, FixturesPostgres),
	}
	if cfg.FixturesSource == FixturesPostgres {
		cfg.DatabaseURL = must("DATABASE_URL")
	}
	return cfg
}

func (c Config) IsProduction() bool { return c.Env == "production" }

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}

func duration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Fatalf("invalid duration for %s: %q", k, v)
	}
	return d
}

func integer(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid integer for %s: %q", k, v)
	}
	return n
}

// oneOf returns the env value lowercased, defaulting to the first allowed value.
func oneOf(k string, allowed ...string) string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(k)))
	if v == "" {
		return allowed[0]
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	log.Fatalf("invalid value for %s: %q (want one of %s)", k, v, strings.Join(allowed, ", "))
	return ""
}
