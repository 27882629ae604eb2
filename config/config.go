package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Log     LogConfig
}

type ServerConfig struct {
	Addr    string
	GinMode string
}

// CatalogConfig controls how the event store is built at startup.
type CatalogConfig struct {
	SeedFile    string   // empty means the embedded mock catalog
	IDStrategy  string   // uuid | sequence
	AllLabel    string   // category label meaning "no filter"
	Categories  []string // fixed filter chips shown to clients
	SequenceMin uint64   // first id handed out by the sequence strategy
}

type RedisConfig struct {
	Enabled       bool
	Host          string
	Port          string
	Password      string
	DB            int
	SubmissionTTL time.Duration
}

type LogConfig struct {
	Level string
}

func LoadConfig() (*Config, error) {
	redisConfig, err := GetRedisConfig()
	if err != nil {
		return nil, err
	}
	catalogConfig, err := GetCatalogConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Addr:    getEnv("SERVER_ADDR", ":8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Catalog: catalogConfig,
		Redis:   redisConfig,
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func LoadTestConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:    ":0",
			GinMode: "test",
		},
		Catalog: CatalogConfig{
			IDStrategy:  "sequence",
			AllLabel:    DefaultAllLabel,
			Categories:  DefaultCategories(),
			SequenceMin: 1,
		},
		Redis: RedisConfig{
			Enabled:       true,
			Host:          "localhost",
			Port:          "6380", // test redis runs on 6380
			Password:      "",
			DB:            1,
			SubmissionTTL: time.Minute,
		},
		Log: LogConfig{Level: "debug"},
	}
}

const DefaultAllLabel = "Todos"

// DefaultCategories is the fixed chip list of the mobile client.
func DefaultCategories() []string {
	return []string{"Música", "Cultura", "Deporte", "Tecnología"}
}

func GetCatalogConfig() (CatalogConfig, error) {
	seqMin, err := strconv.ParseUint(getEnv("ID_SEQUENCE_START", "1"), 10, 64)
	if err != nil {
		return CatalogConfig{}, fmt.Errorf("parse ID_SEQUENCE_START: %w", err)
	}

	categories := DefaultCategories()
	if raw := os.Getenv("EVENT_CATEGORIES"); raw != "" {
		categories = splitList(raw)
	}

	return CatalogConfig{
		SeedFile:    getEnv("SEED_FILE", ""),
		IDStrategy:  getEnv("ID_STRATEGY", "uuid"),
		AllLabel:    getEnv("EVENT_ALL_LABEL", DefaultAllLabel),
		Categories:  categories,
		SequenceMin: seqMin,
	}, nil
}

func GetRedisConfig() (RedisConfig, error) {
	enabled, err := strconv.ParseBool(getEnv("REDIS_ENABLED", "false"))
	if err != nil {
		return RedisConfig{}, fmt.Errorf("parse REDIS_ENABLED: %w", err)
	}
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return RedisConfig{}, fmt.Errorf("parse REDIS_DB: %w", err)
	}
	ttl, err := time.ParseDuration(getEnv("SUBMISSION_TTL", "10m"))
	if err != nil {
		return RedisConfig{}, fmt.Errorf("parse SUBMISSION_TTL: %w", err)
	}

	return RedisConfig{
		Enabled:       enabled,
		Host:          getEnv("REDIS_HOST", "localhost"),
		Port:          getEnv("REDIS_PORT", "6379"),
		Password:      getEnv("REDIS_PASSWORD", ""),
		DB:            db,
		SubmissionTTL: ttl,
	}, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
