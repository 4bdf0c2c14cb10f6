package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/mixology/internal/alcohol"
	"github.com/KirkDiggler/mixology/internal/clients/cocktaildb"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Config holds all configuration for the application
type Config struct {
	// Redis configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Discord configuration
	DiscordToken  string
	ApplicationID string
	GuildID       string

	// HTTP configuration
	HTTPPort    string
	CORSOrigins []string

	// Recipe source and alcohol table
	CocktailDBURL    string
	AlcoholTablePath string
	RequestTimeout   time.Duration

	// Interaction timing
	SuggestDebounce time.Duration
	WarningDelay    time.Duration

	// LockTTL is how long the state writer lock outlives a crashed process
	LockTTL time.Duration
}

// Load reads configuration from the environment after applying the given env files,
// or .env when none are given. Variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
		if len(files) > 0 {
			log.Printf("Env file not found, using environment only: %v", err)
		}
	}

	cfg := &Config{
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		ApplicationID:    getEnv("APPLICATION_ID", ""),
		GuildID:          getEnv("GUILD_ID", ""),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		CocktailDBURL:    getEnv("COCKTAILDB_URL", cocktaildb.DefaultBaseURL),
		AlcoholTablePath: getEnv("ALCOHOL_TABLE_PATH", ""),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getEnvDuration("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SuggestDebounce, err = getEnvDuration("SUGGEST_DEBOUNCE", 300*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.WarningDelay, err = getEnvDuration("WARNING_DELAY", 500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.LockTTL, err = getEnvDuration("LOCK_TTL", 30*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewRedisClient creates a Redis client from REDIS_URL when set, otherwise from the
// address settings, and checks the connection
func NewRedisClient(ctx context.Context, cfg *Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	if cfg.RedisURL != "" {
		parsedOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsedOpts
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Successfully connected to Redis at %s", opts.Addr)
	return client, nil
}

// AlcoholTable loads the table at AlcoholTablePath, or the built-in table when unset
func AlcoholTable(cfg *Config) (*alcohol.Table, error) {
	if cfg.AlcoholTablePath == "" {
		return alcohol.DefaultTable(), nil
	}

	table, err := alcohol.LoadTable(cfg.AlcoholTablePath)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %d ingredients from %s", table.Len(), cfg.AlcoholTablePath)
	return table, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
