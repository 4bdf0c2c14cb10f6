package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Redis keys
	patronsKey = "mixology:patrons"
	themeKey   = "mixology:theme"
	lockKey    = "mixology:lock"
)

// ErrLocked is returned when another process holds the writer lock
var ErrLocked = errors.New("state is locked by another process")

var acquireLockScript = redis.NewScript(`
local owner = redis.call("GET", KEYS[1])
if owner == false or owner == ARGV[1] then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
	return 1
end
return 0
`)

var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Config holds configuration for the Redis state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed state repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SavePatrons stores the whole patron list as one JSON blob
func (r *redisRepository) SavePatrons(ctx context.Context, input *SavePatronsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	patrons := input.Patrons
	if patrons == nil {
		patrons = []*models.Patron{}
	}

	patronsJSON, err := json.Marshal(patrons)
	if err != nil {
		return fmt.Errorf("failed to marshal patrons: %w", err)
	}

	if err := r.client.Set(ctx, patronsKey, patronsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save patrons: %w", err)
	}

	return nil
}

// LoadPatrons restores the patron list verbatim
func (r *redisRepository) LoadPatrons(ctx context.Context) (*LoadPatronsOutput, error) {
	patronsJSON, err := r.client.Get(ctx, patronsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &LoadPatronsOutput{
				Patrons: []*models.Patron{},
			}, nil
		}
		return nil, fmt.Errorf("failed to get patrons: %w", err)
	}

	var patrons []*models.Patron
	if err := json.Unmarshal([]byte(patronsJSON), &patrons); err != nil {
		return nil, fmt.Errorf("failed to unmarshal patrons: %w", err)
	}
	if patrons == nil {
		patrons = []*models.Patron{}
	}

	return &LoadPatronsOutput{
		Patrons: patrons,
	}, nil
}

// SaveTheme stores the theme flag
func (r *redisRepository) SaveTheme(ctx context.Context, input *SaveThemeInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	theme := models.ParseTheme(string(input.Theme))
	if err := r.client.Set(ctx, themeKey, string(theme), 0).Err(); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	return nil
}

// LoadTheme reads the theme flag
func (r *redisRepository) LoadTheme(ctx context.Context) (*LoadThemeOutput, error) {
	value, err := r.client.Get(ctx, themeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &LoadThemeOutput{
				Theme: models.ThemeLight,
			}, nil
		}
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}

	return &LoadThemeOutput{
		Theme: models.ParseTheme(value),
	}, nil
}

// AcquireLock sets the lock key to the owner with a TTL, or extends it when the owner already holds it
func (r *redisRepository) AcquireLock(ctx context.Context, input *AcquireLockInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if input.Owner == "" {
		return errors.New("lock owner cannot be empty")
	}
	if input.TTL < time.Millisecond {
		return errors.New("lock ttl must be at least a millisecond")
	}

	acquired, err := acquireLockScript.Run(ctx, r.client, []string{lockKey},
		input.Owner, input.TTL.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if acquired == 0 {
		return ErrLocked
	}

	return nil
}

// ReleaseLock deletes the lock key only when it still belongs to the owner
func (r *redisRepository) ReleaseLock(ctx context.Context, input *ReleaseLockInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := releaseLockScript.Run(ctx, r.client, []string{lockKey}, input.Owner).Err(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	return nil
}
