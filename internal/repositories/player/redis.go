package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marbeld/tunequiz/internal/models"
)

const (
	// Key prefix for Redis
	playerKeyPrefix = "player:"

	fieldName           = "name"
	fieldGamesPlayed    = "games_played"
	fieldCorrectAnswers = "correct_answers"
	fieldUpdatedAt      = "updated_at"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// UpdateUser increments a player's aggregate counters
func (r *redisRepository) UpdateUser(ctx context.Context, input *UpdateUserInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	key := playerKeyPrefix + input.PlayerID

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, key, fieldName, input.PlayerName)
	pipe.HIncrBy(ctx, key, fieldGamesPlayed, 1)
	if input.WasCorrect {
		pipe.HIncrBy(ctx, key, fieldCorrectAnswers, 1)
	}
	pipe.HSet(ctx, key, fieldUpdatedAt, time.Now().UTC().Format(time.RFC3339))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player's aggregate stats
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playerKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	p := &models.Player{
		ID:             input.PlayerID,
		Name:           fields[fieldName],
		GamesPlayed:    atoi(fields[fieldGamesPlayed]),
		CorrectAnswers: atoi(fields[fieldCorrectAnswers]),
	}
	if ts, err := time.Parse(time.RFC3339, fields[fieldUpdatedAt]); err == nil {
		p.UpdatedAt = ts
	}

	return &GetPlayerOutput{Player: p}, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
