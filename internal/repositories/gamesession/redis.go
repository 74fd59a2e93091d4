package gamesession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marbeld/tunequiz/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "gamesession:"
)

// ErrSessionNotFound is returned when a game session record is not found
var ErrSessionNotFound = errors.New("game session not found")

// Config holds configuration for the Redis game session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game session repository
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

// CreateGameSession persists a new game session record
func (r *redisRepository) CreateGameSession(ctx context.Context, input *CreateGameSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	return r.save(ctx, input.Session)
}

// UpdateGameSession updates the round pointer and ended marker
func (r *redisRepository) UpdateGameSession(ctx context.Context, input *UpdateGameSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.get(ctx, input.SessionID)
	if err != nil {
		return err
	}

	session.CurrentRound = input.Round
	if input.Ended {
		session.Ended = true
	}
	session.UpdatedAt = time.Now()

	return r.save(ctx, session)
}

// GetGameSession retrieves a game session record by ID
func (r *redisRepository) GetGameSession(ctx context.Context, input *GetGameSessionInput) (*GetGameSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := r.get(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetGameSessionOutput{Session: session}, nil
}

func (r *redisRepository) save(ctx context.Context, session *models.GameSession) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal game session: %w", err)
	}

	key := sessionKeyPrefix + session.ID
	if err := r.client.Set(ctx, key, sessionJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game session: %w", err)
	}

	return nil
}

func (r *redisRepository) get(ctx context.Context, id string) (*models.GameSession, error) {
	sessionJSON, err := r.client.Get(ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game session: %w", err)
	}

	var session models.GameSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game session: %w", err)
	}

	return &session, nil
}
