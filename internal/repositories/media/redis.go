package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/marbeld/tunequiz/internal/models"
)

const (
	// Key prefixes for Redis
	mediaKeyPrefix  = "media:"
	mediaIDsKey     = "media:ids"
	artistKeyPrefix = "media:artist:"
	tagKeyPrefix    = "media:tag:"
)

// ErrMediaNotFound is returned when a media item is not found
var ErrMediaNotFound = errors.New("media not found")

// Config holds configuration for the Redis media repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed media repository
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

// SaveMedia persists a media item and updates the lookup indexes
func (r *redisRepository) SaveMedia(ctx context.Context, input *SaveMediaInput) error {
	if input == nil || input.Media == nil {
		return errors.New("input and media cannot be nil")
	}

	mediaJSON, err := json.Marshal(input.Media)
	if err != nil {
		return fmt.Errorf("failed to marshal media: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, mediaKeyPrefix+input.Media.ID, mediaJSON, 0)
	pipe.SAdd(ctx, mediaIDsKey, input.Media.ID)

	if input.Media.Artist != "" {
		pipe.SAdd(ctx, artistKey(input.Media.Artist), input.Media.ID)
	}
	for _, tag := range input.Media.Tags {
		pipe.SAdd(ctx, tagKey(tag), input.Media.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save media: %w", err)
	}

	return nil
}

// GetMedia retrieves a media item by ID
func (r *redisRepository) GetMedia(ctx context.Context, input *GetMediaInput) (*GetMediaOutput, error) {
	if input == nil || input.MediaID == "" {
		return nil, errors.New("input and media ID cannot be empty")
	}

	m, err := r.getMediaByID(ctx, input.MediaID)
	if err != nil {
		return nil, err
	}

	return &GetMediaOutput{Media: m}, nil
}

// GetRandomMedia returns up to Limit random media items matching the filters
func (r *redisRepository) GetRandomMedia(ctx context.Context, input *GetRandomMediaInput) (*GetRandomMediaOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Limit <= 0 {
		return &GetRandomMediaOutput{}, nil
	}

	ids, err := r.candidateIDs(ctx, input.Filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list media candidates: %w", err)
	}

	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	if len(ids) > input.Limit {
		ids = ids[:input.Limit]
	}

	items := make([]*models.Media, 0, len(ids))
	for _, id := range ids {
		m, err := r.getMediaByID(ctx, id)
		if err != nil {
			// A dangling index entry should not fail the whole pool.
			continue
		}
		items = append(items, m)
	}

	return &GetRandomMediaOutput{Media: items}, nil
}

// GetMediaAnswers returns the stored answer strings for a media item
func (r *redisRepository) GetMediaAnswers(ctx context.Context, input *GetMediaAnswersInput) (*GetMediaAnswersOutput, error) {
	if input == nil || input.MediaID == "" {
		return nil, errors.New("input and media ID cannot be empty")
	}

	m, err := r.getMediaByID(ctx, input.MediaID)
	if err != nil {
		return nil, err
	}

	return &GetMediaAnswersOutput{Answers: m.Answers}, nil
}

// AddAnswer appends an alternative answer to a media item
func (r *redisRepository) AddAnswer(ctx context.Context, input *AddAnswerInput) error {
	if input == nil || input.MediaID == "" {
		return errors.New("input and media ID cannot be empty")
	}

	if strings.TrimSpace(input.Answer) == "" {
		return errors.New("answer cannot be empty")
	}

	m, err := r.getMediaByID(ctx, input.MediaID)
	if err != nil {
		return err
	}

	answer := strings.TrimSpace(input.Answer)
	for _, existing := range m.Answers {
		if strings.EqualFold(existing, answer) {
			return nil
		}
	}
	m.Answers = append(m.Answers, answer)

	return r.SaveMedia(ctx, &SaveMediaInput{Media: m})
}

// candidateIDs resolves the filter combination to a set of media IDs
func (r *redisRepository) candidateIDs(ctx context.Context, f Filters) ([]string, error) {
	switch {
	case f.Artist != "" && f.Tag != "":
		return r.client.SInter(ctx, artistKey(f.Artist), tagKey(f.Tag)).Result()
	case f.Artist != "":
		return r.client.SMembers(ctx, artistKey(f.Artist)).Result()
	case f.Tag != "":
		return r.client.SMembers(ctx, tagKey(f.Tag)).Result()
	default:
		return r.client.SMembers(ctx, mediaIDsKey).Result()
	}
}

func (r *redisRepository) getMediaByID(ctx context.Context, id string) (*models.Media, error) {
	mediaJSON, err := r.client.Get(ctx, mediaKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media: %w", err)
	}

	var m models.Media
	if err := json.Unmarshal([]byte(mediaJSON), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal media: %w", err)
	}

	return &m, nil
}

func artistKey(artist string) string {
	return artistKeyPrefix + strings.ToLower(strings.TrimSpace(artist))
}

func tagKey(tag string) string {
	return tagKeyPrefix + strings.ToLower(strings.TrimSpace(tag))
}
