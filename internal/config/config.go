package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting, loaded from environment variables
type Config struct {
	// DiscordToken is the bot token
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`

	// ApplicationID is the Discord application ID for command registration
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID scopes command registration to one guild during development
	GuildID string `env:"GUILD_ID"`

	// RedisAddr is the Redis host:port
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the Redis auth password, empty for none
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the Redis database number
	RedisDB int `env:"REDIS_DB" envDefault:"0"`

	// MediaDir is where source audio files live
	MediaDir string `env:"MEDIA_DIR" envDefault:"./media"`

	// CacheDir is where normalized artifacts and clips are written
	CacheDir string `env:"CACHE_DIR" envDefault:"./cache"`

	// FFmpegPath is the ffmpeg binary
	FFmpegPath string `env:"FFMPEG_PATH" envDefault:"ffmpeg"`

	// FFprobePath is the ffprobe binary
	FFprobePath string `env:"FFPROBE_PATH" envDefault:"ffprobe"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
