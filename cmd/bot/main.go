package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/marbeld/tunequiz/internal/config"
	"github.com/marbeld/tunequiz/internal/handlers/discord"
	gamesessionRepo "github.com/marbeld/tunequiz/internal/repositories/gamesession"
	mediaRepo "github.com/marbeld/tunequiz/internal/repositories/media"
	playerRepo "github.com/marbeld/tunequiz/internal/repositories/player"
	gameService "github.com/marbeld/tunequiz/internal/services/game"
	playbackService "github.com/marbeld/tunequiz/internal/services/playback"
	"github.com/marbeld/tunequiz/internal/transcode"
)

func main() {
	// A missing .env file is fine; the environment may be set directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	media, err := mediaRepo.NewRedis(&mediaRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create media repository: %v", err)
	}

	gamesessions, err := gamesessionRepo.NewRedis(&gamesessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game session repository: %v", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	// Initialize the ffmpeg transcoder
	transcoder, err := transcode.New(&transcode.Config{
		FFmpegPath:  cfg.FFmpegPath,
		FFprobePath: cfg.FFprobePath,
		CacheDir:    cfg.CacheDir,
	})
	if err != nil {
		log.Fatalf("Failed to create transcoder: %v", err)
	}

	// Initialize the Discord session and its voice connector
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	session.Identify.Intents |= discordgo.IntentsGuildMessages | discordgo.IntentsGuildVoiceStates | discordgo.IntentMessageContent

	connector := discord.NewVoiceConnector(session)

	// Initialize the playback service
	playbackSvc, err := playbackService.New(&playbackService.Config{
		Connector:  connector,
		Transcoder: transcoder,
	})
	if err != nil {
		log.Fatalf("Failed to create playback service: %v", err)
	}
	connector.SetPlaybackEndHandler(playbackSvc.HandlePlaybackEnd)

	// Initialize the game service
	gameSvc, err := gameService.New(&gameService.Config{
		MediaRepo:       media,
		GameSessionRepo: gamesessions,
		PlayerRepo:      players,
		Playback:        playbackSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		GameService:   gameSvc,
		Playback:      playbackSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	slog.Info("bot has been shut down")
}
