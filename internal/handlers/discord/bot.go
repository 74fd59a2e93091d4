package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/marbeld/tunequiz/internal/match"
	"github.com/marbeld/tunequiz/internal/models"
	"github.com/marbeld/tunequiz/internal/services/game"
	"github.com/marbeld/tunequiz/internal/services/playback"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	playback    playback.Service
	config      *Config

	mu      sync.Mutex
	byKey   map[string]*gameChannel // channel key -> running game
	byGuild map[string]*gameChannel // guild ID -> running game
}

// gameChannel ties a running game to the text channel its announcements
// go to
type gameChannel struct {
	guildID     string
	channelKey  string
	announceID  string
	totalRounds int
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord session, already authenticated but not
	// yet opened
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Playback service
	Playback playback.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Playback == nil {
		return nil, errors.New("playback service cannot be nil")
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		playback:    cfg.Playback,
		config:      cfg,
		byKey:       make(map[string]*gameChannel),
		byGuild:     make(map[string]*gameChannel),
	}

	// Register the interaction and message handlers
	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the quiz command
	quizCmd := NewQuizCommand(b)
	if err := b.RegisterCommand(quizCmd); err != nil {
		return fmt.Errorf("failed to register quiz command: %w", err)
	}

	slog.Info("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			slog.Warn("failed to delete command", "command", cmdName, "error", err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild.
	// Otherwise, register it globally.
	guildID := b.config.GuildID

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	slog.Info("registered command", "command", cmd.GetName(), "command_id", createdCmd.ID, "guild_id", guildID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
		if err := h.Handle(s, i); err != nil {
			slog.Error("error handling command",
				"command", i.ApplicationCommandData().Name,
				"error", err)
		}
	}
}

// handleMessageCreate treats every plain message in a game channel as a
// guess for the current round
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Content == "" {
		return
	}

	gc := b.lookupGameByChannel(s, m.ChannelID)
	if gc == nil {
		return
	}

	username := m.Author.Username
	if m.Member != nil && m.Member.Nick != "" {
		username = m.Member.Nick
	}

	out, err := b.gameService.ProcessGuess(context.Background(), &game.ProcessGuessInput{
		ChannelKey: gc.channelKey,
		PlayerID:   m.Author.ID,
		PlayerName: username,
		Text:       m.Content,
	})
	if err != nil {
		if !errors.Is(err, game.ErrSessionNotFound) {
			slog.Error("error processing guess", "channel_key", gc.channelKey, "error", err)
		}
		return
	}

	switch {
	case out.Correct:
		if _, err := s.ChannelMessageSendEmbed(gc.announceID, renderCorrectGuess(username, out.Media, out.Score)); err != nil {
			slog.Warn("failed to announce correct guess", "error", err)
		}
		go b.advanceRound(gc, m.Author.ID, username)
	case out.Close:
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, "🤏"); err != nil {
			slog.Warn("failed to add close reaction", "error", err)
		}
	}
}

// registerGame binds a freshly created session to its announce channel
func (b *Bot) registerGame(gc *gameChannel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.byKey[gc.channelKey] = gc
	b.byGuild[gc.guildID] = gc
}

func (b *Bot) unregisterGame(gc *gameChannel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.byKey, gc.channelKey)
	delete(b.byGuild, gc.guildID)
}

func (b *Bot) gameByKey(key string) *gameChannel {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.byKey[key]
}

func (b *Bot) gameByGuild(guildID string) *gameChannel {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.byGuild[guildID]
}

// lookupGameByChannel resolves a message's channel to a running game,
// following a thread to its parent channel
func (b *Bot) lookupGameByChannel(s *discordgo.Session, channelID string) *gameChannel {
	if gc := b.gameByKey(channelID); gc != nil {
		return gc
	}

	ch, err := s.State.Channel(channelID)
	if err != nil {
		ch, err = s.Channel(channelID)
		if err != nil {
			return nil
		}
	}
	if ch.ParentID == "" {
		return nil
	}
	return b.gameByKey(ch.ParentID)
}

// OnHint posts a progressively revealed answer mask. Part of the
// playback.RoundListener interface.
func (b *Bot) OnHint(guildID string, media *models.Media, level int) {
	gc := b.gameByGuild(guildID)
	if gc == nil {
		return
	}

	masked := match.Hint(media.PrimaryAnswer(), level)
	if _, err := b.session.ChannelMessageSendEmbed(gc.announceID, renderHint(masked, level)); err != nil {
		slog.Warn("failed to post hint", "guild_id", guildID, "error", err)
	}
}

// OnRoundEnd advances the game when a round finishes without a winner.
// Part of the playback.RoundListener interface.
func (b *Bot) OnRoundEnd(guildID string) {
	gc := b.gameByGuild(guildID)
	if gc == nil {
		return
	}

	// Reveal the unguessed answer before moving on.
	sess := b.gameService.GetSession(gc.channelKey)
	if sess != nil {
		if media := sess.GetCurrentMedia(); media != nil && !sess.IsAnswerGuessed(media.ID) {
			if _, err := b.session.ChannelMessageSendEmbed(gc.announceID, renderTimeUp(media)); err != nil {
				slog.Warn("failed to reveal answer", "guild_id", guildID, "error", err)
			}
		}
	}

	b.advanceRound(gc, "", "")
}

// advanceRound drives the game forward, skipping past unplayable media
// and finishing the game when the rounds run out
func (b *Bot) advanceRound(gc *gameChannel, winnerID, winnerName string) {
	ctx := context.Background()

	for {
		out, err := b.gameService.AdvanceRound(ctx, &game.AdvanceRoundInput{
			ChannelKey: gc.channelKey,
			WinnerID:   winnerID,
			WinnerName: winnerName,
		})
		if err != nil {
			if !errors.Is(err, game.ErrSessionNotFound) {
				slog.Error("failed to advance round", "channel_key", gc.channelKey, "error", err)
			}
			return
		}
		if !out.Advanced {
			return
		}
		if out.GameOver {
			b.finishGame(gc)
			return
		}

		if _, err := b.session.ChannelMessageSendEmbed(gc.announceID, renderRoundStart(out.Round, gc.totalRounds, out.LastRound)); err != nil {
			slog.Warn("failed to announce round", "error", err)
		}

		if !out.PlaybackFailed {
			return
		}

		// The track could not be played; tell the channel and move on.
		if _, err := b.session.ChannelMessageSend(gc.announceID, "That track refused to play, skipping it."); err != nil {
			slog.Warn("failed to announce skipped track", "error", err)
		}
		winnerID, winnerName = "", ""
	}
}

// finishGame ends the session and posts the final leaderboard
func (b *Bot) finishGame(gc *gameChannel) {
	b.unregisterGame(gc)

	out, err := b.gameService.EndSession(context.Background(), &game.EndSessionInput{
		ChannelKey: gc.channelKey,
	})
	if err != nil {
		if !errors.Is(err, game.ErrSessionNotFound) {
			slog.Error("failed to end session", "channel_key", gc.channelKey, "error", err)
		}
		return
	}

	if _, err := b.session.ChannelMessageSendEmbed(gc.announceID, renderFinalLeaderboard(out.Leaderboard)); err != nil {
		slog.Warn("failed to post final leaderboard", "error", err)
	}
}
