package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/marbeld/tunequiz/internal/models"
	mediaRepo "github.com/marbeld/tunequiz/internal/repositories/media"
	"github.com/marbeld/tunequiz/internal/services/game"
	"github.com/marbeld/tunequiz/internal/services/playback"
)

// DefaultRounds is used when /quiz start is invoked without a round count
const DefaultRounds = 10

// QuizCommand handles the /quiz command
type QuizCommand struct {
	BaseCommand
	bot *Bot
}

// NewQuizCommand creates a new quiz command handler
func NewQuizCommand(bot *Bot) *QuizCommand {
	return &QuizCommand{
		BaseCommand: BaseCommand{
			Name:        "quiz",
			Description: "Music guessing game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new music quiz in your voice channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rounds",
							Description: "Number of rounds to play",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "artist",
							Description: "Only play tracks by this artist",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "tag",
							Description: "Only play tracks with this tag",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "clips",
							Description: "Play short random clips instead of full tracks",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stop",
					Description: "Stop the running quiz and show the final standings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "skip",
					Description: "Vote to skip the current track",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the current standings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "answer",
					Description: "Add an accepted answer for the previous track",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "text",
							Description: "The answer to accept",
							Required:    true,
						},
					},
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the quiz command
func (c *QuizCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID := i.Member.User.ID

	switch data.Options[0].Name {
	case "start":
		return c.handleStart(s, i, userID, data.Options[0].Options)
	case "stop":
		return c.handleStop(s, i)
	case "skip":
		return c.handleSkip(s, i, userID)
	case "leaderboard":
		return c.handleLeaderboard(s, i)
	case "answer":
		return c.handleAnswer(s, i, data.Options[0].Options)
	default:
		return errors.New("unknown subcommand")
	}
}

// resolveChannelKey maps the interaction channel to the session key,
// following a thread to its parent channel
func resolveChannelKey(s *discordgo.Session, channelID string) string {
	ch, err := s.State.Channel(channelID)
	if err != nil {
		ch, err = s.Channel(channelID)
		if err != nil {
			return channelID
		}
	}
	if ch.IsThread() {
		return ch.ParentID
	}
	return channelID
}

// findVoiceChannel returns the voice channel the user currently sits in
func findVoiceChannel(s *discordgo.Session, guildID, userID string) string {
	g, err := s.State.Guild(guildID)
	if err != nil {
		return ""
	}
	for _, vs := range g.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID
		}
	}
	return ""
}

// handleStart handles the start subcommand
func (c *QuizCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	voiceChannelID := findVoiceChannel(s, i.GuildID, userID)
	if voiceChannelID == "" {
		return RespondWithError(s, i, "Join a voice channel first, then start the quiz.")
	}

	rounds := DefaultRounds
	var artist, tag string
	var clips bool
	for _, opt := range opts {
		switch opt.Name {
		case "rounds":
			rounds = int(opt.IntValue())
		case "artist":
			artist = opt.StringValue()
		case "tag":
			tag = opt.StringValue()
		case "clips":
			clips = opt.BoolValue()
		}
	}

	threadParent := threadParentOf(s, i.ChannelID)
	channelKey := game.ChannelKey(i.ChannelID, threadParent)

	createOutput, err := c.bot.gameService.CreateSession(ctx, &game.CreateSessionInput{
		GuildID:        i.GuildID,
		ChannelID:      i.ChannelID,
		ThreadParentID: threadParent,
		VoiceChannelID: voiceChannelID,
		Rounds:         rounds,
		ClipMode:       clips,
		Filters: mediaRepo.Filters{
			Artist: artist,
			Tag:    tag,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, game.ErrSessionExists):
			return RespondWithError(s, i, "There's already a quiz running in this channel. Use `/quiz stop` to end it.")
		case errors.Is(err, game.ErrInsufficientMedia):
			return RespondWithError(s, i, "Not enough tracks match those filters. Try loosening them.")
		case errors.Is(err, game.ErrInvalidRounds):
			return RespondWithError(s, i, "The round count must be at least 1.")
		default:
			slog.Error("error creating session", "guild_id", i.GuildID, "error", err)
			return RespondWithError(s, i, "Failed to start the quiz.")
		}
	}

	err = c.bot.playback.JoinChannel(ctx, &playback.JoinChannelInput{
		GuildID:        i.GuildID,
		VoiceChannelID: voiceChannelID,
		Listener:       c.bot,
	})
	if err != nil {
		slog.Error("error joining voice channel", "guild_id", i.GuildID, "error", err)
		if _, endErr := c.bot.gameService.EndSession(ctx, &game.EndSessionInput{ChannelKey: channelKey}); endErr != nil {
			slog.Error("error rolling back session", "error", endErr)
		}
		return RespondWithError(s, i, "Couldn't join your voice channel.")
	}

	gc := &gameChannel{
		guildID:     i.GuildID,
		channelKey:  channelKey,
		announceID:  i.ChannelID,
		totalRounds: createOutput.Rounds,
	}
	c.bot.registerGame(gc)

	description := fmt.Sprintf("%d rounds. Type your guesses in this channel.", createOutput.Rounds)
	if createOutput.Rounds < rounds {
		description = fmt.Sprintf("Only %d tracks matched, so we'll play %d rounds. Type your guesses in this channel.", createOutput.Rounds, createOutput.Rounds)
	}
	if err := RespondWithEmbed(s, i, "🎶 Music quiz starting!", description, nil); err != nil {
		return err
	}

	go c.bot.advanceRound(gc, "", "")
	return nil
}

// handleStop handles the stop subcommand
func (c *QuizCommand) handleStop(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	channelKey := resolveChannelKey(s, i.ChannelID)
	gc := c.bot.gameByKey(channelKey)
	if gc == nil {
		return RespondWithError(s, i, "No quiz is running in this channel.")
	}
	c.bot.unregisterGame(gc)

	out, err := c.bot.gameService.EndSession(context.Background(), &game.EndSessionInput{
		ChannelKey: channelKey,
	})
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			return RespondWithError(s, i, "No quiz is running in this channel.")
		}
		slog.Error("error ending session", "channel_key", channelKey, "error", err)
		return RespondWithError(s, i, "Failed to stop the quiz.")
	}

	embed := renderFinalLeaderboard(out.Leaderboard)
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// handleSkip handles the skip subcommand
func (c *QuizCommand) handleSkip(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	channelKey := resolveChannelKey(s, i.ChannelID)
	gc := c.bot.gameByKey(channelKey)
	if gc == nil {
		return RespondWithError(s, i, "No quiz is running in this channel.")
	}

	var current *models.Media
	if sess := c.bot.gameService.GetSession(channelKey); sess != nil {
		current = sess.GetCurrentMedia()
	}

	out, err := c.bot.gameService.ProcessSkip(context.Background(), &game.ProcessSkipInput{
		ChannelKey: channelKey,
		PlayerID:   userID,
	})
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			return RespondWithError(s, i, "No quiz is running in this channel.")
		}
		slog.Error("error processing skip", "channel_key", channelKey, "error", err)
		return RespondWithError(s, i, "Failed to record your vote.")
	}

	if !out.Accepted {
		return RespondWithEphemeralMessage(s, i, "The round is already over; hang tight for the next one.")
	}

	if out.Skipped {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{renderSkipped(current)},
			},
		}); err != nil {
			return err
		}
		go c.bot.advanceRound(gc, "", "")
		return nil
	}

	return RespondWithMessage(s, i, fmt.Sprintf("⏭️ Skip vote recorded: %d of %d needed.", out.Votes, out.Required))
}

// handleLeaderboard handles the leaderboard subcommand
func (c *QuizCommand) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	channelKey := resolveChannelKey(s, i.ChannelID)
	sess := c.bot.gameService.GetSession(channelKey)
	if sess == nil {
		return RespondWithError(s, i, "No quiz is running in this channel.")
	}

	embed := renderLeaderboard(sess.GetLeaderboard())
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// handleAnswer handles the answer subcommand
func (c *QuizCommand) handleAnswer(s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	var text string
	for _, opt := range opts {
		if opt.Name == "text" {
			text = opt.StringValue()
		}
	}
	if text == "" {
		return RespondWithError(s, i, "Give me the answer text to accept.")
	}

	channelKey := resolveChannelKey(s, i.ChannelID)
	out, err := c.bot.gameService.AddAnswer(context.Background(), &game.AddAnswerInput{
		ChannelKey: channelKey,
		Answer:     text,
	})
	if err != nil {
		switch {
		case errors.Is(err, game.ErrSessionNotFound):
			return RespondWithError(s, i, "No quiz is running in this channel.")
		case errors.Is(err, game.ErrNoCompletedRound):
			return RespondWithError(s, i, "No round has finished yet; there's nothing to attach the answer to.")
		default:
			slog.Error("error adding answer", "channel_key", channelKey, "error", err)
			return RespondWithError(s, i, "Failed to add the answer.")
		}
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Added \"%s\" as an accepted answer for **%s**.", text, out.Title))
}

// threadParentOf returns the parent channel ID when channelID is a
// thread, empty otherwise
func threadParentOf(s *discordgo.Session, channelID string) string {
	ch, err := s.State.Channel(channelID)
	if err != nil {
		ch, err = s.Channel(channelID)
		if err != nil {
			return ""
		}
	}
	if ch.IsThread() {
		return ch.ParentID
	}
	return ""
}
