package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/marbeld/tunequiz/internal/models"
)

// Embed colors
const (
	colorPlaying = 0x00ff00 // Green color
	colorError   = 0xff0000 // Red color
	colorHint    = 0xffcc00 // Amber color
	colorReveal  = 0x3498db // Blue color
)

// renderRoundStart announces a new round
func renderRoundStart(round, total int, lastRound bool) *discordgo.MessageEmbed {
	title := fmt.Sprintf("🎵 Round %d of %d", round, total)
	description := "Listen up and type your guess in this channel!"
	if lastRound {
		description = "Final round! " + description
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorPlaying,
	}
}

// renderHint shows a progressively unmasked answer
func renderHint(masked string, level int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("💡 Hint %d", level+1),
		Description: masked,
		Color:       colorHint,
	}
}

// renderCorrectGuess announces the round winner and reveals the track
func renderCorrectGuess(username string, media *models.Media, score int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎉 %s got it!", username),
		Description: renderTrack(media),
		Color:       colorPlaying,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s now has %d point(s)", username, score),
		},
	}
}

// renderTimeUp reveals the answer after a round nobody won
func renderTimeUp(media *models.Media) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⏰ Time's up!",
		Description: "The answer was " + renderTrack(media),
		Color:       colorReveal,
	}
}

// renderSkipped reveals the answer after a skipped round
func renderSkipped(media *models.Media) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⏭️ Round skipped",
		Description: "The answer was " + renderTrack(media),
		Color:       colorReveal,
	}
}

// renderTrack formats a media item for an answer reveal
func renderTrack(media *models.Media) string {
	if media == nil {
		return "a mystery track"
	}
	if media.Artist != "" {
		return fmt.Sprintf("**%s** by **%s**", media.Title, media.Artist)
	}
	return fmt.Sprintf("**%s**", media.Title)
}

// renderLeaderboard formats the current standings
func renderLeaderboard(board *models.Leaderboard) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard",
		Description: renderStandings(board),
		Color:       colorPlaying,
	}
}

// renderFinalLeaderboard formats the standings at game end
func renderFinalLeaderboard(board *models.Leaderboard) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🏁 Game over!",
		Description: renderStandings(board),
		Color:       colorPlaying,
	}
}

var medals = []string{"🥇", "🥈", "🥉"}

func renderStandings(board *models.Leaderboard) string {
	if board == nil || len(board.Entries) == 0 {
		return "Nobody scored. The music wins this time."
	}

	var sb strings.Builder
	for idx, entry := range board.Entries {
		rank := fmt.Sprintf("%d.", idx+1)
		if idx < len(medals) {
			rank = medals[idx]
		}
		sb.WriteString(fmt.Sprintf("%s **%s** — %d point(s)\n", rank, entry.PlayerName, entry.Score))
	}
	return sb.String()
}
