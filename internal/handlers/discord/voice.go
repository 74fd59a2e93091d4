package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/jonas747/dca"

	"github.com/marbeld/tunequiz/internal/services/playback"
)

// VoiceConnector opens Discord voice connections and streams audio
// through dca. It implements playback.VoiceConnector.
type VoiceConnector struct {
	session *discordgo.Session

	mu    sync.Mutex
	onEnd func(guildID string)
}

// NewVoiceConnector creates a connector on an existing Discord session
func NewVoiceConnector(session *discordgo.Session) *VoiceConnector {
	return &VoiceConnector{session: session}
}

// SetPlaybackEndHandler registers the callback invoked when a stream
// finishes on its own. Must be set before the first Join.
func (c *VoiceConnector) SetPlaybackEndHandler(fn func(guildID string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEnd = fn
}

func (c *VoiceConnector) endHandler() func(guildID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.onEnd
}

// Join connects to a guild voice channel, muted for listening and
// unmuted for speaking
func (c *VoiceConnector) Join(ctx context.Context, guildID, channelID string) (playback.VoiceSession, error) {
	vc, err := c.session.ChannelVoiceJoin(guildID, channelID, false, true)
	if err != nil {
		return nil, fmt.Errorf("failed to join voice channel %s: %w", channelID, err)
	}

	ready := make(chan struct{})
	close(ready)

	return &voiceSession{
		guildID: guildID,
		vc:      vc,
		ready:   ready,
		onEnd:   c.endHandler(),
	}, nil
}

// voiceSession wraps one live voice connection and at most one active
// dca stream
type voiceSession struct {
	guildID string
	vc      *discordgo.VoiceConnection
	ready   chan struct{}
	onEnd   func(guildID string)

	mu     sync.Mutex
	encode *dca.EncodeSession

	// stoppedEnc is the stream a manual Stop killed; its drain must not
	// fire the end handler
	stoppedEnc *dca.EncodeSession
}

// Ready reports when the connection can accept audio. ChannelVoiceJoin
// already waited for the handshake, so the channel is closed up front.
func (v *voiceSession) Ready() <-chan struct{} {
	return v.ready
}

// Play encodes the file and streams it into the voice connection. The
// registered end handler fires when the stream drains on its own.
func (v *voiceSession) Play(path string) error {
	options := dca.StdEncodeOptions
	options.RawOutput = true
	options.Bitrate = 96

	encode, err := dca.EncodeFile(path, options)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	v.mu.Lock()
	if v.encode != nil {
		v.mu.Unlock()
		encode.Cleanup()
		return errors.New("a stream is already active")
	}
	v.encode = encode
	v.mu.Unlock()

	if err := v.vc.Speaking(true); err != nil {
		slog.Warn("failed to set speaking state", "guild_id", v.guildID, "error", err)
	}

	done := make(chan error)
	dca.NewStream(encode, v.vc, done)

	go func() {
		streamErr := <-done

		stopped := v.releaseStream(encode)

		encode.Cleanup()
		if err := v.vc.Speaking(false); err != nil {
			slog.Debug("failed to clear speaking state", "guild_id", v.guildID, "error", err)
		}

		if streamErr != nil && !errors.Is(streamErr, io.EOF) {
			slog.Warn("stream ended with error", "guild_id", v.guildID, "error", streamErr)
		}

		// A manual stop already did the round bookkeeping.
		if stopped {
			return
		}
		if v.onEnd != nil {
			v.onEnd(v.guildID)
		}
	}()

	return nil
}

// detachStream removes the active stream, marking it manually stopped,
// and returns it for cleanup. The session accepts a new Play as soon as
// this returns, without waiting for the old stream to drain.
func (v *voiceSession) detachStream() *dca.EncodeSession {
	v.mu.Lock()
	defer v.mu.Unlock()

	encode := v.encode
	v.encode = nil
	if encode != nil {
		v.stoppedEnc = encode
	}
	return encode
}

// releaseStream clears bookkeeping for a drained stream and reports
// whether it was manually stopped. A stream that was already replaced
// by a newer Play must not clear the newer one's slot.
func (v *voiceSession) releaseStream(encode *dca.EncodeSession) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	stopped := v.stoppedEnc == encode
	if stopped {
		v.stoppedEnc = nil
	}
	if v.encode == encode {
		v.encode = nil
	}
	return stopped
}

// Stop kills the active stream without firing the end handler
func (v *voiceSession) Stop() {
	if encode := v.detachStream(); encode != nil {
		encode.Cleanup()
	}
}

// Close stops any stream and disconnects from the voice channel
func (v *voiceSession) Close() {
	v.Stop()
	if err := v.vc.Disconnect(); err != nil {
		slog.Warn("failed to disconnect voice", "guild_id", v.guildID, "error", err)
	}
}
