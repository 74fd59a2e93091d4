package transcode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// loudnorm targets used for every normalized artifact
const loudnormFilter = "loudnorm=I=-16:TP=-1.5:LRA=11"

// Config holds configuration for the ffmpeg transcoder
type Config struct {
	// FFmpegPath is the ffmpeg binary ("ffmpeg" resolves via PATH)
	FFmpegPath string

	// FFprobePath is the ffprobe binary
	FFprobePath string

	// CacheDir is where rendered artifacts and clips are written
	CacheDir string
}

// ffmpegTranscoder implements Transcoder by shelling out to ffmpeg
type ffmpegTranscoder struct {
	ffmpegPath  string
	ffprobePath string
	cacheDir    string
}

// New creates a new ffmpeg-backed transcoder
func New(cfg *Config) (*ffmpegTranscoder, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	ffmpegPath := cfg.FFmpegPath
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	ffprobePath := cfg.FFprobePath
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}

	if cfg.CacheDir == "" {
		return nil, errors.New("cache dir cannot be empty")
	}
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}

	return &ffmpegTranscoder{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		cacheDir:    cfg.CacheDir,
	}, nil
}

// Normalize renders a loudness-normalized opus artifact for the source file
func (t *ffmpegTranscoder) Normalize(ctx context.Context, sourcePath string) (*NormalizeResult, error) {
	if sourcePath == "" {
		return nil, errors.New("source path cannot be empty")
	}

	outPath := filepath.Join(t.cacheDir, uuid.New().String()+".ogg")

	cmd := exec.CommandContext(ctx, t.ffmpegPath, buildNormalizeArgs(sourcePath, outPath)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("ffmpeg normalize failed: %w (output: %s)", err, string(output))
	}

	duration, err := t.Probe(ctx, outPath)
	if err != nil {
		os.Remove(outPath)
		return nil, err
	}

	return &NormalizeResult{
		ArtifactPath: outPath,
		Duration:     duration,
	}, nil
}

// ExtractClip cuts a bounded excerpt out of an artifact
func (t *ffmpegTranscoder) ExtractClip(ctx context.Context, sourcePath string, start, length time.Duration) (string, error) {
	if sourcePath == "" {
		return "", errors.New("source path cannot be empty")
	}
	if length <= 0 {
		return "", errors.New("clip length must be positive")
	}

	outPath := filepath.Join(t.cacheDir, uuid.New().String()+filepath.Ext(sourcePath))

	cmd := exec.CommandContext(ctx, t.ffmpegPath, buildClipArgs(sourcePath, outPath, start, length)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg clip failed: %w (output: %s)", err, string(output))
	}

	return outPath, nil
}

// Probe reports the duration of a media file via ffprobe
func (t *ffmpegTranscoder) Probe(ctx context.Context, path string) (time.Duration, error) {
	if path == "" {
		return 0, errors.New("path cannot be empty")
	}

	cmd := exec.CommandContext(ctx, t.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseDuration(string(output))
}

// buildNormalizeArgs builds the ffmpeg arguments for Normalize
func buildNormalizeArgs(inPath, outPath string) []string {
	return []string{
		"-y",
		"-i", inPath,
		"-vn",
		"-af", loudnormFilter,
		"-ar", "48000",
		"-c:a", "libopus",
		outPath,
	}
}

// buildClipArgs builds the ffmpeg arguments for ExtractClip. Seeking
// before the input keeps the cut fast; re-encoding is skipped.
func buildClipArgs(inPath, outPath string, start, length time.Duration) []string {
	return []string{
		"-y",
		"-ss", formatSeconds(start),
		"-i", inPath,
		"-t", formatSeconds(length),
		"-c", "copy",
		outPath,
	}
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 2, 64)
}

// parseDuration parses ffprobe's fractional-seconds output
func parseDuration(raw string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe duration %q: %w", raw, err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
