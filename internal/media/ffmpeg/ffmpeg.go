package ffmpeg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"subclip/internal/logging"
)

// Client runs ffmpeg and ffprobe with configured binary paths.
type Client struct {
	FFmpegBinary  string
	FFprobeBinary string
}

// NewClient returns a client, defaulting to binaries on PATH.
func NewClient(ffmpegBinary, ffprobeBinary string) Client {
	if strings.TrimSpace(ffmpegBinary) == "" {
		ffmpegBinary = "ffmpeg"
	}
	if strings.TrimSpace(ffprobeBinary) == "" {
		ffprobeBinary = "ffprobe"
	}
	return Client{FFmpegBinary: ffmpegBinary, FFprobeBinary: ffprobeBinary}
}

type probeResult struct {
	Streams []struct {
		Index int `json:"index"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// SubtitleStreamCount probes a media container for subtitle streams.
func (c Client) SubtitleStreamCount(ctx context.Context, path string) (int, error) {
	result, err := c.probe(ctx, path, "-select_streams", "s", "-show_streams")
	if err != nil {
		return 0, err
	}
	return len(result.Streams), nil
}

// Duration reports the container duration.
func (c Client) Duration(ctx context.Context, path string) (time.Duration, error) {
	result, err := c.probe(ctx, path, "-show_format")
	if err != nil {
		return 0, err
	}
	raw := strings.TrimSpace(result.Format.Duration)
	if raw == "" {
		return 0, fmt.Errorf("ffprobe: no duration for %s", path)
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: parse duration %q: %w", raw, err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

func (c Client) probe(ctx context.Context, path string, args ...string) (probeResult, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return probeResult{}, errors.New("ffprobe: empty path")
	}
	full := append([]string{"-v", "error", "-hide_banner", "-of", "json"}, args...)
	full = append(full, "--", path)
	cmd := exec.CommandContext(ctx, c.FFprobeBinary, full...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return probeResult{}, fmt.Errorf("ffprobe %s: %w: %s", path, err, strings.TrimSpace(string(output)))
	}
	var result probeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return probeResult{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// ExtractSubtitles demuxes every subtitle stream of a media file into
// numbered SRT files under destDir, skipping streams already extracted. A
// file lock on the destination serializes extraction across concurrent
// subclip processes sharing one cache.
func (c Client) ExtractSubtitles(ctx context.Context, logger *slog.Logger, path, destDir string) ([]string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	count, err := c.SubtitleStreamCount(ctx, path)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure extraction directory: %w", err)
	}

	lock := flock.New(filepath.Join(destDir, ".extract.lock"))
	locked, err := lock.TryLockContext(ctx, 250*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("lock extraction directory: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("lock extraction directory %s: not acquired", destDir)
	}
	defer func() { _ = lock.Unlock() }()

	outputs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		outfile := filepath.Join(destDir, fmt.Sprintf("%d.srt", i))
		if _, err := os.Stat(outfile); err == nil {
			outputs = append(outputs, outfile)
			continue
		}
		args := extractArgs(path, i, outfile)
		cmd := exec.CommandContext(ctx, c.FFmpegBinary, args...)
		output, err := cmd.CombinedOutput()
		if err != nil {
			// Bitmap subtitle streams (PGS, VobSub) cannot convert to SRT;
			// skip them and keep the text streams.
			logger.Warn("subtitle stream extraction failed",
				logging.String("file", path),
				logging.Int("stream", i),
				logging.String("output", strings.TrimSpace(string(output))),
				logging.Error(err))
			_ = os.Remove(outfile)
			continue
		}
		outputs = append(outputs, outfile)
	}
	return outputs, nil
}

// Cut extracts [start, end] of the input into output using the profile's
// encoder arguments.
func (c Client) Cut(ctx context.Context, input, output string, start, end time.Duration, profile Profile) error {
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("ensure clip directory: %w", err)
	}
	args := cutArgs(input, output, start, end, profile)
	cmd := exec.CommandContext(ctx, c.FFmpegBinary, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg cut %s: %w: %s", input, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func extractArgs(input string, stream int, output string) []string {
	return []string{
		"-nostdin", "-v", "error",
		"-i", input,
		"-map", fmt.Sprintf("0:s:%d", stream),
		"-f", "srt",
		output,
	}
}

func cutArgs(input, output string, start, end time.Duration, profile Profile) []string {
	args := []string{
		"-nostdin", "-v", "error", "-y",
		"-ss", formatSeconds(start),
		"-to", formatSeconds(end),
		"-i", input,
	}
	args = append(args, profile.Args...)
	return append(args, output)
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
