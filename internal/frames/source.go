package frames

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"sectionizer/internal/logging"
	"sectionizer/internal/phash"
)

var commandContext = exec.CommandContext

// Source produces the ordered hash sequence for one video file.
type Source interface {
	Extract(ctx context.Context, path string) ([]Frame, error)
}

// Option configures the FFmpeg source.
type Option func(*FFmpeg)

// WithBinary overrides the default ffmpeg binary name.
func WithBinary(binary string) Option {
	return func(f *FFmpeg) {
		if strings.TrimSpace(binary) != "" {
			f.binary = binary
		}
	}
}

// WithSampleSize overrides the width and height frames are scaled to before
// hashing.
func WithSampleSize(width, height int) Option {
	return func(f *FFmpeg) {
		if width > 0 && height > 0 {
			f.width = width
			f.height = height
		}
	}
}

// WithFPS overrides the decode sampling rate.
func WithFPS(fps int) Option {
	return func(f *FFmpeg) {
		if fps > 0 {
			f.fps = fps
		}
	}
}

// WithWindowSeconds limits extraction to the leading portion of the file.
// Zero disables the limit.
func WithWindowSeconds(seconds int) Option {
	return func(f *FFmpeg) {
		if seconds >= 0 {
			f.windowSeconds = seconds
		}
	}
}

// WithHasher swaps the perceptual hash implementation.
func WithHasher(hasher phash.Hasher) Option {
	return func(f *FFmpeg) {
		if hasher != nil {
			f.hasher = hasher
		}
	}
}

// WithLogger attaches a logger for extraction diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(f *FFmpeg) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// FFmpeg extracts hash sequences by decoding files to raw RGB via ffmpeg.
type FFmpeg struct {
	binary        string
	width         int
	height        int
	fps           int
	windowSeconds int
	hasher        phash.Hasher
	logger        *slog.Logger
}

// NewFFmpeg constructs an FFmpeg source with the defaults the original
// pipeline shipped: an 18x16 sample at 24 fps over the first five minutes.
func NewFFmpeg(opts ...Option) *FFmpeg {
	source := &FFmpeg{
		binary:        "ffmpeg",
		width:         18,
		height:        16,
		fps:           24,
		windowSeconds: 300,
		hasher:        phash.DoubleGradient{},
		logger:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(source)
	}
	return source
}

// Extract decodes path and returns its hashed frame sequence in decode order.
func (f *FFmpeg) Extract(ctx context.Context, path string) ([]Frame, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("extract: empty path")
	}

	args := []string{"-hide_banner", "-nostdin", "-loglevel", "error"}
	if f.windowSeconds > 0 {
		args = append(args, "-t", strconv.Itoa(f.windowSeconds))
	}
	args = append(args,
		"-i", path,
		"-map", "0:v:0",
		"-vf", fmt.Sprintf("fps=%d,scale=%d:%d", f.fps, f.width, f.height),
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"pipe:1",
	)

	cmd := commandContext(ctx, f.binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger := f.logger.With(
		logging.FieldStreamID, uuid.NewString(),
		logging.FieldSource, path,
	)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", f.binary, err)
	}

	result := ReadFrames(bufio.NewReaderSize(stdout, f.width*f.height*3), f.hasher, f.width, f.height)
	waitErr := cmd.Wait()

	// A cancelled extraction must not pass off a partial sequence as complete.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if len(result) == 0 {
		if waitErr != nil {
			return nil, fmt.Errorf("decode %s: %w: %s", path, waitErr, stderrTail(&stderr))
		}
		logger.Warn("decoder produced no frames")
		return nil, nil
	}
	if waitErr != nil {
		// The stream delivered usable frames before the decoder died; a
		// truncated tail is end-of-sequence, not a failure.
		logger.Warn("decoder exited abnormally after producing frames",
			logging.FieldFrameCount, len(result),
			"error", waitErr.Error(),
		)
	}

	logger.Debug("extraction complete", logging.FieldFrameCount, len(result))
	return result, nil
}

// ReadFrames consumes width*height*3-byte chunks from r, hashing each into a
// Frame with a sequential index. A short read ends the sequence; frames read
// before it remain valid.
func ReadFrames(r io.Reader, hasher phash.Hasher, width, height int) []Frame {
	frameSize := width * height * 3
	buf := make([]byte, frameSize)

	var result []Frame
	var index uint64
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return result
		}
		result = append(result, Frame{
			Hash:  hasher.Hash(buf, width, height),
			Index: index,
		})
		index++
	}
}

func stderrTail(buf *bytes.Buffer) string {
	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "no decoder output"
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	return strings.Join(lines, " | ")
}

var _ Source = (*FFmpeg)(nil)
