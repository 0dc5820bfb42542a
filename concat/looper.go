// Package concat loops an audio source to cover a target duration using
// ffmpeg's concat demuxer.
//
// The demuxer reads a plain-text playlist with one "file '<path>'" line per
// repeat and treats the repeats as a single continuous stream. Lossless
// stream copy is used: compressed audio containers do not suffer the
// keyframe-alignment problem that makes copy-based looping unreliable for
// MP4 video.
package concat

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"quotereel/command"
	"quotereel/ffmpeg"
	"quotereel/internal/timeutil"
)

// Looper builds the playlist-based looping command for one audio source.
//
// WritePlaylist must be called before Run; the playlist lives in the
// caller's scratch directory and shares its per-invocation lifetime.
type Looper struct {
	sourcePath     string
	outputPath     string
	repeats        int
	targetDuration float64
	listPath       string
}

// NewLooper creates a Looper that repeats sourcePath `repeats` times and
// caps the concatenated stream at targetDuration.
func NewLooper(sourcePath, outputPath string, repeats int, targetDuration float64) *Looper {
	return &Looper{
		sourcePath:     sourcePath,
		outputPath:     outputPath,
		repeats:        repeats,
		targetDuration: targetDuration,
	}
}

// escapePath normalizes a playlist path: absolute, forward slashes, single
// quotes escaped for the demuxer's quoting rules.
func escapePath(path string) string {
	normalized := strings.ReplaceAll(path, `\`, "/")
	return strings.ReplaceAll(normalized, "'", `'\''`)
}

// WritePlaylist writes the repeat playlist into dir and remembers its path.
//
// Returns an error if repeats is less than one or the source path cannot be
// resolved.
func (l *Looper) WritePlaylist(dir string) (string, error) {
	if l.repeats < 1 {
		return "", fmt.Errorf("playlist needs at least one repeat, got %d", l.repeats)
	}

	absPath, err := filepath.Abs(l.sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve source path %s: %w", l.sourcePath, err)
	}

	line := fmt.Sprintf("file '%s'", escapePath(absPath))
	lines := lo.Times(l.repeats, func(int) string { return line })

	listPath := filepath.Join(dir, "music_playlist.txt")
	if err := os.WriteFile(listPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write playlist: %w", err)
	}

	l.listPath = listPath
	return listPath, nil
}

// BuildArgs constructs the FFmpeg command arguments.
func (l *Looper) BuildArgs() []string {
	return []string{
		"-f", "concat",
		"-safe", "0",
		"-i", l.listPath,
		"-t", timeutil.FormatPoint(l.targetDuration),
		"-c", "copy",
		"-y", l.outputPath,
	}
}

// Run executes the FFmpeg command. WritePlaylist must have been called.
func (l *Looper) Run() error {
	if l.listPath == "" {
		return fmt.Errorf("playlist not written, call WritePlaylist first")
	}

	cmd := exec.Command("ffmpeg", l.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg concat loop failed: %w (output: %s)", err, ffmpeg.Summarize(string(output)))
	}
	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (l *Looper) DryRun() (string, error) {
	if l.listPath == "" {
		return "", fmt.Errorf("playlist not written, call WritePlaylist first")
	}
	return "ffmpeg " + strings.Join(l.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (music).
func (l *Looper) GetTaskType() command.TaskType {
	return command.TaskTypeMusic
}

// GetInputPath returns the audio source path.
func (l *Looper) GetInputPath() string {
	return l.sourcePath
}

// GetOutputPath returns the output file path.
func (l *Looper) GetOutputPath() string {
	return l.outputPath
}
