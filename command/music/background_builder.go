// Package music builds the FFmpeg command that gives background music its
// final gain and end-of-clip fade while capping it at the target duration.
package music

import (
	"fmt"
	"math"
	"os/exec"
	"strings"

	"quotereel/command"
	"quotereel/ffmpeg"
	"quotereel/internal/timeutil"
)

// BackgroundBuilder applies the music gain and a linear fade-out over the
// trailing fade window in the same invocation that caps the output at the
// target duration. The fade begins at max(target - fade, 0), so a clip
// shorter than the fade window fades across its whole length.
//
// Like the voice padder, this is the single point where the music gain is
// applied; the mixer never scales it again.
type BackgroundBuilder struct {
	inputPath      string
	outputPath     string
	targetDuration float64
	volume         float64
	fadeDuration   float64
}

// NewBackgroundBuilder creates a BackgroundBuilder.
func NewBackgroundBuilder(inputPath, outputPath string, targetDuration, volume, fadeDuration float64) *BackgroundBuilder {
	return &BackgroundBuilder{
		inputPath:      inputPath,
		outputPath:     outputPath,
		targetDuration: targetDuration,
		volume:         volume,
		fadeDuration:   fadeDuration,
	}
}

// FadeStart returns the time the fade-out begins.
func (b *BackgroundBuilder) FadeStart() float64 {
	return math.Max(b.targetDuration-b.fadeDuration, 0)
}

// BuildArgs constructs the FFmpeg command arguments.
func (b *BackgroundBuilder) BuildArgs() []string {
	filter := fmt.Sprintf("volume=%s,afade=t=out:st=%s:d=%s",
		timeutil.FormatPoint(b.volume),
		timeutil.FormatPoint(b.FadeStart()),
		timeutil.FormatPoint(b.fadeDuration))

	return []string{
		"-i", b.inputPath,
		"-af", filter,
		"-t", timeutil.FormatPoint(b.targetDuration),
		"-y", b.outputPath,
	}
}

// Run executes the FFmpeg command.
func (b *BackgroundBuilder) Run() error {
	cmd := exec.Command("ffmpeg", b.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg background prep failed: %w (output: %s)", err, ffmpeg.Summarize(string(output)))
	}
	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (b *BackgroundBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(b.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (music).
func (b *BackgroundBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeMusic
}

// GetInputPath returns the input file path.
func (b *BackgroundBuilder) GetInputPath() string {
	return b.inputPath
}

// GetOutputPath returns the output file path.
func (b *BackgroundBuilder) GetOutputPath() string {
	return b.outputPath
}
