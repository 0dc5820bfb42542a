package video

import (
	"fmt"
	"os/exec"
	"strings"

	"quotereel/command"
	"quotereel/ffmpeg"
	"quotereel/internal/timeutil"
)

// TrimBuilder builds the trim command for a source longer than the target:
// re-encode with a duration cap, source audio dropped.
type TrimBuilder struct {
	inputPath      string
	outputPath     string
	targetDuration float64
	profile        Profile
}

// NewTrimBuilder creates a TrimBuilder.
func NewTrimBuilder(inputPath, outputPath string, targetDuration float64) *TrimBuilder {
	return &TrimBuilder{
		inputPath:      inputPath,
		outputPath:     outputPath,
		targetDuration: targetDuration,
		profile:        DefaultProfile(),
	}
}

// SetProfile overrides the canonical output profile.
func (b *TrimBuilder) SetProfile(p Profile) *TrimBuilder {
	b.profile = p
	return b
}

// BuildArgs constructs the FFmpeg command arguments.
func (b *TrimBuilder) BuildArgs() []string {
	args := []string{
		"-i", b.inputPath,
		"-t", timeutil.FormatPoint(b.targetDuration),
		"-an",
	}
	args = append(args, b.profile.Args()...)
	args = append(args, "-y", b.outputPath)
	return args
}

// Run executes the FFmpeg command.
func (b *TrimBuilder) Run() error {
	cmd := exec.Command("ffmpeg", b.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg trim failed: %w (output: %s)", err, ffmpeg.Summarize(string(output)))
	}
	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (b *TrimBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(b.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (video).
func (b *TrimBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeVideo
}

// GetInputPath returns the input file path.
func (b *TrimBuilder) GetInputPath() string {
	return b.inputPath
}

// GetOutputPath returns the output file path.
func (b *TrimBuilder) GetOutputPath() string {
	return b.outputPath
}
