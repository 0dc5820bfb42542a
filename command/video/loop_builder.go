package video

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"quotereel/command"
	"quotereel/ffmpeg"
	"quotereel/internal/timeutil"
)

// LoopBuilder builds the primary looping command: the single input is
// replayed -stream_loop times within one invocation and the output is capped
// at the target duration.
//
// Source audio is always dropped (-an); the pipeline supplies its own mixed
// track later, and a leftover source track would become an unintended second
// audio stream downstream.
type LoopBuilder struct {
	inputPath      string
	outputPath     string
	extras         int // additional replays beyond the first play
	targetDuration float64
	profile        Profile
}

// NewLoopBuilder creates a LoopBuilder.
//
// extras is the number of additional replays beyond the first play, i.e.
// ceil(target/duration) - 1 for a source shorter than the target.
func NewLoopBuilder(inputPath, outputPath string, extras int, targetDuration float64) *LoopBuilder {
	return &LoopBuilder{
		inputPath:      inputPath,
		outputPath:     outputPath,
		extras:         extras,
		targetDuration: targetDuration,
		profile:        DefaultProfile(),
	}
}

// SetProfile overrides the canonical output profile.
func (b *LoopBuilder) SetProfile(p Profile) *LoopBuilder {
	b.profile = p
	return b
}

// BuildArgs constructs the FFmpeg command arguments.
func (b *LoopBuilder) BuildArgs() []string {
	args := []string{
		"-stream_loop", strconv.Itoa(b.extras),
		"-i", b.inputPath,
		"-t", timeutil.FormatPoint(b.targetDuration),
		"-an",
	}
	args = append(args, b.profile.Args()...)
	args = append(args, "-y", b.outputPath)
	return args
}

// Run executes the FFmpeg command.
func (b *LoopBuilder) Run() error {
	cmd := exec.Command("ffmpeg", b.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg stream_loop failed: %w (output: %s)", err, ffmpeg.Summarize(string(output)))
	}
	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (b *LoopBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(b.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (video).
func (b *LoopBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeVideo
}

// GetInputPath returns the input file path.
func (b *LoopBuilder) GetInputPath() string {
	return b.inputPath
}

// GetOutputPath returns the output file path.
func (b *LoopBuilder) GetOutputPath() string {
	return b.outputPath
}
