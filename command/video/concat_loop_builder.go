package video

import (
	"fmt"
	"os/exec"
	"strings"

	"quotereel/command"
	"quotereel/ffmpeg"
	"quotereel/internal/timeutil"
)

// concatLoopFilter duplicates the decoded input once and concatenates the
// duplicate with itself. The duration cap then trims the doubled stream to
// the exact target. This avoids the demuxer and stream-copy pitfalls that
// can break -stream_loop on some builds.
const concatLoopFilter = "[0:v]split=2[v0][v1];[v0][v1]concat=n=2:v=1:a=0[cat]"

// ConcatLoopBuilder builds the fallback looping command: a two-way
// split-and-concatenate filter graph over a single decoded input, capped at
// the target duration and re-encoded to the canonical profile.
//
// It is substitutable with LoopBuilder: the reconciler tries the stream-loop
// strategy first and falls back to this one when that invocation fails.
type ConcatLoopBuilder struct {
	inputPath      string
	outputPath     string
	targetDuration float64
	profile        Profile
}

// NewConcatLoopBuilder creates a ConcatLoopBuilder.
func NewConcatLoopBuilder(inputPath, outputPath string, targetDuration float64) *ConcatLoopBuilder {
	return &ConcatLoopBuilder{
		inputPath:      inputPath,
		outputPath:     outputPath,
		targetDuration: targetDuration,
		profile:        DefaultProfile(),
	}
}

// SetProfile overrides the canonical output profile.
func (b *ConcatLoopBuilder) SetProfile(p Profile) *ConcatLoopBuilder {
	b.profile = p
	return b
}

// BuildArgs constructs the FFmpeg command arguments.
func (b *ConcatLoopBuilder) BuildArgs() []string {
	args := []string{
		"-i", b.inputPath,
		"-filter_complex", concatLoopFilter,
		"-map", "[cat]",
		"-t", timeutil.FormatPoint(b.targetDuration),
		"-an",
	}
	args = append(args, b.profile.Args()...)
	args = append(args, "-y", b.outputPath)
	return args
}

// Run executes the FFmpeg command.
func (b *ConcatLoopBuilder) Run() error {
	cmd := exec.Command("ffmpeg", b.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg split+concat failed: %w (output: %s)", err, ffmpeg.Summarize(string(output)))
	}
	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (b *ConcatLoopBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(b.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (video).
func (b *ConcatLoopBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeVideo
}

// GetInputPath returns the input file path.
func (b *ConcatLoopBuilder) GetInputPath() string {
	return b.inputPath
}

// GetOutputPath returns the output file path.
func (b *ConcatLoopBuilder) GetOutputPath() string {
	return b.outputPath
}
