// Package mixing builds the FFmpeg command that sums two prepared,
// equal-length audio streams into one output.
package mixing

import (
	"fmt"
	"os/exec"
	"strings"

	"quotereel/command"
	"quotereel/ffmpeg"
	"quotereel/internal/timeutil"
)

// MixBuilder sums the prepared music and voice streams via amix.
//
// Precondition: both inputs are already exactly targetDuration long and
// already carry their final gain from the preparation steps. The mixer
// applies no further volume scaling; doing so here as well would apply gain
// twice. Because the inputs are equal-length, amix's "match first input"
// duration policy is a no-op by construction, which keeps the result
// deterministic.
type MixBuilder struct {
	musicInput     string
	voiceInput     string
	outputPath     string
	targetDuration float64
}

// mixFilter sums the two already-gain-applied input streams.
const mixFilter = "[0:a][1:a]amix=inputs=2:duration=first:dropout_transition=0"

// NewMixBuilder creates a MixBuilder.
func NewMixBuilder(musicInput, voiceInput, outputPath string, targetDuration float64) *MixBuilder {
	return &MixBuilder{
		musicInput:     musicInput,
		voiceInput:     voiceInput,
		outputPath:     outputPath,
		targetDuration: targetDuration,
	}
}

// BuildArgs constructs the FFmpeg command arguments.
func (b *MixBuilder) BuildArgs() []string {
	return []string{
		"-i", b.musicInput,
		"-i", b.voiceInput,
		"-filter_complex", mixFilter,
		"-t", timeutil.FormatPoint(b.targetDuration),
		"-y", b.outputPath,
	}
}

// Run executes the FFmpeg command.
func (b *MixBuilder) Run() error {
	cmd := exec.Command("ffmpeg", b.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg mix failed: %w (output: %s)", err, ffmpeg.Summarize(string(output)))
	}
	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (b *MixBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(b.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (mixing).
func (b *MixBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeMixing
}

// GetInputPath returns the primary input path (music).
func (b *MixBuilder) GetInputPath() string {
	return b.musicInput
}

// GetOutputPath returns the output file path.
func (b *MixBuilder) GetOutputPath() string {
	return b.outputPath
}
