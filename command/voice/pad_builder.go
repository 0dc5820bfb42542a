// Package voice builds the FFmpeg command that shifts a voice track by a
// start delay and pads it with silence to an exact total duration.
package voice

import (
	"fmt"
	"os/exec"
	"strings"

	"quotereel/command"
	"quotereel/ffmpeg"
	"quotereel/internal/timeutil"
)

// PadBuilder constructs the padding command. A single filter chain delays
// the stream start uniformly on all channels (adelay), pads the tail with
// silence to the total duration (apad), and applies the voice gain. The
// hard cap (-t) makes the output exactly totalDuration long; if
// startDelay + voice duration exceeds it, the voice content is truncated at
// the cap. That is accepted behavior, not an error.
//
// Gain is applied here and nowhere else: the mixer treats its inputs as
// already carrying their final volume.
type PadBuilder struct {
	inputPath     string
	outputPath    string
	startDelay    float64
	totalDuration float64
	volume        float64
}

// NewPadBuilder creates a PadBuilder with unity gain.
func NewPadBuilder(inputPath, outputPath string, startDelay, totalDuration float64) *PadBuilder {
	return &PadBuilder{
		inputPath:     inputPath,
		outputPath:    outputPath,
		startDelay:    startDelay,
		totalDuration: totalDuration,
		volume:        1.0,
	}
}

// SetVolume sets the voice gain folded into the filter chain.
func (b *PadBuilder) SetVolume(volume float64) *PadBuilder {
	b.volume = volume
	return b
}

// BuildArgs constructs the FFmpeg command arguments.
func (b *PadBuilder) BuildArgs() []string {
	delayMs := timeutil.Milliseconds(b.startDelay)
	filter := fmt.Sprintf("adelay=%d|%d,apad=whole_dur=%s,volume=%s",
		delayMs, delayMs,
		timeutil.FormatPoint(b.totalDuration),
		timeutil.FormatPoint(b.volume))

	return []string{
		"-i", b.inputPath,
		"-af", filter,
		"-t", timeutil.FormatPoint(b.totalDuration),
		"-y", b.outputPath,
	}
}

// Run executes the FFmpeg command.
func (b *PadBuilder) Run() error {
	cmd := exec.Command("ffmpeg", b.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg voice pad failed: %w (output: %s)", err, ffmpeg.Summarize(string(output)))
	}
	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (b *PadBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(b.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (voice).
func (b *PadBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeVoice
}

// GetInputPath returns the input file path.
func (b *PadBuilder) GetInputPath() string {
	return b.inputPath
}

// GetOutputPath returns the output file path.
func (b *PadBuilder) GetOutputPath() string {
	return b.outputPath
}
