// Package compose builds the FFmpeg command that overlays attribution text
// and an optional logo onto a prepared video and muxes in the mixed audio
// track.
//
// The builder expects the video input to come from the reconciler and the
// audio input from the mixer: streams are mapped explicitly, so exactly one
// video and one audio stream reach the output even if a source carries
// extras.
package compose

import (
	"fmt"
	"os/exec"
	"strings"

	"quotereel/command"
	"quotereel/ffmpeg"
	"quotereel/command/video"
	"quotereel/internal/timeutil"
)

// Builder constructs the composition command.
type Builder struct {
	videoInput string
	audioInput string
	outputPath string
	duration   float64

	text      string
	fontFile  string
	fontSize  int
	fontColor string
	textY     int
	startTime float64

	logoPath string
	logoY    int

	profile video.Profile
}

// NewBuilder creates a composition Builder with the canonical video profile
// and the layout defaults of the quote renderer.
func NewBuilder(videoInput, audioInput, outputPath string, duration float64) *Builder {
	return &Builder{
		videoInput: videoInput,
		audioInput: audioInput,
		outputPath: outputPath,
		duration:   duration,
		fontSize:   42,
		fontColor:  "white",
		textY:      875,
		startTime:  1.0,
		profile:    video.DefaultProfile(),
	}
}

// SetText sets the attribution text and its font file.
func (b *Builder) SetText(text, fontFile string) *Builder {
	b.text = text
	b.fontFile = fontFile
	return b
}

// SetTextStyle overrides font size and color.
func (b *Builder) SetTextStyle(size int, color string) *Builder {
	b.fontSize = size
	b.fontColor = color
	return b
}

// SetTextY sets the vertical position of the attribution line.
func (b *Builder) SetTextY(y int) *Builder {
	b.textY = y
	return b
}

// SetStartTime sets when the overlays become visible.
func (b *Builder) SetStartTime(seconds float64) *Builder {
	b.startTime = seconds
	return b
}

// SetLogo enables the centered logo overlay at the given vertical position.
func (b *Builder) SetLogo(path string, y int) *Builder {
	b.logoPath = path
	b.logoY = y
	return b
}

// SetProfile overrides the canonical output profile.
func (b *Builder) SetProfile(p video.Profile) *Builder {
	b.profile = p
	return b
}

// escapeText escapes the characters drawtext treats specially inside a
// quoted text value.
func escapeText(text string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`:`, `\:`,
		`'`, `\\'`,
	)
	return r.Replace(text)
}

// enableWindow returns the drawtext/overlay enable expression.
func (b *Builder) enableWindow() string {
	return fmt.Sprintf("between(t,%s,%s)",
		timeutil.FormatPoint(b.startTime), timeutil.FormatPoint(b.duration))
}

// filterGraph builds the overlay chain: optional logo first, then the
// attribution line. With neither configured the video passes through, which
// keeps the stream mapping identical across all variants.
func (b *Builder) filterGraph() string {
	drawtext := fmt.Sprintf(
		"drawtext=fontfile='%s':text='%s':x=(w-text_w)/2:y=%d:fontsize=%d:fontcolor=%s:enable='%s'",
		b.fontFile, escapeText(b.text), b.textY, b.fontSize, b.fontColor, b.enableWindow())

	switch {
	case b.logoPath == "" && b.text == "":
		return "[0:v]null[v]"
	case b.logoPath == "":
		return "[0:v]" + drawtext + "[v]"
	case b.text == "":
		return fmt.Sprintf("[0:v][2:v]overlay=(W-w)/2:%d[v]", b.logoY)
	default:
		return fmt.Sprintf("[0:v][2:v]overlay=(W-w)/2:%d[v1];[v1]%s[v]", b.logoY, drawtext)
	}
}

// BuildArgs constructs the FFmpeg command arguments.
func (b *Builder) BuildArgs() []string {
	args := []string{
		"-i", b.videoInput,
		"-i", b.audioInput,
	}
	if b.logoPath != "" {
		args = append(args, "-loop", "1", "-i", b.logoPath)
	}

	args = append(args,
		"-filter_complex", b.filterGraph(),
		"-map", "[v]",
		"-map", "1:a:0",
		"-t", timeutil.FormatPoint(b.duration),
	)
	args = append(args, b.profile.Args()...)
	args = append(args, "-c:a", "aac", "-b:a", "192k", "-y", b.outputPath)
	return args
}

// Run executes the FFmpeg command.
func (b *Builder) Run() error {
	cmd := exec.Command("ffmpeg", b.BuildArgs()...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg compose failed: %w (output: %s)", err, ffmpeg.Summarize(string(output)))
	}
	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (b *Builder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(b.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (compose).
func (b *Builder) GetTaskType() command.TaskType {
	return command.TaskTypeCompose
}

// GetInputPath returns the primary input path (video).
func (b *Builder) GetInputPath() string {
	return b.videoInput
}

// GetOutputPath returns the output file path.
func (b *Builder) GetOutputPath() string {
	return b.outputPath
}
