package compose

import (
	"strings"
	"testing"

	"quotereel/command"
)

func TestBuilder_BuildArgs_NoLogo(t *testing.T) {
	builder := NewBuilder("/tmp/fit.mp4", "/tmp/mix.mp3", "/out/final.mp4", 20.0).
		SetText("Marcus Aurelius", "/fonts/serif.ttf")

	args := builder.BuildArgs()
	argsStr := strings.Join(args, " ")

	if !strings.Contains(argsStr, "drawtext=fontfile='/fonts/serif.ttf'") {
		t.Error("Expected drawtext with font file")
	}
	if !strings.Contains(argsStr, "text='Marcus Aurelius'") {
		t.Error("Expected attribution text")
	}
	if !strings.Contains(argsStr, "enable='between(t,1.000,20.000)'") {
		t.Error("Expected overlay enable window from start time to duration")
	}
	if !strings.Contains(argsStr, "-map [v] -map 1:a:0") {
		t.Error("Expected explicit mapping of one video and one audio stream")
	}
	if !strings.Contains(argsStr, "-t 20.000") {
		t.Error("Expected duration cap")
	}
	if strings.Contains(argsStr, "overlay=") {
		t.Error("No logo configured, expected no overlay filter")
	}
	if !strings.Contains(argsStr, "-c:a aac") {
		t.Error("Expected audio encode for the mp4 container")
	}
}

func TestBuilder_BuildArgs_WithLogo(t *testing.T) {
	builder := NewBuilder("fit.mp4", "mix.mp3", "final.mp4", 15.0).
		SetText("Seneca", "/fonts/serif.ttf").
		SetLogo("/brand/logo.png", 0)

	argsStr := strings.Join(builder.BuildArgs(), " ")

	if !strings.Contains(argsStr, "-loop 1 -i /brand/logo.png") {
		t.Error("Expected looped logo image input")
	}
	if !strings.Contains(argsStr, "[0:v][2:v]overlay=(W-w)/2:0[v1]") {
		t.Error("Expected centered logo overlay before the text")
	}
	if !strings.Contains(argsStr, "[v1]drawtext=") {
		t.Error("Expected drawtext chained after the overlay")
	}
}

func TestBuilder_BuildArgs_NoOverlays(t *testing.T) {
	builder := NewBuilder("fit.mp4", "mix.mp3", "final.mp4", 15.0)

	argsStr := strings.Join(builder.BuildArgs(), " ")

	if !strings.Contains(argsStr, "[0:v]null[v]") {
		t.Errorf("Expected passthrough filter with no overlays, got %q", argsStr)
	}
	if strings.Contains(argsStr, "drawtext") {
		t.Errorf("No text configured, expected no drawtext, got %q", argsStr)
	}
	if !strings.Contains(argsStr, "-map [v] -map 1:a:0") {
		t.Error("Expected the same stream mapping as the overlay variants")
	}
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "Epictetus", "Epictetus"},
		{"colon", "John 3:16", `John 3\:16`},
		{"apostrophe", "it's", `it\\'s`},
		{"backslash", `a\b`, `a\\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeText(tt.in); got != tt.expected {
				t.Errorf("escapeText(%q) = %q; want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestBuilder_Metadata(t *testing.T) {
	builder := NewBuilder("fit.mp4", "mix.mp3", "final.mp4", 15.0)

	if builder.GetTaskType() != command.TaskTypeCompose {
		t.Errorf("Expected compose task type, got %q", builder.GetTaskType())
	}
	if builder.GetInputPath() != "fit.mp4" {
		t.Errorf("Unexpected input path %q", builder.GetInputPath())
	}
	if builder.GetOutputPath() != "final.mp4" {
		t.Errorf("Unexpected output path %q", builder.GetOutputPath())
	}
}
