package video

import (
	"strings"
	"testing"

	"quotereel/command"
)

func TestLoopBuilder_BuildArgs(t *testing.T) {
	builder := NewLoopBuilder("/input/clip.mp4", "/out/fit.mp4", 2, 25.0)

	args := builder.BuildArgs()
	argsStr := strings.Join(args, " ")

	if !strings.Contains(argsStr, "-stream_loop 2") {
		t.Error("Expected -stream_loop 2 for two extra replays")
	}
	if !strings.Contains(argsStr, "-i /input/clip.mp4") {
		t.Error("Expected input path")
	}
	if !strings.Contains(argsStr, "-t 25.000") {
		t.Error("Expected duration cap at 25.000")
	}
	if !strings.Contains(argsStr, "-an") {
		t.Error("Expected source audio to be dropped")
	}
	if !strings.Contains(argsStr, "-c:v libx264") {
		t.Error("Expected canonical codec")
	}
	if !strings.Contains(argsStr, "-preset veryfast") {
		t.Error("Expected speed-oriented preset")
	}
	if !strings.Contains(argsStr, "-crf 18") {
		t.Error("Expected CRF 18")
	}
	if !strings.Contains(argsStr, "-pix_fmt yuv420p") {
		t.Error("Expected fixed pixel format")
	}
	if !strings.Contains(argsStr, "-r 30") {
		t.Error("Expected fixed frame rate")
	}
	if !strings.Contains(argsStr, "-movflags +faststart") {
		t.Error("Expected faststart container flag")
	}
	if args[len(args)-1] != "/out/fit.mp4" {
		t.Errorf("Expected output path last, got %q", args[len(args)-1])
	}
}

func TestConcatLoopBuilder_BuildArgs(t *testing.T) {
	builder := NewConcatLoopBuilder("/input/clip.mp4", "/out/fit.mp4", 25.0)

	args := builder.BuildArgs()
	argsStr := strings.Join(args, " ")

	if strings.Contains(argsStr, "-stream_loop") {
		t.Error("Fallback strategy must not use -stream_loop")
	}
	if !strings.Contains(argsStr, "split=2[v0][v1]") {
		t.Error("Expected two-way split in filter graph")
	}
	if !strings.Contains(argsStr, "concat=n=2:v=1:a=0") {
		t.Error("Expected video-only concat of the duplicated input")
	}
	if !strings.Contains(argsStr, "-map [cat]") {
		t.Error("Expected concat output to be mapped")
	}
	if !strings.Contains(argsStr, "-t 25.000") {
		t.Error("Expected duration cap at 25.000")
	}
	if !strings.Contains(argsStr, "-an") {
		t.Error("Expected source audio to be dropped")
	}
	if !strings.Contains(argsStr, "-movflags +faststart") {
		t.Error("Expected same canonical profile as the primary strategy")
	}
}

func TestTrimBuilder_BuildArgs(t *testing.T) {
	builder := NewTrimBuilder("/input/long.mp4", "/out/fit.mp4", 25.0)

	args := builder.BuildArgs()
	argsStr := strings.Join(args, " ")

	if strings.Contains(argsStr, "-stream_loop") || strings.Contains(argsStr, "concat") {
		t.Error("Trim must not loop")
	}
	if !strings.Contains(argsStr, "-t 25.000") {
		t.Error("Expected duration cap at 25.000")
	}
	if !strings.Contains(argsStr, "-an") {
		t.Error("Expected source audio to be dropped")
	}
	if !strings.Contains(argsStr, "-c:v libx264") {
		t.Error("Expected re-encode, not stream copy")
	}
	if strings.Contains(argsStr, "-c:v copy") || strings.Contains(argsStr, "-c copy") {
		t.Error("Copy-based trimming is unreliable across keyframe boundaries")
	}
}

func TestBuilders_CustomProfile(t *testing.T) {
	profile := Profile{
		Codec:       "libx265",
		Preset:      "fast",
		CRF:         22,
		FrameRate:   24,
		PixelFormat: "yuv420p",
		FastStart:   false,
	}

	argsStr := strings.Join(NewTrimBuilder("in.mp4", "out.mp4", 10).SetProfile(profile).BuildArgs(), " ")

	if !strings.Contains(argsStr, "-c:v libx265") {
		t.Error("Expected overridden codec")
	}
	if !strings.Contains(argsStr, "-r 24") {
		t.Error("Expected overridden frame rate")
	}
	if strings.Contains(argsStr, "faststart") {
		t.Error("Expected faststart to be disabled")
	}
}

func TestBuilders_Metadata(t *testing.T) {
	cmds := []command.Command{
		NewLoopBuilder("in.mp4", "out.mp4", 1, 10),
		NewConcatLoopBuilder("in.mp4", "out.mp4", 10),
		NewTrimBuilder("in.mp4", "out.mp4", 10),
	}

	for _, cmd := range cmds {
		if cmd.GetTaskType() != command.TaskTypeVideo {
			t.Errorf("Expected video task type, got %q", cmd.GetTaskType())
		}
		if cmd.GetInputPath() != "in.mp4" {
			t.Errorf("Expected input path 'in.mp4', got %q", cmd.GetInputPath())
		}
		if cmd.GetOutputPath() != "out.mp4" {
			t.Errorf("Expected output path 'out.mp4', got %q", cmd.GetOutputPath())
		}

		preview, err := cmd.DryRun()
		if err != nil {
			t.Fatalf("DryRun failed: %v", err)
		}
		if !strings.HasPrefix(preview, "ffmpeg ") {
			t.Errorf("Expected ffmpeg command preview, got %q", preview)
		}
	}
}
