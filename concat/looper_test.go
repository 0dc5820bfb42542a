package concat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLooper_WritePlaylist(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "song.mp3")

	looper := NewLooper(source, filepath.Join(dir, "looped.mp3"), 3, 20.0)
	listPath, err := looper.WritePlaylist(dir)
	if err != nil {
		t.Fatalf("WritePlaylist failed: %v", err)
	}

	data, err := os.ReadFile(listPath)
	if err != nil {
		t.Fatalf("Failed to read playlist: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 playlist lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "file '") || !strings.HasSuffix(line, "'") {
			t.Errorf("Line %d not in concat demuxer form: %q", i, line)
		}
		if !strings.Contains(line, "song.mp3") {
			t.Errorf("Line %d missing source path: %q", i, line)
		}
		if line != lines[0] {
			t.Errorf("All lines must repeat the same source, line %d differs: %q", i, line)
		}
	}
}

func TestLooper_WritePlaylist_NoRepeats(t *testing.T) {
	looper := NewLooper("song.mp3", "looped.mp3", 0, 20.0)

	_, err := looper.WritePlaylist(t.TempDir())
	if err == nil {
		t.Fatal("Expected error for zero repeats")
	}
	if !strings.Contains(err.Error(), "at least one repeat") {
		t.Errorf("Expected repeat-count error, got: %v", err)
	}
}

func TestEscapePath(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "/music/song.mp3", "/music/song.mp3"},
		{"backslashes normalized", `C:\music\song.mp3`, "C:/music/song.mp3"},
		{"single quote escaped", "/music/it's.mp3", `/music/it'\''s.mp3`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapePath(tt.in); got != tt.expected {
				t.Errorf("escapePath(%q) = %q; want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestLooper_BuildArgs(t *testing.T) {
	dir := t.TempDir()
	looper := NewLooper("song.mp3", "/out/looped.mp3", 2, 20.0)
	if _, err := looper.WritePlaylist(dir); err != nil {
		t.Fatalf("WritePlaylist failed: %v", err)
	}

	argsStr := strings.Join(looper.BuildArgs(), " ")

	if !strings.Contains(argsStr, "-f concat -safe 0 -i "+filepath.Join(dir, "music_playlist.txt")) {
		t.Errorf("Expected concat demuxer reading the playlist, got %q", argsStr)
	}
	if !strings.Contains(argsStr, "-c copy") {
		t.Error("Expected lossless stream copy")
	}
	if !strings.Contains(argsStr, "-t 20.000") {
		t.Error("Expected cap at target duration")
	}
}

func TestLooper_RunRequiresPlaylist(t *testing.T) {
	looper := NewLooper("song.mp3", "looped.mp3", 2, 20.0)

	if err := looper.Run(); err == nil || !strings.Contains(err.Error(), "playlist not written") {
		t.Errorf("Expected playlist-not-written error, got: %v", err)
	}
	if _, err := looper.DryRun(); err == nil {
		t.Error("Expected DryRun to fail before WritePlaylist")
	}
}
