package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_AllLayersPriority(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "quotereel.yaml")

	// Create a temporary quotes file for validation
	quotesPath := filepath.Join(tmpDir, "quotes.json")
	if err := os.WriteFile(quotesPath, []byte("[]"), 0644); err != nil {
		t.Fatalf("Failed to create temp quotes file: %v", err)
	}

	// Config file should set count to 4 and music volume to 0.3
	configContent := `count: 4
target_duration: 25
pipeline:
  music_volume: 0.3
video:
  codec: libx264
  crf: 23
  preset: medium
  frame_rate: 30
  pixel_format: yuv420p
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create temp config: %v", err)
	}

	// Set CLI flags to override count and music volume
	os.Args = []string{
		"quotereel",
		"-config", configPath,
		"-quotes", quotesPath,
		"-videos", "media/videos",
		"-audio", "media/music",
		"-output", "out",
		"-count", "2",
		"-music-volume", "0.05",
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Flags beat the file
	if cfg.Count != 2 {
		t.Errorf("Expected flag count 2 to beat file count 4, got %d", cfg.Count)
	}
	if cfg.Pipeline.MusicVolume != 0.05 {
		t.Errorf("Expected flag music volume 0.05, got %v", cfg.Pipeline.MusicVolume)
	}

	// The file beats the defaults
	if cfg.TargetDuration != 25 {
		t.Errorf("Expected file target duration 25, got %v", cfg.TargetDuration)
	}
	if cfg.Video.CRF != 23 {
		t.Errorf("Expected file CRF 23, got %d", cfg.Video.CRF)
	}

	// Defaults fill everything else
	if cfg.Pipeline.FadeDuration != 1.5 {
		t.Errorf("Expected default fade 1.5, got %v", cfg.Pipeline.FadeDuration)
	}

	// A zero seed is replaced with a time-derived one
	if cfg.Seed == 0 {
		t.Error("Expected seed to be derived when left unset")
	}
}
