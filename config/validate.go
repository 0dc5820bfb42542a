package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Required fields
	if c.QuotesFile == "" {
		errors = append(errors, "quotes file is required")
	} else {
		if _, err := os.Stat(c.QuotesFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("quotes file does not exist: %s", c.QuotesFile))
		}
	}

	if c.VideoDir == "" {
		errors = append(errors, "video directory is required")
	}
	if c.AudioDir == "" {
		errors = append(errors, "audio directory is required")
	}
	if c.OutputDir == "" {
		errors = append(errors, "output directory is required")
	}

	// Batch settings
	if c.Count <= 0 {
		errors = append(errors, "count must be positive")
	}
	if c.TargetDuration <= 0 {
		errors = append(errors, "target duration must be positive")
	}

	// Validate pipeline config
	if err := c.Pipeline.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("pipeline config: %v", err))
	}

	// Validate video config
	if err := c.Video.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("video config: %v", err))
	}

	// Validate compose config
	if err := c.Compose.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("compose config: %v", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Validate checks if pipeline configuration is valid
func (pc *PipelineConfig) Validate() error {
	var errors []string

	if pc.VoiceDelay < 0 {
		errors = append(errors, "voice delay cannot be negative")
	}

	if pc.VoiceVolume < 0 || pc.VoiceVolume > 1 {
		errors = append(errors, "voice volume must be between 0.0 and 1.0")
	}

	if pc.MusicVolume < 0 || pc.MusicVolume > 1 {
		errors = append(errors, "music volume must be between 0.0 and 1.0")
	}

	if pc.FadeDuration < 0 {
		errors = append(errors, "fade duration cannot be negative")
	}

	if pc.Tolerance <= 0 {
		errors = append(errors, "tolerance must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}

// Validate checks if video configuration is valid
func (vc *VideoConfig) Validate() error {
	var errors []string

	if vc.Codec == "" {
		errors = append(errors, "codec is required")
	}

	if vc.CRF < 0 || vc.CRF > 51 {
		errors = append(errors, "CRF must be between 0 and 51")
	}

	if vc.Preset == "" {
		errors = append(errors, "preset is required")
	}

	if vc.FrameRate <= 0 {
		errors = append(errors, "frame rate must be positive")
	}

	if vc.PixelFormat == "" {
		errors = append(errors, "pixel format is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}

// Validate checks if compose configuration is valid
func (cc *ComposeConfig) Validate() error {
	var errors []string

	if cc.FontSize <= 0 {
		errors = append(errors, "font size must be positive")
	}

	if cc.FontColor == "" {
		errors = append(errors, "font color is required")
	}

	if cc.TextY < 0 {
		errors = append(errors, "text position cannot be negative")
	}

	if cc.StartTime < 0 {
		errors = append(errors, "overlay start time cannot be negative")
	}

	if cc.FontFile != "" {
		if _, err := os.Stat(cc.FontFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("font file does not exist: %s", cc.FontFile))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}
