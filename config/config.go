package config

// Config holds all renderer configuration options
type Config struct {
	// Required content locations
	QuotesFile string `yaml:"quotes_file"`
	VideoDir   string `yaml:"video_dir"`
	AudioDir   string `yaml:"audio_dir"`
	OutputDir  string `yaml:"output_dir"`

	// Optional voice-over directory; when empty, outputs carry music only
	VoiceDir string `yaml:"voice_dir"`

	// Batch settings
	Count int   `yaml:"count"` // videos to render in this batch
	Seed  int64 `yaml:"seed"`  // 0 = derive from current time

	// Target length for music-only videos; voiced videos derive their
	// length from the voice track instead
	TargetDuration float64 `yaml:"target_duration"`

	// Render time history database (empty = don't record)
	StatsFile string `yaml:"stats_file"`

	// Audio pipeline settings
	Pipeline PipelineConfig `yaml:"pipeline"`

	// Video encoding settings
	Video VideoConfig `yaml:"video"`

	// Text and logo overlay settings
	Compose ComposeConfig `yaml:"compose"`

	// Behavioral flags
	Verbose bool `yaml:"verbose"` // Show detailed logs
	DryRun  bool `yaml:"dry_run"` // Show config and planned commands without rendering
}

// PipelineConfig holds audio preparation settings
type PipelineConfig struct {
	VoiceDelay   float64 `yaml:"voice_delay"`   // leading silence before the voice, seconds
	VoiceVolume  float64 `yaml:"voice_volume"`  // 0.0 - 1.0
	MusicVolume  float64 `yaml:"music_volume"`  // 0.0 - 1.0
	FadeDuration float64 `yaml:"fade_duration"` // music fade-out length, seconds
	Tolerance    float64 `yaml:"tolerance"`     // video length closeness window, seconds
}

// VideoConfig holds video encoding settings
type VideoConfig struct {
	Codec       string `yaml:"codec"`        // e.g., "libx264", "libx265"
	Preset      string `yaml:"preset"`       // e.g., "ultrafast", "veryfast", "medium"
	CRF         int    `yaml:"crf"`          // Constant Rate Factor (0-51, lower = better quality)
	FrameRate   int    `yaml:"frame_rate"`   // e.g., 30, 60
	PixelFormat string `yaml:"pixel_format"` // e.g., "yuv420p"
	FastStart   bool   `yaml:"fast_start"`   // move the moov atom up front for streaming
}

// ComposeConfig holds overlay settings for the final composition
type ComposeConfig struct {
	FontFile  string  `yaml:"font_file"`  // required when attributions are drawn
	FontSize  int     `yaml:"font_size"`
	FontColor string  `yaml:"font_color"`
	TextY     int     `yaml:"text_y"`     // vertical position of the attribution line
	StartTime float64 `yaml:"start_time"` // seconds before overlays appear
	LogoFile  string  `yaml:"logo_file"`  // empty = no logo overlay
	LogoY     int     `yaml:"logo_y"`     // vertical position of the logo
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user
		QuotesFile: "",
		VideoDir:   "",
		AudioDir:   "",
		OutputDir:  "",

		// Batch defaults
		Count:          1,
		Seed:           0, // derive from current time
		TargetDuration: 20.0,
		StatsFile:      "quotereel_stats.db",

		// Audio pipeline defaults: music sits well under the voice and
		// fades out instead of cutting
		Pipeline: PipelineConfig{
			VoiceDelay:   1.0,
			VoiceVolume:  1.0,
			MusicVolume:  0.15,
			FadeDuration: 1.5,
			Tolerance:    1.0,
		},

		// Video defaults (H.264: plays everywhere)
		Video: VideoConfig{
			Codec:       "libx264",
			Preset:      "veryfast",
			CRF:         18,
			FrameRate:   30,
			PixelFormat: "yuv420p",
			FastStart:   true,
		},

		// Overlay defaults for a 1080x1920 vertical frame
		Compose: ComposeConfig{
			FontFile:  "",
			FontSize:  42,
			FontColor: "white",
			TextY:     875,
			StartTime: 1.0,
			LogoFile:  "",
			LogoY:     0,
		},

		// Behavioral defaults
		Verbose: false,
		DryRun:  false,
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	copy.Pipeline = c.Pipeline
	copy.Video = c.Video
	copy.Compose = c.Compose
	return &copy
}
