package config

import (
	"flag"
	"fmt"
	"os"
)

// MergeFromFlags parses command-line flags and overrides config values
func (c *Config) MergeFromFlags() error {
	// Define flags
	fs := flag.NewFlagSet("quotereel", flag.ContinueOnError)
	fs.Usage = printUsage

	// Content locations
	quotes := fs.String("quotes", "", "Quotes JSON file (required)")
	videos := fs.String("videos", "", "Background video directory (required)")
	audio := fs.String("audio", "", "Background music directory (required)")
	voices := fs.String("voices", "", "Voice-over directory (optional)")
	output := fs.String("output", "", "Output directory (required)")

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	// Batch settings
	count := fs.Int("count", -1, "Number of videos to render (default: from config)")
	seed := fs.Int64("seed", 0, "Batch seed for reproducible media assignment (0 = from time)")
	duration := fs.Float64("duration", -1, "Target duration in seconds for music-only videos (default: from config)")
	stats := fs.String("stats", "", "Render time database path (default: from config)")

	// Audio pipeline settings
	voiceDelay := fs.Float64("voice-delay", -1, "Leading silence before the voice in seconds (default: from config)")
	voiceVolume := fs.Float64("voice-volume", -1, "Voice gain 0.0-1.0 (default: from config)")
	musicVolume := fs.Float64("music-volume", -1, "Music gain 0.0-1.0 (default: from config)")
	fade := fs.Float64("fade", -1, "Music fade-out length in seconds (default: from config)")
	tolerance := fs.Float64("tolerance", -1, "Video length closeness window in seconds (default: from config)")

	// Video settings
	videoCodec := fs.String("video-codec", "", "Video codec (default: from config)")
	videoPreset := fs.String("video-preset", "", "Video preset: ultrafast, veryfast, medium, slow (default: from config)")
	videoCRF := fs.Int("video-crf", -1, "Video CRF (0-51, lower = better quality) (default: from config)")
	videoFrameRate := fs.Int("video-frame-rate", -1, "Video frame rate (default: from config)")

	// Overlay settings
	font := fs.String("font", "", "Font file for the attribution overlay (default: from config)")
	fontSize := fs.Int("font-size", -1, "Attribution font size (default: from config)")
	fontColor := fs.String("font-color", "", "Attribution font color (default: from config)")
	logo := fs.String("logo", "", "Logo image for the overlay (default: from config)")

	// Behavioral flags
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	dryRun := fs.Bool("dry-run", false, "Show configuration and planned work without rendering")

	// Parse flags
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	// Override with flag values (only if explicitly set)
	if *quotes != "" {
		c.QuotesFile = *quotes
	}
	if *videos != "" {
		c.VideoDir = *videos
	}
	if *audio != "" {
		c.AudioDir = *audio
	}
	if *voices != "" {
		c.VoiceDir = *voices
	}
	if *output != "" {
		c.OutputDir = *output
	}

	// Batch settings (sentinels mean not set)
	if *count > 0 {
		c.Count = *count
	}
	if *seed != 0 {
		c.Seed = *seed
	}
	if *duration > 0 {
		c.TargetDuration = *duration
	}
	if *stats != "" {
		c.StatsFile = *stats
	}

	// Audio pipeline settings
	if *voiceDelay >= 0 {
		c.Pipeline.VoiceDelay = *voiceDelay
	}
	if *voiceVolume >= 0 {
		c.Pipeline.VoiceVolume = *voiceVolume
	}
	if *musicVolume >= 0 {
		c.Pipeline.MusicVolume = *musicVolume
	}
	if *fade >= 0 {
		c.Pipeline.FadeDuration = *fade
	}
	if *tolerance >= 0 {
		c.Pipeline.Tolerance = *tolerance
	}

	// Video settings
	if *videoCodec != "" {
		c.Video.Codec = *videoCodec
	}
	if *videoPreset != "" {
		c.Video.Preset = *videoPreset
	}
	if *videoCRF >= 0 {
		c.Video.CRF = *videoCRF
	}
	if *videoFrameRate > 0 {
		c.Video.FrameRate = *videoFrameRate
	}

	// Overlay settings
	if *font != "" {
		c.Compose.FontFile = *font
	}
	if *fontSize > 0 {
		c.Compose.FontSize = *fontSize
	}
	if *fontColor != "" {
		c.Compose.FontColor = *fontColor
	}
	if *logo != "" {
		c.Compose.LogoFile = *logo
	}

	// Behavioral flags
	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}

	return nil
}

// printUsage prints help text
func printUsage() {
	fmt.Fprintf(os.Stderr, `quotereel - Quote video rendering from stock media

USAGE:
  quotereel -quotes FILE -videos DIR -audio DIR -output DIR [OPTIONS]

REQUIRED FLAGS:
  -quotes string
        Quotes JSON file: array of {"text", "author"} objects (required)
  -videos string
        Background video directory holding .mp4 files (required)
  -audio string
        Background music directory holding .mp3 files (required)
  -output string
        Output directory for rendered videos (required)

CONFIGURATION:
  -config string
        Path to config file (default: search ./quotereel.yaml, ~/.quotereel/config.yaml, /etc/quotereel/config.yaml)

BATCH SETTINGS:
  -count int
        Number of videos to render (default: 1)
  -seed int
        Batch seed for reproducible media assignment (0 = from time)
  -duration float
        Target duration in seconds for music-only videos (default: 20)
  -voices string
        Voice-over directory; voiced videos derive their length from the voice track
  -stats string
        Render time database path (default: quotereel_stats.db)

AUDIO PIPELINE:
  -voice-delay float
        Leading silence before the voice in seconds (default: 1.0)
  -voice-volume float
        Voice gain, 0.0-1.0 (default: 1.0)
  -music-volume float
        Music gain, 0.0-1.0 (default: 0.15)
  -fade float
        Music fade-out length in seconds (default: 1.5)
  -tolerance float
        Video length closeness window in seconds (default: 1.0)

VIDEO SETTINGS:
  -video-codec string
        Video codec (default: libx264)
  -video-preset string
        Video preset: ultrafast, veryfast, medium, slow (default: veryfast)
  -video-crf int
        Video CRF: 0-51, lower = better quality (default: 18)
  -video-frame-rate int
        Video frame rate (default: 30)

OVERLAY SETTINGS:
  -font string
        Font file for the attribution overlay
  -font-size int
        Attribution font size (default: 42)
  -font-color string
        Attribution font color (default: white)
  -logo string
        Logo image drawn centered near the top of the frame

BEHAVIORAL FLAGS:
  --verbose
        Enable verbose logging
  --dry-run
        Show configuration and planned work without rendering

EXAMPLES:
  # Render one video with defaults
  quotereel -quotes quotes.json -videos media/videos -audio media/music -output out

  # Render a reproducible batch of ten voiced videos
  quotereel -quotes quotes.json -videos media/videos -audio media/music \
    -voices media/voices -output out -count 10 -seed 42

  # Quieter music, longer fade
  quotereel -quotes quotes.json -videos media/videos -audio media/music \
    -output out -music-volume 0.1 -fade 3

  # Use custom config file
  quotereel -config custom.yaml -output out

CONFIGURATION FILES:
  Config files are searched in order:
    1. ./quotereel.yaml
    2. ~/.quotereel/config.yaml
    3. /etc/quotereel/config.yaml

  Priority: CLI flags > Config file > Defaults

`)
}

// PrintConfig prints the effective configuration
func (c *Config) PrintConfig() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                 Effective Configuration                  ")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("Quotes File:    %s\n", c.QuotesFile)
	fmt.Printf("Video Dir:      %s\n", c.VideoDir)
	fmt.Printf("Audio Dir:      %s\n", c.AudioDir)
	if c.VoiceDir != "" {
		fmt.Printf("Voice Dir:      %s\n", c.VoiceDir)
	}
	fmt.Printf("Output Dir:     %s\n", c.OutputDir)
	fmt.Printf("Count:          %d\n", c.Count)
	fmt.Printf("Seed:           %d\n", c.Seed)
	fmt.Printf("Duration:       %.1f seconds\n", c.TargetDuration)
	if c.StatsFile != "" {
		fmt.Printf("Stats File:     %s\n", c.StatsFile)
	}

	fmt.Println("\nAudio Pipeline:")
	fmt.Printf("  Voice Delay:  %.1f seconds\n", c.Pipeline.VoiceDelay)
	fmt.Printf("  Voice Volume: %.2f\n", c.Pipeline.VoiceVolume)
	fmt.Printf("  Music Volume: %.2f\n", c.Pipeline.MusicVolume)
	fmt.Printf("  Fade:         %.1f seconds\n", c.Pipeline.FadeDuration)
	fmt.Printf("  Tolerance:    %.1f seconds\n", c.Pipeline.Tolerance)

	fmt.Println("\nVideo Settings:")
	fmt.Printf("  Codec:        %s\n", c.Video.Codec)
	fmt.Printf("  Preset:       %s\n", c.Video.Preset)
	fmt.Printf("  CRF:          %d\n", c.Video.CRF)
	fmt.Printf("  Frame Rate:   %d\n", c.Video.FrameRate)
	fmt.Printf("  Pixel Format: %s\n", c.Video.PixelFormat)

	fmt.Println("\nOverlay Settings:")
	if c.Compose.FontFile != "" {
		fmt.Printf("  Font:         %s (size %d, %s)\n", c.Compose.FontFile, c.Compose.FontSize, c.Compose.FontColor)
	} else {
		fmt.Println("  Font:         (none, attributions skipped)")
	}
	if c.Compose.LogoFile != "" {
		fmt.Printf("  Logo:         %s\n", c.Compose.LogoFile)
	}

	fmt.Println("\nBehavioral Flags:")
	fmt.Printf("  Verbose:      %v\n", c.Verbose)
	fmt.Printf("  Dry Run:      %v\n", c.DryRun)
	fmt.Println("═══════════════════════════════════════════════════════════")
}
