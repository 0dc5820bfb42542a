package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"quotereel/command/compose"
	"quotereel/command/video"
	"quotereel/config"
	"quotereel/contentpack"
	"quotereel/ffprobe"
	"quotereel/internal/timeutil"
	"quotereel/pipeline"
	"quotereel/reconcile"
	"quotereel/stats"
	"syscall"
	"time"
)

func main() {
	// Step 1: Load configuration (CLI flags > config file > defaults)
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Handle dry-run mode
	if cfg.DryRun {
		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println("                      DRY RUN MODE")
		fmt.Println("═══════════════════════════════════════════════════════════")
		cfg.PrintConfig()
		fmt.Println("\n✓ Configuration is valid. No rendering will be performed.")
		return
	}

	// Step 3: Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Step 4: Register signal handlers (Ctrl+C, SIGTERM)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\n⚠️  Interrupt received, finishing current video...")
		cancel()
	}()

	// Step 5: Run the render batch
	if err := runBatch(ctx, cfg); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Println("\n⚠️  Batch cancelled by user")
			os.Exit(130) // Standard exit code for SIGINT
		}
		fmt.Fprintf(os.Stderr, "\n❌ Batch error: %v\n", err)
		os.Exit(1)
	}
}

// runBatch renders the configured number of quote videos sequentially
func runBatch(ctx context.Context, cfg *config.Config) error {
	startTime := time.Now()

	fmt.Println("╔════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                   QUOTEREEL - BATCH START                      ║")
	fmt.Println("╚════════════════════════════════════════════════════════════════╝")
	fmt.Printf("Quotes: %s\n", cfg.QuotesFile)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Printf("Count:  %d\n", cfg.Count)
	fmt.Println()

	// PHASE 1: Content Discovery
	fmt.Println("📚 Phase 1: Content Discovery")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	pack, err := contentpack.Load(cfg.QuotesFile, cfg.VideoDir, cfg.AudioDir)
	if err != nil {
		return fmt.Errorf("content discovery failed: %w", err)
	}

	var voices []string
	if cfg.VoiceDir != "" {
		voices, err = filepath.Glob(filepath.Join(cfg.VoiceDir, "*.mp3"))
		if err != nil || len(voices) == 0 {
			return fmt.Errorf("no voice tracks found in %s", cfg.VoiceDir)
		}
	}

	fmt.Printf("  Quotes:  %d\n", len(pack.Quotes))
	fmt.Printf("  Videos:  %d\n", len(pack.Videos))
	fmt.Printf("  Songs:   %d\n", len(pack.Songs))
	if len(voices) > 0 {
		fmt.Printf("  Voices:  %d\n", len(voices))
	}
	fmt.Println()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// PHASE 2: Batch Estimate
	var history *stats.Store
	if cfg.StatsFile != "" {
		history, err = stats.Open(cfg.StatsFile)
		if err != nil {
			// Losing history hurts estimates, not renders
			fmt.Fprintf(os.Stderr, "Warning: render history unavailable: %v\n", err)
		} else {
			defer history.Close()
		}
	}

	fmt.Println("⏱️  Phase 2: Batch Estimate")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	if history != nil {
		if avg, ok, err := history.Average(); err == nil && ok {
			fmt.Printf("  Average render:  %.1fs\n", avg)
			fmt.Printf("  Estimated batch: %s\n", timeutil.FormatSeconds(avg*float64(cfg.Count)))
		} else {
			fmt.Println("  No render history yet")
		}
	} else {
		fmt.Println("  Render history disabled")
	}
	fmt.Println()

	// PHASE 3: Rendering
	fmt.Println("🎬 Phase 3: Rendering")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	pl := pipeline.NewPipeline().
		SetVolumes(cfg.Pipeline.VoiceVolume, cfg.Pipeline.MusicVolume).
		SetFadeDuration(cfg.Pipeline.FadeDuration)
	pl.SetReconciler(newReconciler(cfg))

	assignments := pack.Assign(cfg.Count, cfg.Seed)
	rendered := 0
	failed := 0

	for i, assignment := range assignments {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("quote_%03d.mp4", i+1))
		var voicePath string
		if len(voices) > 0 {
			voicePath = voices[i%len(voices)]
		}

		itemStart := time.Now()
		fmt.Printf("  [%d/%d] %s\n", i+1, cfg.Count, truncate(assignment.Quote.Text, 50))
		if cfg.Verbose {
			describeVideo(assignment.Video.Path)
			fmt.Printf("        song:  %s\n", assignment.Song.Path)
			if voicePath != "" {
				fmt.Printf("        voice: %s\n", voicePath)
			}
		}

		if err := renderOne(cfg, pl, assignment, voicePath, outPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "        ✗ failed: %v\n", err)
			continue
		}

		elapsed := time.Since(itemStart).Seconds()
		rendered++
		fmt.Printf("        ✓ %s (%.1fs)\n", outPath, elapsed)

		if history != nil {
			if err := history.Record(elapsed); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record render time: %v\n", err)
			}
		}
	}
	fmt.Println()

	// PHASE 4: Final Report
	elapsed := time.Since(startTime)

	fmt.Println("═══════════════════════════════════════════════════════════")
	if failed == 0 {
		fmt.Println("                     ✅ SUCCESS!")
	} else {
		fmt.Println("                 ⚠️  FINISHED WITH ERRORS")
	}
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  Rendered:    %d/%d videos\n", rendered, cfg.Count)
	if failed > 0 {
		fmt.Printf("  Failed:      %d\n", failed)
	}
	fmt.Printf("  Output:      %s\n", cfg.OutputDir)
	fmt.Printf("  Total time:  %s\n", timeutil.FormatSeconds(elapsed.Seconds()))
	if rendered > 0 {
		fmt.Printf("  Per video:   %.2fs\n", elapsed.Seconds()/float64(rendered))
	}
	fmt.Println("═══════════════════════════════════════════════════════════")

	if rendered == 0 {
		return fmt.Errorf("no videos rendered")
	}
	return nil
}

// renderOne produces one finished quote video from its assigned media
func renderOne(cfg *config.Config, pl *pipeline.Pipeline, assignment contentpack.Assignment, voicePath, outPath string) error {
	// Intermediates live in a per-video working directory next to the output
	workDir, err := os.MkdirTemp(cfg.OutputDir, ".quotereel-work-*")
	if err != nil {
		return fmt.Errorf("failed to create working directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	// The timeline length comes from the voice track when there is one:
	// leading silence, then the voice, then the fade tail
	target := cfg.TargetDuration
	if voicePath != "" {
		voiceDuration, err := ffprobe.Duration(voicePath)
		if err != nil {
			return fmt.Errorf("failed to probe voice track: %w", err)
		}
		target = cfg.Pipeline.VoiceDelay + voiceDuration + cfg.Pipeline.FadeDuration
	}

	// Fit the background video to the timeline
	fitted, err := pl.PrepareVideoForAudio(assignment.Video.Path, target, filepath.Join(workDir, "fitted.mp4"))
	if err != nil {
		return fmt.Errorf("failed to fit video: %w", err)
	}

	// Build the audio bed
	audioPath := filepath.Join(workDir, "audio.mp3")
	if voicePath != "" {
		err = pl.MixVoiceAndMusic(voicePath, assignment.Song.Path, cfg.Pipeline.VoiceDelay, target, audioPath)
	} else {
		err = pl.PrepareBackground(assignment.Song.Path, target, audioPath)
	}
	if err != nil {
		return err
	}

	// Compose the final video: overlays plus the audio bed
	builder := compose.NewBuilder(fitted, audioPath, outPath, target).
		SetProfile(profileFromConfig(cfg)).
		SetTextY(cfg.Compose.TextY).
		SetStartTime(cfg.Compose.StartTime).
		SetTextStyle(cfg.Compose.FontSize, cfg.Compose.FontColor)
	if cfg.Compose.FontFile != "" {
		builder.SetText(attribution(assignment.Quote), cfg.Compose.FontFile)
	}
	if cfg.Compose.LogoFile != "" {
		builder.SetLogo(cfg.Compose.LogoFile, cfg.Compose.LogoY)
	}

	if err := builder.Run(); err != nil {
		return fmt.Errorf("failed to compose video: %w", err)
	}
	return nil
}

// newReconciler builds the video reconciler from config
func newReconciler(cfg *config.Config) *reconcile.Reconciler {
	return reconcile.NewReconciler().
		SetTolerance(cfg.Pipeline.Tolerance).
		SetProfile(profileFromConfig(cfg))
}

// profileFromConfig converts the video config section into an encode profile
func profileFromConfig(cfg *config.Config) video.Profile {
	return video.Profile{
		Codec:       cfg.Video.Codec,
		Preset:      cfg.Video.Preset,
		CRF:         cfg.Video.CRF,
		FrameRate:   cfg.Video.FrameRate,
		PixelFormat: cfg.Video.PixelFormat,
		FastStart:   cfg.Video.FastStart,
	}
}

// describeVideo prints what the probe sees in a background video
func describeVideo(path string) {
	report, err := ffprobe.Inspect(path)
	if err != nil {
		fmt.Printf("        video: %s (probe failed: %v)\n", path, err)
		return
	}
	fmt.Printf("        video: %s (%.1fs, %s, %d video / %d audio streams)\n",
		path, report.Duration, report.FormatName, report.VideoStreams, report.AudioStreams)
}

// attribution formats the overlay line for a quote
func attribution(q contentpack.Quote) string {
	if q.Attribution == "" {
		return ""
	}
	return "— " + q.Attribution
}

// truncate shortens a quote for log output
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
