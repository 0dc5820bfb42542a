// Package reconcile fits a source video to a target duration.
//
// The reconciler probes the source, then picks one of three branches: keep
// the source untouched when it is already close enough, loop it when it is
// too short, or trim it when it is too long. Looping tries an ordered list
// of strategies because -stream_loop misbehaves on some container/codec
// combinations; the split+concat filtergraph is the fallback.
package reconcile

import (
	"fmt"
	"math"
	"os"
	"strings"

	"quotereel/command"
	"quotereel/command/video"
	"quotereel/ffprobe"
)

// DefaultTolerance is the closeness window, in seconds, inside which the
// source is used as-is. Loop and trim both re-encode, so a source within a
// second of the target is not worth touching.
const DefaultTolerance = 1.0

// ProbeFunc returns the duration of a media file in seconds.
type ProbeFunc func(path string) (float64, error)

// RunFunc executes a prepared FFmpeg command.
type RunFunc func(cmd command.Command) error

// StrategyFailure records one loop strategy that did not produce a usable
// output.
type StrategyFailure struct {
	Strategy string
	Err      error
}

// Error reports that every loop strategy failed for a source.
type Error struct {
	Path     string
	Failures []StrategyFailure
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Strategy, f.Err))
	}
	return fmt.Sprintf("all loop strategies failed for %s: %s", e.Path, strings.Join(parts, "; "))
}

// Reconciler fits videos to target durations.
//
// The zero value is not usable; construct with NewReconciler. Probe and run
// functions are injectable so callers can test branch selection without
// FFmpeg installed.
type Reconciler struct {
	tolerance float64
	profile   video.Profile
	probe     ProbeFunc
	run       RunFunc
}

// NewReconciler creates a Reconciler with the default tolerance, the
// canonical output profile, and real ffprobe/ffmpeg execution.
func NewReconciler() *Reconciler {
	return &Reconciler{
		tolerance: DefaultTolerance,
		profile:   video.DefaultProfile(),
		probe:     ffprobe.Duration,
		run:       func(cmd command.Command) error { return cmd.Run() },
	}
}

// SetTolerance overrides the as-is closeness window.
func (r *Reconciler) SetTolerance(seconds float64) *Reconciler {
	r.tolerance = seconds
	return r
}

// SetProfile overrides the re-encode profile used by loop and trim.
func (r *Reconciler) SetProfile(p video.Profile) *Reconciler {
	r.profile = p
	return r
}

// SetProbe replaces the duration probe.
func (r *Reconciler) SetProbe(probe ProbeFunc) *Reconciler {
	r.probe = probe
	return r
}

// SetRun replaces the command runner.
func (r *Reconciler) SetRun(run RunFunc) *Reconciler {
	r.run = run
	return r
}

// ExtraLoops returns how many extra plays of a sourceDuration-long video are
// needed on top of the first play to cover targetDuration.
func ExtraLoops(sourceDuration, targetDuration float64) int {
	return int(math.Ceil(targetDuration/sourceDuration)) - 1
}

// Reconcile produces a video of targetDuration seconds at outPath from
// videoPath.
//
// When the source is already within tolerance of the target it is returned
// unchanged and outPath is not written; otherwise the returned path is
// outPath. The output is written to a temporary .part file first and renamed
// into place only on success, so a failed run never leaves a plausible but
// truncated file behind.
func (r *Reconciler) Reconcile(videoPath string, targetDuration float64, outPath string) (string, error) {
	if targetDuration <= 0 {
		return "", fmt.Errorf("target duration must be positive, got %f", targetDuration)
	}

	sourceDuration, err := r.probe(videoPath)
	if err != nil {
		return "", fmt.Errorf("failed to probe %s: %w", videoPath, err)
	}

	if math.Abs(sourceDuration-targetDuration) < r.tolerance {
		return videoPath, nil
	}

	if sourceDuration < targetDuration {
		if err := r.loop(videoPath, sourceDuration, targetDuration, outPath); err != nil {
			return "", err
		}
		return outPath, nil
	}

	if err := r.trim(videoPath, targetDuration, outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

// loop extends the source past the target, trying each strategy in order and
// keeping the first one that succeeds.
func (r *Reconciler) loop(videoPath string, sourceDuration, targetDuration float64, outPath string) error {
	extras := ExtraLoops(sourceDuration, targetDuration)
	partPath := outPath + ".part"

	strategies := []struct {
		name string
		cmd  command.Command
	}{
		{"stream_loop", video.NewLoopBuilder(videoPath, partPath, extras, targetDuration).SetProfile(r.profile)},
		{"split_concat", video.NewConcatLoopBuilder(videoPath, partPath, targetDuration).SetProfile(r.profile)},
	}

	var failures []StrategyFailure
	for _, s := range strategies {
		if err := r.run(s.cmd); err != nil {
			os.Remove(partPath)
			failures = append(failures, StrategyFailure{Strategy: s.name, Err: err})
			continue
		}
		if err := os.Rename(partPath, outPath); err != nil {
			return fmt.Errorf("failed to finalize looped video: %w", err)
		}
		return nil
	}

	return &Error{Path: videoPath, Failures: failures}
}

// trim cuts the source down to the target.
func (r *Reconciler) trim(videoPath string, targetDuration float64, outPath string) error {
	partPath := outPath + ".part"

	if err := r.run(video.NewTrimBuilder(videoPath, partPath, targetDuration).SetProfile(r.profile)); err != nil {
		os.Remove(partPath)
		return fmt.Errorf("failed to trim %s: %w", videoPath, err)
	}
	if err := os.Rename(partPath, outPath); err != nil {
		return fmt.Errorf("failed to finalize trimmed video: %w", err)
	}
	return nil
}
