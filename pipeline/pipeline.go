// Package pipeline sequences the media preparation steps for one rendered
// quote video: fit the background video to the audio timeline, pad the voice
// track, loop and shape the background music, and mix the two into the final
// audio bed.
//
// Each invocation works inside its own scratch directory next to the final
// output; intermediates never land where a consumer could mistake them for
// results, and the scratch is removed on every exit path.
package pipeline

import (
	"fmt"
	"math"
	"os"

	"quotereel/command"
	"quotereel/command/mixing"
	"quotereel/command/music"
	"quotereel/command/voice"
	"quotereel/concat"
	"quotereel/ffprobe"
	"quotereel/reconcile"
)

// Default pipeline tuning. Music sits well under the voice, and the fade
// keeps looped tracks from ending on a hard cut.
const (
	DefaultVoiceVolume  = 1.0
	DefaultMusicVolume  = 0.15
	DefaultFadeDuration = 1.5
)

// Pipeline prepares and mixes media for one output video.
//
// Probe and run functions are injectable for the same reason as in the
// reconciler: the orchestration logic is testable without FFmpeg.
type Pipeline struct {
	reconciler   *reconcile.Reconciler
	voiceVolume  float64
	musicVolume  float64
	fadeDuration float64
	probe        reconcile.ProbeFunc
	run          reconcile.RunFunc
}

// NewPipeline creates a Pipeline with default tuning and real ffprobe/ffmpeg
// execution.
func NewPipeline() *Pipeline {
	return &Pipeline{
		reconciler:   reconcile.NewReconciler(),
		voiceVolume:  DefaultVoiceVolume,
		musicVolume:  DefaultMusicVolume,
		fadeDuration: DefaultFadeDuration,
		probe:        ffprobe.Duration,
		run:          func(cmd command.Command) error { return cmd.Run() },
	}
}

// SetVolumes overrides the voice and music gain applied during preparation.
func (p *Pipeline) SetVolumes(voiceVolume, musicVolume float64) *Pipeline {
	p.voiceVolume = voiceVolume
	p.musicVolume = musicVolume
	return p
}

// SetFadeDuration overrides the background fade-out length.
func (p *Pipeline) SetFadeDuration(seconds float64) *Pipeline {
	p.fadeDuration = seconds
	return p
}

// SetReconciler replaces the video reconciler.
func (p *Pipeline) SetReconciler(r *reconcile.Reconciler) *Pipeline {
	p.reconciler = r
	return p
}

// SetProbe replaces the duration probe for audio inputs.
func (p *Pipeline) SetProbe(probe reconcile.ProbeFunc) *Pipeline {
	p.probe = probe
	return p
}

// SetRun replaces the command runner.
func (p *Pipeline) SetRun(run reconcile.RunFunc) *Pipeline {
	p.run = run
	return p
}

// PrepareVideoForAudio fits videoPath to the audio timeline length.
//
// Returns the path to use downstream: the untouched source when it was
// already close enough, otherwise outPath.
func (p *Pipeline) PrepareVideoForAudio(videoPath string, audioDuration float64, outPath string) (string, error) {
	return p.reconciler.Reconcile(videoPath, audioDuration, outPath)
}

// PadVoice places the voice on the output timeline: silence for startDelay
// seconds, then the voice at its configured gain, then silence out to
// targetDuration.
func (p *Pipeline) PadVoice(voicePath string, startDelay, targetDuration float64, outPath string) error {
	builder := voice.NewPadBuilder(voicePath, outPath, startDelay, targetDuration).
		SetVolume(p.voiceVolume)
	if err := p.run(builder); err != nil {
		return &PadError{Voice: voicePath, Err: err}
	}
	return nil
}

// PrepareBackground produces a music bed of exactly targetDuration seconds:
// the source is looped when too short, set to the configured gain, and faded
// out at the end.
func (p *Pipeline) PrepareBackground(musicPath string, targetDuration float64, outPath string) error {
	work, err := newScratch(outPath)
	if err != nil {
		return &BackgroundError{Music: musicPath, Err: err}
	}
	defer work.release()

	prepared, err := p.prepareBackground(musicPath, targetDuration, work)
	if err != nil {
		return err
	}
	if err := os.Rename(prepared, outPath); err != nil {
		return &BackgroundError{Music: musicPath, Err: err}
	}
	return nil
}

// prepareBackground runs the looping and shaping steps inside an existing
// scratch directory and returns the path of the shaped track.
func (p *Pipeline) prepareBackground(musicPath string, targetDuration float64, work *scratch) (string, error) {
	musicDuration, err := p.probe(musicPath)
	if err != nil {
		return "", &BackgroundError{Music: musicPath, Err: err}
	}

	source := musicPath
	if musicDuration < targetDuration {
		loops := int(math.Ceil(targetDuration / musicDuration))
		looped := work.path("music_looped.mp3")

		looper := concat.NewLooper(musicPath, looped, loops, targetDuration)
		if _, err := looper.WritePlaylist(work.dir); err != nil {
			return "", &BackgroundError{Music: musicPath, Err: err}
		}
		if err := p.run(looper); err != nil {
			return "", &BackgroundError{Music: musicPath, Err: err}
		}
		source = looped
	}

	shaped := work.path("music_bed.mp3")
	builder := music.NewBackgroundBuilder(source, shaped, targetDuration, p.musicVolume, p.fadeDuration)
	if err := p.run(builder); err != nil {
		return "", &BackgroundError{Music: musicPath, Err: err}
	}
	return shaped, nil
}

// MixVoiceAndMusic builds the complete audio bed for one video: the voice is
// padded onto the timeline, the music is looped and shaped, and the two are
// mixed into outPath.
//
// Gain is applied exactly once per input, during preparation; the mix itself
// only sums the streams.
func (p *Pipeline) MixVoiceAndMusic(voicePath, musicPath string, startDelay, targetDuration float64, outPath string) error {
	if targetDuration <= 0 {
		return fmt.Errorf("target duration must be positive, got %f", targetDuration)
	}

	work, err := newScratch(outPath)
	if err != nil {
		return &MixError{Output: outPath, Err: err}
	}
	defer work.release()

	padded := work.path("voice_padded.mp3")
	if err := p.PadVoice(voicePath, startDelay, targetDuration, padded); err != nil {
		return err
	}

	bed, err := p.prepareBackground(musicPath, targetDuration, work)
	if err != nil {
		return err
	}

	mixed := work.path("mix.mp3")
	if err := p.run(mixing.NewMixBuilder(bed, padded, mixed, targetDuration)); err != nil {
		return &MixError{Output: outPath, Err: err}
	}

	if err := os.Rename(mixed, outPath); err != nil {
		return &MixError{Output: outPath, Err: err}
	}
	return nil
}
