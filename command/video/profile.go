// Package video builds the FFmpeg commands that force a background video to
// a target duration: stream-loop replay, a split+concat fallback, and trim.
//
// Every output is re-encoded to a canonical profile rather than stream
// copied. Copy-based trimming and concatenation of MP4 is unreliable across
// keyframe boundaries; the re-encode cost buys correctness.
package video

import (
	"strconv"
)

// Profile is the canonical re-encode profile applied to every loop/trim
// output: a widely compatible codec at a fixed frame rate and pixel format,
// with a speed-oriented preset and a faststart container layout for
// downstream seekability.
type Profile struct {
	Codec       string // e.g. "libx264"
	Preset      string // e.g. "veryfast" (speed over maximal compression)
	CRF         int    // Constant Rate Factor, lower = better quality
	FrameRate   int    // Fixed output frame rate
	PixelFormat string // e.g. "yuv420p"
	FastStart   bool   // Write "+faststart" movflags
}

// DefaultProfile returns the canonical output profile.
func DefaultProfile() Profile {
	return Profile{
		Codec:       "libx264",
		Preset:      "veryfast",
		CRF:         18,
		FrameRate:   30,
		PixelFormat: "yuv420p",
		FastStart:   true,
	}
}

// Args returns the encoder arguments for this profile. The audio-stripping
// flag is not part of the profile; builders that must drop source audio add
// it themselves.
func (p Profile) Args() []string {
	args := []string{
		"-r", strconv.Itoa(p.FrameRate),
		"-pix_fmt", p.PixelFormat,
		"-c:v", p.Codec,
		"-preset", p.Preset,
		"-crf", strconv.Itoa(p.CRF),
	}
	if p.FastStart {
		args = append(args, "-movflags", "+faststart")
	}
	return args
}
