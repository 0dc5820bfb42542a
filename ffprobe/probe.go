// Package ffprobe queries media file metadata through the ffprobe
// command-line tool.
package ffprobe

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ProbeError reports a failed or unusable duration query.
//
// A probe failure is always a distinguishable error: the probers in this
// package never coerce a failed query into a zero duration, because a 0.0
// would be indistinguishable from a legitimately short file downstream.
type ProbeError struct {
	Path   string // File that was probed
	Output string // Captured ffprobe diagnostics, may be empty
	Err    error  // Underlying cause, may be nil
}

func (e *ProbeError) Error() string {
	msg := fmt.Sprintf("probe %s failed", e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Output != "" {
		msg += " (output: " + e.Output + ")"
	}
	return msg
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// Duration returns the container-level duration of a media file in seconds.
//
// ffprobe is asked for the duration field alone, in single-value csv form,
// and the answer is parsed as a float. A nonzero exit code, empty output,
// unparsable text, or a non-positive value all produce a *ProbeError.
//
// Example:
//
//	seconds, err := ffprobe.Duration("/packs/nature/clip01.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Duration(path string) (float64, error) {
	if path == "" {
		return 0, &ProbeError{Path: path, Err: fmt.Errorf("path cannot be empty")}
	}

	args := []string{
		"-v", "quiet",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		"-i", path,
	}

	cmd := exec.Command("ffprobe", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, &ProbeError{Path: path, Output: strings.TrimSpace(string(output)), Err: err}
	}

	return parseDuration(path, output)
}

// parseDuration validates the single-value text ffprobe printed.
func parseDuration(path string, output []byte) (float64, error) {
	text := strings.TrimSpace(string(output))
	if text == "" {
		return 0, &ProbeError{Path: path, Err: fmt.Errorf("ffprobe printed no duration")}
	}

	seconds, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ProbeError{Path: path, Output: text, Err: fmt.Errorf("unparsable duration: %w", err)}
	}

	if seconds <= 0 {
		return 0, &ProbeError{Path: path, Output: text, Err: fmt.Errorf("non-positive duration %v", seconds)}
	}

	return seconds, nil
}

// Report holds the stream-level metadata extracted by Inspect.
type Report struct {
	Duration     float64 // Container duration in seconds
	VideoStreams int     // Number of video streams
	AudioStreams int     // Number of audio streams
	FormatName   string  // Container format, e.g. "mov,mp4,m4a,3gp,3g2,mj2"
}

// Inspect runs a full JSON probe of a media file and reports its stream
// layout. The reconciler's outputs are required to carry zero audio
// streams; Inspect is how callers and tests verify that.
//
// Returns a *ProbeError if ffprobe fails or its JSON cannot be parsed.
func Inspect(path string) (*Report, error) {
	if path == "" {
		return nil, &ProbeError{Path: path, Err: fmt.Errorf("path cannot be empty")}
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		path,
	}

	cmd := exec.Command("ffprobe", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, &ProbeError{Path: path, Output: strings.TrimSpace(string(output)), Err: err}
	}

	return parseReport(path, output)
}

// parseReport extracts the Report fields from ffprobe's JSON output.
func parseReport(path string, output []byte) (*Report, error) {
	if !gjson.ValidBytes(output) {
		return nil, &ProbeError{Path: path, Err: fmt.Errorf("ffprobe printed invalid JSON")}
	}

	root := gjson.ParseBytes(output)

	report := &Report{
		Duration:   root.Get("format.duration").Float(),
		FormatName: root.Get("format.format_name").String(),
	}

	root.Get("streams").ForEach(func(_, stream gjson.Result) bool {
		switch stream.Get("codec_type").String() {
		case "video":
			report.VideoStreams++
		case "audio":
			report.AudioStreams++
		}
		return true
	})

	if report.VideoStreams == 0 && report.AudioStreams == 0 {
		return nil, &ProbeError{Path: path, Err: fmt.Errorf("no audio or video streams found")}
	}

	return report, nil
}
