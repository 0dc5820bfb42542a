// Package ffmpeg interprets captured ffmpeg output.
//
// ffmpeg prints its build banner, input analysis, and progress counters on
// stderr alongside the actual error, so a raw capture buries the one line
// that explains a failure. Summarize strips the noise down to what a log
// reader needs.
package ffmpeg

import (
	"regexp"
	"strings"
)

// maxSummaryLines bounds how much of the output tail survives into an error
// message.
const maxSummaryLines = 5

// noisePatterns match the banner, media analysis, and progress lines ffmpeg
// always prints regardless of outcome.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^ffmpeg version`),
	regexp.MustCompile(`^\s*built with`),
	regexp.MustCompile(`^\s*configuration:`),
	regexp.MustCompile(`^\s*lib(avutil|avcodec|avformat|avdevice|avfilter|swscale|swresample|postproc)`),
	regexp.MustCompile(`^(Input|Output) #`),
	regexp.MustCompile(`^Stream mapping:`),
	regexp.MustCompile(`^\s+(Stream|Metadata|Duration|major_brand|minor_version|compatible_brands|encoder|handler_name|creation_time)`),
	regexp.MustCompile(`^\s*(->|Press \[q\])`),
	regexp.MustCompile(`^(frame|size|video|audio)=`),
	regexp.MustCompile(`^\[(out|Parsed)`),
}

func isNoise(line string) bool {
	for _, p := range noisePatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// Summarize reduces captured ffmpeg output to the lines that explain a
// failure. When filtering leaves nothing, the last non-empty raw line is
// returned so the caller never loses the output entirely.
func Summarize(output string) string {
	lines := strings.Split(output, "\n")

	var kept []string
	var lastRaw string
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		lastRaw = strings.TrimSpace(trimmed)
		if isNoise(trimmed) {
			continue
		}
		kept = append(kept, strings.TrimSpace(trimmed))
	}

	if len(kept) == 0 {
		return lastRaw
	}
	if len(kept) > maxSummaryLines {
		kept = kept[len(kept)-maxSummaryLines:]
	}
	return strings.Join(kept, "; ")
}
