// Package timeutil provides time formatting utilities for FFmpeg commands.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
)

// FormatSeconds converts seconds to HH:MM:SS.MS format for FFmpeg.
//
// This format is used for FFmpeg time parameters like -ss (seek start)
// and -to (seek end). Supports fractional seconds for precise timing.
//
// Example:
//
//	FormatSeconds(0)      // "00:00:00.00"
//	FormatSeconds(90)     // "00:01:30.00"
//	FormatSeconds(3661)   // "01:01:01.00"
//	FormatSeconds(30.53)  // "00:00:30.53"
func FormatSeconds(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}

// FormatPoint formats a duration or filter time point as plain decimal
// seconds with millisecond precision, the form used for -t caps and for
// afade/apad filter parameters.
//
// Example:
//
//	FormatPoint(25)     // "25.000"
//	FormatPoint(18.5)   // "18.500"
//	FormatPoint(0.0567) // "0.057"
func FormatPoint(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

// Milliseconds converts seconds to whole milliseconds, rounding to the
// nearest integer. Used for filters that take millisecond arguments,
// such as adelay.
func Milliseconds(seconds float64) int {
	return int(math.Round(seconds * 1000))
}
