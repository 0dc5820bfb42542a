package timeutil

import "testing"

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"Zero", 0, "00:00:00.00"},
		{"One second", 1, "00:00:01.00"},
		{"One minute", 60, "00:01:00.00"},
		{"One hour", 3600, "01:00:00.00"},
		{"Complex time", 3661, "01:01:01.00"},
		{"90 seconds", 90, "00:01:30.00"},
		{"Fractional seconds", 30.53, "00:00:30.53"},
		{"Sub-second", 0.5, "00:00:00.50"},
		{"Minute with fraction", 90.75, "00:01:30.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatSeconds(tt.seconds)
			if result != tt.expected {
				t.Errorf("FormatSeconds(%.3f) = %s; want %s", tt.seconds, result, tt.expected)
			}
		})
	}
}

func TestFormatPoint(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"Whole seconds", 25, "25.000"},
		{"Half second", 18.5, "18.500"},
		{"Zero", 0, "0.000"},
		{"Rounds sub-millisecond", 0.0567, "0.057"},
		{"Long target", 3600, "3600.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatPoint(tt.seconds)
			if result != tt.expected {
				t.Errorf("FormatPoint(%v) = %s; want %s", tt.seconds, result, tt.expected)
			}
		})
	}
}

func TestMilliseconds(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected int
	}{
		{"One second", 1, 1000},
		{"Zero", 0, 0},
		{"Fractional", 1.5, 1500},
		{"Rounds up", 0.9996, 1000},
		{"Rounds down", 0.4994, 499},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Milliseconds(tt.seconds)
			if result != tt.expected {
				t.Errorf("Milliseconds(%v) = %d; want %d", tt.seconds, result, tt.expected)
			}
		})
	}
}
