package pipeline

import "fmt"

// PadError reports a failed voice padding step.
type PadError struct {
	Voice string
	Err   error
}

func (e *PadError) Error() string {
	return fmt.Sprintf("failed to pad voice track %s: %v", e.Voice, e.Err)
}

func (e *PadError) Unwrap() error { return e.Err }

// BackgroundError reports a failed background track preparation.
type BackgroundError struct {
	Music string
	Err   error
}

func (e *BackgroundError) Error() string {
	return fmt.Sprintf("failed to prepare background track %s: %v", e.Music, e.Err)
}

func (e *BackgroundError) Unwrap() error { return e.Err }

// MixError reports a failed final mix.
type MixError struct {
	Output string
	Err    error
}

func (e *MixError) Error() string {
	return fmt.Sprintf("failed to mix audio for %s: %v", e.Output, e.Err)
}

func (e *MixError) Unwrap() error { return e.Err }
