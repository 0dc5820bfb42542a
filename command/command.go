// Package command provides the core Command interface shared by the FFmpeg
// argument builders.
//
// All specialized builders (video loop/trim, voice padding, background music
// preparation, mixing, composition) implement the Command interface, so the
// pipeline can sequence and execute steps agnostically.
package command

// TaskType represents the type of transcoding task.
type TaskType string

const (
	TaskTypeVideo   TaskType = "video"   // Video loop/trim reconciliation
	TaskTypeVoice   TaskType = "voice"   // Voice delay and padding
	TaskTypeMusic   TaskType = "music"   // Background music looping and fade
	TaskTypeMixing  TaskType = "mixing"  // Audio stream summation
	TaskTypeCompose TaskType = "compose" // Text/logo overlay composition
)

// Command represents an FFmpeg command that can be built, executed, or
// previewed.
//
// The interface supports:
//   - Command building: Generate FFmpeg argument arrays
//   - Execution: Run the command and capture diagnostics
//   - Preview: Display the command without executing (dry run)
//   - Metadata: Task identification for logging and error reporting
//
// Example usage:
//
//	cmd := voice.NewPadBuilder("voice.mp3", "padded.mp3", 1.0, 20.0).
//		SetVolume(0.9)
//
//	// Preview the command
//	preview, _ := cmd.DryRun()
//
//	// Execute the command
//	err := cmd.Run()
type Command interface {
	// BuildArgs constructs and returns the FFmpeg command arguments as a
	// slice suitable for exec.Command("ffmpeg", args...).
	BuildArgs() []string

	// Run executes the FFmpeg command and blocks until it completes.
	// Returns an error carrying the captured tool output if the command
	// fails to start or exits nonzero.
	Run() error

	// DryRun returns the FFmpeg command as a string without executing it.
	// Useful for debugging, logging, or generating scripts.
	DryRun() (string, error)

	// GetTaskType returns the type of task (video, voice, music, mixing,
	// compose). Used for logging and error classification.
	GetTaskType() TaskType

	// GetInputPath returns the primary input file path for this command.
	GetInputPath() string

	// GetOutputPath returns the output file path for this command.
	GetOutputPath() string
}
