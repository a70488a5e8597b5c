package audit

import "errors"

// --- Exported Error Variables ---
// These errors represent setup failures detected before or at pipeline entry.
// They abort the whole run; callers can check against them using errors.Is.
// Per-file failures are never surfaced as errors: they are recorded in the
// result stream and the run summary instead.

var (
	// ErrToolNotFound indicates the external analysis executable (ffmpeg or
	// ffprobe, depending on mode) could not be resolved on the PATH. Checked
	// once before any file is processed.
	ErrToolNotFound = errors.New("external tool not found")

	// ErrInvalidPath indicates the input path exists as neither a regular
	// file nor a directory.
	ErrInvalidPath = errors.New("path is not a file or directory")

	// ErrUnsupportedFile indicates a single-file input whose extension is not
	// in the audio allow-list. No tool is invoked for such a file.
	ErrUnsupportedFile = errors.New("unsupported file extension")

	// ErrNoAudioFiles indicates a directory scan produced zero allow-listed
	// files. Callers typically translate this into a "nothing to do" message
	// and a clean exit rather than a failure.
	ErrNoAudioFiles = errors.New("no audio files found")

	// ErrOptionsValidation indicates the provided Options struct failed the
	// validation checks performed at the beginning of a run.
	ErrOptionsValidation = errors.New("invalid audit options")
)
