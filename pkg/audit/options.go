package audit

import (
	"context"
	"log/slog"
)

// ProcessOutcome is the raw result of one external-tool invocation: the exit
// code and the captured output streams, trimmed of trailing whitespace.
// A non-zero exit code is domain signal, not a fault; spawn-level failures
// are reported as errors by the ToolRunner instead.
type ProcessOutcome struct {
	ExitCode int    `json:"exitCode"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// ToolRunner wraps the external analysis executable with a fixed argument
// template per mode. Implementations must treat a non-zero exit from the tool
// as a successful invocation (returned in the ProcessOutcome) and reserve the
// error return for spawn-level faults: executable missing mid-run, permission
// denied, OS-level failures.
type ToolRunner interface {
	// Resolve verifies the executable backing the given mode is resolvable on
	// the execution path. Called once per run, before any file is processed.
	Resolve(mode ToolMode) error
	// Invoke runs the tool against a single file and captures its output.
	Invoke(ctx context.Context, mode ToolMode, filePath string) (ProcessOutcome, error)
}

// Hooks defines callbacks for the ordered result stream produced by a run.
// The engine is strictly sequential, so implementations are never called
// concurrently, but they must not assume an interactive destination.
type Hooks interface {
	// OnFilesEnumerated fires once after enumeration, before any tool call.
	OnFilesEnumerated(count int) error
	// OnIntegrityResult fires once per file during an integrity run, in
	// enumeration order.
	OnIntegrityResult(res IntegrityResult) error
	// OnAnalysisResult fires once per file during an analysis run, in
	// enumeration order.
	OnAnalysisResult(res AnalysisResult) error
	// OnRunComplete fires once with the final report before the run returns.
	OnRunComplete(report Report) error
}

// NoOpHooks provides a default, do-nothing implementation of the Hooks interface.
type NoOpHooks struct{}

// OnFilesEnumerated implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnFilesEnumerated(count int) error { return nil }

// OnIntegrityResult implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnIntegrityResult(res IntegrityResult) error { return nil }

// OnAnalysisResult implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnAnalysisResult(res AnalysisResult) error { return nil }

// OnRunComplete implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnRunComplete(report Report) error { return nil }

// Options holds all configuration for a single audit run.
type Options struct {
	// InputPath is the file or directory to process. Required.
	InputPath string `mapstructure:"inputPath"`

	// Extensions overrides the audio allow-list. Empty means AudioExtensions.
	// Entries must be lower-cased and include the leading dot.
	Extensions []string `mapstructure:"-"`

	// --- Injected Dependencies ---

	// EventHooks receives the ordered result stream. Required; use NoOpHooks
	// if no sink is needed.
	EventHooks Hooks `mapstructure:"-"`
	// Logger is the logging backend. Required.
	Logger slog.Handler `mapstructure:"-"`
	// Runner executes the external tool. Required; the CLI injects the
	// ffmpeg/ffprobe implementation, tests inject fakes.
	Runner ToolRunner `mapstructure:"-"`
}

// allowedExtensions returns the effective allow-list for this run.
func (o *Options) allowedExtensions() []string {
	if len(o.Extensions) > 0 {
		return o.Extensions
	}
	return AudioExtensions
}
