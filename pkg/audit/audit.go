// Package audit implements the integrity-verification and metadata-analysis
// pipeline for local audio collections. It enumerates candidate files,
// invokes an external analysis tool (ffmpeg/ffprobe) once per file, and
// classifies the captured output into an ordered result stream with a final
// run summary. The package never decodes audio itself.
package audit

import (
	"context"
	"fmt"
)

// CheckIntegrity verifies every enumerated file by forcing a full decode
// through the injected ToolRunner and classifying the diagnostic output.
// It returns the accumulated report; the error is non-nil only for setup
// failures (see errors.go) or context cancellation.
func CheckIntegrity(ctx context.Context, opts Options) (Report, error) {
	if err := validate(&opts); err != nil {
		return Report{}, err
	}
	return newEngine(&opts).runIntegrity(ctx)
}

// AnalyzeMetadata probes every enumerated file for container and stream
// metadata and applies the quality heuristics. Error semantics match
// CheckIntegrity.
func AnalyzeMetadata(ctx context.Context, opts Options) (Report, error) {
	if err := validate(&opts); err != nil {
		return Report{}, err
	}
	return newEngine(&opts).runAnalysis(ctx)
}

func validate(opts *Options) error {
	if opts.Logger == nil {
		return fmt.Errorf("%w: Logger implementation cannot be nil", ErrOptionsValidation)
	}
	if opts.EventHooks == nil {
		return fmt.Errorf("%w: EventHooks implementation cannot be nil (use NoOpHooks if needed)", ErrOptionsValidation)
	}
	if opts.Runner == nil {
		return fmt.Errorf("%w: Runner implementation cannot be nil", ErrOptionsValidation)
	}
	if opts.InputPath == "" {
		return fmt.Errorf("%w: input path cannot be empty", ErrOptionsValidation)
	}
	return nil
}
