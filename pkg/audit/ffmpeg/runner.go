// Package ffmpeg provides the audit.ToolRunner implementation backed by the
// ffmpeg and ffprobe executables.
package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/soundkeep/soundkeep/pkg/audit"
)

// Runner invokes ffmpeg (strict-decode mode) and ffprobe (probe mode) as
// external processes, one blocking call per file.
type Runner struct {
	ffmpegBin  string
	ffprobeBin string
	logger     *slog.Logger
}

// NewRunner creates a Runner. Empty binary names fall back to the defaults
// resolved on PATH ("ffmpeg", "ffprobe").
func NewRunner(ffmpegBin, ffprobeBin string, loggerHandler slog.Handler) *Runner {
	if loggerHandler == nil {
		loggerHandler = slog.NewTextHandler(io.Discard, nil)
	}
	if ffmpegBin == "" {
		ffmpegBin = audit.DefaultFFmpegBinary
	}
	if ffprobeBin == "" {
		ffprobeBin = audit.DefaultFFprobeBinary
	}
	return &Runner{
		ffmpegBin:  ffmpegBin,
		ffprobeBin: ffprobeBin,
		logger:     slog.New(loggerHandler).With(slog.String("component", "toolRunner")),
	}
}

// Resolve verifies the executable backing the given mode is on the PATH.
// Called once per run so a missing tool fails fast before any file is touched.
func (r *Runner) Resolve(mode audit.ToolMode) error {
	bin, err := r.binary(mode)
	if err != nil {
		return err
	}
	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("%w: %q is not installed or not on your PATH", audit.ErrToolNotFound, bin)
	}
	r.logger.Debug("External tool resolved", slog.String("binary", bin), slog.String("mode", string(mode)))
	return nil
}

// Invoke runs the tool against a single file with the fixed argument template
// for the mode and captures both output streams. A non-zero exit from the
// tool is returned in the outcome, not as an error; the error return is
// reserved for spawn-level faults.
func (r *Runner) Invoke(ctx context.Context, mode audit.ToolMode, filePath string) (audit.ProcessOutcome, error) {
	bin, err := r.binary(mode)
	if err != nil {
		return audit.ProcessOutcome{}, err
	}
	args := r.arguments(mode, filePath)

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("Invoking external tool",
		slog.String("binary", bin),
		slog.String("mode", string(mode)),
		slog.String("path", filePath))

	runErr := cmd.Run()
	outcome := audit.ProcessOutcome{
		Stdout: strings.TrimRight(stdout.String(), " \t\r\n"),
		Stderr: strings.TrimRight(stderr.String(), " \t\r\n"),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// Domain signal, not a fault. The classifier decides what a
			// non-zero exit means for this mode.
			outcome.ExitCode = exitErr.ExitCode()
			r.logger.Debug("Tool exited non-zero",
				slog.String("path", filePath),
				slog.Int("exitCode", outcome.ExitCode))
			return outcome, nil
		}
		if ctx.Err() != nil {
			return outcome, ctx.Err()
		}
		r.logger.Error("Failed to run external tool",
			slog.String("binary", bin),
			slog.String("path", filePath),
			slog.String("error", runErr.Error()))
		return outcome, fmt.Errorf("failed to run %q: %w", bin, runErr)
	}
	return outcome, nil
}

func (r *Runner) binary(mode audit.ToolMode) (string, error) {
	switch mode {
	case audit.ModeStrictDecode:
		return r.ffmpegBin, nil
	case audit.ModeProbe:
		return r.ffprobeBin, nil
	default:
		return "", fmt.Errorf("unknown tool mode %q", mode)
	}
}

// arguments returns the fixed argv template for the mode. Strict decode logs
// only error-severity diagnostics and discards the decoded output through the
// null muxer; probe requests quiet JSON with both format and stream sections.
func (r *Runner) arguments(mode audit.ToolMode, filePath string) []string {
	switch mode {
	case audit.ModeStrictDecode:
		return []string{"-v", "error", "-i", filePath, "-f", "null", "-"}
	case audit.ModeProbe:
		return []string{"-v", "quiet", "-print_format", "json", "-show_format", "-show_streams", filePath}
	default:
		return nil
	}
}
