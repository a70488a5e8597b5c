// Package cli wires the audit library to the command-line surface: it builds
// the report sinks, runs the pipeline, and translates setup outcomes into
// user-facing messages.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/soundkeep/soundkeep/internal/cli/config"
	"github.com/soundkeep/soundkeep/internal/cli/hooks"
	"github.com/soundkeep/soundkeep/pkg/audit"
	"github.com/soundkeep/soundkeep/pkg/audit/ffmpeg"
)

// CheckParams carries the per-invocation inputs for an integrity run.
type CheckParams struct {
	Path string
	// SaveLog is the resolved logging decision: on by default, suppressed by
	// --verbose unless --save-log re-enables it.
	SaveLog      bool
	ShowProgress bool
}

// InfoParams carries the per-invocation inputs for an analysis run.
type InfoParams struct {
	Path string
	// OutputPath overrides the default dated results file. Ignored in
	// verbose mode, which streams blocks to stdout.
	OutputPath   string
	ShowProgress bool
}

// RunCheck executes the integrity pipeline and renders its results. Setup
// failures are returned as errors for cobra to report; an empty scan and an
// interrupt both exit cleanly with a message.
func RunCheck(ctx context.Context, settings config.Settings, params CheckParams, logger *slog.Logger) error {
	var logFile *os.File
	var logName string
	if params.SaveLog {
		logName = fmt.Sprintf("integrity_check_log_%s.txt", time.Now().Format("2006-01-02_15-04-05"))
		f, err := os.Create(logName)
		if err != nil {
			return fmt.Errorf("failed to create log file %q: %w", logName, err)
		}
		logFile = f
		defer logFile.Close()
	}

	sinkOpts := hooks.Options{
		ShowProgress:  params.ShowProgress && !settings.Verbose,
		ProgressLabel: "Checking files",
		Color:         !settings.NoColor,
	}
	if settings.Verbose {
		sinkOpts.Console = os.Stdout
	}
	if logFile != nil {
		sinkOpts.LogFile = logFile
	}
	sink := hooks.NewReportHooks(logger, sinkOpts)

	report, err := audit.CheckIntegrity(ctx, audit.Options{
		InputPath:  params.Path,
		EventHooks: sink,
		Logger:     logger.Handler(),
		Runner:     ffmpeg.NewRunner(settings.FFmpegPath, settings.FFprobePath, logger.Handler()),
	})
	if err != nil {
		_ = sink.Finish()
		return translateRunError(err, logFile, report)
	}

	if settings.Format == audit.OutputFormatJSON {
		rendered, renderErr := audit.RenderReportJSON(report)
		if renderErr != nil {
			return renderErr
		}
		fmt.Print(rendered)
		return nil
	}

	if settings.Verbose {
		fmt.Print(audit.RenderSummary(report.Summary))
	}
	if logFile != nil {
		fmt.Printf("Check complete. Log saved to '%s'\n", logName)
	} else {
		fmt.Println("Check complete.")
	}
	return nil
}

// RunInfo executes the metadata analysis pipeline. In verbose mode blocks
// stream to stdout; otherwise they are written to a results file whose name
// defaults to audio_analysis_<yyyymmdd>.txt.
func RunInfo(ctx context.Context, settings config.Settings, params InfoParams, logger *slog.Logger) error {
	var outFile *os.File
	var outName string
	if !settings.Verbose {
		outName = params.OutputPath
		if outName == "" {
			outName = fmt.Sprintf("audio_analysis_%s.txt", time.Now().Format("20060102"))
		}
		f, err := os.Create(outName)
		if err != nil {
			return fmt.Errorf("failed to create output file %q: %w", outName, err)
		}
		outFile = f
		defer outFile.Close()
	}

	sinkOpts := hooks.Options{
		ShowProgress:  params.ShowProgress && !settings.Verbose,
		ProgressLabel: "Analyzing audio",
		Color:         !settings.NoColor,
	}
	if settings.Verbose {
		sinkOpts.Console = os.Stdout
	}
	if outFile != nil {
		sinkOpts.LogFile = outFile
	}
	sink := hooks.NewReportHooks(logger, sinkOpts)

	report, err := audit.AnalyzeMetadata(ctx, audit.Options{
		InputPath:  params.Path,
		EventHooks: sink,
		Logger:     logger.Handler(),
		Runner:     ffmpeg.NewRunner(settings.FFmpegPath, settings.FFprobePath, logger.Handler()),
	})
	if err != nil {
		_ = sink.Finish()
		return translateRunError(err, outFile, report)
	}

	if settings.Format == audit.OutputFormatJSON {
		rendered, renderErr := audit.RenderReportJSON(report)
		if renderErr != nil {
			return renderErr
		}
		fmt.Print(rendered)
		return nil
	}

	if outFile != nil {
		fmt.Printf("Analysis complete. Results saved to '%s'\n", outName)
	}
	return nil
}

// translateRunError maps setup and cancellation outcomes onto user-facing
// behavior. An empty scan is a "nothing to do" message, not a failure; an
// interrupt flushes any partial results already written to the sink and
// exits cleanly.
func translateRunError(err error, sinkFile *os.File, report audit.Report) error {
	switch {
	case errors.Is(err, audit.ErrNoAudioFiles):
		fmt.Println("No audio files found.")
		return nil
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		if sinkFile != nil && report.Summary.Mode == audit.RunModeIntegrity && report.Summary.Total > 0 {
			fmt.Fprint(sinkFile, audit.RenderSummary(report.Summary))
		}
		fmt.Fprintln(os.Stderr, "Quitting job...")
		return nil
	default:
		return err
	}
}
