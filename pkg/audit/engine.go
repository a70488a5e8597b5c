package audit

import (
	"context"
	"log/slog"
	"time"
)

// engine drives one run: enumerate, invoke per file in order, classify,
// stream results through the hooks, and accumulate the summary. Processing is
// strictly sequential; one file's invocation completes before the next
// begins, so no state is ever shared concurrently.
type engine struct {
	opts   *Options
	runner ToolRunner
	hooks  Hooks
	logger *slog.Logger
}

func newEngine(opts *Options) *engine {
	return &engine{
		opts:   opts,
		runner: opts.Runner,
		hooks:  opts.EventHooks,
		logger: slog.New(opts.Logger).With(slog.String("component", "engine")),
	}
}

// runIntegrity executes the strict-decode pipeline. Setup errors (tool not
// resolvable, invalid path, unsupported file, empty scan) are returned before
// any tool call; per-file failures are folded into the result stream and the
// summary, never into the error return. On context cancellation the partial
// report accumulated so far is returned together with ctx.Err() so sinks can
// be flushed cleanly.
func (e *engine) runIntegrity(ctx context.Context) (Report, error) {
	report := Report{Summary: RunSummary{
		InputPath: e.opts.InputPath,
		Mode:      RunModeIntegrity,
		Timestamp: time.Now(),
	}}
	start := time.Now()

	if err := e.runner.Resolve(ModeStrictDecode); err != nil {
		e.logger.Error("External tool not resolvable", slog.String("mode", string(ModeStrictDecode)), slog.String("error", err.Error()))
		return report, err
	}

	files, err := EnumerateAudioFiles(e.opts.InputPath, e.opts.allowedExtensions(), slog.New(e.opts.Logger))
	if err != nil {
		return report, err
	}
	e.notifyEnumerated(len(files))

	for _, file := range files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			e.logger.Info("Run cancelled", slog.Int("completed", report.Summary.Total))
			report.Summary.DurationSeconds = time.Since(start).Seconds()
			return report, ctxErr
		}

		outcome, invokeErr := e.runner.Invoke(ctx, ModeStrictDecode, file.Path)
		if invokeErr != nil && ctx.Err() != nil {
			// The invocation was cut short by cancellation; the file was never
			// actually checked, so it must not count as FAILED.
			e.logger.Info("Run cancelled mid-invocation", slog.String("path", file.Path))
			report.Summary.DurationSeconds = time.Since(start).Seconds()
			return report, ctx.Err()
		}
		res := ClassifyIntegrity(file, outcome, invokeErr)
		report.Integrity = append(report.Integrity, res)
		report.Summary.Total++
		if res.Status == StatusPassed {
			report.Summary.Passed++
		} else {
			report.Summary.Failed++
		}
		if hookErr := e.hooks.OnIntegrityResult(res); hookErr != nil {
			e.logger.Warn("Event hook OnIntegrityResult failed", slog.String("path", file.Path), slog.String("error", hookErr.Error()))
		}
	}

	report.Summary.DurationSeconds = time.Since(start).Seconds()
	e.notifyComplete(report)
	return report, nil
}

// runAnalysis executes the probe pipeline. The summary counts files whose
// probe payload could be interpreted as Passed and per-file soft failures as
// Failed; the invariant Total == Passed + Failed holds in both modes.
func (e *engine) runAnalysis(ctx context.Context) (Report, error) {
	report := Report{Summary: RunSummary{
		InputPath: e.opts.InputPath,
		Mode:      RunModeAnalysis,
		Timestamp: time.Now(),
	}}
	start := time.Now()

	if err := e.runner.Resolve(ModeProbe); err != nil {
		e.logger.Error("External tool not resolvable", slog.String("mode", string(ModeProbe)), slog.String("error", err.Error()))
		return report, err
	}

	files, err := EnumerateAudioFiles(e.opts.InputPath, e.opts.allowedExtensions(), slog.New(e.opts.Logger))
	if err != nil {
		return report, err
	}
	e.notifyEnumerated(len(files))

	for _, file := range files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			e.logger.Info("Run cancelled", slog.Int("completed", report.Summary.Total))
			report.Summary.DurationSeconds = time.Since(start).Seconds()
			return report, ctxErr
		}

		outcome, invokeErr := e.runner.Invoke(ctx, ModeProbe, file.Path)
		if invokeErr != nil && ctx.Err() != nil {
			e.logger.Info("Run cancelled mid-invocation", slog.String("path", file.Path))
			report.Summary.DurationSeconds = time.Since(start).Seconds()
			return report, ctx.Err()
		}
		res := ClassifyAnalysis(file, outcome, invokeErr)
		report.Analyses = append(report.Analyses, res)
		report.Summary.Total++
		if res.Failed {
			report.Summary.Failed++
		} else {
			report.Summary.Passed++
		}
		if hookErr := e.hooks.OnAnalysisResult(res); hookErr != nil {
			e.logger.Warn("Event hook OnAnalysisResult failed", slog.String("path", file.Path), slog.String("error", hookErr.Error()))
		}
	}

	report.Summary.DurationSeconds = time.Since(start).Seconds()
	e.notifyComplete(report)
	return report, nil
}

func (e *engine) notifyEnumerated(count int) {
	e.logger.Debug("Enumeration complete", slog.Int("files", count))
	if hookErr := e.hooks.OnFilesEnumerated(count); hookErr != nil {
		e.logger.Warn("Event hook OnFilesEnumerated failed", slog.String("error", hookErr.Error()))
	}
}

func (e *engine) notifyComplete(report Report) {
	if hookErr := e.hooks.OnRunComplete(report); hookErr != nil {
		e.logger.Warn("Event hook OnRunComplete failed", slog.String("error", hookErr.Error()))
	}
}
