// Package hooks bridges audit engine events to the CLI's output surfaces:
// the console, the optional log file, and the progress bar.
package hooks

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"github.com/soundkeep/soundkeep/pkg/audit"
)

// ProgressBar defines the interface needed to interact with the progress bar.
type ProgressBar interface {
	Add(num int) error
	Close() error
}

// NoOpProgressBar provides a default null implementation.
type NoOpProgressBar struct{}

// Add implements ProgressBar.
func (n *NoOpProgressBar) Add(num int) error { return nil }

// Close implements ProgressBar.
func (n *NoOpProgressBar) Close() error { return nil }

var (
	stylePassed = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFailed = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Options configures a ReportHooks instance.
type Options struct {
	// Console receives rendered per-file records; nil suppresses console
	// records (progress-bar mode).
	Console io.Writer
	// LogFile receives the same records plus the final summary block; nil
	// when no log destination is active.
	LogFile io.Writer
	// ShowProgress enables the progress bar, sized when enumeration
	// completes. Meaningful only for interactive runs.
	ShowProgress bool
	// ProgressLabel is the description shown next to the bar.
	ProgressLabel string
	// Color enables status coloring on the console writer.
	Color bool
}

// ReportHooks implements audit.Hooks. The engine is sequential so no method
// is ever called concurrently; ordering of records is preserved as received.
type ReportHooks struct {
	logger *slog.Logger
	opts   Options
	bar    ProgressBar
}

// NewReportHooks creates hooks writing to the configured destinations.
func NewReportHooks(logger *slog.Logger, opts Options) *ReportHooks {
	return &ReportHooks{
		logger: logger.With(slog.String("component", "reportHooks")),
		opts:   opts,
		bar:    &NoOpProgressBar{},
	}
}

// OnFilesEnumerated sizes the progress bar once the file count is known.
func (h *ReportHooks) OnFilesEnumerated(count int) error {
	if h.opts.ShowProgress {
		h.bar = progressbar.NewOptions(count,
			progressbar.OptionSetDescription(h.opts.ProgressLabel),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	return nil
}

// OnIntegrityResult writes one integrity record to the active destinations
// and advances the progress bar.
func (h *ReportHooks) OnIntegrityResult(res audit.IntegrityResult) error {
	line := audit.RenderIntegrityLine(res)
	if h.opts.Console != nil {
		fmt.Fprintln(h.opts.Console, h.colorize(line, res.Status))
	}
	if h.opts.LogFile != nil {
		fmt.Fprintln(h.opts.LogFile, line)
	}
	if res.Status == audit.StatusFailed {
		h.logger.Debug("File failed integrity check",
			slog.String("path", res.File.Path),
			slog.String("diagnostic", res.Diagnostic))
	}
	return h.bar.Add(1)
}

// OnAnalysisResult writes one analysis block to the active destinations and
// advances the progress bar.
func (h *ReportHooks) OnAnalysisResult(res audit.AnalysisResult) error {
	block := audit.RenderAnalysisBlock(res)
	if h.opts.Console != nil {
		fmt.Fprint(h.opts.Console, block)
	}
	if h.opts.LogFile != nil {
		fmt.Fprint(h.opts.LogFile, block)
	}
	return h.bar.Add(1)
}

// OnRunComplete appends the summary block to the log file and finalizes the
// progress bar. Console summary printing is handled by the CLI run logic so
// it also covers cancelled runs.
func (h *ReportHooks) OnRunComplete(report audit.Report) error {
	if h.opts.LogFile != nil && report.Summary.Mode == audit.RunModeIntegrity {
		fmt.Fprint(h.opts.LogFile, audit.RenderSummary(report.Summary))
	}
	return h.Finish()
}

// Finish closes the progress bar. Safe to call more than once; the CLI calls
// it on cancelled runs where OnRunComplete never fires.
func (h *ReportHooks) Finish() error {
	err := h.bar.Close()
	h.bar = &NoOpProgressBar{}
	return err
}

func (h *ReportHooks) colorize(line string, status audit.Status) string {
	if !h.opts.Color {
		return line
	}
	if status == audit.StatusFailed {
		return styleFailed.Render(line)
	}
	return stylePassed.Render(line)
}
