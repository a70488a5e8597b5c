package hooks_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundkeep/soundkeep/internal/cli/hooks"
	"github.com/soundkeep/soundkeep/pkg/audit"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestReportHooks_IntegrityRecordsWrittenToBothSinks(t *testing.T) {
	var console, logFile bytes.Buffer
	h := hooks.NewReportHooks(discardLogger(), hooks.Options{
		Console: &console,
		LogFile: &logFile,
	})

	require.NoError(t, h.OnFilesEnumerated(2))
	require.NoError(t, h.OnIntegrityResult(audit.IntegrityResult{
		File:   audit.AudioFileRef{Path: "a.flac", Ext: ".flac"},
		Status: audit.StatusPassed,
	}))
	require.NoError(t, h.OnIntegrityResult(audit.IntegrityResult{
		File:       audit.AudioFileRef{Path: "b.flac", Ext: ".flac"},
		Status:     audit.StatusFailed,
		Diagnostic: "bad header",
	}))

	assert.Equal(t, "PASSED a.flac\nFAILED b.flac: bad header\n", console.String())
	assert.Equal(t, "PASSED a.flac\nFAILED b.flac: bad header\n", logFile.String())
}

func TestReportHooks_SummaryAppendedToLogOnComplete(t *testing.T) {
	var logFile bytes.Buffer
	h := hooks.NewReportHooks(discardLogger(), hooks.Options{LogFile: &logFile})

	report := audit.Report{Summary: audit.RunSummary{
		Mode: audit.RunModeIntegrity, Total: 3, Passed: 2, Failed: 1,
	}}
	require.NoError(t, h.OnRunComplete(report))

	assert.Equal(t, "\nSummary:\nTotal files: 3\nPassed: 2\nFailed: 1\n", logFile.String())
}

func TestReportHooks_NoSummaryForAnalysisMode(t *testing.T) {
	var logFile bytes.Buffer
	h := hooks.NewReportHooks(discardLogger(), hooks.Options{LogFile: &logFile})

	report := audit.Report{Summary: audit.RunSummary{Mode: audit.RunModeAnalysis, Total: 1, Passed: 1}}
	require.NoError(t, h.OnRunComplete(report))
	assert.Empty(t, logFile.String())
}

func TestReportHooks_AnalysisBlockWritten(t *testing.T) {
	var console bytes.Buffer
	h := hooks.NewReportHooks(discardLogger(), hooks.Options{Console: &console})

	res := audit.AnalysisResult{
		File: audit.AudioFileRef{Path: "a.mp3", Ext: ".mp3"},
		Metadata: audit.StreamMetadata{
			Codec:        strPtr("mp3"),
			SampleRateHz: intPtr(44100),
			Channels:     intPtr(2),
		},
		Annotations: []audit.Annotation{{Level: audit.LevelInfo, Text: "Lossy codec: mp3"}},
	}
	require.NoError(t, h.OnAnalysisResult(res))

	out := console.String()
	assert.Contains(t, out, "Analyzing: a.mp3\n")
	assert.Contains(t, out, "  Codec: mp3\n")
	assert.Contains(t, out, "  [INFO] Lossy codec: mp3\n")
	assert.True(t, bytes.HasSuffix(console.Bytes(), []byte("\n\n")), "blocks end with a blank separator line")
}

func TestReportHooks_ColorDisabledKeepsPlainText(t *testing.T) {
	var console bytes.Buffer
	h := hooks.NewReportHooks(discardLogger(), hooks.Options{Console: &console, Color: false})

	require.NoError(t, h.OnIntegrityResult(audit.IntegrityResult{
		File:   audit.AudioFileRef{Path: "a.flac", Ext: ".flac"},
		Status: audit.StatusPassed,
	}))
	assert.Equal(t, "PASSED a.flac\n", console.String())
}

func TestReportHooks_NilSinksAreSafe(t *testing.T) {
	h := hooks.NewReportHooks(discardLogger(), hooks.Options{})

	assert.NoError(t, h.OnFilesEnumerated(1))
	assert.NoError(t, h.OnIntegrityResult(audit.IntegrityResult{Status: audit.StatusPassed}))
	assert.NoError(t, h.OnAnalysisResult(audit.AnalysisResult{}))
	assert.NoError(t, h.OnRunComplete(audit.Report{}))
	assert.NoError(t, h.Finish())
}
