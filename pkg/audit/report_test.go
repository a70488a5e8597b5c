package audit_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundkeep/soundkeep/pkg/audit"
)

func TestRenderIntegrityLine(t *testing.T) {
	file := audit.AudioFileRef{Path: "music/a.flac", Ext: ".flac"}

	passed := audit.IntegrityResult{File: file, Status: audit.StatusPassed}
	assert.Equal(t, "PASSED music/a.flac", audit.RenderIntegrityLine(passed))

	failed := audit.IntegrityResult{File: file, Status: audit.StatusFailed, Diagnostic: "bad header"}
	assert.Equal(t, "FAILED music/a.flac: bad header", audit.RenderIntegrityLine(failed))
}

func TestRenderSummary(t *testing.T) {
	sum := audit.RunSummary{Total: 3, Passed: 2, Failed: 1}
	assert.Equal(t, "\nSummary:\nTotal files: 3\nPassed: 2\nFailed: 1\n", audit.RenderSummary(sum))
}

func TestRenderAnalysisBlock_KnownFields(t *testing.T) {
	res := audit.AnalysisResult{
		File: audit.AudioFileRef{Path: "music/a.flac", Ext: ".flac"},
		Metadata: audit.StreamMetadata{
			Codec:        strPtr("flac"),
			SampleRateHz: intPtr(44100),
			Channels:     intPtr(2),
			BitDepthBits: intPtr(16),
			BitRateBps:   intPtr(1411200),
		},
	}

	expected := "Analyzing: music/a.flac\n" +
		"  Bitrate: 1411200 bps\n" +
		"  Sample Rate: 44100 Hz\n" +
		"  Bit Depth: 16 bits\n" +
		"  Channels: Stereo\n" +
		"  Codec: flac\n" +
		"\n"
	assert.Equal(t, expected, audit.RenderAnalysisBlock(res))
}

func TestRenderAnalysisBlock_UnknownFieldsHaveNoUnits(t *testing.T) {
	res := audit.AnalysisResult{
		File:     audit.AudioFileRef{Path: "music/b.wav", Ext: ".wav"},
		Metadata: audit.StreamMetadata{Channels: intPtr(6)},
	}

	expected := "Analyzing: music/b.wav\n" +
		"  Bitrate: N/A\n" +
		"  Sample Rate: N/A\n" +
		"  Bit Depth: N/A\n" +
		"  Channels: 6 channels\n" +
		"  Codec: N/A\n" +
		"\n"
	assert.Equal(t, expected, audit.RenderAnalysisBlock(res))
}

func TestRenderAnalysisBlock_FailureShowsOnlyError(t *testing.T) {
	res := audit.AnalysisResult{
		File:        audit.AudioFileRef{Path: "music/c.m4a", Ext: ".m4a"},
		Failed:      true,
		Annotations: []audit.Annotation{{Level: audit.LevelError, Text: "Failed to analyze: no streams"}},
	}

	expected := "Analyzing: music/c.m4a\n" +
		"  [ERROR] Failed to analyze: no streams\n" +
		"\n"
	assert.Equal(t, expected, audit.RenderAnalysisBlock(res))
}

func TestRenderAnalysisBlock_AnnotationsFollowMetadata(t *testing.T) {
	res := audit.AnalysisResult{
		File: audit.AudioFileRef{Path: "a.mp3", Ext: ".mp3"},
		Metadata: audit.StreamMetadata{
			Codec:        strPtr("mp3"),
			SampleRateHz: intPtr(22050),
			Channels:     intPtr(2),
		},
		Annotations: []audit.Annotation{
			{Level: audit.LevelInfo, Text: "Lossy codec: mp3"},
			{Level: audit.LevelWarning, Text: "Low sample rate may indicate lossy encoding"},
		},
	}

	block := audit.RenderAnalysisBlock(res)
	assert.Contains(t, block, "  [INFO] Lossy codec: mp3\n  [WARNING] Low sample rate may indicate lossy encoding\n")
}

func TestParseOutputFormat(t *testing.T) {
	format, err := audit.ParseOutputFormat("text")
	require.NoError(t, err)
	assert.Equal(t, audit.OutputFormatText, format)

	format, err = audit.ParseOutputFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, audit.OutputFormatJSON, format, "format names are case-insensitive")

	_, err = audit.ParseOutputFormat("xml")
	assert.Error(t, err)
}

func TestRenderReportJSON(t *testing.T) {
	report := audit.Report{
		Summary: audit.RunSummary{Mode: audit.RunModeIntegrity, Total: 2, Passed: 1, Failed: 1},
		Integrity: []audit.IntegrityResult{
			{File: audit.AudioFileRef{Path: "a.flac", Ext: ".flac"}, Status: audit.StatusPassed},
			{File: audit.AudioFileRef{Path: "b.flac", Ext: ".flac"}, Status: audit.StatusFailed, Diagnostic: "bad header"},
		},
	}

	out, err := audit.RenderReportJSON(report)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\n"))

	var decoded audit.Report
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, report.Summary.Total, decoded.Summary.Total)
	require.Len(t, decoded.Integrity, 2)
	assert.Equal(t, audit.StatusFailed, decoded.Integrity[1].Status)
	assert.Equal(t, "bad header", decoded.Integrity[1].Diagnostic)
}

func TestRenderReportJSON_OmitsAbsentMetadata(t *testing.T) {
	report := audit.Report{
		Summary:  audit.RunSummary{Mode: audit.RunModeAnalysis, Total: 1, Passed: 1},
		Analyses: []audit.AnalysisResult{{File: audit.AudioFileRef{Path: "a.wav", Ext: ".wav"}}},
	}

	out, err := audit.RenderReportJSON(report)
	require.NoError(t, err)
	assert.NotContains(t, out, "sampleRateHz", "absent fields must be omitted, not encoded as zeroes")
	assert.NotContains(t, out, "codec")
}

func TestChannelLabel(t *testing.T) {
	assert.Equal(t, "N/A", audit.ChannelLabel(nil))
	assert.Equal(t, "Mono", audit.ChannelLabel(intPtr(1)))
	assert.Equal(t, "Stereo", audit.ChannelLabel(intPtr(2)))
	assert.Equal(t, "6 channels", audit.ChannelLabel(intPtr(6)))
}
