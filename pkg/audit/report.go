package audit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AudioFileRef identifies one candidate audio file produced by enumeration.
type AudioFileRef struct {
	// Path is the file path as resolved during enumeration.
	Path string `json:"path"`
	// Ext is the lower-cased extension including the leading dot. Always a
	// member of the allow-list in effect for the run.
	Ext string `json:"ext"`
}

// IntegrityResult is the outcome of one strict-decode check.
type IntegrityResult struct {
	File   AudioFileRef `json:"file"`
	Status Status       `json:"status"`
	// Diagnostic carries the tool's error-severity output when Status is
	// FAILED, or the invocation fault text when the tool call itself failed.
	// Empty when Status is PASSED.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// StreamMetadata is the normalized record derived from the first audio stream
// of a probe payload. Nil pointers mean the field was absent from the payload;
// a nil field never matches any numeric threshold.
type StreamMetadata struct {
	Codec        *string `json:"codec,omitempty"`
	SampleRateHz *int    `json:"sampleRateHz,omitempty"`
	Channels     *int    `json:"channels,omitempty"`
	BitDepthBits *int    `json:"bitDepthBits,omitempty"`
	BitRateBps   *int    `json:"bitRateBps,omitempty"`
}

// Annotation is one INFO/WARNING/ERROR note attached to a file's analysis
// block. Order within a block is significant for report readability.
type Annotation struct {
	Level AnnotationLevel `json:"level"`
	Text  string          `json:"text"`
}

// AnalysisResult is the outcome of one probe-and-annotate pass. When Failed
// is true the probe payload could not be interpreted and Annotations holds a
// single ERROR entry.
type AnalysisResult struct {
	File        AudioFileRef   `json:"file"`
	Metadata    StreamMetadata `json:"metadata"`
	Annotations []Annotation   `json:"annotations,omitempty"`
	Failed      bool           `json:"failed,omitempty"`
}

// RunSummary contains aggregated statistics for one run. The counters are
// monotonically updated as each file completes; Total always equals
// Passed + Failed.
type RunSummary struct {
	InputPath       string    `json:"inputPath"`
	Mode            string    `json:"mode"`
	Total           int       `json:"total"`
	Passed          int       `json:"passed"`
	Failed          int       `json:"failed"`
	DurationSeconds float64   `json:"durationSeconds"`
	Timestamp       time.Time `json:"timestamp"`
}

// Report summarizes the result of a single run.
type Report struct {
	Summary   RunSummary        `json:"summary"`
	Integrity []IntegrityResult `json:"integrity,omitempty"`
	Analyses  []AnalysisResult  `json:"analyses,omitempty"`
}

// --- Text rendering ---
// These produce the line-oriented record formats consumed by the report
// sinks. Sinks may recolor or redirect them but never reorder them.

// RenderIntegrityLine formats one integrity record as
// "<STATUS> <path>" with ": <diagnostic>" appended for failures.
func RenderIntegrityLine(res IntegrityResult) string {
	if res.Diagnostic != "" {
		return fmt.Sprintf("%s %s: %s", res.Status, res.File.Path, res.Diagnostic)
	}
	return fmt.Sprintf("%s %s", res.Status, res.File.Path)
}

// RenderSummary formats the final summary block, surrounded by blank lines.
func RenderSummary(sum RunSummary) string {
	return fmt.Sprintf("\nSummary:\nTotal files: %d\nPassed: %d\nFailed: %d\n",
		sum.Total, sum.Passed, sum.Failed)
}

// RenderAnalysisBlock formats one analysis record: header line, five metadata
// lines with unit suffixes only when the field is known, annotation lines,
// and a trailing blank separator.
func RenderAnalysisBlock(res AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyzing: %s\n", res.File.Path)
	if !res.Failed {
		b.WriteString("  Bitrate: " + renderInt(res.Metadata.BitRateBps, " bps") + "\n")
		b.WriteString("  Sample Rate: " + renderInt(res.Metadata.SampleRateHz, " Hz") + "\n")
		b.WriteString("  Bit Depth: " + renderInt(res.Metadata.BitDepthBits, " bits") + "\n")
		b.WriteString("  Channels: " + ChannelLabel(res.Metadata.Channels) + "\n")
		b.WriteString("  Codec: " + renderString(res.Metadata.Codec) + "\n")
	}
	for _, ann := range res.Annotations {
		fmt.Fprintf(&b, "  [%s] %s\n", ann.Level, ann.Text)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderReportJSON serializes the full report, indented, for machine-readable
// output. Absent metadata fields are omitted rather than encoded as zeroes.
func RenderReportJSON(report Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(data) + "\n", nil
}

// ChannelLabel maps a channel count to its presentation label: "Mono",
// "Stereo", "<n> channels", or "N/A" when unknown.
func ChannelLabel(channels *int) string {
	switch {
	case channels == nil:
		return UnknownFieldLabel
	case *channels == 1:
		return "Mono"
	case *channels == 2:
		return "Stereo"
	default:
		return fmt.Sprintf("%d channels", *channels)
	}
}

func renderInt(v *int, unit string) string {
	if v == nil {
		return UnknownFieldLabel
	}
	return fmt.Sprintf("%d%s", *v, unit)
}

func renderString(v *string) string {
	if v == nil {
		return UnknownFieldLabel
	}
	return *v
}
