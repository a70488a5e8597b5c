package audit

import (
	"fmt"
	"strings"
)

// Status defines the outcome of an integrity check for a single file.
type Status string

// Constants representing the defined integrity statuses.
const (
	StatusPassed Status = "PASSED"
	StatusFailed Status = "FAILED"
)

// AnnotationLevel defines the severity of an analysis annotation.
type AnnotationLevel string

const (
	LevelInfo    AnnotationLevel = "INFO"
	LevelWarning AnnotationLevel = "WARNING"
	LevelError   AnnotationLevel = "ERROR"
)

// ToolMode selects the argument template used when invoking the external tool.
type ToolMode string

// Constants representing the defined tool invocation modes.
const (
	// ModeStrictDecode forces a full decode with errors-only diagnostics and a
	// null output sink. Any diagnostic text is treated as corruption evidence.
	ModeStrictDecode ToolMode = "strict-decode"
	// ModeProbe extracts container and stream metadata as JSON without
	// decoding any audio samples.
	ModeProbe ToolMode = "probe"
)

// OutputFormat defines the format for the final summary printed to standard output.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// ParseOutputFormat maps a user-supplied format name onto an OutputFormat,
// case-insensitively.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(raw)) {
	case OutputFormatText:
		return OutputFormatText, nil
	case OutputFormatJSON:
		return OutputFormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (supported: %s, %s)",
			raw, OutputFormatText, OutputFormatJSON)
	}
}
