package audit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soundkeep/soundkeep/pkg/audit"
)

func TestClassifyIntegrity_EmptyDiagnosticPasses(t *testing.T) {
	file := audit.AudioFileRef{Path: "a.flac", Ext: ".flac"}
	res := audit.ClassifyIntegrity(file, audit.ProcessOutcome{}, nil)

	assert.Equal(t, audit.StatusPassed, res.Status)
	assert.Empty(t, res.Diagnostic)
	assert.Equal(t, file, res.File)
}

func TestClassifyIntegrity_DiagnosticTextFails(t *testing.T) {
	file := audit.AudioFileRef{Path: "a.flac", Ext: ".flac"}
	outcome := audit.ProcessOutcome{Stderr: "invalid frame header"}
	res := audit.ClassifyIntegrity(file, outcome, nil)

	assert.Equal(t, audit.StatusFailed, res.Status)
	assert.Equal(t, "invalid frame header", res.Diagnostic)
}

func TestClassifyIntegrity_NonZeroExitWithEmptyDiagnosticStillPasses(t *testing.T) {
	// The oracle is the diagnostic stream, not the exit code.
	file := audit.AudioFileRef{Path: "a.wav", Ext: ".wav"}
	res := audit.ClassifyIntegrity(file, audit.ProcessOutcome{ExitCode: 1}, nil)

	assert.Equal(t, audit.StatusPassed, res.Status)
}

func TestClassifyIntegrity_InvocationFaultFailsWithFaultText(t *testing.T) {
	file := audit.AudioFileRef{Path: "a.flac", Ext: ".flac"}
	res := audit.ClassifyIntegrity(file, audit.ProcessOutcome{}, errors.New("permission denied"))

	assert.Equal(t, audit.StatusFailed, res.Status)
	assert.Equal(t, "permission denied", res.Diagnostic)
}

func TestClassifyIntegrity_Deterministic(t *testing.T) {
	file := audit.AudioFileRef{Path: "a.flac", Ext: ".flac"}
	outcome := audit.ProcessOutcome{Stderr: "corrupt"}

	first := audit.ClassifyIntegrity(file, outcome, nil)
	second := audit.ClassifyIntegrity(file, outcome, nil)
	assert.Equal(t, first, second)
}
