package audit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// --- Probe payload ---
// ffprobe's -print_format json payload. Only the fields the analyzer reads
// are modeled. ffprobe encodes sample_rate, bits_per_raw_sample and bit_rate
// as JSON strings; channels is a number.

type probeStream struct {
	CodecName        string `json:"codec_name"`
	SampleRate       string `json:"sample_rate"`
	Channels         *int   `json:"channels"`
	BitsPerRawSample string `json:"bits_per_raw_sample"`
}

type probeFormat struct {
	BitRate string `json:"bit_rate"`
}

type probePayload struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

// ParseProbeOutcome interprets a probe invocation outcome into a normalized
// StreamMetadata record, reading the first stream entry and the container
// section. A non-zero exit, malformed payload, or a payload with zero streams
// is an error: the caller records it as a per-file soft failure, not a batch
// abort. Absent fields map to nil, never to a parsed zero.
func ParseProbeOutcome(outcome ProcessOutcome) (StreamMetadata, error) {
	if outcome.ExitCode != 0 {
		msg := outcome.Stderr
		if msg == "" {
			msg = "no diagnostic output"
		}
		return StreamMetadata{}, fmt.Errorf("probe exited with code %d: %s", outcome.ExitCode, msg)
	}

	var payload probePayload
	if err := json.Unmarshal([]byte(outcome.Stdout), &payload); err != nil {
		return StreamMetadata{}, fmt.Errorf("malformed probe payload: %w", err)
	}
	if len(payload.Streams) == 0 {
		return StreamMetadata{}, fmt.Errorf("probe payload contains no streams")
	}

	stream := payload.Streams[0]
	md := StreamMetadata{
		Channels:     stream.Channels,
		SampleRateHz: parseOptionalInt(stream.SampleRate),
		BitDepthBits: parseOptionalInt(stream.BitsPerRawSample),
		BitRateBps:   parseOptionalInt(payload.Format.BitRate),
	}
	if stream.CodecName != "" {
		codec := stream.CodecName
		md.Codec = &codec
	}
	return md, nil
}

// parseOptionalInt maps ffprobe's stringly-typed numeric fields to a pointer.
// Empty or unparsable values are absent, not zero.
func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// --- Heuristic rules ---

// Annotate applies the fixed quality heuristics to a metadata record and
// returns the resulting annotations in rule order: codec classification
// first, then the numeric-threshold warnings. Each rule is independent;
// several may fire for the same file, and a rule whose field is unknown
// stays silent.
func Annotate(file AudioFileRef, md StreamMetadata) []Annotation {
	var anns []Annotation

	switch file.Ext {
	case ".m4a":
		codec := renderString(md.Codec)
		lower := strings.ToLower(codec)
		switch {
		case strings.Contains(lower, "aac"):
			anns = append(anns, Annotation{Level: LevelInfo, Text: "AAC (lossy) codec detected"})
		case strings.Contains(lower, "alac"):
			anns = append(anns, Annotation{Level: LevelInfo, Text: "ALAC (lossless) codec detected"})
		default:
			anns = append(anns, Annotation{Level: LevelWarning, Text: "Unknown codec: " + codec})
		}
	case ".opus", ".mp3":
		anns = append(anns, Annotation{Level: LevelInfo, Text: "Lossy codec: " + renderString(md.Codec)})
	}

	if md.BitDepthBits != nil && *md.BitDepthBits < MinLosslessBitDepth {
		anns = append(anns, Annotation{Level: LevelWarning, Text: "Low bit depth may indicate lossy encoding"})
	}
	if md.SampleRateHz != nil && *md.SampleRateHz < MinLosslessSampleRate {
		anns = append(anns, Annotation{Level: LevelWarning, Text: "Low sample rate may indicate lossy encoding"})
	}
	return anns
}

// ClassifyAnalysis maps one raw probe outcome onto an analysis result for the
// given file: parse, then annotate. A parse error or invocation fault becomes
// a failed result carrying a single ERROR annotation.
func ClassifyAnalysis(file AudioFileRef, outcome ProcessOutcome, invokeErr error) AnalysisResult {
	if invokeErr != nil {
		return analysisFailure(file, invokeErr)
	}
	md, err := ParseProbeOutcome(outcome)
	if err != nil {
		return analysisFailure(file, err)
	}
	return AnalysisResult{File: file, Metadata: md, Annotations: Annotate(file, md)}
}

func analysisFailure(file AudioFileRef, err error) AnalysisResult {
	return AnalysisResult{
		File:        file,
		Failed:      true,
		Annotations: []Annotation{{Level: LevelError, Text: "Failed to analyze: " + err.Error()}},
	}
}
