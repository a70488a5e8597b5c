package audit

// AudioExtensions is the fixed allow-list of recognized audio file suffixes
// (lower-cased, including the leading dot). Files outside this set are never
// considered audio input.
var AudioExtensions = []string{
	".flac", ".wav", ".m4a", ".mp3", ".ogg", ".opus", ".ape", ".wv", ".wma",
}

// Heuristic thresholds for the metadata analyzer. These are the conventional
// "CD-quality" floor, not ground truth: a file below them can still be a
// legitimate lossless recording, so rules phrased against them only ever say
// "may indicate".
const (
	// MinLosslessBitDepth is the bit depth below which a lossy-encoding
	// warning is emitted. Exactly 16 bits does not warn.
	MinLosslessBitDepth = 16
	// MinLosslessSampleRate is the sample rate in Hz below which a
	// lossy-encoding warning is emitted. Exactly 44100 Hz does not warn.
	MinLosslessSampleRate = 44100
)

// Constants defining default values for configuration options. These are used
// when setting up Viper defaults in the CLI configuration loading process.
const (
	// DefaultFFmpegBinary is the executable name resolved on PATH for
	// strict-decode invocations.
	DefaultFFmpegBinary = "ffmpeg"
	// DefaultFFprobeBinary is the executable name resolved on PATH for probe
	// invocations.
	DefaultFFprobeBinary = "ffprobe"
	// DefaultSaveLog controls whether integrity runs write a log file when
	// neither --verbose nor --save-log is given. Logging is on by default;
	// --verbose switches output to the console and suppresses the log unless
	// --save-log re-enables it.
	DefaultSaveLog = true
	// DefaultOutputFormat is the default format for the final summary.
	DefaultOutputFormat = OutputFormatText
	// DefaultVerbose is the default state for verbose logging.
	DefaultVerbose = false
)

// Constants defining run modes recorded in the report summary.
const (
	RunModeIntegrity = "integrity"
	RunModeAnalysis  = "analysis"
)

// UnknownFieldLabel is the presentation string for metadata fields the probe
// payload did not carry. It exists only at the rendering boundary; inside the
// data model absent fields are nil pointers, never sentinel strings.
const UnknownFieldLabel = "N/A"
