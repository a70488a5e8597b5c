// Package config loads CLI configuration from defaults, an optional config
// file, environment variables, and command-line flags, in that precedence
// order, and sets up the application logger.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/soundkeep/soundkeep/pkg/audit"
)

const (
	// EnvPrefix is the prefix for environment variable overrides, e.g.
	// SOUNDKEEP_FFMPEG_PATH.
	EnvPrefix = "SOUNDKEEP"
	// DefaultConfigName is the base name of the config file searched in the
	// working directory and $HOME/.config/soundkeep.
	DefaultConfigName = "soundkeep"
)

// Settings holds the resolved CLI configuration.
type Settings struct {
	// Verbose enables debug logging and switches per-file records to the
	// console instead of the progress bar.
	Verbose bool `mapstructure:"verbose"`
	// SaveLog controls whether `check` writes a timestamped log file. Log by
	// default; --verbose suppresses it unless --save-log is given explicitly.
	SaveLog bool `mapstructure:"save-log"`
	// OutputPath overrides the destination file for `info` results.
	OutputPath string `mapstructure:"output"`
	// FFmpegPath and FFprobePath name the external binaries, resolved on PATH
	// when not absolute.
	FFmpegPath  string `mapstructure:"ffmpeg-path"`
	FFprobePath string `mapstructure:"ffprobe-path"`
	// NoColor disables status coloring on console records.
	NoColor bool `mapstructure:"no-color"`
	// Format selects the final report rendering: text (default) or json.
	Format audit.OutputFormat `mapstructure:"format"`
	// ConfigFilePath records which config file was loaded, for diagnostics.
	ConfigFilePath string `mapstructure:"-"`
}

// LoadAndValidate merges all configuration sources, binds the given flag set,
// and returns the resolved settings together with the configured logger.
func LoadAndValidate(cfgFile string, verbose bool, flags *pflag.FlagSet) (Settings, *slog.Logger, error) {
	var settings Settings
	v := viper.New()

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Error("Failed to get user home directory", slog.Any("error", err))
			return settings, logger, fmt.Errorf("failed to get user home directory: %w", err)
		}
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			logger.Debug("No configuration file found, using defaults/env/flags")
		} else {
			used := cfgFile
			if used == "" {
				used = fmt.Sprintf("searched locations for %s.yaml", DefaultConfigName)
			}
			logger.Error("Error reading configuration file", slog.String("path", used), slog.Any("error", err))
			return settings, logger, fmt.Errorf("error reading config file '%s': %w", used, err)
		}
	} else {
		settings.ConfigFilePath = v.ConfigFileUsed()
		logger.Debug("Using configuration file", slog.String("path", settings.ConfigFilePath))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			logger.Error("Failed to bind command-line flags", slog.Any("error", err))
			return settings, logger, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.Unmarshal(&settings); err != nil {
		logger.Error("Failed to unmarshal configuration", slog.Any("error", err))
		return settings, logger, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	settings.Verbose = settings.Verbose || verbose
	settings.ConfigFilePath = v.ConfigFileUsed()

	if settings.FFmpegPath == "" || settings.FFprobePath == "" {
		return settings, logger, fmt.Errorf("ffmpeg-path and ffprobe-path cannot be empty")
	}

	format, err := audit.ParseOutputFormat(string(settings.Format))
	if err != nil {
		return settings, logger, err
	}
	settings.Format = format

	return settings, logger, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", audit.DefaultVerbose)
	v.SetDefault("save-log", audit.DefaultSaveLog)
	v.SetDefault("output", "")
	v.SetDefault("ffmpeg-path", audit.DefaultFFmpegBinary)
	v.SetDefault("ffprobe-path", audit.DefaultFFprobeBinary)
	v.SetDefault("no-color", false)
	v.SetDefault("format", string(audit.DefaultOutputFormat))
}
