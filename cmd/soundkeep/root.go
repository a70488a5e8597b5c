package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// These are set during build time using -ldflags
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Flags persistent across commands
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "soundkeep",
	Short: "Maintains a local audio collection.",
	Long: `soundkeep inspects a local audio collection through ffmpeg and ffprobe.

It features:
  - Integrity verification via a full strict decode (check).
  - Stream metadata analysis with quality heuristics (info).
  - Cover-art visibility toggling (cover-art).

soundkeep never decodes or re-encodes audio itself; it interprets the
output of the external tools.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	rootCmd.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init registers persistent flags for the root command.
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default is searched in . and $HOME/.config/soundkeep)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output: per-file results on the console, debug logging, no progress bar")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable status coloring on console output")
}
