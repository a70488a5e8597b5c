package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/soundkeep/soundkeep/internal/cli"
	"github.com/soundkeep/soundkeep/internal/cli/config"
	"github.com/soundkeep/soundkeep/pkg/audit"
)

// infoCmd analyzes audio stream metadata with ffprobe.
var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Analyze audio file metadata",
	Long: `info probes every audio file under the given path with ffprobe and
reports codec, bit rate, sample rate, bit depth and channel layout, plus
heuristic quality annotations (lossy-codec classification, sub-CD-quality
warnings).

Results are written to a dated output file by default; override the name
with --output or stream to the console with --verbose.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		settings, logger, err := config.LoadAndValidate(cfgFile, verbose, cmd.Flags())
		if err != nil {
			return err
		}

		return cli.RunInfo(ctx, settings, cli.InfoParams{
			Path:         args[0],
			OutputPath:   settings.OutputPath,
			ShowProgress: term.IsTerminal(int(os.Stderr.Fd())),
		}, logger)
	},
}

func init() {
	infoCmd.Flags().StringP("output", "o", "", "Output file for results (default audio_analysis_<yyyymmdd>.txt)")
	infoCmd.Flags().String("format", string(audit.DefaultOutputFormat), "Final report format: text or json (json prints the full report to stdout)")
	rootCmd.AddCommand(infoCmd)
}
