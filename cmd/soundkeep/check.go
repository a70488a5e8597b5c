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

// checkCmd verifies audio file integrity with a strict ffmpeg decode.
var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Verify audio file integrity",
	Long: `check runs every audio file under the given path through a full
ffmpeg decode with errors-only diagnostics and a null output sink. Files
whose decode surfaces no diagnostics pass; any diagnostic text fails the
file and is recorded verbatim.

Results are written to a timestamped log file by default. With --verbose
they are printed to the console instead, and the log file is only written
when --save-log is also given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		settings, logger, err := config.LoadAndValidate(cfgFile, verbose, cmd.Flags())
		if err != nil {
			return err
		}

		saveLog := settings.SaveLog
		if settings.Verbose && !cmd.Flags().Changed("save-log") {
			saveLog = false
		}

		return cli.RunCheck(ctx, settings, cli.CheckParams{
			Path:         args[0],
			SaveLog:      saveLog,
			ShowProgress: term.IsTerminal(int(os.Stderr.Fd())),
		}, logger)
	},
}

func init() {
	checkCmd.Flags().Bool("save-log", true, "Save results to a timestamped log file")
	checkCmd.Flags().String("format", string(audit.DefaultOutputFormat), "Final report format: text or json (json prints the full report to stdout)")
	rootCmd.AddCommand(checkCmd)
}
