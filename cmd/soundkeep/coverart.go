package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soundkeep/soundkeep/internal/cli/config"
	"github.com/soundkeep/soundkeep/internal/cli/coverart"
)

// coverArtCmd hides or shows cover-art image files in an album tree.
var coverArtCmd = &cobra.Command{
	Use:   "cover-art <directory>",
	Short: "Hide or show cover art files",
	Long: `cover-art walks the given directory and renames recognized cover
images (cover.jpg, cover.jpeg, cover.png): --hide prefixes them with a dot,
--show removes the prefix. Existing targets are never overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := config.LoadAndValidate(cfgFile, verbose, cmd.Flags())
		if err != nil {
			return err
		}

		root := args[0]
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("'%s' is not a directory", root)
		}

		hide, _ := cmd.Flags().GetBool("hide")
		res, err := coverart.Process(root, hide, logger)
		if err != nil {
			return err
		}
		if res.Scanned == 0 {
			fmt.Printf("No files found in '%s' to process.\n", root)
			return nil
		}
		fmt.Printf("Cover art processed: %d file(s) renamed.\n", res.Renamed)
		return nil
	},
}

func init() {
	coverArtCmd.Flags().Bool("hide", false, "Hide cover art by adding a dot prefix")
	coverArtCmd.Flags().Bool("show", false, "Show cover art by removing the dot prefix")
	coverArtCmd.MarkFlagsMutuallyExclusive("hide", "show")
	coverArtCmd.MarkFlagsOneRequired("hide", "show")
	rootCmd.AddCommand(coverArtCmd)
}
