package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "gradlescan",
	Short: "gradlescan - build.gradle section auditor for Flutter apps",
	Long: `gradlescan inspects the Android build.gradle files of open-source Flutter apps
and classifies which known structural sections appear at the front of each file,
in what order, and whether every mandatory section was found.

Use "fetch" to populate the local cache from the published app index, then
"scan" to classify the cached files.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
