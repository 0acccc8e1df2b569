package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/flutterscan/gradlescan"
	"github.com/flutterscan/gradlescan/pkg/types"
)

var (
	scanFormat      string
	scanSuffix      string
	scanWorkers     int
	scanNoPrefilter bool
	scanColor       string
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Scan cached build.gradle files",
	Long: `Classify the sections at the front of each cached build.gradle file and
report, per file, the sections found in order and whether every required
section was matched. Defaults to the build/files cache directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFormat, "format", "human", "Output format: human, json")
	scanCmd.Flags().StringVar(&scanSuffix, "suffix", ".build.gradle", "Only scan files with this name suffix")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "Parallel file readers (0 = number of CPUs)")
	scanCmd.Flags().BoolVar(&scanNoPrefilter, "no-prefilter", false, "Disable the keyword prefilter")
	scanCmd.Flags().StringVar(&scanColor, "color", "auto", "Color output: auto, always, never")
}

func runScan(cmd *cobra.Command, args []string) error {
	target := "build/files"
	if len(args) == 1 {
		target = args[0]
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("target does not exist: %s", target)
	}
	if !info.IsDir() {
		return fmt.Errorf("target is not a directory: %s", target)
	}

	opts := []gradlescan.Option{
		gradlescan.WithSuffix(scanSuffix),
		gradlescan.WithWorkers(scanWorkers),
	}
	if scanNoPrefilter {
		opts = append(opts, gradlescan.WithoutPrefilter())
	}

	s, err := gradlescan.NewScanner(opts...)
	if err != nil {
		return fmt.Errorf("creating scanner: %w", err)
	}

	results, err := s.ScanDir(cmd.Context(), target)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	switch scanFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case "human":
		return outputResults(cmd, results)
	default:
		return fmt.Errorf("unknown output format: %s", scanFormat)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// styles holds color formatters for human output.
type styles struct {
	path       *color.Color
	sections   *color.Color
	complete   *color.Color
	incomplete *color.Color
	heading    *color.Color
}

// newStyles creates color formatters for scan output.
// enabled=false respects --color never and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		path:       color.New(color.Bold, color.FgHiWhite),
		sections:   color.New(color.FgHiBlue),
		complete:   color.New(color.FgHiGreen),
		incomplete: color.New(color.FgHiRed),
		heading:    color.New(color.Bold),
	}

	if !enabled {
		s.path.DisableColor()
		s.sections.DisableColor()
		s.complete.DisableColor()
		s.incomplete.DisableColor()
		s.heading.DisableColor()
	}

	return s
}

func colorEnabled(setting string) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

func outputResults(cmd *cobra.Command, results []*types.Result) error {
	out := cmd.OutOrStdout()
	st := newStyles(colorEnabled(scanColor))

	completeCount := 0
	for _, r := range results {
		status := st.incomplete.Sprint("incomplete")
		if r.Complete {
			status = st.complete.Sprint("complete")
			completeCount++
		}
		fmt.Fprintf(out, "%s  %s  [%s]\n",
			st.path.Sprint(r.Path), status, st.sections.Sprint(strings.Join(r.Sections, ", ")))
	}

	if !quiet {
		fmt.Fprintf(out, "\n%s %d files: %d complete, %d incomplete\n",
			st.heading.Sprint("Scanned"), len(results), completeCount, len(results)-completeCount)
	}
	return nil
}
