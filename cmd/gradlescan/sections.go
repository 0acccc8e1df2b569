package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flutterscan/gradlescan/pkg/section"
	"github.com/flutterscan/gradlescan/pkg/types"
)

var sectionsFormat string

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Inspect known sections",
	Long:  "Commands for listing the sections of the build.gradle profile",
}

var sectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known sections",
	Long:  "Display the sections of the build.gradle profile with their flags",
	RunE:  runSectionsList,
}

func init() {
	sectionsCmd.AddCommand(sectionsListCmd)
	sectionsListCmd.Flags().StringVar(&sectionsFormat, "format", "table", "Output format: table, json")
}

func runSectionsList(cmd *cobra.Command, args []string) error {
	sections := section.BuildGradle().Sections()

	switch sectionsFormat {
	case "json":
		return outputSectionsJSON(cmd, sections)
	case "table":
		return outputSectionsTable(cmd, sections)
	default:
		return fmt.Errorf("unknown output format: %s", sectionsFormat)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// sectionView is the serializable subset of a section descriptor.
type sectionView struct {
	ID         string   `json:"id"`
	Persistent bool     `json:"persistent"`
	Required   bool     `json:"required"`
	Keywords   []string `json:"keywords,omitempty"`
}

func outputSectionsJSON(cmd *cobra.Command, sections []*types.Section) error {
	views := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		views = append(views, sectionView{
			ID:         s.ID,
			Persistent: s.Persistent,
			Required:   s.Required,
			Keywords:   s.Keywords,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(views)
}

func outputSectionsTable(cmd *cobra.Command, sections []*types.Section) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tPersistent\tRequired\tKeywords\n")
	fmt.Fprintf(w, "--\t----------\t--------\t--------\n")

	for _, s := range sections {
		fmt.Fprintf(w, "%s\t%v\t%v\t%s\n", s.ID, s.Persistent, s.Required, strings.Join(s.Keywords, ", "))
	}

	return nil
}
