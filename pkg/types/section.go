package types

import "github.com/flutterscan/gradlescan/pkg/pattern"

// Section describes one recognizable block expected near the top of a
// build.gradle file.
type Section struct {
	ID      string          // e.g., "localProperties"
	Matcher pattern.Matcher // recognizes the section at the head of the remaining text

	// Persistent sections may recur any number of times (comments,
	// blank-line runs) and are never considered missing.
	Persistent bool

	// Required sections must be matched at least once for a scan to
	// terminate successfully. Only meaningful when Persistent is false.
	Required bool

	// Keywords are literal fragments that must appear somewhere in the
	// input for the section to be able to match. Used by the prefilter;
	// a section without keywords is always checked.
	Keywords []string
}
