// Package scanner implements the greedy fixed-point section scan.
package scanner

import (
	"github.com/flutterscan/gradlescan/pkg/section"
	"github.com/flutterscan/gradlescan/pkg/types"
)

// Scan consumes matched sections from the front of text until every required,
// non-persistent section has been matched or no section matches the remaining
// text.
//
// Each outer iteration tries the registry's sections in order and consumes the
// prefix of the first one that matches, then restarts from the top of the
// registry. Restarting is what lets persistent sections (comments, blank-line
// runs) interleave freely with the others. There is no backtracking: once a
// section consumes a prefix, that choice is final.
//
// The loop always attempts at least one inner pass. When an inner pass finds
// no match, the scan stops and is complete exactly when no required section is
// still outstanding. Each successful step strictly shrinks the remaining text,
// so the scan terminates on any input.
func Scan(reg *section.Registry, text string) *types.Result {
	remaining := text
	var matched []string
	seen := make(map[string]bool, reg.Len())

	for len(matched) == 0 || outstanding(reg, seen) {
		found := false
		for _, s := range reg.Sections() {
			end, ok := s.Matcher.Match(remaining, 0)
			if !ok {
				continue
			}
			remaining = remaining[end:]
			matched = append(matched, s.ID)
			seen[s.ID] = true
			found = true
			break
		}
		if !found {
			return &types.Result{Sections: matched, Complete: !outstanding(reg, seen)}
		}
	}

	return &types.Result{Sections: matched, Complete: true}
}

// outstanding reports whether some required, non-persistent section has not
// been matched yet.
func outstanding(reg *section.Registry, seen map[string]bool) bool {
	for _, s := range reg.Sections() {
		if seen[s.ID] {
			continue
		}
		if !s.Persistent && s.Required {
			return true
		}
	}
	return false
}
