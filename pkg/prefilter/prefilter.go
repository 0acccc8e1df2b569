// Package prefilter narrows a section registry per input using Aho-Corasick
// keyword matching before the full scan runs.
package prefilter

import (
	"github.com/cloudflare/ahocorasick"

	"github.com/flutterscan/gradlescan/pkg/types"
)

// Prefilter uses Aho-Corasick for efficient keyword matching. A section with
// keywords can only match content that contains at least one of them; sections
// without keywords are always kept.
type Prefilter struct {
	sections []*types.Section // original order
	matcher  *ahocorasick.Matcher
	keywords []string                // keyword at each matcher index
	needs    map[string]map[int]bool // keyword -> section indexes needing it
}

// New creates a prefilter from sections in registry order.
func New(sections []*types.Section) *Prefilter {
	pf := &Prefilter{
		sections: sections,
		needs:    make(map[string]map[int]bool),
	}

	keywordSet := make(map[string]bool)
	for i, s := range sections {
		for _, keyword := range s.Keywords {
			if !keywordSet[keyword] {
				keywordSet[keyword] = true
				pf.keywords = append(pf.keywords, keyword)
			}
			if pf.needs[keyword] == nil {
				pf.needs[keyword] = make(map[int]bool)
			}
			pf.needs[keyword][i] = true
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Filter returns the sections that might match content, preserving registry
// order: every keyword-less section plus those with at least one keyword
// present in content.
func (pf *Prefilter) Filter(content []byte) []*types.Section {
	if pf.matcher == nil {
		return pf.sections
	}

	hit := make(map[int]bool)
	for _, i := range pf.matcher.Match(content) {
		for idx := range pf.needs[pf.keywords[i]] {
			hit[idx] = true
		}
	}

	result := make([]*types.Section, 0, len(pf.sections))
	for i, s := range pf.sections {
		if len(s.Keywords) == 0 || hit[i] {
			result = append(result, s)
		}
	}
	return result
}
