package prefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flutterscan/gradlescan/pkg/section"
	"github.com/flutterscan/gradlescan/pkg/types"
)

func ids(sections []*types.Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.ID)
	}
	return out
}

func TestPrefilter_KeywordHitKeepsSection(t *testing.T) {
	sections := []*types.Section{
		{ID: "plugins", Keywords: []string{"plugins {"}},
		{ID: "keystore", Keywords: []string{"def keystoreProperties"}},
	}

	pf := New(sections)
	content := []byte("plugins {\n  id 'a'\n}\n")

	filtered := pf.Filter(content)

	require.Len(t, filtered, 1)
	assert.Equal(t, "plugins", filtered[0].ID)
}

func TestPrefilter_KeywordlessAlwaysKept(t *testing.T) {
	sections := []*types.Section{
		{ID: "comment"},
		{ID: "newline"},
	}

	pf := New(sections)

	filtered := pf.Filter([]byte("content without any keywords"))
	assert.Equal(t, []string{"comment", "newline"}, ids(filtered))
}

func TestPrefilter_PreservesRegistryOrder(t *testing.T) {
	// The scanner's greedy tie-break depends on section order, so the
	// filtered subset must keep the original relative positions.
	sections := []*types.Section{
		{ID: "comment"},
		{ID: "plugins", Keywords: []string{"plugins {"}},
		{ID: "localProperties"},
		{ID: "keystore", Keywords: []string{"def keystoreProperties"}},
		{ID: "flutterRoot"},
	}

	pf := New(sections)
	content := []byte("def keystoreProperties = new Properties()\n")

	filtered := pf.Filter(content)
	assert.Equal(t, []string{"comment", "localProperties", "keystore", "flutterRoot"}, ids(filtered))
}

func TestPrefilter_BuildGradleProfileEquivalence(t *testing.T) {
	// Filtering must never drop required or persistent sections.
	reg := section.BuildGradle()
	pf := New(reg.Sections())

	filtered := pf.Filter([]byte("no keywords at all"))

	kept := make(map[string]bool)
	for _, s := range filtered {
		kept[s.ID] = true
	}
	for _, s := range reg.Sections() {
		if s.Required || s.Persistent {
			assert.True(t, kept[s.ID], s.ID)
		}
	}
}
