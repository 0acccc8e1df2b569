package section

import (
	"fmt"

	"github.com/flutterscan/gradlescan/pkg/types"
)

// Section IDs of the build.gradle profile.
const (
	IDComment            = "comment"
	IDNewline            = "newline"
	IDOldPlugins         = "old_plugins"
	IDLocalProperties    = "localProperties"
	IDKeystoreProperties = "keystoreProperties"
	IDFlutterRoot        = "flutterRoot"
)

// Registry is an ordered collection of section descriptors. Order is the
// tie-break when more than one section could match the same prefix: the
// first listed wins.
type Registry struct {
	sections []*types.Section
	index    map[string]int
}

// NewRegistry creates a registry from descriptors in the given order.
// Returns an error on a missing ID or matcher, or a duplicate ID.
func NewRegistry(sections ...*types.Section) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(sections))}
	for _, s := range sections {
		if s.ID == "" {
			return nil, fmt.Errorf("section without ID")
		}
		if s.Matcher == nil {
			return nil, fmt.Errorf("section %s has no matcher", s.ID)
		}
		if _, dup := r.index[s.ID]; dup {
			return nil, fmt.Errorf("duplicate section ID: %s", s.ID)
		}
		r.index[s.ID] = len(r.sections)
		r.sections = append(r.sections, s)
	}
	return r, nil
}

// Sections returns the descriptors in registry order. The returned slice is
// shared; callers must not modify it.
func (r *Registry) Sections() []*types.Section {
	return r.sections
}

// Get returns the descriptor with the given ID.
func (r *Registry) Get(id string) (*types.Section, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.sections[i], true
}

// Len returns the number of descriptors.
func (r *Registry) Len() int {
	return len(r.sections)
}

// BuildGradle returns the section profile for Flutter android/app/build.gradle
// files. Matchers are immutable, so the returned registry may be shared across
// any number of concurrent scans.
//
// Keywords are set only on optional, non-persistent sections: dropping a
// section whose keyword never occurs in the input cannot change which required
// sections are outstanding, so prefiltered scans produce identical results.
func BuildGradle() *Registry {
	reg, err := NewRegistry(
		&types.Section{
			ID:         IDComment,
			Matcher:    Comment(),
			Persistent: true,
		},
		&types.Section{
			ID:         IDNewline,
			Matcher:    NewlineRun(),
			Persistent: true,
		},
		&types.Section{
			ID:       IDOldPlugins,
			Matcher:  LegacyPlugins(),
			Keywords: []string{"plugins {"},
		},
		&types.Section{
			ID:       IDLocalProperties,
			Matcher:  PropertiesFileLoad("localProperties", "localPropertiesFile", "local.properties"),
			Required: true,
		},
		&types.Section{
			ID:       IDKeystoreProperties,
			Matcher:  PropertiesFileLoad("keystoreProperties", "keystorePropertiesFile", "key.properties"),
			Keywords: []string{"def keystoreProperties"},
		},
		&types.Section{
			ID:       IDFlutterRoot,
			Matcher:  SDKProperty("flutterRoot", "flutter.sdk", "Flutter SDK", "location with %s"),
			Required: true,
		},
	)
	if err != nil {
		// The profile is static; a construction failure is a programming error.
		panic(err)
	}
	return reg
}
