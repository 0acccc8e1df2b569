package fetch

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// builtinOverridesFS embeds the monorepo override table.
//
//go:embed overrides/monorepos.yml
var builtinOverridesFS embed.FS

// yamlOverride maps one repository to the subdirectory holding its Flutter app.
type yamlOverride struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	Path  string `yaml:"path"`
}

// yamlOverridesFile is the top-level structure of an overrides YAML file.
type yamlOverridesFile struct {
	Monorepos []yamlOverride `yaml:"monorepos"`
}

// Overrides resolves per-repository subdirectory paths for monorepos, keyed
// by "owner/repo".
type Overrides map[string]string

// Path returns the subdirectory for owner/repo, or "" when the app lives at
// the repository root.
func (o Overrides) Path(owner, repo string) string {
	return o[owner+"/"+repo]
}

// LoadBuiltinOverrides loads the embedded monorepo override table.
func LoadBuiltinOverrides() (Overrides, error) {
	data, err := builtinOverridesFS.ReadFile("overrides/monorepos.yml")
	if err != nil {
		return nil, fmt.Errorf("reading builtin overrides: %w", err)
	}
	return parseOverrides(data)
}

// LoadOverridesFile loads a monorepo override table from a YAML file path.
func LoadOverridesFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return parseOverrides(data)
}

func parseOverrides(data []byte) (Overrides, error) {
	var f yamlOverridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	o := make(Overrides, len(f.Monorepos))
	for _, m := range f.Monorepos {
		if m.Owner == "" || m.Repo == "" || m.Path == "" {
			return nil, fmt.Errorf("override entry missing owner, repo, or path")
		}
		o[m.Owner+"/"+m.Repo] = m.Path
	}
	return o, nil
}
