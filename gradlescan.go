// Package gradlescan classifies the structural sections at the front of the
// Android build.gradle files of Flutter projects.
//
// A fixed profile of known sections (comment lines, blank-line runs, the
// legacy plugins block, properties-file loads, the Flutter SDK property
// block) is matched greedily against the head of each file. A scan reports
// which sections appeared, in order, and whether every required section was
// found.
//
// # Basic Usage
//
// Create a scanner with the build.gradle profile and scan content:
//
//	scanner, err := gradlescan.NewScanner()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := scanner.ScanString(content)
//	fmt.Printf("sections: %v complete: %v\n", result.Sections, result.Complete)
//
// # Scanning a cache directory
//
//	results, err := scanner.ScanDir(ctx, "build/files")
//	for _, r := range results {
//	    fmt.Println(r.Path, r.Sections, r.Complete)
//	}
package gradlescan

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/flutterscan/gradlescan/pkg/enum"
	"github.com/flutterscan/gradlescan/pkg/prefilter"
	"github.com/flutterscan/gradlescan/pkg/scanner"
	"github.com/flutterscan/gradlescan/pkg/section"
	"github.com/flutterscan/gradlescan/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/flutterscan/gradlescan" without subpackages.
type (
	// Result is the outcome of scanning one file.
	Result = types.Result

	// Section describes one recognizable build.gradle block.
	Section = types.Section
)

// Scanner classifies build.gradle sections. It is immutable after
// construction and safe for concurrent use.
type Scanner struct {
	registry  *section.Registry
	prefilter *prefilter.Prefilter
	config    *scannerConfig
}

// scannerConfig holds scanner configuration.
type scannerConfig struct {
	registry    *section.Registry
	noPrefilter bool
	suffix      string
	workers     int
}

// Option configures a Scanner.
type Option func(*scannerConfig)

// WithRegistry uses a custom section registry instead of the build.gradle
// profile.
func WithRegistry(reg *section.Registry) Option {
	return func(c *scannerConfig) {
		c.registry = reg
	}
}

// WithoutPrefilter disables the Aho-Corasick keyword prefilter. Results are
// identical either way; this exists for debugging and benchmarking.
func WithoutPrefilter() Option {
	return func(c *scannerConfig) {
		c.noPrefilter = true
	}
}

// WithSuffix restricts ScanDir to files with the given name suffix.
// Default is ".build.gradle".
func WithSuffix(suffix string) Option {
	return func(c *scannerConfig) {
		c.suffix = suffix
	}
}

// WithWorkers sets the number of parallel file readers used by ScanDir.
// Default is the number of CPUs.
func WithWorkers(workers int) Option {
	return func(c *scannerConfig) {
		c.workers = workers
	}
}

// NewScanner creates a new Scanner with the given options.
//
// By default, the scanner:
//   - Uses the Flutter android/app/build.gradle section profile
//   - Prefilters optional sections by keyword before each scan
//   - Considers files ending in ".build.gradle" during ScanDir
func NewScanner(opts ...Option) (*Scanner, error) {
	config := &scannerConfig{
		suffix: ".build.gradle",
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.registry == nil {
		config.registry = section.BuildGradle()
	}
	if config.registry.Len() == 0 {
		return nil, fmt.Errorf("registry has no sections")
	}

	s := &Scanner{
		registry: config.registry,
		config:   config,
	}
	if !config.noPrefilter {
		s.prefilter = prefilter.New(config.registry.Sections())
	}
	return s, nil
}

// ScanString scans content and reports the sections matched at its front.
// The scan is pure and cannot fail; content is assumed to be valid UTF-8.
func (s *Scanner) ScanString(content string) *Result {
	reg := s.registry
	if s.prefilter != nil {
		filtered := s.prefilter.Filter([]byte(content))
		if len(filtered) != reg.Len() {
			if sub, err := section.NewRegistry(filtered...); err == nil {
				reg = sub
			}
		}
	}
	return scanner.Scan(reg, content)
}

// ScanBytes scans raw bytes. Returns an error when content is not valid
// UTF-8; the section grammars are defined over decoded text.
func (s *Scanner) ScanBytes(content []byte) (*Result, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("content is not valid UTF-8")
	}
	return s.ScanString(string(content)), nil
}

// ScanFile reads and scans a file. The result carries the file path.
func (s *Scanner) ScanFile(path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	result, err := s.ScanBytes(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	result.Path = path
	return result, nil
}

// ScanDir scans every matching file under dir in parallel and returns the
// results sorted by path. Files that cannot be decoded are excluded; a scan
// that could not satisfy every required section is reported per file via
// Result.Complete, never as an error.
func (s *Scanner) ScanDir(ctx context.Context, dir string) ([]*Result, error) {
	enumerator := enum.NewFilesystemEnumerator(enum.Config{
		Root:    dir,
		Suffix:  s.config.suffix,
		Workers: s.config.workers,
	})

	var mu sync.Mutex
	var results []*Result

	err := enumerator.Enumerate(ctx, func(path string, content []byte) error {
		result := s.ScanString(string(content))
		result.Path = path

		mu.Lock()
		results = append(results, result)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// Registry returns the section registry in use.
func (s *Scanner) Registry() *section.Registry {
	return s.registry
}

// SectionCount returns the number of sections in the profile.
func (s *Scanner) SectionCount() int {
	return s.registry.Len()
}
