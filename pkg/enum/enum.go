// Package enum discovers build-configuration files to scan.
package enum

import "context"

// Enumerator yields file content from a source.
type Enumerator interface {
	// Enumerate invokes callback once per discovered file with its path and
	// UTF-8 content. Returning an error from the callback aborts enumeration.
	Enumerate(ctx context.Context, callback func(path string, content []byte) error) error
}

// Config for enumeration.
type Config struct {
	// Root is the directory to enumerate.
	Root string

	// Suffix restricts enumeration to files with this name suffix
	// (e.g. ".build.gradle"). Empty means all files.
	Suffix string

	// MaxFileSize is the maximum file size to process (0 = no limit).
	MaxFileSize int64

	// Workers is the number of parallel file readers (0 = NumCPU).
	Workers int
}
