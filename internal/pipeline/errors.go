package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/kanjiparse/internal/tabular"
)

var (
	// ErrMissingInput marks a source file that does not exist or is not
	// configured. The dependent stage is skipped.
	ErrMissingInput = errors.New("missing input")

	// ErrMalformedSource marks a source that exists but cannot be parsed.
	// The dependent stage is skipped.
	ErrMalformedSource = errors.New("malformed source")

	// ErrOutput marks an output that cannot be written. It aborts the run.
	ErrOutput = tabular.ErrOutput
)

// sourceError classifies a failure to read a source.
func sourceError(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMissingInput, path)
	}
	return fmt.Errorf("%w: %s: %w", ErrMalformedSource, path, err)
}

// checkSource reports ErrMissingInput for an unset or absent path.
func checkSource(path string) error {
	if path == "" {
		return fmt.Errorf("%w: no path configured", ErrMissingInput)
	}
	info, err := os.Stat(path)
	if err != nil {
		return sourceError(path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrMalformedSource, path)
	}
	return nil
}

// Recoverable reports whether err only skips a stage.
func Recoverable(err error) bool {
	return errors.Is(err, ErrMissingInput) || errors.Is(err, ErrMalformedSource)
}
