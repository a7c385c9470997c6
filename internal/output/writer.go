// Package output persists the rendered card at its fixed, well-known path.
package output

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
)

// jpegQuality matches the publishing pipeline's expectation for the artifact.
const jpegQuality = 95

// Writer encodes the composed card and replaces the previous artifact.
// It writes to a temp file in the target directory first and renames it
// into place, so downstream consumers never read a partially written file.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the fixed output path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the fixed artifact location.
func (w *Writer) Path() string {
	return w.path
}

// Write encodes img as JPEG and atomically replaces the artifact. Any
// failure here is fatal for the run: no artifact can be produced.
func (w *Writer) Write(img image.Image) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, ".marine_forecast-*.jpg")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()

	if err := jpeg.Encode(tmp, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode jpeg: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp output: %w", err)
	}

	if err := os.Rename(tmpName, w.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace artifact: %w", err)
	}
	return nil
}
