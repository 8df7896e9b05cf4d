// Package output handles writing converted markup.
// Without an output directory the result goes to the given stream; with one,
// the filename is derived from the source (e.g., example_com_docs.wiki.txt,
// notes.wiki.txt, clipboard.wiki.txt for standard input).
package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// stdinName names output converted from standard input.
const stdinName = "clipboard"

// Writer writes rendered output to a stream or to disk.
type Writer struct {
	OutputDir string
	Stdout    io.Writer
}

// New creates a Writer. If outputDir is empty, output goes to stdout.
func New(outputDir string, stdout io.Writer) (*Writer, error) {
	if outputDir != "" {
		// Ensure the output directory exists.
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir, Stdout: stdout}, nil
}

// Write writes data for source. It returns the path written, or "" when the
// data went to the stream.
func (w *Writer) Write(source string, data []byte, ext string) (string, error) {
	if w.OutputDir == "" {
		if _, err := w.Stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing output: %w", err)
		}
		return "", nil
	}

	path := filepath.Join(w.OutputDir, filenameFromSource(source)+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// filenameFromSource converts a source into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
// Example: ./notes/paste.html → paste
func filenameFromSource(source string) string {
	if source == "" || source == "-" {
		return stdinName
	}

	parsed, err := url.Parse(source)
	if err != nil || parsed.Host == "" {
		base := filepath.Base(source)
		return sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
