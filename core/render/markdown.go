// Package render provides output renderers for the pastewiki pipeline.
// This file implements the passthrough renderer, which writes markup as-is.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/pastewiki/core"
)

// PassthroughRenderer writes markup unchanged apart from surrounding blank
// lines. It serves --markdown and --wiki --raw output.
type PassthroughRenderer struct {
	ext string
}

// NewPassthroughRenderer creates a PassthroughRenderer writing files with ext.
func NewPassthroughRenderer(ext string) *PassthroughRenderer {
	return &PassthroughRenderer{ext: ext}
}

// Render returns the trimmed markup followed by a newline.
func (r *PassthroughRenderer) Render(markup string, meta core.Metadata) ([]byte, error) {
	return []byte(strings.Trim(markup, "\n") + "\n"), nil
}

// Extension returns the configured file extension.
func (r *PassthroughRenderer) Extension() string {
	return r.ext
}
