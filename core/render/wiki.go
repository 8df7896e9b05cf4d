package render

import (
	"github.com/gaurav-prasanna/pastewiki/core"
	"github.com/gaurav-prasanna/pastewiki/core/wiki"
)

// EscapedRenderer renders wiki markup as one escaped line, ready to be pasted
// between double quotes.
type EscapedRenderer struct{}

// NewEscapedRenderer creates an EscapedRenderer.
func NewEscapedRenderer() *EscapedRenderer {
	return &EscapedRenderer{}
}

// Render escapes the markup. The output carries no trailing newline so it can
// be spliced into existing text.
func (r *EscapedRenderer) Render(markup string, meta core.Metadata) ([]byte, error) {
	return []byte(wiki.Escape(markup)), nil
}

// Extension returns the file extension for escaped output.
func (r *EscapedRenderer) Extension() string {
	return ".wiki.txt"
}
