// Package core defines the pipeline interfaces for pastewiki.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the raw HTML read from a source.
type FetchResult struct {
	Source     string
	StatusCode int // 0 for sources that are not fetched over HTTP
	HTML       string
}

// Metadata describes a converted fragment.
type Metadata struct {
	Source      string `json:"source"`
	Title       string `json:"title,omitempty"`
	Format      string `json:"format"`
	ConvertedAt string `json:"converted_at"` // ISO8601
}

// Heading is a heading found in the converted markup.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is a hyperlink found in the converted markup.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Content holds the converted text in its output forms.
type Content struct {
	Markup  string `json:"markup"`
	Escaped string `json:"escaped,omitempty"`
}

// Structure holds structural counts parsed from the markup.
type Structure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	ListItems  int       `json:"list_items"`
	Quotes     int       `json:"quotes"`
	CodeBlocks int       `json:"code_blocks"`
}

// Document is the complete JSON output for a single conversion.
type Document struct {
	Metadata  Metadata  `json:"metadata"`
	Content   Content   `json:"content"`
	Structure Structure `json:"structure"`
}

// Fetcher reads raw HTML from a source (URL, file path, or stdin).
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Extractor strips noise from raw HTML and returns the pasted fragment.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts a cleaned HTML fragment into intermediate markup.
type Normalizer interface {
	Normalize(html string) (string, error)
	// Format names the markup dialect (e.g. "wiki", "markdown").
	Format() string
}

// Renderer converts markup (and metadata) into a final output format.
type Renderer interface {
	Render(markup string, meta Metadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".wiki", ".json").
	Extension() string
}
