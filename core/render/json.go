// Package render — JSON renderer.
// Builds the structured JSON output from markup and metadata.
// Parses the wiki markup to extract structural information (headings, links,
// list items, quotes, code blocks).
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/pastewiki/core"
	"github.com/gaurav-prasanna/pastewiki/core/wiki"
)

// JSONRenderer produces structured JSON output from wiki markup.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts markup and metadata into a core.Document.
func (r *JSONRenderer) Render(markup string, meta core.Metadata) ([]byte, error) {
	doc := core.Document{
		Metadata: meta,
		Content: core.Content{
			Markup:  strings.Trim(markup, "\n"),
			Escaped: wiki.Escape(markup),
		},
		Structure: core.Structure{
			Headings:   extractHeadings(markup),
			Links:      extractLinks(markup),
			ListItems:  countListItems(markup),
			Quotes:     strings.Count(markup, "{quote}") / 2,
			CodeBlocks: strings.Count(markup, "```") / 2,
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Wiki markup parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^h([1-6])\. (.*)$`)

func extractHeadings(markup string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(markup, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		headings = append(headings, core.Heading{
			Level: level,
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// linkRegex matches [href] and [text|href].
var linkRegex = regexp.MustCompile(`\[(?:([^\[\]|]*)\|)?([^\[\]|]+)\]`)

func extractLinks(markup string) []core.Link {
	matches := linkRegex.FindAllStringSubmatch(markup, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		text := m[1]
		if text == "" {
			text = strings.TrimPrefix(m[2], "mailto:")
		}
		links = append(links, core.Link{Text: text, Href: m[2]})
	}
	return links
}

// listItemRegex matches lines starting with a #/* prefix and a space.
var listItemRegex = regexp.MustCompile(`(?m)^[ \t]*[#*]+ `)

func countListItems(markup string) int {
	return len(listItemRegex.FindAllString(markup, -1))
}
