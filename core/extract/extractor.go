// Package extract implements the Extractor interface.
// It isolates the pasted content from an HTML document by:
//  1. Removing noise elements (scripts, styles, embedded media, form controls)
//  2. Unwrapping the bold wrapper Google Docs puts around a whole paste
//  3. Finding the best content container of a full page (<main>, <article>,
//     or <body>); a pasted fragment keeps its whole body
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before extraction.
// These contribute no meaningful text to a paste.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"meta", "link",
	"iframe", "video", "audio",
	"svg", "canvas",
	"button", "input", "select", "textarea",
}

// pageMarker matches the tags that only a full page carries. Fragments from the
// clipboard start with their content, or with a lone <meta charset>.
var pageMarker = regexp.MustCompile(`(?i)<(!doctype|html|head)[\s>]`)

// googleDocsWrapper matches the <b> Google Docs wraps around copied content.
// It carries font-weight:normal, so rendering it as bold would be wrong.
const googleDocsWrapper = `b[id^="docs-internal-guid"]`

// HTMLExtractor strips noise from HTML and returns the content fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract takes raw HTML and returns a cleaned HTML fragment containing
// only the inner content of the best container.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	doc.Find(googleDocsWrapper).Each(func(_ int, s *goquery.Selection) {
		if s.Contents().Length() == 0 {
			s.Remove()
			return
		}
		s.Contents().Unwrap()
	})

	// <main> is the most semantically correct, then <article>, then <body>.
	// A fragment is all content, so it keeps its whole body.
	containers := []string{"body"}
	if pageMarker.MatchString(html) {
		containers = []string{"main", "article", "body"}
	}

	var content *goquery.Selection
	for _, tag := range containers {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return result, nil
}

// Title returns the document <title>, or the text of the first <h1> when the
// fragment has no title.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
