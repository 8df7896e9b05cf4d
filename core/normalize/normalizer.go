// Package normalize implements the Normalizer interface.
// It converts a cleaned HTML fragment into intermediate markup: Jira wiki
// markup through the wiki rule set, or GitHub-flavoured Markdown through
// html-to-markdown.
package normalize

import (
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/gaurav-prasanna/pastewiki/core/wiki"
)

// Markup formats.
const (
	FormatWiki     = "wiki"
	FormatMarkdown = "markdown"
)

// WikiNormalizer converts HTML to wiki markup using the wiki rule set.
type WikiNormalizer struct{}

// NewWiki creates a WikiNormalizer.
func NewWiki() *WikiNormalizer {
	return &WikiNormalizer{}
}

// Normalize converts a cleaned HTML fragment into unescaped wiki markup.
func (n *WikiNormalizer) Normalize(html string) (string, error) {
	return wiki.Markup(html), nil
}

// Format returns FormatWiki.
func (n *WikiNormalizer) Format() string {
	return FormatWiki
}

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct {
	conv *converter.Converter
}

// NewMarkdown creates a MarkdownNormalizer with GitHub-flavoured extensions.
func NewMarkdown() *MarkdownNormalizer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &MarkdownNormalizer{conv: conv}
}

// Normalize converts a cleaned HTML fragment into Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	markdown, err := n.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

// Format returns FormatMarkdown.
func (n *MarkdownNormalizer) Format() string {
	return FormatMarkdown
}
