// Package wiki converts pasted rich-text HTML into Jira/Confluence wiki markup.
//
// Markup renders the HTML with the rules from Rules on top of a GitHub
// flavoured html-to-markdown converter, which handles every element the rules
// leave alone. Escape turns that intermediate markup into one line that can be
// dropped into a quoted string literal. Convert does both.
package wiki

import (
	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

// skipped elements carry no pasted text.
var skipped = []string{"head", "link", "meta", "noscript", "script", "style", "template", "title"}

var converter = newConverter(Plugin())

// newConverter builds the base converter: GitHub flavoured output, fenced code
// blocks and unescaped text. Rules from plugins take precedence over it.
func newConverter(plugins ...md.Plugin) *md.Converter {
	conv := md.NewConverter("", true, &md.Options{
		StrongDelimiter:  "**",
		EmDelimiter:      "_",
		BulletListMarker: "*",
		CodeBlockStyle:   "fenced",
		Fence:            "```",
		EscapeMode:       "disabled",
	})
	conv.Remove(skipped...)
	conv.Use(plugin.GitHubFlavored())
	conv.Use(plugins...)
	return conv
}

// Markup converts an HTML fragment into multi-line wiki markup. It never fails;
// input that cannot be read yields an empty string.
func Markup(fragment string) string {
	markup, err := converter.ConvertString(fragment)
	if err != nil {
		return ""
	}
	return markup
}

// Convert converts an HTML fragment into escaped, single-line wiki markup.
func Convert(fragment string) string {
	return Escape(Markup(fragment))
}
