package wiki

import (
	"slices"
	"strings"
	"unicode"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxListDepth bounds the ancestor walk for list prefixes.
const maxListDepth = 64

// headingCodes maps heading tags to the level code written in front of the
// text. h6 has no wiki level of its own and is written as h5.
var headingCodes = []struct{ tag, code string }{
	{"h1", "h1"},
	{"h2", "h2"},
	{"h3", "h3"},
	{"h4", "h4"},
	{"h5", "h5"},
	{"h6", "h5"},
}

// codeTags are rendered as inline code unless they form a code block.
var codeTags = []string{"code", "kbd", "samp", "tt"}

// Rules returns the wiki markup rules in precedence order.
func Rules() []md.Rule {
	rules := make([]md.Rule, 0, len(headingCodes)+14)
	for _, h := range headingCodes {
		rules = append(rules, heading(h.tag, h.code))
	}

	rules = append(rules,
		// Text effects.
		wrap([]string{"em", "b"}, "*", "*"),
		wrap([]string{"i"}, "_", "_"),
		wrap([]string{"cite"}, "??", "??"),
		wrap([]string{"del"}, "-", "-"),
		wrap([]string{"u"}, "+", "+"),
		wrap([]string{"sup"}, "^", "^"),
		wrap([]string{"sub"}, "~", "~"),
		quote([]string{"blockquote"}),
		wrap([]string{"var"}, "`", "`"),

		// Breaks.
		fixed([]string{"br"}, "\n\n"),
		fixed([]string{"hr"}, "\n\n----\n\n"),

		md.Rule{Filter: codeTags, Replacement: inlineCode},
		md.Rule{Filter: []string{"a"}, Replacement: link},
		md.Rule{Filter: []string{"li"}, Replacement: listItem},
	)
	return rules
}

// Plugin adds Rules to a converter.
func Plugin() md.Plugin {
	return ordered(Rules())
}

// ordered registers rules so that the first one declared for a tag is tried
// first. The converter tries the most recently added rule first and moves on
// to the previous one when a replacement returns nil.
func ordered(rules []md.Rule) md.Plugin {
	return func(*md.Converter) []md.Rule {
		reversed := slices.Clone(rules)
		slices.Reverse(reversed)
		return reversed
	}
}

func heading(tag, code string) md.Rule {
	return md.Rule{
		Filter: []string{tag},
		Replacement: func(content string, _ *goquery.Selection, _ *md.Options) *string {
			res := "\n\n" + code + ". " + content + "\n\n"
			return &res
		},
	}
}

func wrap(tags []string, before, after string) md.Rule {
	return md.Rule{
		Filter: tags,
		Replacement: func(content string, _ *goquery.Selection, _ *md.Options) *string {
			res := flank(content, before, after)
			return &res
		},
	}
}

func quote(tags []string) md.Rule {
	return md.Rule{
		Filter: tags,
		Replacement: func(content string, _ *goquery.Selection, _ *md.Options) *string {
			res := "{quote}\n" + content + "\n{quote}"
			return &res
		},
	}
}

func fixed(tags []string, text string) md.Rule {
	return md.Rule{
		Filter: tags,
		Replacement: func(string, *goquery.Selection, *md.Options) *string {
			res := text
			return &res
		},
	}
}

// flank wraps content in delimiters, keeping its leading and trailing
// whitespace outside them. Whitespace-only content renders as one space.
func flank(content, before, after string) string {
	trimmed := strings.TrimFunc(content, unicode.IsSpace)
	if trimmed == "" {
		if content == "" {
			return ""
		}
		return " "
	}
	leading := content[:len(content)-len(strings.TrimLeftFunc(content, unicode.IsSpace))]
	trailing := content[len(strings.TrimRightFunc(content, unicode.IsSpace)):]
	return leading + before + trimmed + after + trailing
}

// inlineCode renders code-like elements in backticks. A sole child of pre is a
// code block and is left to the fenced code rule.
func inlineCode(content string, selec *goquery.Selection, _ *md.Options) *string {
	if isCodeBlock(selec.Get(0)) {
		return nil
	}
	res := flank(content, "`", "`")
	return &res
}

func isCodeBlock(n *html.Node) bool {
	hasSiblings := n.PrevSibling != nil || n.NextSibling != nil
	return isElement(n.Parent, atom.Pre) && !hasSiblings
}

func link(content string, selec *goquery.Selection, _ *md.Options) *string {
	href := selec.AttrOr("href", "")
	if href == "" {
		return nil
	}

	var res string
	switch {
	case content == href:
		res = "[" + href + "]"
	case href == "mailto:"+content:
		res = "[" + href + "]"
	default:
		res = "[" + content + "|" + href + "]"
	}
	return &res
}

// listItem writes one item per line. Continuation lines are indented by four
// spaces so they stay inside the item.
func listItem(content string, selec *goquery.Selection, _ *md.Options) *string {
	content = strings.TrimLeftFunc(content, unicode.IsSpace)
	content = strings.ReplaceAll(content, "\n", "\n    ")

	res := listPrefix(selec.Get(0)) + " " + content
	if selec.Next().Is("li") {
		res += "\n"
	}
	return &res
}

// listPrefix builds the nesting marker for a list item, outermost list first:
// '#' per ordered and '*' per unordered list. The walk only climbs past a list
// that sits directly inside another list item.
func listPrefix(n *html.Node) string {
	var prefix []byte
	parent := n.Parent
	for depth := 0; parent != nil && depth < maxListDepth; depth++ {
		switch {
		case isElement(parent, atom.Ol):
			prefix = append([]byte{'#'}, prefix...)
		case isElement(parent, atom.Ul):
			prefix = append([]byte{'*'}, prefix...)
		default:
			return string(prefix)
		}

		grandparent := parent.Parent
		if !isElement(grandparent, atom.Li) {
			break
		}
		parent = grandparent.Parent
	}
	return string(prefix)
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == a
}
