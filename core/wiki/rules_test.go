package wiki

import (
	"strings"
	"testing"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markup converts html and drops the blank lines around the result.
func markup(html string) string {
	return strings.TrimSpace(Markup(html))
}

// find parses html and returns the last element matching selector.
func find(t *testing.T, html, selector string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	sel := doc.Find(selector).Last()
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestMarkup(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"h1", `<h1>Title</h1>`, "h1. Title"},
		{"h2", `<h2>Two</h2>`, "h2. Two"},
		{"h3", `<h3>Three</h3>`, "h3. Three"},
		{"h4", `<h4>Four</h4>`, "h4. Four"},
		{"h5", `<h5>Five</h5>`, "h5. Five"},
		{"h6 written as h5", `<h6>Six</h6>`, "h5. Six"},
		{"heading inside div", `<div><h3>Deep</h3></div>`, "h3. Deep"},

		{"em", `<em>a</em>`, "*a*"},
		{"b", `<b>a</b>`, "*a*"},
		{"i", `<i>a</i>`, "_a_"},
		{"cite", `<cite>a</cite>`, "??a??"},
		{"del", `<del>a</del>`, "-a-"},
		{"u", `<u>a</u>`, "+a+"},
		{"sup", `x<sup>2</sup>`, "x^2^"},
		{"sub", `H<sub>2</sub>O`, "H~2~O"},
		{"var", `<var>n</var>`, "`n`"},
		{"blockquote", `<blockquote>q</blockquote>`, "{quote}\nq\n{quote}"},
		{"br", `a<br>b`, "a\n\nb"},
		{"hr", `<hr>`, "----"},
		{"flanking space moves out", `<p><b>bold </b>text</p>`, "*bold* text"},
		{"nested effects", `<b><i>x</i></b>`, "*_x_*"},

		{"strong", `<strong>a</strong>`, "**a**"},
		{"s", `<s>a</s>`, "~~a~~"},
		{"strike", `<strike>a</strike>`, "~~a~~"},
		{"image", `<img src="x.png" alt="pic">`, "![pic](x.png)"},

		{"inline code", `<p>run <code>ls</code></p>`, "run `ls`"},
		{"kbd", `<kbd>Ctrl</kbd>`, "`Ctrl`"},
		{"samp", `<samp>out</samp>`, "`out`"},
		{"tt", `<tt>mono</tt>`, "`mono`"},

		{"link text equals href", `<a href="http://x.com">http://x.com</a>`, "[http://x.com]"},
		{"mailto autolink", `<a href="mailto:me@x.com">me@x.com</a>`, "[mailto:me@x.com]"},
		{"titled link", `<a href="http://x.com">site</a>`, "[site|http://x.com]"},
		{"link without text", `<a href="http://x.com"></a>`, "[|http://x.com]"},
		{"anchor without href", `<a name="top">plain</a>`, "plain"},

		{"unordered list", `<ul><li>one</li><li>two</li></ul>`, "* one\n* two"},
		{"ordered list", `<ol><li>one</li><li>two</li></ol>`, "# one\n# two"},
		{"list with whitespace", "<ul>\n  <li>one</li>\n  <li>two</li>\n</ul>", "* one\n* two"},
		{"nested ordered", `<ol><li>one<ol><li>a</li></ol></li></ol>`, "# one\n    ## a"},
		{"mixed nesting", `<ul><li>x<ol><li>y</li></ol></li></ul>`, "* x\n    *# y"},
		{"item leading space", `<ul><li>   spaced</li></ul>`, "* spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup(tt.html))
		})
	}
}

func TestMarkupUnmatchedElements(t *testing.T) {
	got := markup(`<p><strong>bold</strong> <s>gone</s> <img src="x.png" alt="pic"></p>`)
	assert.Contains(t, got, "**bold**")
	assert.Contains(t, got, "~~gone~~")
	assert.Contains(t, got, "![pic](x.png)")

	got = markup("<pre><code>a\nb</code></pre>")
	assert.Contains(t, got, "```\na\nb")
	assert.True(t, strings.HasSuffix(got, "```"))
	assert.NotContains(t, got, "`a")

	got = markup(`<style>p{}</style><script>x()</script><p>a</p>`)
	assert.Equal(t, "a", got)

	got = markup(`<a href="">plain</a>`)
	assert.Contains(t, got, "plain")
	assert.NotContains(t, got, "|")
}

func TestWhitespaceOnlyEffectRendersNoDelimiters(t *testing.T) {
	got := markup(`<p>x <b> </b>y</p>`)
	assert.NotContains(t, got, "*")
	assert.Equal(t, "x y", strings.Join(strings.Fields(got), " "))

	assert.Equal(t, " ", flank(" ", "*", "*"))
	assert.Equal(t, " ", flank(" \n\t", "*", "*"))
	assert.Equal(t, "", flank("", "*", "*"))
	assert.Equal(t, " *a*\n", flank(" a\n", "*", "*"))
}

func TestInlineCodeLeavesCodeBlocks(t *testing.T) {
	assert.True(t, isCodeBlock(find(t, `<pre><code>x</code></pre>`, "code").Get(0)))
	assert.False(t, isCodeBlock(find(t, `<pre>x <code>y</code></pre>`, "code").Get(0)))
	assert.False(t, isCodeBlock(find(t, `<pre><code>x</code> </pre>`, "code").Get(0)))
	assert.False(t, isCodeBlock(find(t, `<p><code>x</code></p>`, "code").Get(0)))

	assert.Nil(t, inlineCode("x", find(t, `<pre><code>x</code></pre>`, "code"), nil))

	got := inlineCode("y", find(t, `<pre>x <code>y</code></pre>`, "code"), nil)
	require.NotNil(t, got)
	assert.Equal(t, "`y`", *got)
}

func TestListItemWithoutList(t *testing.T) {
	got := listItem("x", find(t, `<li>x</li>`, "li"), nil)
	require.NotNil(t, got)
	assert.Equal(t, " x", *got)
}

func TestListPrefixThreeLevels(t *testing.T) {
	html := `<ul><li>a<ul><li>b<ol><li>c</li></ol></li></ul></li></ul>`
	got := Markup(html)
	assert.Contains(t, got, "**# c")
	assert.Contains(t, got, "** b")
	assert.Contains(t, got, "* a")

	assert.Equal(t, "**#", listPrefix(find(t, html, "li").Get(0)))
}

func TestListPrefixDeepNestingIsBounded(t *testing.T) {
	var openTags, closeTags string
	for i := 0; i < maxListDepth+10; i++ {
		openTags += "<ul><li>x"
		closeTags += "</li></ul>"
	}
	html := openTags + closeTags

	innermost := find(t, html, "li")
	assert.Equal(t, strings.Repeat("*", maxListDepth), listPrefix(innermost.Get(0)))

	assert.NotPanics(t, func() {
		Markup(html)
	})
}

func TestRulesOrder(t *testing.T) {
	rules := Rules()
	assert.Len(t, rules, 20)

	// Fresh slice on every call.
	rules[0] = rules[1]
	assert.Equal(t, "h1. T", markup(`<h1>T</h1>`))
}

func constant(tag, text string) md.Rule {
	return md.Rule{
		Filter: []string{tag},
		Replacement: func(string, *goquery.Selection, *md.Options) *string {
			return &text
		},
	}
}

func TestFirstDeclaredRuleWins(t *testing.T) {
	conv := newConverter(ordered([]md.Rule{constant("b", "first"), constant("b", "second")}))
	got, err := conv.ConvertString(`<b>x</b>`)
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestNilReplacementFallsThrough(t *testing.T) {
	skip := md.Rule{
		Filter: []string{"b"},
		Replacement: func(string, *goquery.Selection, *md.Options) *string {
			return nil
		},
	}
	conv := newConverter(ordered([]md.Rule{skip, constant("b", "second")}))
	got, err := conv.ConvertString(`<b>x</b>`)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestMarkupEmpty(t *testing.T) {
	assert.Equal(t, "", markup(""))
	assert.Equal(t, "", Convert(""))
}
