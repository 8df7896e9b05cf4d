package wiki

import "regexp"

// space matches what ECMAScript treats as \s. Pasted documents are full of
// U+00A0, which RE2's \s does not cover.
const space = `\s\x0b\x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// Step is one substitution of the escape pipeline.
type Step func(string) string

func replace(pattern, replacement string) Step {
	re := regexp.MustCompile(pattern)
	return func(s string) string {
		return re.ReplaceAllLiteralString(s, replacement)
	}
}

// escapeSteps run in order. Each step sees the output of the previous one, so
// the order must not change.
var escapeSteps = []Step{
	// Smart punctuation.
	replace(`[\x{2018}\x{2019}\x{00b4}]`, "'"),
	replace(`[\x{201c}\x{201d}\x{2033}]`, `"`),
	replace(`[\x{2212}\x{2022}\x{00b7}\x{25aa}]`, "-"),
	replace(`[\x{2013}\x{2015}]`, "--"),
	replace(`\x{2014}`, "---"),
	replace(`\x{2026}`, "..."),

	// Whitespace and continuation markers.
	replace(`[ \t]+\n`, "\n"),
	replace(`[`+space+`]*\\\n`, "\\\n"),
	replace(`[`+space+`]*\\\n[`+space+`]*\\\n`, "\n\n"),
	replace(`[`+space+`]*\\\n\n`, "\n\n"),
	replace(`\n-\n`, "\n"),
	replace(`\n\n[`+space+`]*\\\n`, "\n\n"),
	replace(`\n\n\n*`, "\n\n"),
	replace(`(?m)[ \t]+$`, ""),
	replace(`^[`+space+`]+|[`+space+`\\]+$`, ""),

	// Flatten into a string literal body.
	replace(`\n`, `\n`),
	replace(`"`, `\"`),
}

// Escape normalizes punctuation and whitespace in markup and flattens it into
// a single line with \n and \" escapes. Escape is not idempotent: running it
// over its own output escapes the quotes again.
func Escape(markup string) string {
	for _, step := range escapeSteps {
		markup = step(markup)
	}
	return markup
}
