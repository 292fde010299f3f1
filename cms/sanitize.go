package cms

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// excerptMaxLen is the fixed excerpt length for the listing projection.
const excerptMaxLen = 200

// typographic maps decoded entity characters that read badly in plain-text
// listings onto ASCII equivalents. En and em dashes are left alone.
var typographic = strings.NewReplacer(
	"…", "...", // horizontal ellipsis (&hellip;)
	" ", " ", // non-breaking space (&nbsp;)
	"‘", "'", // left single quote
	"’", "'", // right single quote (&#8217;)
	"“", `"`, // left double quote
	"”", `"`, // right double quote
)

// cleanText strips markup tags from a rendered rich-text field and decodes
// both named and numeric HTML entities, then trims. The tokenizer already
// unescapes entities inside text nodes; a final UnescapeString pass catches
// double-escaped input like &amp;#8217; that WordPress produces for excerpts.
func cleanText(s string) string {
	s = stripTags(s)
	s = html.UnescapeString(s)
	s = typographic.Replace(s)
	return strings.TrimSpace(s)
}

// stripTags walks the HTML token stream and keeps only text content.
func stripTags(s string) string {
	tok := xhtml.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch tok.Next() {
		case xhtml.ErrorToken:
			return b.String()
		case xhtml.TextToken:
			b.Write(tok.Text())
		}
	}
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
