package markdown

import (
	"bytes"
	"strings"
	"testing"
)

func render(md string) string {
	var buf bytes.Buffer
	RenderMarkdown(&buf, md)
	return buf.String()
}

func TestRenderMarkdownHeadings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", "<h1>Heading 1</h1>"},
		{"## Heading 2", "<h2>Heading 2</h2>"},
		{"### Heading 3", "<h3>Heading 3</h3>"},
	}
	for _, tt := range tests {
		got := render(tt.input)
		if got != tt.expected {
			t.Errorf("RenderMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownList(t *testing.T) {
	input := "- item 1\n- item 2"
	expected := "<ul><li>item 1</li><li>item 2</li></ul>"
	if got := render(input); got != expected {
		t.Errorf("RenderMarkdown(%q) = %q, want %q", input, got, expected)
	}
}

func TestRenderMarkdownOrderedList(t *testing.T) {
	input := "1. first\n2. second\n3. third"
	expected := "<ol><li>first</li><li>second</li><li>third</li></ol>"
	if got := render(input); got != expected {
		t.Errorf("RenderMarkdown(%q) = %q, want %q", input, got, expected)
	}
}

func TestRenderMarkdownOrderedListFollowedByParagraph(t *testing.T) {
	got := render("1. item one\n2. item two\n\nsome text")
	if !strings.Contains(got, "<ol>") || !strings.Contains(got, "</ol>") {
		t.Errorf("expected <ol> tags: %q", got)
	}
	if !strings.Contains(got, "<p>") {
		t.Errorf("expected paragraph after list: %q", got)
	}
}

func TestRenderMarkdownBlockquote(t *testing.T) {
	got := render("> quoted line")
	if !strings.Contains(got, "<blockquote>quoted line</blockquote>") {
		t.Errorf("RenderMarkdown blockquote = %q", got)
	}
}

func TestRenderMarkdownCodeBlock(t *testing.T) {
	got := render("```\ncode here\n```")
	if !strings.Contains(got, "<pre><code>") || !strings.Contains(got, "</code></pre>") {
		t.Errorf("RenderMarkdown code block failed: %q", got)
	}
	if !strings.Contains(got, "code here") {
		t.Errorf("RenderMarkdown code block missing content: %q", got)
	}
}

func TestRenderMarkdownUnclosedCodeBlock(t *testing.T) {
	got := render("```\ndangling")
	if !strings.Contains(got, "</code></pre>") {
		t.Errorf("unclosed code block should still be terminated: %q", got)
	}
}

func TestRenderMarkdownCodeBlockEscapesHTML(t *testing.T) {
	got := render("```\n<script>bad()</script>\n```")
	if strings.Contains(got, "<script>") {
		t.Errorf("code block content should be escaped: %q", got)
	}
}

func TestRenderMarkdownParagraphEscapesHTML(t *testing.T) {
	got := render("hello <b>world</b>")
	if strings.Contains(got, "<b>") {
		t.Errorf("paragraph content should be escaped: %q", got)
	}
}

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"text **bold** more", "text <strong>bold</strong> more"},
	}
	for _, tt := range tests {
		got := formatInline(tt.input)
		if got != tt.expected {
			t.Errorf("formatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*italic*", "<em>italic</em>"},
		{"text *italic* more", "text <em>italic</em> more"},
	}
	for _, tt := range tests {
		got := formatInline(tt.input)
		if got != tt.expected {
			t.Errorf("formatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"`code`", "<code>code</code>"},
		{"`a` and `b`", "<code>a</code> and <code>b</code>"},
		// bold inside backticks should not be formatted
		{"`**not bold**`", "<code>**not bold**</code>"},
	}
	for _, tt := range tests {
		got := formatInline(tt.input)
		if got != tt.expected {
			t.Errorf("formatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineLink(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			"[Wikipedia](https://en.wikipedia.org/wiki/Some_Article_Title)",
			`<a href="https://en.wikipedia.org/wiki/Some_Article_Title">Wikipedia</a>`,
		},
		{
			"Visit [link](https://example.com/my_page) for info",
			`Visit <a href="https://example.com/my_page">link</a> for info`,
		},
		{
			"[relative](/contact/)",
			`<a href="/contact/">relative</a>`,
		},
	}
	for _, tt := range tests {
		got := formatInline(tt.input)
		if got != tt.expected {
			t.Errorf("formatInline(%q)\n  got:  %q\n  want: %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineLinkUnsafeScheme(t *testing.T) {
	got := formatInline("[click](javascript:alert(1))")
	if strings.Contains(got, "javascript") {
		t.Errorf("unsafe scheme should be dropped: %q", got)
	}
	if !strings.Contains(got, "click") {
		t.Errorf("link text should survive: %q", got)
	}
}

func TestFormatInlineURLNotItalicized(t *testing.T) {
	got := formatInline("[a](https://example.com/x_y) and [b](https://example.com/p_q)")
	if strings.Contains(got, "<em>") {
		t.Errorf("underscores inside URLs must not become emphasis: %q", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"mailto:hello@example.com", "mailto:hello@example.com"},
		{"/blog/", "/blog/"},
		{"#section", "#section"},
		{"javascript:alert(1)", ""},
		{"data:text/html,x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := safeURL(tt.input); got != tt.expected {
			t.Errorf("safeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
