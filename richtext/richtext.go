// Package richtext turns editor-supplied text into HTML that is safe to embed in pages.
package richtext

import (
	"bytes"
	"html"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	contentPolicy *bluemonday.Policy
	stripPolicy   *bluemonday.Policy
	md            goldmark.Markdown
)

func init() {
	contentPolicy = bluemonday.UGCPolicy()
	// The editor styles blocks with rt-* classes (rt-h1-style, rt-box-info, ...).
	contentPolicy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("div", "p", "span", "section")

	stripPolicy = bluemonday.StripTagsPolicy()

	md = goldmark.New(
		goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
}

// HTML sanitises rich-text HTML for embedding.
func HTML(content string) template.HTML {
	return template.HTML(contentPolicy.Sanitize(content))
}

// Strip removes every tag and returns plain text. Entities are decoded so the
// result can be escaped once by the caller.
func Strip(content string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(content)))
}

// Excerpt returns at most limit characters of the plain text of content, adding an ellipsis when cut.
func Excerpt(content string, limit int) string {
	text := Strip(content)
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "…"
}

// Markdown renders a plain text field as Markdown. Raw HTML in the source is escaped
// by goldmark and the output is sanitised again.
func Markdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(contentPolicy.Sanitize(buf.String()))
}
