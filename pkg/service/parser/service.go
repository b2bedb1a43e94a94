package parser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// EmptyEditorMarkup is what rich-text editors emit for a cleared document.
// It counts as no content at all.
const EmptyEditorMarkup = "<p><br></p>"

// Service renders markdown and filters HTML before it is stored or served.
type Service struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewService creates a parser service with GFM markdown support and a UGC
// sanitization policy.
func NewService() *Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, extension.Footnote,
			extension.Linkify, extension.Strikethrough, extension.Table, extension.TaskList,
		),
		goldmark.WithParserOptions(gmparser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithXHTML(), gmhtml.WithUnsafe()),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).
		OnElements("code", "pre", "span", "div", "img")
	policy.AllowAttrs("target", "rel").OnElements("a")

	return &Service{md: md, policy: policy}
}

// RenderMarkdown converts markdown to sanitized HTML.
func (s *Service) RenderMarkdown(content string) (string, error) {
	var buf strings.Builder
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return s.policy.Sanitize(buf.String()), nil
}

// SanitizeHTML strips unsafe markup from an HTML fragment.
func (s *Service) SanitizeHTML(content string) string {
	return s.policy.Sanitize(content)
}

// ExtractText returns the visible text of an HTML fragment, with runs of
// whitespace collapsed to single spaces.
func (s *Service) ExtractText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return strings.TrimSpace(content)
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// MakeExcerpt derives a plain-text teaser from HTML content, truncated to
// at most limit runes.
func (s *Service) MakeExcerpt(content string, limit int) string {
	text := s.ExtractText(content)
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:limit])) + "…"
}

// IsEmptyContent reports whether HTML content carries nothing worth saving.
// A cleared editor document counts as empty.
func (s *Service) IsEmptyContent(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" || trimmed == EmptyEditorMarkup {
		return true
	}
	return false
}
