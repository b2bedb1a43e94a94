package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	svc := NewService()

	out, err := svc.RenderMarkdown("# Heading\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	svc := NewService()

	out, err := svc.RenderMarkdown("hello\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}

func TestSanitizeHTML(t *testing.T) {
	svc := NewService()

	out := svc.SanitizeHTML(`<p onclick="evil()">hi</p><script>alert(1)</script>`)
	assert.Equal(t, "<p>hi</p>", out)
}

func TestExtractText(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain paragraph", "<p>hello world</p>", "hello world"},
		{"nested markup", "<div><p>one</p><p>two <em>three</em></p></div>", "one two three"},
		{"collapses whitespace", "<p>a\n\n   b</p>", "a b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ExtractText(tt.input))
		})
	}
}

func TestMakeExcerpt(t *testing.T) {
	svc := NewService()

	long := "<p>" + strings.Repeat("word ", 100) + "</p>"
	got := svc.MakeExcerpt(long, 50)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), 52)

	short := svc.MakeExcerpt("<p>tiny</p>", 50)
	assert.Equal(t, "tiny", short)
}

func TestIsEmptyContent(t *testing.T) {
	svc := NewService()

	assert.True(t, svc.IsEmptyContent(""))
	assert.True(t, svc.IsEmptyContent("   \n "))
	assert.True(t, svc.IsEmptyContent("<p><br></p>"))
	assert.True(t, svc.IsEmptyContent("  <p><br></p>  "))
	assert.False(t, svc.IsEmptyContent("<p>text</p>"))
}
