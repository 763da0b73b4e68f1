package tinymark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownCommon(t *testing.T) {
	out := MarkdownCommon("# Hi\n~~x~~ [bad](javascript:alert) [ok](/ok)\n")
	assert.Equal(t, "<h1 id=\"hi\">Hi</h1>\n<p><del>x</del>bad<a href=\"/ok\">ok</a></p>\n", out)
}

func TestMarkdownBasic(t *testing.T) {
	out := MarkdownBasic("# Hi\n~~x~~\n---\n")
	assert.Equal(t, "<h1>Hi</h1>\n<p>~~x~~---</p>\n", out)
}

func TestMarkdown(t *testing.T) {
	r := NewHTMLRenderer(HTMLFlagsNone, HTMLRendererParameters{AbsolutePrefix: "https://example.com"})
	assert.Equal(t, "<p><a href=\"https://example.com/doc\">d</a></p>\n", Markdown("[d](/doc)", r))
}

func TestDeterministic(t *testing.T) {
	input := "# A\ntext **b** *c*\n* x\n  * y\n| h |\n|---|\n| 1 |\n> q\n"
	assert.Equal(t, MarkdownCommon(input), MarkdownCommon(input))
}
