package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Basic(t *testing.T) {
	html := Render("# Title\n\nSome **bold** text.")
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestRender_RawHTMLPassthrough(t *testing.T) {
	html := Render("before <em>raw</em> after")
	assert.Contains(t, html, "<em>raw</em>")
}

func TestRender_Autolink(t *testing.T) {
	html := Render("visit https://example.com today")
	assert.Contains(t, html, `<a href="https://example.com"`)
}
