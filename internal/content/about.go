package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed about.md
var aboutMarkdown []byte

var (
	aboutOnce sync.Once
	aboutHTML string
	aboutErr  error
)

// AboutHTML returns the about prose rendered to HTML. The Markdown source
// is compiled in and converted once.
func AboutHTML() (string, error) {
	aboutOnce.Do(func() {
		aboutHTML, aboutErr = RenderMarkdown(aboutMarkdown)
	})
	return aboutHTML, aboutErr
}

// RenderMarkdown converts Markdown to HTML. Raw HTML in the source is
// dropped.
func RenderMarkdown(src []byte) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
