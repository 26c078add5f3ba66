// Package markdown renders issue descriptions to sanitised HTML.
package markdown

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	once     sync.Once
	md       goldmark.Markdown
	sanitize *bluemonday.Policy
)

func setup() {
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	sanitize = bluemonday.UGCPolicy()
}

// Render converts markdown source to HTML safe to embed in a page. Empty input yields "".
func Render(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	once.Do(setup)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return sanitize.Sanitize(buf.String()), nil
}
