// Package source prepares caller input for the converter: raw bytes are
// decoded to UTF-8 and Markdown is rendered to HTML.
package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

const byteOrderMark = "\uFEFF"

// Decode converts data to a UTF-8 string. The encoding is taken from a byte
// order mark, the charset parameter of contentType, a meta tag in the first
// kilobyte, or guessed, in that order. contentType may be empty.
func Decode(data []byte, contentType string) (string, error) {
	enc, name, _ := charset.DetermineEncoding(data, contentType)

	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("failed to decode %s input: %w", name, err)
	}
	return strings.TrimPrefix(string(out), byteOrderMark), nil
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Markdown renders GitHub flavored Markdown to HTML. Raw HTML in the
// source is passed through.
func Markdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
