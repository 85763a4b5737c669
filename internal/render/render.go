// Package render turns Markdown into sanitized, decorated HTML for the
// browser preview and the render command.
package render

import (
	"bytes"
	"fmt"
	"html"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

type Renderer struct {
	md  goldmark.Markdown
	pol *bluemonday.Policy
}

type Option func(*options)

type options struct {
	decorations Decorations
}

// WithDecorations replaces the default decoration map.
func WithDecorations(d Decorations) Option {
	return func(o *options) { o.decorations = d }
}

func New(opts ...Option) *Renderer {
	o := options{decorations: DefaultDecorations()}
	for _, opt := range opts {
		opt(&o)
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			// GFM, with cell alignment as an attribute the sanitizer keeps
			extension.NewTable(extension.WithTableCellAlignMethod(extension.TableCellAlignAttribute)),
			extension.Strikethrough,
			extension.Linkify,
			extension.TaskList,
			&decorationExt{o.decorations},
			nodeRendererExt{},
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Renderer{md: md, pol: policy()}
}

func policy() *bluemonday.Policy {
	pol := bluemonday.UGCPolicy()
	pol.RequireNoFollowOnLinks(false)
	pol.AllowAttrs("class").Globally()
	pol.AllowElements("div", "span")
	pol.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	pol.AllowAttrs("rel").Matching(regexp.MustCompile(`^[a-z ]+$`)).OnElements("a")
	pol.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	pol.AllowAttrs("checked", "disabled").OnElements("input")
	pol.AllowAttrs("align").Matching(regexp.MustCompile(`^(left|center|right)$`)).OnElements("th", "td")
	return pol
}

// Render converts src to sanitized HTML.
func (r *Renderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return r.pol.SanitizeReader(&buf).Bytes(), nil
}

// RenderOrEscape never fails: if conversion errors, the literal text is
// returned inside an escaped <pre>.
func (r *Renderer) RenderOrEscape(src []byte) []byte {
	out, err := r.Render(src)
	if err != nil {
		return Literal(src)
	}
	return out
}

// Literal is the degraded rendering of src.
func Literal(src []byte) []byte {
	return []byte(`<pre class="md-raw">` + html.EscapeString(string(src)) + "</pre>\n")
}
