package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/styles"
)

//go:embed assets/page.html.tmpl
var pageTmplSrc string

//go:embed assets/preview.css
var previewCSS string

var pageTmpl = template.Must(template.New("page").Parse(pageTmplSrc))

// PageOptions describe the document wrapped around a rendered fragment.
type PageOptions struct {
	Title    string
	Lang     string
	Class    string // root class list; carries the effective theme
	Revision uint64
	Poll     bool // embed the fragment polling script
	// PollMillis defaults to 500.
	PollMillis int
}

type pageData struct {
	PageOptions
	CSS  template.CSS
	Body template.HTML
}

// Page writes a complete HTML document around body, which must already be
// sanitized.
func Page(w io.Writer, body []byte, opts PageOptions) error {
	if opts.PollMillis <= 0 {
		opts.PollMillis = 500
	}
	if opts.Lang == "" {
		opts.Lang = "en"
	}
	css, err := stylesheet()
	if err != nil {
		return err
	}
	data := pageData{
		PageOptions: opts,
		CSS:         template.CSS(css),
		Body:        template.HTML(body),
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

var (
	cssOnce sync.Once
	cssText string
	cssErr  error
)

// codeThemes scope chroma's palettes under the root theme classes. An
// unresolved .system root follows the viewer's color-scheme preference.
var codeThemes = []struct{ scope, style, media string }{
	{".light", "github", ""},
	{".dark", "github-dark", ""},
	{".system", "github", "(prefers-color-scheme: light)"},
	{".system", "github-dark", "(prefers-color-scheme: dark)"},
}

// stylesheet is the preview CSS followed by the scoped code palettes.
func stylesheet() (string, error) {
	cssOnce.Do(func() {
		var b strings.Builder
		b.WriteString(previewCSS)
		for _, t := range codeThemes {
			var buf bytes.Buffer
			if err := codeFormatter.WriteCSS(&buf, styles.Get(t.style)); err != nil {
				cssErr = fmt.Errorf("write %s code css: %w", t.style, err)
				return
			}
			rules := scopeCSS(t.scope, buf.String())
			if t.media != "" {
				rules = "@media " + t.media + " {\n" + rules + "}\n"
			}
			b.WriteString(rules)
		}
		cssText = b.String()
	})
	return cssText, cssErr
}

// scopeCSS prefixes every rule chroma emits (one per line, optionally
// preceded by a /* comment */) with scope.
func scopeCSS(scope, css string) string {
	var b strings.Builder
	for _, line := range strings.Split(css, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if i := strings.Index(line, "*/ "); i >= 0 {
			line = line[:i+3] + scope + " " + line[i+3:]
		} else {
			line = scope + " " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
