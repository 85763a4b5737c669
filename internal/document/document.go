// Package document holds the editable Markdown text and the pure functions
// derived from it: statistics, the single-line export and the download file.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/spf13/afero"
)

const (
	FileName  = "document.md"
	MediaType = "text/markdown"
)

// Sample is the document shown when the editor starts without a file.
const Sample = "# Welcome to ContextMD\n" +
	"\n" +
	"This is a **real-time** Markdown editor.\n" +
	"\n" +
	"## Features\n" +
	"- 📝 **Live Preview**: See changes as you type.\n" +
	"- 🎨 **GitHub Flavor**: Supports tables, task lists, and code blocks.\n" +
	"- 🔧 **JSON Utils**: Export content as a single line string for APIs.\n" +
	"\n" +
	"## Try it out\n" +
	"\n" +
	"| Feature | Status |\n" +
	"| :--- | :--- |\n" +
	"| Editing | ✅ Ready |\n" +
	"| Preview | ✅ Ready |\n" +
	"| Privacy | ✅ Secured |\n" +
	"\n" +
	"```javascript\n" +
	"console.log(\"Hello, World!\");\n" +
	"```\n"

// Document is the current text. It is replaced wholesale; there is no history.
type Document struct {
	text string
}

func New(text string) *Document { return &Document{text: text} }

// Read loads a document from r with line endings normalized to "\n".
func Read(r io.Reader) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return New(NormalizeNewlines(string(b))), nil
}

// NormalizeNewlines turns CRLF and lone CR line endings into LF.
func NormalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
}

func (d *Document) Text() string { return d.text }
func (d *Document) Set(text string) { d.text = text }
func (d *Document) Clear() { d.text = "" }
func (d *Document) Stats() Stats { return Measure(d.text) }
func (d *Document) Escaped() string { return EscapeLine(d.text) }

// Stats are the footer counters.
type Stats struct {
	Chars int
	Lines int
	Words int
}

// Measure computes all three counters for text.
func Measure(text string) Stats {
	return Stats{
		Chars: CharCount(text),
		Lines: LineCount(text),
		Words: WordCount(text),
	}
}

// CharCount is the length of text in UTF-16 code units, so an astral emoji
// counts as two.
func CharCount(text string) int {
	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// LineCount is the number of newline-separated segments; "" has one line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// WordCount is the number of maximal non-whitespace runs.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// EscapeLine returns text as the body of a JSON string literal: control
// characters, quotes and backslashes escaped, no raw newline, and the
// surrounding quotes stripped. HTML characters are left alone.
func EscapeLine(text string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(text)
	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}

// UnescapeLine reverses EscapeLine.
func UnescapeLine(line string) (string, error) {
	var s string
	if err := json.Unmarshal([]byte(`"`+line+`"`), &s); err != nil {
		return "", fmt.Errorf("unescape line: %w", err)
	}
	return s, nil
}

// Download writes text verbatim to dir/document.md, replacing any existing
// file, and returns the written path.
func Download(fs afero.Fs, dir, text string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := afero.WriteFile(fs, path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", FileName, err)
	}
	return path, nil
}
