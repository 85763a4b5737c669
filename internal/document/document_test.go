package document

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minTestIterations = 200

// pieces mixes ordinary text with every character class the counters and
// the escaper care about.
var pieces = []string{
	"a", "word", "Ω", "漢字", "😀", " ", "  ", "\t", "\n", "\r\n", "\r",
	"\"", "\\", "/", "<b>", "&", " ", "\x00", "\x1f", " ", "#", "```",
}

func genText() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, len(pieces)-1)).Map(func(idx []int) string {
		var b strings.Builder
		for _, i := range idx {
			b.WriteString(pieces[i])
		}
		return b.String()
	})
}

func runs(t string) int {
	n, in := 0, false
	for _, r := range t {
		if unicode.IsSpace(r) {
			in = false
			continue
		}
		if !in {
			n++
		}
		in = true
	}
	return n
}

func TestCounterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = minTestIterations
	properties := gopter.NewProperties(parameters)

	properties.Property("line count is newline count plus one", prop.ForAll(
		func(text string) bool {
			nl := 0
			for i := 0; i < len(text); i++ {
				if text[i] == '\n' {
					nl++
				}
			}
			return LineCount(text) == nl+1
		},
		genText(),
	))

	properties.Property("word count is the number of non-whitespace runs", prop.ForAll(
		func(text string) bool { return WordCount(text) == runs(text) },
		genText(),
	))

	properties.Property("escaped line has no newline and round-trips through JSON", prop.ForAll(
		func(text string) bool {
			line := EscapeLine(text)
			if strings.ContainsAny(line, "\n\r") {
				return false
			}
			var back string
			if err := json.Unmarshal([]byte(`"`+line+`"`), &back); err != nil {
				return false
			}
			return back == text
		},
		genText(),
	))

	properties.Property("escaped line round-trips arbitrary unicode", prop.ForAll(
		func(text string) bool {
			back, err := UnescapeLine(EscapeLine(text))
			return err == nil && back == text && !strings.Contains(EscapeLine(text), "\n")
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestCountersEdgeCases(t *testing.T) {
	assert.Equal(t, 1, LineCount(""))
	assert.Equal(t, 2, LineCount("\n"))
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 3, WordCount(" one\ttwo\n three "))
	assert.Equal(t, 2, CharCount("😀"))
	assert.Equal(t, 3, CharCount("aéb"))
}

func TestClearYieldsEmptyStats(t *testing.T) {
	d := New(Sample)
	require.NotZero(t, d.Stats().Chars)
	d.Clear()
	assert.Equal(t, "", d.Text())
	assert.Equal(t, Stats{Chars: 0, Lines: 1, Words: 0}, d.Stats())
}

func TestEscapeLine(t *testing.T) {
	assert.Equal(t, `# Hi\n\n\"q\" \\ <b>&`, EscapeLine("# Hi\n\n\"q\" \\ <b>&"))
	assert.Equal(t, `tab\there`, EscapeLine("tab\there"))
	assert.Equal(t, "", EscapeLine(""))
}

func TestEscapeIdempotentForSnapshot(t *testing.T) {
	d := New("line one\nline two")
	first := d.Escaped()
	assert.Equal(t, first, d.Escaped())
	d.Set("line one\nline three")
	assert.NotEqual(t, first, d.Escaped())
	assert.Equal(t, `line one\nline three`, d.Escaped())
}

func TestDownloadOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	path, err := Download(fs, "/out", "first")
	require.NoError(t, err)
	assert.Equal(t, "/out/document.md", path)

	_, err = Download(fs, "/out", "# second\n")
	require.NoError(t, err)
	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "# second\n", string(b))
}

func TestDownloadFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := Download(fs, "/out", "x")
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader("# from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "# from stdin", d.Text())
}

func TestReadNormalizesLineEndings(t *testing.T) {
	d, err := Read(strings.NewReader("line1\r\nline2\rline3\n\tindented"))
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\nline3\n\tindented", d.Text())
	assert.Equal(t, 4, d.Stats().Lines)
}

func TestNormalizeNewlines(t *testing.T) {
	for in, want := range map[string]string{
		"":           "",
		"plain":      "plain",
		"a\r\nb":     "a\nb",
		"a\r\r\nb":   "a\n\nb",
		"\r\n\r\n":   "\n\n",
		"trailing\r": "trailing\n",
		"keep\ttabs": "keep\ttabs",
	} {
		assert.Equal(t, want, NormalizeNewlines(in), "%q", in)
	}
}
