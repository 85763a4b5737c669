// Package i18n holds the UI string tables, one Bundle per language tag.
package i18n

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is used for tags with no bundle.
const Fallback = "en"

type Bundle struct {
	Title    string   `toml:"title"`
	Editor   string   `toml:"editor"`
	Preview  string   `toml:"preview"`
	Stats    Stats    `toml:"stats"`
	Export   Export   `toml:"export"`
	Settings Settings `toml:"settings"`
	Tooltips Tooltips `toml:"tooltips"`
	Notices  Notices  `toml:"notices"`
	Keys     Keys     `toml:"keys"`
}

type Stats struct {
	Chars string `toml:"chars"`
	Lines string `toml:"lines"`
	Words string `toml:"words"`
}

type Export struct {
	Title  string `toml:"title"`
	Desc   string `toml:"desc"`
	Label  string `toml:"label"`
	Copy   string `toml:"copy"`
	Copied string `toml:"copied"`
	Close  string `toml:"close"`
}

type Settings struct {
	Title    string `toml:"title"`
	Theme    string `toml:"theme"`
	Language string `toml:"language"`
	Modes    Modes  `toml:"modes"`
}

type Modes struct {
	Light  string `toml:"light"`
	Dark   string `toml:"dark"`
	System string `toml:"system"`
}

// Mode returns the label for a theme mode name; unknown names are returned as-is.
func (m Modes) Mode(name string) string {
	switch name {
	case "light":
		return m.Light
	case "dark":
		return m.Dark
	case "system":
		return m.System
	}
	return name
}

type Tooltips struct {
	EditorOnly  string `toml:"editorOnly"`
	SplitView   string `toml:"splitView"`
	PreviewOnly string `toml:"previewOnly"`
	ExportJSON  string `toml:"exportJson"`
	Download    string `toml:"download"`
	Clear       string `toml:"clear"`
	Settings    string `toml:"settings"`
}

// Notices are transient status messages. Downloaded and DownloadFailed
// take one %s argument.
type Notices struct {
	Downloaded     string `toml:"downloaded"`
	DownloadFailed string `toml:"downloadFailed"`
	Cleared        string `toml:"cleared"`
	Narrow         string `toml:"narrow"`
	LocalMode      string `toml:"localMode"`
}

type Keys struct {
	Move   string `toml:"move"`
	Change string `toml:"change"`
	Quit   string `toml:"quit"`
}

//go:embed translations.toml
var translationsTOML string

type table struct {
	Languages map[string]string `toml:"languages"`
	Bundles   map[string]Bundle `toml:"bundle"`
}

var tbl = mustLoad(translationsTOML)

func mustLoad(src string) table {
	var t table
	if _, err := toml.Decode(src, &t); err != nil {
		panic(fmt.Sprintf("i18n: decode translations: %v", err))
	}
	if _, ok := t.Bundles[Fallback]; !ok {
		panic("i18n: missing fallback bundle")
	}
	return t
}

// For returns the bundle for tag, or the English bundle.
func For(tag string) Bundle {
	if b, ok := tbl.Bundles[tag]; ok {
		return b
	}
	return tbl.Bundles[Fallback]
}

// Has reports whether tag has its own bundle.
func Has(tag string) bool {
	_, ok := tbl.Bundles[tag]
	return ok
}

// LanguageName is the self-describing option label for tag.
func LanguageName(tag string) string {
	if n, ok := tbl.Languages[tag]; ok {
		return n
	}
	return tag
}

// Upper uppercases s with the casing rules of tag.
func Upper(tag, s string) string {
	return cases.Upper(language.Make(tag)).String(s)
}
