package render

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Class names the preview stylesheet targets.
const (
	ClassLink       = "md-link"
	ClassCodeBlock  = "md-code-block"
	ClassCodeInline = "md-code-inline"
	ClassTable      = "md-table"
	ClassTableWrap  = "md-table-wrap"
	ClassTh         = "md-th"
	ClassTd         = "md-td"
)

// A Decorator sets presentational attributes on a node. It must not change
// the tree's structure.
type Decorator func(n ast.Node, source []byte)

// Decorations maps node kinds to the decorator applied to every node of
// that kind.
type Decorations map[ast.NodeKind]Decorator

// DefaultDecorations is the stock preview styling.
func DefaultDecorations() Decorations {
	return Decorations{
		ast.KindLink:            decorateLink,
		ast.KindAutoLink:        decorateLink,
		ast.KindCodeSpan:        decorateCode,
		ast.KindFencedCodeBlock: decorateCode,
		ast.KindCodeBlock:       decorateCode,
		east.KindTable:          setClass(ClassTable),
		east.KindTableCell:      decorateCell,
	}
}

func setClass(class string) Decorator {
	return func(n ast.Node, _ []byte) { n.SetAttributeString("class", []byte(class)) }
}

// links open in a new browsing context without opener or referrer
func decorateLink(n ast.Node, _ []byte) {
	n.SetAttributeString("target", []byte("_blank"))
	n.SetAttributeString("rel", []byte("noopener noreferrer"))
	n.SetAttributeString("class", []byte(ClassLink))
}

// CodeLanguage returns the language marker of a code node, or "" when the
// node carries none. Nodes without a marker are styled as inline code.
func CodeLanguage(n ast.Node, source []byte) string {
	if fc, ok := n.(*ast.FencedCodeBlock); ok {
		return string(fc.Language(source))
	}
	return ""
}

func decorateCode(n ast.Node, source []byte) {
	if lang := CodeLanguage(n, source); lang != "" {
		n.SetAttributeString("class", []byte("language-"+lang+" "+ClassCodeBlock))
		return
	}
	n.SetAttributeString("class", []byte(ClassCodeInline))
}

func decorateCell(n ast.Node, _ []byte) {
	if _, ok := n.Parent().(*east.TableHeader); ok {
		n.SetAttributeString("class", []byte(ClassTh))
		return
	}
	n.SetAttributeString("class", []byte(ClassTd))
}

var _ parser.ASTTransformer = &decorationTransformer{}

type decorationTransformer struct {
	decorations Decorations
}

func (dt *decorationTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, enter bool) (ast.WalkStatus, error) {
		if !enter {
			return ast.WalkContinue, nil
		}
		if d, ok := dt.decorations[n.Kind()]; ok && d != nil {
			d(n, source)
		}
		return ast.WalkContinue, nil
	})
}

// decorationExt registers the transformer with goldmark.
type decorationExt struct {
	decorations Decorations
}

func (e *decorationExt) Extend(md goldmark.Markdown) {
	md.Parser().AddOptions(
		parser.WithASTTransformers(util.Prioritized(&decorationTransformer{e.decorations}, 100)),
	)
}
