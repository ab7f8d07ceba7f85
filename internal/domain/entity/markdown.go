package entity

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
)

// renderMarkdown returns the HTML rendering of src and its plain text with
// whitespace collapsed.
func renderMarkdown(src string) (string, string) {
	source := []byte(src)
	doc := markdownEngine.Parser().Parse(text.NewReader(source))

	var html bytes.Buffer
	if err := markdownEngine.Renderer().Render(&html, source, doc); err != nil {
		html.Reset()
	}

	var plain strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				plain.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			plain.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				plain.WriteByte(' ')
			}
		case *ast.String:
			plain.Write(node.Value)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				plain.Write(seg.Value(source))
				plain.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})

	return html.String(), strings.Join(strings.Fields(plain.String()), " ")
}

// PlainText strips markdown syntax from src.
func PlainText(src string) string {
	_, plain := renderMarkdown(src)
	return plain
}
