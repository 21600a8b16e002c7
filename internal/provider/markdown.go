package provider

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/outliner/internal/layout"
)

// MarkdownProvider handles Markdown files using goldmark. Heading levels
// map onto synthetic font sizes and thematic breaks (---) start a new
// page, so page numbers in the outline follow section breaks.
type MarkdownProvider struct{}

func (p *MarkdownProvider) Extract(r io.Reader, filename string) (*layout.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	b := newDocBuilder()

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			b.addHeading(string(node.Text(src)), node.Level)
		case *ast.ThematicBreak:
			if len(b.page.Blocks) > 0 {
				b.nextPage()
			}
		default:
			b.addBody(extractText(n, src))
		}
	}

	return b.build(), nil
}

// extractText gets the text content of a goldmark AST node. A block node's
// Lines() already cover its inline children, so the inline walk runs only
// when no source lines are attached (e.g. container blocks).
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(src))
			}
			return strings.TrimSpace(buf.String())
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			// Recurse for nested inlines.
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
