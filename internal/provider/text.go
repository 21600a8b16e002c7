package provider

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

// TextProvider handles plain text files. Plain text carries no style or
// geometry, so every paragraph is emitted at body size; the outline for
// such documents degrades gracefully to a filename title and no headings.
type TextProvider struct{}

func (p *TextProvider) Extract(r io.Reader, filename string) (*layout.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	b := newDocBuilder()
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			b.addBody(current.String())
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.build(), nil
}
