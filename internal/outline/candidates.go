package outline

import (
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/outliner/internal/layout"
)

// collectCandidates scans every page in provider order and emits one
// heading candidate per usable line, carrying the largest rounded span
// size in that line. Emission order is document reading order; the
// multi-line grouper depends on it.
func (e *Extractor) collectCandidates(doc *layout.Document) []candidate {
	var out []candidate
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				var texts []string
				maxSize := 0.0
				for _, span := range line.Spans {
					text := Normalize(span.Text)
					if e.noise.IsNoisy(text) {
						continue
					}
					if size := roundSize(span.Size); size > maxSize {
						maxSize = size
					}
					texts = append(texts, text)
				}

				lineText := Normalize(strings.Join(texts, " "))
				if lineText == "" || utf8.RuneCountInString(lineText) <= 3 || e.noise.IsNoisy(lineText) {
					continue
				}
				out = append(out, candidate{size: maxSize, text: lineText, page: page.Number})
			}
		}
	}
	return out
}
