package outline

import (
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

// RankExtractor is the alternate flat-scan strategy: distinct font sizes
// across the whole document are ranked, the largest becomes the title
// and the next three become H1/H2/H3. No multi-line grouping, no noise
// vocabulary, no per-page duplicate suppression — its output semantics
// deliberately differ from the threshold strategy and the two are never
// combined.
type RankExtractor struct{}

// NewRankExtractor creates the rank-based strategy.
func NewRankExtractor() *RankExtractor {
	return &RankExtractor{}
}

type rankElement struct {
	text string
	size float64
	page int
}

// Extract classifies every span by the document-wide rank of its font
// size. Only the first occurrence of the title size becomes the title;
// further occurrences are ignored.
func (r *RankExtractor) Extract(doc *layout.Document) Outline {
	out := Outline{Headings: []Heading{}}
	if doc == nil {
		return out
	}

	var elements []rankElement
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				for _, span := range line.Spans {
					text := strings.TrimSpace(span.Text)
					if text == "" {
						continue
					}
					elements = append(elements, rankElement{
						text: text,
						size: roundSize(span.Size),
						page: page.Number,
					})
				}
			}
		}
	}
	if len(elements) == 0 {
		return out
	}

	sizes := make([]float64, 0, len(elements))
	for _, el := range elements {
		sizes = append(sizes, el.size)
	}
	unique := distinctDescending(sizes)

	levelOf := make(map[float64]string, 4)
	levelOf[unique[0]] = "title"
	if len(unique) > 1 {
		levelOf[unique[1]] = "H1"
	}
	if len(unique) > 2 {
		levelOf[unique[2]] = "H2"
	}
	if len(unique) > 3 {
		levelOf[unique[3]] = "H3"
	}

	for _, el := range elements {
		switch levelOf[el.size] {
		case "title":
			if out.Title == "" {
				out.Title = el.text
			}
		case "H1", "H2", "H3":
			out.Headings = append(out.Headings, Heading{
				Level: levelOf[el.size],
				Text:  el.text,
				Page:  el.page,
			})
		}
	}
	return out
}
