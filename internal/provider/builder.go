package provider

import (
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

// Synthetic font sizes assigned by providers whose source format carries
// style levels instead of geometry. The spread keeps each level in its
// own rounded size class while the body stays below all of them.
var syntheticSizes = map[int]float64{
	1: 24,
	2: 18,
	3: 14,
	4: 12.5,
	5: 12,
	6: 11.5,
}

const (
	// Document titles sit above h1 so the h1 size class stays available
	// for outline headings.
	syntheticTitleSize = 28.0
	syntheticBodySize  = 11.0

	// Vertical cursor steps. Consecutive headings at the same level are
	// placed close together so title detection merges adjacent lines,
	// while ordinary blocks get enough spacing to stay apart.
	blockStep      = 24.0
	headingRunStep = 10.0
)

func sizeForLevel(level int) float64 {
	if s, ok := syntheticSizes[level]; ok {
		return s
	}
	return syntheticBodySize
}

// docBuilder accumulates synthetic-layout pages for the geometry-free
// providers. Pages are advanced explicitly; the Y cursor resets per page.
type docBuilder struct {
	doc      layout.Document
	page     *layout.Page
	y        float64
	lastSize float64
}

func newDocBuilder() *docBuilder {
	b := &docBuilder{}
	b.nextPage()
	return b
}

func (b *docBuilder) nextPage() {
	b.doc.Pages = append(b.doc.Pages, layout.Page{Number: len(b.doc.Pages) + 1})
	b.page = &b.doc.Pages[len(b.doc.Pages)-1]
	b.y = 0
	b.lastSize = 0
}

// addBlock appends one single-line block of the given size, advancing
// the cursor. Blank text is dropped.
func (b *docBuilder) addBlock(text string, size float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	step := blockStep
	if size > syntheticBodySize && size == b.lastSize {
		step = headingRunStep
	}
	if len(b.page.Blocks) > 0 {
		b.y += step
	}
	b.page.Blocks = append(b.page.Blocks, layout.Block{
		Y: b.y,
		Lines: []layout.Line{
			{Spans: []layout.Span{{Text: text, Size: size}}},
		},
	})
	b.lastSize = size
}

func (b *docBuilder) addHeading(text string, level int) {
	b.addBlock(text, sizeForLevel(level))
}

func (b *docBuilder) addBody(text string) {
	b.addBlock(text, syntheticBodySize)
}

func (b *docBuilder) build() *layout.Document {
	return &b.doc
}
