package layout

// Span is the smallest text run carrying a single font size within a line.
type Span struct {
	Text string  // Raw text content, may contain line-wrap artifacts
	Size float64 // Font size in layout units
}

// Line is an ordered sequence of spans forming one visual row.
type Line struct {
	Spans []Span
}

// Block is a provider-level grouping of lines with a vertical position.
// Image blocks carry no lines and are skipped by consumers.
type Block struct {
	Y     float64 // Top-Y coordinate of the block
	Lines []Line
}

// Page holds the blocks of one document page in reading order.
type Page struct {
	Number int // 1-indexed page number
	Blocks []Block
}

// Document is the full decoded layout of one document. It is produced
// by a provider and consumed read-only by the outline pipeline.
type Document struct {
	Pages []Page
}

// Text returns the raw concatenated text of a line, spans joined as-is.
func (l Line) Text() string {
	var out string
	for i, s := range l.Spans {
		if i > 0 {
			out += " "
		}
		out += s.Text
	}
	return out
}

// FirstPage returns page 1, or nil if the document is empty.
func (d *Document) FirstPage() *Page {
	if d == nil || len(d.Pages) == 0 {
		return nil
	}
	return &d.Pages[0]
}
