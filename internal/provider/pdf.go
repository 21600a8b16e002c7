package provider

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/dgallion1/outliner/internal/layout"
)

const (
	// Characters whose baselines differ by less than this belong to the
	// same row.
	pdfRowTolerance = 3.0
	// Rows separated by more than this vertical gap start a new block.
	pdfBlockGap = 18.0
	// Horizontal gap wider than this fraction of the font size counts
	// as a word break.
	pdfWordGapRatio = 0.3
)

// PDFProvider reads real geometry from PDF content streams: character
// positions, font sizes, and baselines.
type PDFProvider struct{}

func (p *PDFProvider) Extract(r io.Reader, filename string) (*layout.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &layout.Document{}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		doc.Pages = append(doc.Pages, layout.Page{
			Number: i,
			Blocks: groupChars(content.Text),
		})
	}
	return doc, nil
}

// pdfRow is one baseline of characters, already sorted left to right.
type pdfRow struct {
	y     float64
	chars []pdflib.Text
}

// groupChars assembles raw characters into rows by baseline, then rows
// into blocks by vertical gap. PDF Y grows upward, so rows are ordered
// top of page first.
func groupChars(chars []pdflib.Text) []layout.Block {
	var rows []pdfRow
	for _, c := range chars {
		if strings.TrimSpace(c.S) == "" {
			continue
		}
		placed := false
		for j := range rows {
			if math.Abs(rows[j].y-c.Y) < pdfRowTolerance {
				rows[j].chars = append(rows[j].chars, c)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, pdfRow{y: c.Y, chars: []pdflib.Text{c}})
		}
	}
	if len(rows) == 0 {
		return nil
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	for i := range rows {
		row := rows[i].chars
		sort.SliceStable(row, func(a, b int) bool { return row[a].X < row[b].X })
	}

	var blocks []layout.Block
	var cur *layout.Block
	prevY := 0.0
	for _, row := range rows {
		line := rowToLine(row.chars)
		if len(line.Spans) == 0 {
			continue
		}
		if cur == nil || prevY-row.y > pdfBlockGap {
			// Blocks store a top-down coordinate so gap checks read the
			// same way for every provider.
			blocks = append(blocks, layout.Block{Y: rows[0].y - row.y})
			cur = &blocks[len(blocks)-1]
		}
		cur.Lines = append(cur.Lines, line)
		prevY = row.y
	}
	return blocks
}

// rowToLine merges a row of characters into spans. A new span starts
// whenever the font size changes; a space is inserted when the
// horizontal gap exceeds a fraction of the font size.
func rowToLine(chars []pdflib.Text) layout.Line {
	var line layout.Line
	var buf strings.Builder
	curSize := 0.0
	prevEnd := 0.0

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if text == "" {
			return
		}
		line.Spans = append(line.Spans, layout.Span{Text: text, Size: curSize})
	}

	for i, c := range chars {
		if i > 0 && c.FontSize != curSize {
			flush()
		}
		if i > 0 && c.X-prevEnd > c.FontSize*pdfWordGapRatio {
			buf.WriteByte(' ')
		}
		buf.WriteString(c.S)
		curSize = c.FontSize
		prevEnd = c.X + c.W
	}
	flush()
	return line
}
