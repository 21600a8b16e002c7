package outline

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/outliner/internal/layout"
)

// detectTitle finds the document title on page 1. The largest rounded
// font size among usable spans is taken as the title size; lines set in
// that size are collected in original order, and consecutive title lines
// whose blocks sit within titleMergeGap vertical units are merged into
// one title block. A larger gap starts a new block, which caps runaway
// merging across unrelated large-font elements such as running headers.
//
// Returns the normalized title text, the title font size, and whether a
// title size was found at all. The text may be empty even when a size
// was found, if every max-size line was noise.
func (e *Extractor) detectTitle(page *layout.Page) (string, float64, bool) {
	if page == nil {
		return "", 0, false
	}

	// First pass: find the largest font size among spans that are long
	// enough and not noise.
	maxSize := 0.0
	found := false
	for _, block := range page.Blocks {
		for _, line := range block.Lines {
			for _, span := range line.Spans {
				text := Normalize(span.Text)
				if e.noise.IsNoisy(text) || utf8.RuneCountInString(text) < 5 {
					continue
				}
				size := roundSize(span.Size)
				if !found || size > maxSize {
					maxSize = size
					found = true
				}
			}
		}
	}
	if !found {
		return "", 0, false
	}

	// Second pass: collect title lines in document order and merge
	// vertically adjacent ones.
	var parts []string
	var current []string
	prevY := 0.0
	havePrev := false

	for _, block := range page.Blocks {
		for _, line := range block.Lines {
			var lineTexts []string
			for _, span := range line.Spans {
				if roundSize(span.Size) != maxSize {
					continue
				}
				text := Normalize(span.Text)
				if e.noise.IsNoisy(text) {
					continue
				}
				lineTexts = append(lineTexts, text)
			}
			if len(lineTexts) == 0 {
				continue
			}
			lineText := strings.Join(lineTexts, " ")

			if havePrev && math.Abs(block.Y-prevY) < e.titleMergeGap && len(current) > 0 {
				current = append(current, lineText)
			} else {
				if len(current) > 0 {
					parts = append(parts, strings.Join(current, " "))
				}
				current = []string{lineText}
			}
			prevY = block.Y
			havePrev = true
		}
	}
	if len(current) > 0 {
		parts = append(parts, strings.Join(current, " "))
	}

	return Normalize(strings.Join(parts, " ")), maxSize, true
}
