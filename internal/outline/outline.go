// Package outline infers a document's logical structure — a title and a
// three-level heading outline with page numbers — from decoded text layout
// (spans with font sizes, grouped into lines and blocks). Font size is the
// only classification signal; there are no semantic tags and no ground
// truth, so every stage is heuristic and degrades to empty or partial
// results rather than failing.
package outline

import (
	"fmt"
	"math"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

// Heading is one entry in the extracted outline.
type Heading struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the document-structure record produced per document.
// Heading order follows original document reading order.
type Outline struct {
	Title    string    `json:"title"`
	Headings []Heading `json:"outline"`
}

// Strategy extracts an outline from a decoded layout. The package ships
// two strategies with different grouping and duplicate handling; they are
// alternatives, never composed.
type Strategy interface {
	Extract(doc *layout.Document) Outline
}

// Options configures the threshold-based extractor.
type Options struct {
	// NoiseWords overrides the boilerplate vocabulary. Nil means
	// DefaultNoiseWords.
	NoiseWords []string

	// TitleMergeGap is the maximum vertical distance, in layout units,
	// between block tops for consecutive title lines to merge into one
	// title block. Zero means the default of 20.
	TitleMergeGap float64
}

// Extractor is the primary threshold-based strategy: title detection from
// page-1 font maxima, line-level candidate collection, multi-line
// regrouping, and per-document size thresholds for H1/H2/H3.
type Extractor struct {
	noise         NoiseFilter
	titleMergeGap float64
}

// New creates a threshold-based extractor.
func New(opts Options) *Extractor {
	words := opts.NoiseWords
	if words == nil {
		words = DefaultNoiseWords
	}
	gap := opts.TitleMergeGap
	if gap <= 0 {
		gap = 20
	}
	return &Extractor{
		noise:         NewNoiseFilter(words),
		titleMergeGap: gap,
	}
}

// ForName returns the strategy registered under name: "threshold" (the
// system of record) or "rank" (the simpler flat-scan variant).
func ForName(name string, opts Options) (Strategy, error) {
	switch name {
	case "", "threshold":
		return New(opts), nil
	case "rank":
		return NewRankExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown outline strategy: %s", name)
	}
}

// candidate is a line-level heading candidate before grouping and
// classification.
type candidate struct {
	size float64
	text string
	page int
}

// dedupKey identifies a heading for duplicate suppression.
type dedupKey struct {
	text string
	page int
}

// Extract runs the full pipeline over one document. The title, if any,
// is taken from page 1; its font size is excluded from heading
// classification so the title never reappears as a heading. An empty
// title is returned as-is: substituting a fallback (typically the source
// filename) is the caller's job.
func (e *Extractor) Extract(doc *layout.Document) Outline {
	out := Outline{Headings: []Heading{}}
	if doc == nil {
		return out
	}

	title, titleSize, hasTitle := e.detectTitle(doc.FirstPage())
	out.Title = title

	cands := groupMultiline(e.collectCandidates(doc))
	if len(cands) == 0 {
		return out
	}

	var sizes []float64
	for _, c := range cands {
		if hasTitle && c.size == titleSize {
			continue
		}
		sizes = append(sizes, c.size)
	}
	if len(sizes) == 0 {
		return out
	}
	th := newThresholds(sizes)

	seen := make(map[dedupKey]bool, len(cands))
	for _, c := range cands {
		key := dedupKey{text: strings.ToLower(c.text), page: c.page}
		if seen[key] {
			continue
		}
		// Recorded before classification: a duplicate of a dropped
		// candidate stays dropped.
		seen[key] = true

		if hasTitle && c.size == titleSize {
			continue
		}
		if level := th.levelFor(c.size); level != "" {
			out.Headings = append(out.Headings, Heading{Level: level, Text: c.text, Page: c.page})
		}
	}
	return out
}

// roundSize rounds a font size to one decimal place. Using the rounded
// value as a map key absorbs floating-point jitter that would otherwise
// split one font-size class into several.
func roundSize(s float64) float64 {
	return math.Round(s*10) / 10
}
