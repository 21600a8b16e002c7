package outline

import (
	"strings"
	"unicode/utf8"
)

// maxHeadingRunes bounds heading text before publication. Anything
// longer is body text the heuristics misclassified.
const maxHeadingRunes = 300

var validLevels = map[string]bool{
	"H1": true,
	"H2": true,
	"H3": true,
}

// ValidateHeading checks a heading before it is published and trims its
// text in place. Returns false for headings that should be dropped.
func ValidateHeading(h *Heading) bool {
	if h == nil {
		return false
	}
	text := strings.TrimSpace(h.Text)
	if text == "" || utf8.RuneCountInString(text) > maxHeadingRunes {
		return false
	}
	if !validLevels[h.Level] {
		return false
	}
	if h.Page < 1 {
		return false
	}
	h.Text = text
	return true
}

// ValidateOutline filters an outline's headings in place, dropping
// entries ValidateHeading rejects. Returns the number dropped.
func ValidateOutline(o *Outline) int {
	if o == nil {
		return 0
	}
	kept := o.Headings[:0]
	dropped := 0
	for i := range o.Headings {
		if ValidateHeading(&o.Headings[i]) {
			kept = append(kept, o.Headings[i])
		} else {
			dropped++
		}
	}
	o.Headings = kept
	return dropped
}
