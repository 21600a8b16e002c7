package outline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// groupMultiline merges adjacent candidates that are really one heading
// split across lines. A candidate joins the current group when it shares
// the group's font size and page and shows a continuation signal: it
// starts with a lowercase letter, or a word of at most 3 characters sits
// on either side of the boundary. Headings rarely open a new semantic
// unit that way.
//
// Single forward pass with one mutable accumulator; input order must be
// document reading order.
func groupMultiline(cands []candidate) []candidate {
	if len(cands) == 0 {
		return nil
	}

	grouped := make([]candidate, 0, len(cands))
	current := cands[0]

	for _, c := range cands[1:] {
		merge := c.size == current.size && c.page == current.page &&
			(startsLower(c.text) ||
				runeLen(lastWord(current.text)) <= 3 ||
				runeLen(firstWord(c.text)) <= 3)

		if !merge {
			grouped = append(grouped, current)
			current = c
			continue
		}

		// A trailing hyphen or a fragment of at most 2 characters on
		// either side marks a broken word: join without a space.
		if strings.HasSuffix(current.text, "-") ||
			runeLen(lastWord(current.text)) <= 2 ||
			runeLen(firstWord(c.text)) <= 2 {
			current.text = strings.TrimRight(current.text, "- ") + c.text
		} else {
			current.text += " " + c.text
		}
	}

	return append(grouped, current)
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
