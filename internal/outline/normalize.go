package outline

import (
	"regexp"
	"strings"
)

// hyphenBreak matches a word character, a trailing hyphen, whitespace,
// and the word character that continues it — the signature of a word
// hyphenated across a line wrap.
var hyphenBreak = regexp.MustCompile(`(\w)-\s+(\w)`)

// Normalize cleans raw span text: all whitespace (including embedded
// newlines) collapses to single spaces, ends are trimmed, and hyphenated
// line-wrap breaks are rejoined ("under- standing" -> "understanding").
// The function is pure. It is not idempotent for chained single-character
// fragments ("a- b- c"): regexp matches do not overlap, so each call
// rejoins one break and a second call can rejoin the next.
func Normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = hyphenBreak.ReplaceAllString(s, "$1$2")
	return strings.TrimSpace(s)
}

// firstWord returns the first space-separated word of s, or "".
func firstWord(s string) string {
	w := strings.Fields(s)
	if len(w) == 0 {
		return ""
	}
	return w[0]
}

// lastWord returns the last space-separated word of s, or "".
func lastWord(s string) string {
	w := strings.Fields(s)
	if len(w) == 0 {
		return ""
	}
	return w[len(w)-1]
}
