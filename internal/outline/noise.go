package outline

import (
	"strings"
	"unicode/utf8"
)

// DefaultNoiseWords is the boilerplate vocabulary rejected from titles
// and heading candidates: standard academic front-matter and publication
// metadata. Callers may supply their own set via Options.NoiseWords.
var DefaultNoiseWords = []string{
	"open access", "research", "sustainable environment", "article", "journal",
	"abstract", "introduction", "references", "acknowledgments", "appendix",
	"received", "accepted", "published", "volume", "issue", "pp.", "pages",
}

// NoiseFilter flags text that is document boilerplate or too short to be
// structurally meaningful. It is a pure predicate over read-only
// configuration and safe for concurrent use.
type NoiseFilter struct {
	vocab []string
}

// NewNoiseFilter builds a filter over the given vocabulary. Entries are
// matched case-insensitively as substrings of the candidate text.
func NewNoiseFilter(words []string) NoiseFilter {
	vocab := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			vocab = append(vocab, w)
		}
	}
	return NoiseFilter{vocab: vocab}
}

// IsNoisy reports whether text should be excluded from structure
// inference: it contains a vocabulary entry, or its trimmed length is at
// most 3 characters (stray numerals, page marks).
func (f NoiseFilter) IsNoisy(text string) bool {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	for _, w := range f.vocab {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return utf8.RuneCountInString(trimmed) <= 3
}
