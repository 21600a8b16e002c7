package outline

import "testing"

func TestNoiseFilter_VocabularyMatch(t *testing.T) {
	f := NewNoiseFilter(DefaultNoiseWords)

	// "Abstract" is 8 characters, so only the vocabulary can reject it.
	if !f.IsNoisy("Abstract") {
		t.Error("expected vocabulary entry to be noisy")
	}
	if !f.IsNoisy("Journal of Applied Things") {
		t.Error("expected substring vocabulary match to be noisy")
	}
	if f.IsNoisy("Heading Detection Methods") {
		t.Error("expected ordinary heading not to be noisy")
	}
}

func TestNoiseFilter_ShortTextAlwaysNoisy(t *testing.T) {
	f := NewNoiseFilter(nil)
	for _, s := range []string{"", "a", "12", "iii", "  42  "} {
		if !f.IsNoisy(s) {
			t.Errorf("expected %q (<= 3 chars trimmed) to be noisy", s)
		}
	}
	if f.IsNoisy("four") {
		t.Error("expected 4-character text with empty vocabulary not to be noisy")
	}
}

func TestNoiseFilter_CustomVocabulary(t *testing.T) {
	f := NewNoiseFilter([]string{"Draft", "  CONFIDENTIAL "})

	if !f.IsNoisy("draft version") {
		t.Error("expected case-insensitive custom entry to match")
	}
	if !f.IsNoisy("Confidential Report") {
		t.Error("expected trimmed custom entry to match")
	}
	if f.IsNoisy("Abstract") {
		t.Error("default vocabulary must not apply when a custom set is given")
	}
}
