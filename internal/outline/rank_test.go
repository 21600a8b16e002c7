package outline

import (
	"testing"
)

func TestRankExtractor_SizeRankClassification(t *testing.T) {
	d := doc(
		page(1,
			block(50, line(span("Document Title", 20))),
			block(100, line(span("Chapter One", 16))),
			block(150, line(span("Section A", 14))),
			block(200, line(span("Subsection A.1", 12))),
			block(250, line(span("body text", 10))),
		),
	)

	got := NewRankExtractor().Extract(d)

	if got.Title != "Document Title" {
		t.Errorf("expected title %q, got %q", "Document Title", got.Title)
	}
	want := []Heading{
		{Level: "H1", Text: "Chapter One", Page: 1},
		{Level: "H2", Text: "Section A", Page: 1},
		{Level: "H3", Text: "Subsection A.1", Page: 1},
	}
	if len(got.Headings) != len(want) {
		t.Fatalf("expected %d headings, got %+v", len(want), got.Headings)
	}
	for i, w := range want {
		if got.Headings[i] != w {
			t.Errorf("heading[%d]: expected %+v, got %+v", i, w, got.Headings[i])
		}
	}
}

func TestRankExtractor_FirstTitleOccurrenceWins(t *testing.T) {
	d := doc(
		page(1, block(50, line(span("First Big Text", 20)))),
		page(2, block(50, line(span("Second Big Text", 20)))),
	)

	got := NewRankExtractor().Extract(d)
	if got.Title != "First Big Text" {
		t.Errorf("expected first occurrence as title, got %q", got.Title)
	}
}

func TestRankExtractor_KeepsDuplicates(t *testing.T) {
	// Unlike the threshold strategy, the rank strategy does not
	// suppress repeats.
	d := doc(
		page(1, block(50, line(span("Top", 20)))),
		page(2,
			block(40, line(span("Repeated", 16))),
			block(300, line(span("Repeated", 16))),
		),
	)

	got := NewRankExtractor().Extract(d)
	if len(got.Headings) != 2 {
		t.Errorf("expected both duplicates kept, got %+v", got.Headings)
	}
}

func TestRankExtractor_Empty(t *testing.T) {
	got := NewRankExtractor().Extract(doc())
	if got.Title != "" || len(got.Headings) != 0 {
		t.Errorf("expected empty outline, got %+v", got)
	}
}
