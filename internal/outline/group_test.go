package outline

import "testing"

func TestGroupMultiline_HyphenWordBreak(t *testing.T) {
	cands := []candidate{
		{size: 16, text: "Intro-", page: 2},
		{size: 16, text: "duction", page: 2},
	}
	got := groupMultiline(cands)
	if len(got) != 1 {
		t.Fatalf("expected 1 group, got %d", len(got))
	}
	if got[0].text != "Introduction" {
		t.Errorf("expected %q, got %q", "Introduction", got[0].text)
	}
	if got[0].size != 16 || got[0].page != 2 {
		t.Errorf("group must keep size and page, got %+v", got[0])
	}
}

func TestGroupMultiline_LowercaseContinuation(t *testing.T) {
	cands := []candidate{
		{size: 14, text: "Understanding Deep", page: 1},
		{size: 14, text: "neural networks", page: 1},
	}
	got := groupMultiline(cands)
	if len(got) != 1 {
		t.Fatalf("expected 1 group, got %d", len(got))
	}
	want := "Understanding Deep neural networks"
	if got[0].text != want {
		t.Errorf("expected %q, got %q", want, got[0].text)
	}
}

func TestGroupMultiline_ShortBoundaryWordJoinsWithoutSpace(t *testing.T) {
	// A 1-2 character boundary word is treated as a broken word fragment.
	cands := []candidate{
		{size: 14, text: "Pr", page: 3},
		{size: 14, text: "eprocessing", page: 3},
	}
	got := groupMultiline(cands)
	if len(got) != 1 {
		t.Fatalf("expected 1 group, got %d", len(got))
	}
	if got[0].text != "Preprocessing" {
		t.Errorf("expected %q, got %q", "Preprocessing", got[0].text)
	}
}

func TestGroupMultiline_ThreeCharBoundaryWordJoinsWithSpace(t *testing.T) {
	// A 3-character boundary word triggers the merge but is a whole word,
	// not a fragment: the join keeps the space.
	cands := []candidate{
		{size: 14, text: "Pre", page: 3},
		{size: 14, text: "processing", page: 3},
	}
	got := groupMultiline(cands)
	if len(got) != 1 {
		t.Fatalf("expected 1 group, got %d", len(got))
	}
	if got[0].text != "Pre processing" {
		t.Errorf("expected %q, got %q", "Pre processing", got[0].text)
	}
}

func TestGroupMultiline_NoMergeAcrossPagesOrSizes(t *testing.T) {
	cands := []candidate{
		{size: 16, text: "Results and", page: 1},
		{size: 16, text: "discussion", page: 2}, // page changed
		{size: 14, text: "details here", page: 2}, // size changed
	}
	got := groupMultiline(cands)
	if len(got) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(got))
	}
}

func TestGroupMultiline_DistinctHeadingsStaySeparate(t *testing.T) {
	// Same size and page, but no continuation signal on the boundary.
	cands := []candidate{
		{size: 18, text: "System Design", page: 1},
		{size: 18, text: "Evaluation Methodology", page: 1},
	}
	got := groupMultiline(cands)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
}

func TestGroupMultiline_Empty(t *testing.T) {
	if got := groupMultiline(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
