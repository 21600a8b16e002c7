package provider

import (
	"strings"
	"testing"
)

func TestMarkdownProvider_HeadingSizes(t *testing.T) {
	input := `# Overview

Intro text.

## Background

Background content.

### Details

Detail content.
`
	p := &MarkdownProvider{}
	doc, err := p.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	page := doc.Pages[0]
	if page.Number != 1 {
		t.Errorf("expected page number 1, got %d", page.Number)
	}
	if len(page.Blocks) != 6 {
		t.Fatalf("expected 6 blocks, got %d", len(page.Blocks))
	}

	want := []struct {
		text string
		size float64
	}{
		{"Overview", 24},
		{"Intro text.", 11},
		{"Background", 18},
		{"Background content.", 11},
		{"Details", 14},
		{"Detail content.", 11},
	}
	for i, w := range want {
		span := page.Blocks[i].Lines[0].Spans[0]
		if span.Text != w.text {
			t.Errorf("block[%d]: expected text %q, got %q", i, w.text, span.Text)
		}
		if span.Size != w.size {
			t.Errorf("block[%d]: expected size %v, got %v", i, w.size, span.Size)
		}
	}
}

func TestMarkdownProvider_ParagraphTextNotDuplicated(t *testing.T) {
	input := "# Title\n\nPlain sentence with *some emphasis* inside.\n"
	p := &MarkdownProvider{}
	doc, err := p.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := doc.Pages[0].Blocks[1].Lines[0].Spans[0].Text
	want := "Plain sentence with *some emphasis* inside."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMarkdownProvider_ThematicBreakStartsNewPage(t *testing.T) {
	input := `# First

Content one.

---

# Second

Content two.
`
	p := &MarkdownProvider{}
	doc, err := p.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	if doc.Pages[1].Number != 2 {
		t.Errorf("expected second page number 2, got %d", doc.Pages[1].Number)
	}
	if got := doc.Pages[1].Blocks[0].Lines[0].Spans[0].Text; got != "Second" {
		t.Errorf("expected %q on page 2, got %q", "Second", got)
	}
}

func TestMarkdownProvider_LeadingBreakDoesNotAddEmptyPage(t *testing.T) {
	input := "---\n\n# Only\n"
	p := &MarkdownProvider{}
	doc, err := p.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
}

func TestMarkdownProvider_ConsecutiveHeadingsStayClose(t *testing.T) {
	input := "## Alpha\n\n## Beta\n"
	p := &MarkdownProvider{}
	doc, err := p.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blocks := doc.Pages[0].Blocks
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	gap := blocks[1].Y - blocks[0].Y
	if gap >= 20 {
		t.Errorf("expected same-size heading run gap below 20, got %v", gap)
	}
}
