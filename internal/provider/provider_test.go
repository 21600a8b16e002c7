package provider

import (
	"strings"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"paper.pdf", "*provider.PDFProvider"},
		{"page.html", "*provider.HTMLProvider"},
		{"page.HTM", "*provider.HTMLProvider"},
		{"readme.md", "*provider.MarkdownProvider"},
		{"readme.markdown", "*provider.MarkdownProvider"},
		{"report.docx", "*provider.DOCXProvider"},
		{"notes.txt", "*provider.TextProvider"},
	}
	for _, c := range cases {
		p, err := ForFile(c.filename)
		if err != nil {
			t.Errorf("ForFile(%q): unexpected error: %v", c.filename, err)
			continue
		}
		if got := typeName(p); got != c.want {
			t.Errorf("ForFile(%q): expected %s, got %s", c.filename, c.want, got)
		}
	}
}

func typeName(p Provider) string {
	switch p.(type) {
	case *PDFProvider:
		return "*provider.PDFProvider"
	case *HTMLProvider:
		return "*provider.HTMLProvider"
	case *MarkdownProvider:
		return "*provider.MarkdownProvider"
	case *DOCXProvider:
		return "*provider.DOCXProvider"
	case *TextProvider:
		return "*provider.TextProvider"
	}
	return "unknown"
}

func TestForFile_Unsupported(t *testing.T) {
	if _, err := ForFile("archive.zip"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("doc.PDF") {
		t.Error("expected .PDF to be supported (case-insensitive)")
	}
	if IsSupportedExtension("image.png") {
		t.Error("expected .png to be unsupported")
	}
}

func TestBaseTitle(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"paper.pdf", "paper"},
		{"/data/in/annual-report.docx", "annual-report"},
		{"noext", "noext"},
	}
	for _, c := range cases {
		if got := BaseTitle(c.filename); got != c.want {
			t.Errorf("BaseTitle(%q): expected %q, got %q", c.filename, c.want, got)
		}
	}
}

func TestTextProvider_ParagraphsAtBodySize(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph."
	p := &TextProvider{}
	doc, err := p.Extract(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blocks := doc.Pages[0].Blocks
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	for i, block := range blocks {
		if size := block.Lines[0].Spans[0].Size; size != 11 {
			t.Errorf("block[%d]: expected body size 11, got %v", i, size)
		}
	}
}

func TestTextProvider_EmptyInput(t *testing.T) {
	p := &TextProvider{}
	doc, err := p.Extract(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if len(doc.Pages[0].Blocks) != 0 {
		t.Errorf("expected 0 blocks for empty input, got %d", len(doc.Pages[0].Blocks))
	}
}
