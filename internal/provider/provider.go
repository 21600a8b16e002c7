// Package provider turns raw document bytes into the layout model the
// outline pipeline consumes. Each provider is format-specific; formats
// that carry no geometry (HTML, Markdown, DOCX) synthesize font sizes
// and block positions so one inference model fits all of them.
package provider

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

// Provider decodes raw document bytes into a layout document.
type Provider interface {
	Extract(r io.Reader, filename string) (*layout.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
	".docx":     true,
	".txt":      true,
}

// ForFile returns the appropriate provider for a filename.
func ForFile(filename string) (Provider, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFProvider{}, nil
	case ".html", ".htm":
		return &HTMLProvider{}, nil
	case ".md", ".markdown":
		return &MarkdownProvider{}, nil
	case ".docx":
		return &DOCXProvider{}, nil
	case ".txt":
		return &TextProvider{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// BaseTitle returns the filename without directory or extension. Callers
// substitute it when title detection comes back empty.
func BaseTitle(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
