// Package reader extracts raw schedule rows from source documents. Each
// reader resolves merged/blank day and time cells by inheriting the nearest
// non-empty value above, so the pipeline only ever sees complete rows.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rozkladctl/pkg/schedule"
)

// ReadFile extracts raw schedule rows from a document, choosing the reader by
// file extension.
func ReadFile(path string) ([]schedule.RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(path)
	case ".docx":
		return ReadDOCX(path)
	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
		}
		defer f.Close()
		return ReadHTML(f)
	case ".doc":
		return nil, fmt.Errorf("legacy .doc files are not supported: convert %s to .docx first (e.g. libreoffice --convert-to docx)", filepath.Base(path))
	}
	return nil, fmt.Errorf("unsupported schedule format %q", filepath.Ext(path))
}
