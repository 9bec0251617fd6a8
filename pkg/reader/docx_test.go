package reader

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>День</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Час</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Дисципліна, викладач</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Група</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Тижні</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Аудиторія</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Вівторок</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>10:00-11:20</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Історія</w:t></w:r><w:r><w:t>, доц. Коваль</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>БП-1</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>1-14</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>204</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t></w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>11:40-13:00</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Філософія</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>БП-1, БП-2</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>2-6</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>305</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

func writeTestDocx(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.docx")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(testDocumentXML)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}

func TestReadDOCX(t *testing.T) {
	rows, err := ReadDOCX(writeTestDocx(t))
	if err != nil {
		t.Fatalf("ReadDOCX failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (header skipped), got %d: %v", len(rows), rows)
	}

	if rows[0].Day != "Вівторок" || rows[0].Time != "10:00-11:20" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	// split text runs inside one cell must be concatenated
	if rows[0].Course != "Історія, доц. Коваль" {
		t.Errorf("expected concatenated course cell, got %q", rows[0].Course)
	}
	// the blank day cell inherits from the row above
	if rows[1].Day != "Вівторок" {
		t.Errorf("expected inherited day Вівторок, got %q", rows[1].Day)
	}
	if rows[1].Group != "БП-1, БП-2" || rows[1].Hall != "305" {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestReadDOCXNoDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	zw := zip.NewWriter(out)
	w, _ := zw.Create("word/other.xml")
	_, _ = w.Write([]byte("<x/>"))
	zw.Close()
	out.Close()

	if _, err := ReadDOCX(path); err == nil || !strings.Contains(err.Error(), "word/document.xml") {
		t.Fatalf("expected a missing document.xml error, got %v", err)
	}
}
