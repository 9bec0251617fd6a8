package reader

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"rozkladctl/pkg/schedule"
)

// ReadDOCX extracts schedule rows from the tables of a docx archive. The
// first row of every table is treated as a header and skipped; blank day and
// time cells inherit the nearest non-empty value above, across tables.
func ReadDOCX(path string) ([]schedule.RawRow, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer zr.Close()

	for _, zf := range zr.File {
		if zf.Name != "word/document.xml" {
			continue
		}
		doc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("read document.xml: %w", err)
		}
		defer doc.Close()
		return parseDocumentXML(doc)
	}
	return nil, fmt.Errorf("%s has no word/document.xml", filepath.Base(path))
}

// parseDocumentXML walks the w:tbl/w:tr/w:tc/w:t structure of a
// WordprocessingML body, concatenating the text runs of each cell.
func parseDocumentXML(r io.Reader) ([]schedule.RawRow, error) {
	dec := xml.NewDecoder(r)

	var rows []schedule.RawRow
	var cells []string
	var cellText strings.Builder
	tableDepth := 0
	rowInTable := 0
	cellDepth := 0
	inText := false
	var day, timeRange string

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
				rowInTable = 0
			case "tr":
				cells = nil
			case "tc":
				cellDepth++
				cellText.Reset()
			case "t":
				inText = cellDepth > 0
			}
		case xml.CharData:
			if inText {
				cellText.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tc":
				cellDepth--
				cells = append(cells, cellText.String())
			case "tr":
				if tableDepth == 0 {
					continue
				}
				rowInTable++
				if rowInTable == 1 || len(cells) == 0 {
					continue // table header
				}
				for len(cells) < 6 {
					cells = append(cells, "")
				}
				if v := strings.TrimSpace(cells[0]); v != "" {
					day = v
				}
				if v := strings.TrimSpace(cells[1]); v != "" {
					timeRange = v
				}
				rows = append(rows, schedule.RawRow{
					Day:    day,
					Time:   timeRange,
					Course: cells[2],
					Group:  cells[3],
					Weeks:  cells[4],
					Hall:   cells[5],
				})
			case "tbl":
				tableDepth--
			}
		}
	}
	return rows, nil
}
