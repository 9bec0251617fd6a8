package reader

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rozkladctl/pkg/schedule"
)

// ReadHTML extracts schedule rows from the first table of an HTML document
// (universities often publish timetables as saved web pages). Rows with fewer
// than six cells are skipped; header rows are left for the pipeline's fuzzy
// header removal. Blank day and time cells inherit the nearest value above.
func ReadHTML(r io.Reader) ([]schedule.RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found in document")
	}

	var rows []schedule.RawRow
	var day, timeRange string
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) < 6 {
			return
		}
		if cells[0] != "" {
			day = cells[0]
		}
		if cells[1] != "" {
			timeRange = cells[1]
		}
		rows = append(rows, schedule.RawRow{
			Day:    day,
			Time:   timeRange,
			Course: cells[2],
			Group:  cells[3],
			Weeks:  cells[4],
			Hall:   cells[5],
		})
	})
	return rows, nil
}
