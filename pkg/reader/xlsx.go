package reader

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"rozkladctl/pkg/schedule"
)

// timeRangePattern recognizes the time column of a schedule row, with either
// one- or two-digit hours and either colon or dot separators.
var timeRangePattern = regexp.MustCompile(`^\d{1,2}[:.]\d{2}\s*-\s*\d{1,2}[:.]\d{2}`)

// ReadXLSX extracts the schedule table from the first worksheet of an xlsx
// workbook. Merged cells are spread over their whole range, the schedule
// block is located by time-range cells in the second column (or day names in
// the first), and blank day/time cells inherit the nearest value above.
func ReadXLSX(path string) ([]schedule.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if err := spreadMerged(f, sheet, grid); err != nil {
		return nil, err
	}

	first, last, ok := scheduleRowRange(grid)
	if !ok {
		return nil, fmt.Errorf("no schedule rows found in %s", filepath.Base(path))
	}

	rows := make([]schedule.RawRow, 0, last-first+1)
	var day, timeRange string
	for r := 0; r <= last && r < len(grid); r++ {
		// track inherited day/time from the very top, the first schedule
		// row may sit below the cell that carries its day
		if v := strings.TrimSpace(cellAt(grid, r, 0)); v != "" {
			day = v
		}
		if v := strings.TrimSpace(cellAt(grid, r, 1)); v != "" {
			timeRange = v
		}
		if r < first {
			continue
		}
		rows = append(rows, schedule.RawRow{
			Day:    day,
			Time:   timeRange,
			Course: cellAt(grid, r, 2),
			Group:  cellAt(grid, r, 3),
			Weeks:  cellAt(grid, r, 4),
			Hall:   cellAt(grid, r, 5),
		})
	}
	return rows, nil
}

// spreadMerged copies each merged range's anchor value into every covered
// cell; excelize reports the value only at the anchor.
func spreadMerged(f *excelize.File, sheet string, grid [][]string) error {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return fmt.Errorf("resolve merged cells: %w", err)
	}
	for _, m := range merges {
		sc, sr, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			continue
		}
		ec, er, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			continue
		}
		val := m.GetCellValue()
		for r := sr; r <= er && r <= len(grid); r++ {
			row := grid[r-1]
			for len(row) < ec {
				row = append(row, "")
			}
			for c := sc - 1; c < ec; c++ {
				row[c] = val
			}
			grid[r-1] = row
		}
	}
	return nil
}

func cellAt(grid [][]string, row, col int) string {
	if row >= len(grid) || col >= len(grid[row]) {
		return ""
	}
	return grid[row][col]
}

// scheduleRowRange finds the first and last row that look like schedule data.
func scheduleRowRange(grid [][]string) (first, last int, ok bool) {
	first, last = -1, -1
	for r := range grid {
		a := cellAt(grid, r, 0)
		b := strings.TrimSpace(cellAt(grid, r, 1))
		if (b != "" && timeRangePattern.MatchString(b)) || schedule.UkrainianWeekdays.Contains(a) {
			if first < 0 {
				first = r
			}
			last = r
		}
	}
	return first, last, first >= 0
}
