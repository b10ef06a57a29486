package schedule

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Record is one row of the semester schedule workbook.
type Record struct {
	ID         int    `json:"id"`
	Subject    string `json:"subject"`
	Group      string `json:"group"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Days       string `json:"days"`
	Room       string `json:"room"`
	Instructor string `json:"instructor"`
}

// Import reads the first sheet of a workbook and maps each row to a Record.
// Columns are matched by header name, so column order does not matter.
// IDs are assigned from 1 in row order; a failed read returns an error and
// the caller keeps whatever record set it already has.
func Import(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("sheet %s has no header row", sheets[0])
	}

	// Header names in the source workbooks carry stray whitespace.
	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []Record
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		records = append(records, Record{
			ID:         len(records) + 1,
			Subject:    cell(row, "Subject"),
			Group:      cell(row, "Group"),
			StartDate:  cell(row, "Start Date"),
			EndDate:    cell(row, "End Date"),
			StartTime:  DecodeTime(cell(row, "Start Time")),
			EndTime:    DecodeTime(cell(row, "End Time")),
			Days:       cell(row, "Days of the Week"),
			Room:       cell(row, "Room"),
			Instructor: cell(row, "Instructor"),
		})
	}

	return records, nil
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
