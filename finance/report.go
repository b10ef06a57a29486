package finance

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"campustime.com/campustime/core/models"
	"campustime.com/campustime/schedule"
	"campustime.com/campustime/utils"
	"github.com/xuri/excelize/v2"
)

// Transaction is one row of the finance report: a faculty member's total
// submitted hours and whether they match the scheduled hours.
type Transaction struct {
	FacultyName string  `json:"faculty_name"`
	HoursWorked float64 `json:"hours_worked"`
	Status      string  `json:"status"`
}

// FacultySheet is the input to the report: one faculty member, their stored
// review status, and their submitted entries.
type FacultySheet struct {
	Name    string
	Status  string
	Entries []models.TimesheetEntry
}

// BuildReport totals each faculty member's submitted hours within the
// optional [from, to] date range and compares them against the hours the
// semester schedule says they should have taught. A finance-confirmed status
// ("✓") is kept as-is; otherwise the comparison decides. The returned
// messages flag entries with no matching schedule row.
func BuildReport(faculty []FacultySheet, records []schedule.Record, from, to string) ([]Transaction, []string) {
	var transactions []Transaction
	var messages []string

	for _, f := range faculty {
		if len(f.Entries) == 0 {
			continue
		}

		inRange := utils.Filter(f.Entries, func(e models.TimesheetEntry) bool {
			return (from == "" || e.Date >= from) && (to == "" || e.Date <= to)
		})

		var worked, scheduled float64
		counted := make(map[string]bool)
		for _, entry := range inRange {
			worked += entry.HoursWorked

			hours := ScheduledHours(records, f.Name, entry.CourseCode)
			if hours == 0 {
				messages = append(messages, fmt.Sprintf(
					"No schedule entry found for %s on %s for course %s",
					f.Name, entry.Date, entry.CourseCode))
			}
			// Each course contributes its scheduled hours once, however
			// many entries the faculty member logged against it.
			if !counted[entry.CourseCode] {
				counted[entry.CourseCode] = true
				scheduled += hours
			}
		}

		if worked == 0 {
			continue
		}

		status := f.Status
		if status != models.StatusMatched {
			status = models.StatusUnmatched
			if worked == scheduled {
				status = models.StatusMatched
			}
		}

		transactions = append(transactions, Transaction{
			FacultyName: f.Name,
			HoursWorked: worked,
			Status:      status,
		})
	}

	return transactions, messages
}

// Overview is the finance dashboard payload: the report rows plus the
// discrepancy notes BuildReport raised while producing them.
type Overview struct {
	Transactions []Transaction `json:"transactions"`
	Messages     []string      `json:"messages"`
}

// BuildOverview wraps BuildReport for JSON consumers, with empty slices in
// place of nils so the dashboard always gets arrays.
func BuildOverview(faculty []FacultySheet, records []schedule.Record, from, to string) Overview {
	transactions, messages := BuildReport(faculty, records, from, to)
	if transactions == nil {
		transactions = []Transaction{}
	}
	if messages == nil {
		messages = []string{}
	}
	return Overview{Transactions: transactions, Messages: messages}
}

// ScheduledHours sums the class hours the schedule assigns to an instructor
// for a course. The instructor must match exactly (ignoring case and
// whitespace); the course code matches any subject it prefixes. Each class's
// duration is rounded up to whole hours, as the source schedule does.
func ScheduledHours(records []schedule.Record, instructor, courseCode string) float64 {
	instructor = strings.ToLower(strings.TrimSpace(instructor))
	courseCode = strings.ToLower(strings.TrimSpace(courseCode))

	var total float64
	for _, r := range records {
		if strings.ToLower(strings.TrimSpace(r.Instructor)) != instructor {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(r.Subject)), courseCode) {
			continue
		}
		total += classHours(r.StartTime, r.EndTime)
	}
	return total
}

// classHours is the rounded-up duration between two canonical time strings.
func classHours(startTime, endTime string) float64 {
	start, err1 := time.Parse("3:04 PM", startTime)
	end, err2 := time.Parse("3:04 PM", endTime)
	if err1 != nil || err2 != nil {
		return 0
	}
	return math.Ceil(end.Sub(start).Hours())
}

// statusLabel turns the dashboard glyphs into report wording.
func statusLabel(status string) string {
	return utils.FormatBoolean(status == models.StatusMatched, "Hours Matched", "Hours Unmatched")
}

var reportHeader = []string{"Faculty Name", "Hours Worked", "Status"}

// WriteCSV streams the report as CSV, the default download format.
func WriteCSV(w io.Writer, transactions []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, t := range transactions {
		row := []string{
			t.FacultyName,
			strconv.FormatFloat(t.HoursWorked, 'f', -1, 64),
			statusLabel(t.Status),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX streams the report as a single-sheet workbook.
func WriteXLSX(w io.Writer, transactions []Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, h := range reportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for i, t := range transactions {
		values := []any{t.FacultyName, t.HoursWorked, statusLabel(t.Status)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
