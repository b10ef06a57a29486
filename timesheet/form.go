package timesheet

import (
	"errors"
	"fmt"

	"campustime.com/campustime/utils"
	"github.com/google/uuid"
)

// WindowDays is the length of a submission window minus one: the end date is
// the start date plus 13 days, a 14-day inclusive fortnight.
const WindowDays = 13

var (
	ErrStartDateRequired = errors.New("please select a start date")
	ErrTemplateRow       = errors.New("the first entry row cannot be removed")
	ErrRowNotFound       = errors.New("entry row not found")
	ErrNoWindow          = errors.New("set a start date before entering dates")
)

// Entry is one timesheet line in wire form. Day is derived from Date, never
// entered independently. HoursWorked stays a string on the wire; the backend
// parses it.
type Entry struct {
	Date        string `json:"date"`
	Day         string `json:"day"`
	CourseCode  string `json:"course_code"`
	HoursWorked string `json:"hours_worked"`
	Comments    string `json:"comments"`
}

// Complete reports whether the entry carries all four required fields.
// Comments is optional.
func (e Entry) Complete() bool {
	return e.Date != "" && e.Day != "" && e.CourseCode != "" && e.HoursWorked != ""
}

// Row is an entry row in the form. The template row is created with the form
// and is never removable; every added row is.
type Row struct {
	ID       uuid.UUID
	Template bool
	Entry    Entry
}

// Form holds the state of one timesheet entry form: the fortnight window and
// an ordered list of entry rows. Rows are records, not DOM nodes; add and
// remove are plain slice operations.
type Form struct {
	StartDate string
	EndDate   string
	rows      []Row
}

func NewForm() *Form {
	return &Form{
		rows: []Row{{ID: uuid.New(), Template: true}},
	}
}

// SetStartDate fixes the submission window to [startDate, startDate+13] and
// constrains every row's date to it. Narrowing the window invalidates prior
// entries, so all row dates and derived days are cleared.
func (f *Form) SetStartDate(startDate string) error {
	if startDate == "" {
		return ErrStartDateRequired
	}
	endDate, err := utils.AddDays(startDate, WindowDays)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	f.StartDate = startDate
	f.EndDate = endDate
	for i := range f.rows {
		f.rows[i].Entry.Date = ""
		f.rows[i].Entry.Day = ""
	}
	return nil
}

// AddRow appends an empty row bound to the current window and returns its ID.
func (f *Form) AddRow() uuid.UUID {
	row := Row{ID: uuid.New()}
	f.rows = append(f.rows, row)
	return row.ID
}

func (f *Form) RemoveRow(id uuid.UUID) error {
	for i, row := range f.rows {
		if row.ID != id {
			continue
		}
		if row.Template {
			return ErrTemplateRow
		}
		f.rows = append(f.rows[:i], f.rows[i+1:]...)
		return nil
	}
	return ErrRowNotFound
}

// SetRowDate sets a row's date, enforcing the window, and derives the day of
// week into the row.
func (f *Form) SetRowDate(id uuid.UUID, date string) error {
	if f.StartDate == "" || f.EndDate == "" {
		return ErrNoWindow
	}
	day, err := utils.DayOfWeek(date)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}
	if date < f.StartDate || date > f.EndDate {
		return fmt.Errorf("date %s is outside the period %s to %s", date, f.StartDate, f.EndDate)
	}
	row := f.row(id)
	if row == nil {
		return ErrRowNotFound
	}
	row.Entry.Date = date
	row.Entry.Day = day
	return nil
}

func (f *Form) SetRowCourseCode(id uuid.UUID, code string) error {
	return f.setField(id, func(e *Entry) { e.CourseCode = code })
}

func (f *Form) SetRowHours(id uuid.UUID, hours string) error {
	return f.setField(id, func(e *Entry) { e.HoursWorked = hours })
}

func (f *Form) SetRowComments(id uuid.UUID, comments string) error {
	return f.setField(id, func(e *Entry) { e.Comments = comments })
}

func (f *Form) setField(id uuid.UUID, set func(*Entry)) error {
	row := f.row(id)
	if row == nil {
		return ErrRowNotFound
	}
	set(&row.Entry)
	return nil
}

func (f *Form) row(id uuid.UUID) *Row {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i]
		}
	}
	return nil
}

// Rows returns a copy of the current rows in order.
func (f *Form) Rows() []Row {
	rows := make([]Row, len(f.rows))
	copy(rows, f.rows)
	return rows
}

// RowError names a row that would be dropped from the payload and why.
type RowError struct {
	RowID   uuid.UUID
	Missing []string
}

// Validate reports every row that is partially filled: touched, but missing
// one of the four required fields. Fully empty rows are not reported; they
// are just unused.
func (f *Form) Validate() []RowError {
	var errs []RowError
	for _, row := range f.rows {
		e := row.Entry
		if e.Complete() {
			continue
		}
		if e.Date == "" && e.Day == "" && e.CourseCode == "" && e.HoursWorked == "" && e.Comments == "" {
			continue
		}
		var missing []string
		if e.Date == "" {
			missing = append(missing, "date")
		}
		if e.Day == "" {
			missing = append(missing, "day")
		}
		if e.CourseCode == "" {
			missing = append(missing, "course code")
		}
		if e.HoursWorked == "" {
			missing = append(missing, "hours worked")
		}
		errs = append(errs, RowError{RowID: row.ID, Missing: missing})
	}
	return errs
}

// Collect builds the submission payload: every complete row, in order.
// Incomplete rows are skipped; call Validate first to report them.
func (f *Form) Collect() []Entry {
	var entries []Entry
	for _, row := range f.rows {
		if row.Entry.Complete() {
			entries = append(entries, row.Entry)
		}
	}
	return entries
}
