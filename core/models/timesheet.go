package models

import "time"

// TimesheetEntry is one submitted timesheet line. Dates are stored as ISO
// strings because every consumer (dashboard, report, reminder) works in that
// wire form. Each entry remembers the fortnight window it was submitted
// under; the override path omits the window, so both fields are nullable in
// effect (empty string).
type TimesheetEntry struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	UserID      uint   `gorm:"index"`
	User        User   `gorm:"foreignKey:UserID"`
	Date        string `gorm:"size:10;index"`
	Day         string `gorm:"size:16"`
	CourseCode  string `gorm:"size:64;index"`
	HoursWorked float64
	Comments    string
	StartDate   string `gorm:"size:10"`
	EndDate     string `gorm:"size:10"`
	CreatedAt   time.Time
}
