package helper

import (
	"fmt"
	"time"

	"campustime.com/campustime/core/models"
	"campustime.com/campustime/utils"
	"gorm.io/gorm"
)

// PeriodWindow is the trailing fortnight ending on the given day, in ISO
// dates. Faculty are reminded when this window holds none of their entries.
func PeriodWindow(now time.Time) (from string, to string) {
	to = now.Format(utils.DateLayout)
	from = now.AddDate(0, 0, -13).Format(utils.DateLayout)
	return from, to
}

// FindPendingFaculty lists faculty members with no submitted entry inside
// the window.
func FindPendingFaculty(db *gorm.DB, from, to string) ([]models.User, error) {
	var users []models.User
	err := db.
		Where("role = ?", models.RoleFaculty).
		Where("id NOT IN (?)", db.Model(&models.TimesheetEntry{}).
			Select("user_id").
			Where("date BETWEEN ? AND ?", from, to)).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("query pending faculty: %w", err)
	}
	return users, nil
}

func ReminderSubject(from, to string) string {
	return fmt.Sprintf("Timesheet reminder: %s to %s", from, to)
}

func ReminderBody(name, from, to string) string {
	return fmt.Sprintf(
		"Hi %s,\n\nNo timesheet has been submitted for the period %s to %s. "+
			"Please log in to the portal and submit your hours.\n\nCampus Time",
		name, from, to)
}
