package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for every date in the system (yyyy-MM-dd).
const DateLayout = "2006-01-02"

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func MustParseDate(dateStr string) time.Time {
	t, _ := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	return t
}

func ParseISODate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %s: %w", s, err)
	}
	return t, nil
}

// AddDays shifts an ISO date by n days, rolling over month and year
// boundaries (leap years included).
func AddDays(isoDate string, n int) (string, error) {
	t, err := ParseISODate(isoDate)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

// DayOfWeek returns the weekday name for an ISO date, 0=Sunday..6=Saturday.
func DayOfWeek(isoDate string) (string, error) {
	t, err := ParseISODate(isoDate)
	if err != nil {
		return "", err
	}
	return weekdayNames[int(t.Weekday())], nil
}

