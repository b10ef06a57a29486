package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{name: "Monday", date: "2024-01-01", expected: "Monday"},
		{name: "Sunday", date: "2024-01-07", expected: "Sunday"},
		{name: "Saturday", date: "2024-01-06", expected: "Saturday"},
		{name: "Leap day", date: "2024-02-29", expected: "Thursday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := DayOfWeek(tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, day)
		})
	}
}

func TestDayOfWeekInvalid(t *testing.T) {
	_, err := DayOfWeek("01/01/2024")
	assert.Error(t, err)

	_, err = DayOfWeek("")
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		n        int
		expected string
	}{
		{name: "Within month", date: "2024-03-01", n: 13, expected: "2024-03-14"},
		{name: "Across month end", date: "2024-03-25", n: 13, expected: "2024-04-07"},
		{name: "Across leap day", date: "2024-02-20", n: 13, expected: "2024-03-04"},
		{name: "Non-leap February", date: "2023-02-20", n: 13, expected: "2023-03-05"},
		{name: "Across year end", date: "2024-12-27", n: 13, expected: "2025-01-09"},
		{name: "Negative shift", date: "2024-01-05", n: -5, expected: "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.date, tt.n)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAddDaysInvalid(t *testing.T) {
	_, err := AddDays("not-a-date", 13)
	assert.Error(t, err)
}

func TestMustParseDateRoundTrip(t *testing.T) {
	assert.Equal(t, "2024-02-29", MustParseDate("2024-02-29").Format(DateLayout))
	assert.True(t, MustParseDate("garbage").IsZero())
}
