package schedule

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTime(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "Noon fraction", raw: "0.5", expected: "12:00 PM"},
		{name: "Midnight fraction", raw: "0.0", expected: "12:00 AM"},
		{name: "Morning fraction", raw: "0.375", expected: "9:00 AM"},
		{name: "Late fraction", raw: "0.708333333", expected: "5:00 PM"},
		{name: "24-hour text afternoon", raw: "13:00", expected: "1:00 PM"},
		{name: "24-hour text morning", raw: "09:30", expected: "9:30 AM"},
		{name: "24-hour text midnight", raw: "0:15", expected: "12:15 AM"},
		{name: "Already formatted AM", raw: "9:00 AM", expected: "9:00 AM"},
		{name: "Already formatted PM", raw: "5:30 PM", expected: "5:30 PM"},
		{name: "Out of range hours", raw: "25:00", expected: "25:00"},
		{name: "Out of range minutes", raw: "10:75", expected: "10:75"},
		{name: "Garbage passes through", raw: "tbd", expected: "tbd"},
		{name: "Empty passes through", raw: "", expected: ""},
		{name: "Whitespace trimmed", raw: " 13:00 ", expected: "1:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeTime(tt.raw))
		})
	}
}

func TestDecodeTimeIdempotent(t *testing.T) {
	// A second pass over any decoded value must be a no-op.
	inputs := []string{"0.5", "0.375", "13:00", "9:00 AM", "garbage"}
	for _, raw := range inputs {
		once := DecodeTime(raw)
		assert.Equal(t, once, DecodeTime(once), "input %q", raw)
	}
}

func TestDecodeTimeCoversWholeDay(t *testing.T) {
	// Every minute of the day must land back on the same minute.
	for minute := 0; minute < 24*60; minute++ {
		frac := float64(minute) / (24 * 60)
		got := DecodeTime(strconv.FormatFloat(frac, 'f', -1, 64))

		want := formatClock(minute/60, minute%60)
		assert.Equal(t, want, got, "minute %d", minute)
	}
}
