package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DecodeTime normalises a spreadsheet time cell to the canonical
// "h:mm AM/PM" display form.
//
// Workbooks store times either as a fraction of a 24-hour day (0.5 is noon),
// as "HH:mm" text, or as text that is already formatted. Already-formatted
// values pass through unchanged, and anything unparseable is returned as-is
// so a bad cell never takes down an import.
func DecodeTime(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}

	if strings.Contains(s, "AM") || strings.Contains(s, "PM") {
		return raw
	}

	if frac, err := strconv.ParseFloat(s, 64); err == nil {
		totalMinutes := int(math.Round(frac * 24 * 60))
		hours := (totalMinutes / 60) % 24
		minutes := totalMinutes % 60
		return formatClock(hours, minutes)
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return raw
	}
	hours, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	minutes, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return raw
	}
	return formatClock(hours, minutes)
}

func formatClock(hours, minutes int) string {
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	displayHours := hours % 12
	if displayHours == 0 {
		displayHours = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHours, minutes, period)
}
