package helper

import (
	"strings"
	"testing"
	"time"
)

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)
	from, to := PeriodWindow(now)

	if from != "2024-03-01" {
		t.Errorf("expected from 2024-03-01, got %s", from)
	}
	if to != "2024-03-14" {
		t.Errorf("expected to 2024-03-14, got %s", to)
	}
}

func TestPeriodWindowAcrossMonth(t *testing.T) {
	now := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	from, to := PeriodWindow(now)

	if from != "2024-02-21" {
		t.Errorf("expected from 2024-02-21, got %s", from)
	}
	if to != "2024-03-05" {
		t.Errorf("expected to 2024-03-05, got %s", to)
	}
}

func TestReminderBody(t *testing.T) {
	body := ReminderBody("Alice Smith", "2024-03-01", "2024-03-14")

	if !strings.Contains(body, "Alice Smith") {
		t.Errorf("body missing recipient name: %s", body)
	}
	if !strings.Contains(body, "2024-03-01 to 2024-03-14") {
		t.Errorf("body missing period: %s", body)
	}
}
