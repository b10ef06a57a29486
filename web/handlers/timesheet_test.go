package handlers

import (
	"encoding/json"
	"testing"

	"campustime.com/campustime/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredEntryWireFormat(t *testing.T) {
	dtos := storedEntries([]models.TimesheetEntry{{
		Date:        "2024-03-04",
		Day:         "Monday",
		CourseCode:  "ESL",
		HoursWorked: 3,
		Comments:    "covered a colleague",
	}})
	require.Len(t, dtos, 1)

	raw, err := json.Marshal(dtos[0])
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))

	// The dashboard reads camelCase on the view side; snake_case belongs to
	// the submit direction only.
	assert.Contains(t, keys, "courseCode")
	assert.Contains(t, keys, "hoursWorked")
	assert.NotContains(t, keys, "course_code")
	assert.NotContains(t, keys, "hours_worked")
	assert.Equal(t, "ESL", keys["courseCode"])
	assert.Equal(t, 3.0, keys["hoursWorked"])
}
