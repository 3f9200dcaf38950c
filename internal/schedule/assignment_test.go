package schedule_test

import (
	"encoding/json"
	"strings"
	"testing"

	"staff-scheduler-backend/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentValidate(t *testing.T) {
	testCases := []struct {
		name        string
		assignment  schedule.Assignment
		expectError bool
		errorMsg    string
	}{
		{
			name:       "Valid template shift",
			assignment: schedule.NewTemplateShift("role-1", "tpl-1"),
		},
		{
			name:       "Valid custom shift",
			assignment: schedule.NewCustomShift("role-1", "22:00", "06:00"),
		},
		{
			name:       "Valid time off",
			assignment: schedule.NewTimeOff("Vacation"),
		},
		{
			name: "Missing assignment id",
			assignment: schedule.Assignment{
				Type:   schedule.AssignmentTypeShift,
				RoleID: "role-1",
			},
			expectError: true,
			errorMsg:    "assignment id",
		},
		{
			name: "Shift without role",
			assignment: schedule.Assignment{
				AssignmentID:    "assign-1",
				Type:            schedule.AssignmentTypeShift,
				ShiftTemplateID: "tpl-1",
			},
			expectError: true,
			errorMsg:    "role",
		},
		{
			name: "Shift with both template and custom times",
			assignment: schedule.Assignment{
				AssignmentID:    "assign-1",
				Type:            schedule.AssignmentTypeShift,
				RoleID:          "role-1",
				ShiftTemplateID: "tpl-1",
				IsCustom:        true,
				CustomStart:     "09:00",
				CustomEnd:       "17:00",
			},
			expectError: true,
			errorMsg:    "template",
		},
		{
			name: "Custom shift with identical start and end",
			assignment: schedule.Assignment{
				AssignmentID: "assign-1",
				Type:         schedule.AssignmentTypeShift,
				RoleID:       "role-1",
				IsCustom:     true,
				CustomStart:  "09:00",
				CustomEnd:    "09:00",
			},
			expectError: true,
			errorMsg:    "differ",
		},
		{
			name: "Template shift carrying custom times",
			assignment: schedule.Assignment{
				AssignmentID:    "assign-1",
				Type:            schedule.AssignmentTypeShift,
				RoleID:          "role-1",
				ShiftTemplateID: "tpl-1",
				CustomStart:     "09:00",
				CustomEnd:       "17:00",
			},
			expectError: true,
			errorMsg:    "custom times",
		},
		{
			name: "Time off without reason",
			assignment: schedule.Assignment{
				AssignmentID: "assign-1",
				Type:         schedule.AssignmentTypeTimeOff,
			},
			expectError: true,
			errorMsg:    "reason",
		},
		{
			name: "Time off carrying shift fields",
			assignment: schedule.Assignment{
				AssignmentID: "assign-1",
				Type:         schedule.AssignmentTypeTimeOff,
				Reason:       "Vacation",
				RoleID:       "role-1",
			},
			expectError: true,
			errorMsg:    "shift fields",
		},
		{
			name: "Unknown type",
			assignment: schedule.Assignment{
				AssignmentID: "assign-1",
				Type:         "holiday",
			},
			expectError: true,
			errorMsg:    "invalid assignment type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.assignment.Validate()
			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssignmentSerializationOmitsAbsentFields(t *testing.T) {
	timeOff := schedule.Assignment{
		AssignmentID: "assign-1",
		Type:         schedule.AssignmentTypeTimeOff,
		Reason:       "Sick",
	}

	data, err := json.Marshal(timeOff)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"assignmentId":"assign-1"`)
	assert.Contains(t, text, `"type":"time_off"`)
	assert.Contains(t, text, `"reason":"Sick"`)
	assert.NotContains(t, text, "roleId")
	assert.NotContains(t, text, "shiftTemplateId")
	assert.NotContains(t, text, "customStart")
}

func TestNewAssignmentIDIsUniqueAndPrefixed(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := schedule.NewAssignmentID()
		assert.True(t, strings.HasPrefix(id, "assign-"))
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestAssignmentCloneKeepsContent(t *testing.T) {
	a := schedule.NewCustomShift("role-1", "09:00", "17:00")

	c := a.Clone("assign-clone")

	assert.Equal(t, "assign-clone", c.AssignmentID)
	assert.Equal(t, a.Type, c.Type)
	assert.Equal(t, a.RoleID, c.RoleID)
	assert.Equal(t, a.CustomStart, c.CustomStart)
	assert.Equal(t, a.CustomEnd, c.CustomEnd)
	assert.True(t, c.IsCustom)
}
