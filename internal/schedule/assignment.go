package schedule

import (
	"fmt"

	"github.com/google/uuid"
)

// AssignmentType discriminates the two kinds of schedule entries
type AssignmentType string

const (
	AssignmentTypeShift   AssignmentType = "shift"
	AssignmentTypeTimeOff AssignmentType = "time_off"
)

// IsValid checks if the assignment type is valid
func (t AssignmentType) IsValid() bool {
	return t == AssignmentTypeShift || t == AssignmentTypeTimeOff
}

// Assignment is one scheduled shift or time-off record for one employee on
// one date. For shift entries exactly one of ShiftTemplateID or the custom
// time pair is set; Reason is set only for time-off entries.
type Assignment struct {
	AssignmentID    string         `json:"assignmentId"`
	Type            AssignmentType `json:"type"`
	RoleID          string         `json:"roleId,omitempty"`
	ShiftTemplateID string         `json:"shiftTemplateId,omitempty"`
	IsCustom        bool           `json:"isCustom,omitempty"`
	CustomStart     string         `json:"customStart,omitempty"`
	CustomEnd       string         `json:"customEnd,omitempty"`
	Reason          string         `json:"reason,omitempty"`
}

// NewAssignmentID generates a unique assignment identifier
func NewAssignmentID() string {
	return "assign-" + uuid.NewString()
}

// NewTemplateShift creates a shift assignment backed by a shift template
func NewTemplateShift(roleID, shiftTemplateID string) Assignment {
	return Assignment{
		AssignmentID:    NewAssignmentID(),
		Type:            AssignmentTypeShift,
		RoleID:          roleID,
		ShiftTemplateID: shiftTemplateID,
	}
}

// NewCustomShift creates a shift assignment with ad hoc start/end times
func NewCustomShift(roleID, start, end string) Assignment {
	return Assignment{
		AssignmentID: NewAssignmentID(),
		Type:         AssignmentTypeShift,
		RoleID:       roleID,
		IsCustom:     true,
		CustomStart:  start,
		CustomEnd:    end,
	}
}

// NewTimeOff creates a time-off assignment with the given reason
func NewTimeOff(reason string) Assignment {
	return Assignment{
		AssignmentID: NewAssignmentID(),
		Type:         AssignmentTypeTimeOff,
		Reason:       reason,
	}
}

// Validate checks the structural invariants of an assignment. It is used for
// payloads arriving over the wire; assignments built through the
// constructors satisfy it by construction.
func (a Assignment) Validate() error {
	if a.AssignmentID == "" {
		return fmt.Errorf("assignment id is required")
	}
	switch a.Type {
	case AssignmentTypeShift:
		if a.RoleID == "" {
			return fmt.Errorf("shift assignment requires a role")
		}
		if a.Reason != "" {
			return fmt.Errorf("shift assignment must not carry a time-off reason")
		}
		if a.IsCustom {
			if a.ShiftTemplateID != "" {
				return fmt.Errorf("custom shift must not reference a shift template")
			}
			if a.CustomStart == "" || a.CustomEnd == "" {
				return fmt.Errorf("custom shift requires start and end times")
			}
			if a.CustomStart == a.CustomEnd {
				return fmt.Errorf("custom shift start and end times must differ")
			}
		} else {
			if a.ShiftTemplateID == "" {
				return fmt.Errorf("template shift requires a shift template")
			}
			if a.CustomStart != "" || a.CustomEnd != "" {
				return fmt.Errorf("template shift must not carry custom times")
			}
		}
	case AssignmentTypeTimeOff:
		if a.Reason == "" {
			return fmt.Errorf("time-off assignment requires a reason")
		}
		if a.RoleID != "" || a.ShiftTemplateID != "" || a.IsCustom || a.CustomStart != "" || a.CustomEnd != "" {
			return fmt.Errorf("time-off assignment must not carry shift fields")
		}
	default:
		return fmt.Errorf("invalid assignment type: %q", a.Type)
	}
	return nil
}

// Clone returns a copy of the assignment under a new identifier
func (a Assignment) Clone(newID string) Assignment {
	c := a
	c.AssignmentID = newID
	return c
}
