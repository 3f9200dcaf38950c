package schedule

// Command is a reversible description of one edit to the assignment store.
// A command carries the full before/after payload so inversion never needs
// to re-derive lost information. Commands that reference state which no
// longer exists at apply or invert time degrade to no-ops; they never fail
// in a way that would desynchronize the history stacks.
type Command interface {
	Apply(s *Store) error
	Invert(s *Store) error
	Kind() string
}

// ModifyAssignmentCommand creates a new assignment or edits an existing one.
// OldAssignment is nil for a creation; otherwise it holds the full prior
// content restored on invert.
type ModifyAssignmentCommand struct {
	EmployeeID    string      `json:"employeeId"`
	Date          string      `json:"date"`
	NewAssignment Assignment  `json:"newAssignment"`
	OldAssignment *Assignment `json:"oldAssignment,omitempty"`
}

func (c *ModifyAssignmentCommand) Kind() string { return "modify_assignment" }

func (c *ModifyAssignmentCommand) Apply(s *Store) error {
	return s.Upsert(c.EmployeeID, c.Date, c.NewAssignment)
}

func (c *ModifyAssignmentCommand) Invert(s *Store) error {
	if c.OldAssignment == nil {
		_, err := s.Remove(c.EmployeeID, c.Date, c.NewAssignment.AssignmentID)
		return err
	}
	return s.Upsert(c.EmployeeID, c.Date, *c.OldAssignment)
}

// DeleteAssignmentCommand removes an assignment, capturing its full content
// at apply time so the inverse can restore it verbatim. Deleting an
// assignment that no longer exists makes the whole command a no-op.
type DeleteAssignmentCommand struct {
	EmployeeID   string `json:"employeeId"`
	Date         string `json:"date"`
	AssignmentID string `json:"assignmentId"`

	captured *Assignment
}

func (c *DeleteAssignmentCommand) Kind() string { return "delete_assignment" }

func (c *DeleteAssignmentCommand) Apply(s *Store) error {
	c.captured = nil
	for _, a := range s.Get(c.EmployeeID, c.Date) {
		if a.AssignmentID == c.AssignmentID {
			captured := a
			c.captured = &captured
			break
		}
	}
	if c.captured == nil {
		return nil
	}
	_, err := s.Remove(c.EmployeeID, c.Date, c.AssignmentID)
	return err
}

func (c *DeleteAssignmentCommand) Invert(s *Store) error {
	if c.captured == nil {
		return nil
	}
	return s.Upsert(c.EmployeeID, c.Date, *c.captured)
}

// DragDropCommand moves or copies an assignment between grid cells. A copy
// inserts a clone under NewAssignmentID at the target; a move relocates the
// assignment under its original id. The inverse removes the clone or moves
// the assignment back.
type DragDropCommand struct {
	OriginalEmployeeID string `json:"originalEmployeeId"`
	OriginalDate       string `json:"originalDate"`
	AssignmentID       string `json:"assignmentId"`
	IsCopyOperation    bool   `json:"isCopyOperation"`
	NewAssignmentID    string `json:"newAssignmentId"`
	TargetEmployeeID   string `json:"targetEmployeeId"`
	TargetDate         string `json:"targetDate"`
}

func (c *DragDropCommand) Kind() string { return "drag_drop" }

func (c *DragDropCommand) Apply(s *Store) error {
	_, err := s.MoveOrCopy(
		c.OriginalEmployeeID, c.OriginalDate, c.AssignmentID,
		c.TargetEmployeeID, c.TargetDate, c.NewAssignmentID,
		c.IsCopyOperation,
	)
	return err
}

func (c *DragDropCommand) Invert(s *Store) error {
	if c.IsCopyOperation {
		_, err := s.Remove(c.TargetEmployeeID, c.TargetDate, c.NewAssignmentID)
		return err
	}
	_, err := s.MoveOrCopy(
		c.TargetEmployeeID, c.TargetDate, c.AssignmentID,
		c.OriginalEmployeeID, c.OriginalDate, c.AssignmentID,
		false,
	)
	return err
}
