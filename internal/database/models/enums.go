package models

// EmployeeStatus tracks whether an employee is currently employed
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "Active"
	EmployeeStatusTerminated EmployeeStatus = "Terminated"
)

// IsValid checks if the employee status is valid
func (s EmployeeStatus) IsValid() bool {
	return s == EmployeeStatusActive || s == EmployeeStatusTerminated
}

// TimeOffReason is the label shown on a time-off schedule entry. Free-form
// values are allowed; these are the ones the UI offers.
type TimeOffReason string

const (
	TimeOffReasonVacation TimeOffReason = "Vacation"
	TimeOffReasonSick     TimeOffReason = "Sick"
	TimeOffReasonUnpaid   TimeOffReason = "Unpaid"
)

// Weekday keys used by shift-template availability, matching the schedule
// grid's day headers.
var Weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
