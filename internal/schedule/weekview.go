package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// Fallback display strings for references that no longer resolve. Stale
// lookups degrade gracefully instead of failing the render.
const (
	fallbackRoleName = "No Role"
	fallbackTime     = "N/A"
)

// Employee statuses as stored in the employee registry
const (
	EmployeeStatusActive     = "Active"
	EmployeeStatusTerminated = "Terminated"
)

// DepartmentRef, RoleRef, ShiftTemplateRef and EmployeeRef are the reference
// table rows the renderer resolves assignments against. They are lookup data
// only; the core never mutates them.
type DepartmentRef struct {
	ID   string
	Name string
}

type RoleRef struct {
	ID           string
	Name         string
	Color        string
	DepartmentID string
}

type ShiftTemplateRef struct {
	ID    string
	Name  string
	Start string
	End   string
}

type EmployeeRef struct {
	ID              string
	DisplayName     string
	DepartmentID    string
	Status          string
	IsVisible       bool
	VacationBalance int
}

// Directory resolves reference-table lookups by id. Absence is reported via
// the boolean, never by an error.
type Directory interface {
	FindDepartment(id string) (DepartmentRef, bool)
	FindRole(id string) (RoleRef, bool)
	FindShiftTemplate(id string) (ShiftTemplateRef, bool)
	FindEmployee(id string) (EmployeeRef, bool)
	ListEmployees() []EmployeeRef
}

// CellItem is one rendered assignment inside a grid cell
type CellItem struct {
	AssignmentID string         `json:"assignment_id"`
	Type         AssignmentType `json:"type"`
	Label        string         `json:"label"`
	StartTime    string         `json:"start_time,omitempty"`
	EndTime      string         `json:"end_time,omitempty"`
	RoleName     string         `json:"role_name,omitempty"`
	Color        string         `json:"color,omitempty"`
	TextColor    string         `json:"text_color,omitempty"`
	Reason       string         `json:"reason,omitempty"`
}

// DayCell lists one day's assignments for one employee, in store order
type DayCell struct {
	Date  string     `json:"date"`
	Items []CellItem `json:"items"`
}

// EmployeeRow is one employee's week: seven cells plus the weekly hour total
type EmployeeRow struct {
	EmployeeID      string    `json:"employee_id"`
	DisplayName     string    `json:"display_name"`
	DepartmentName  string    `json:"department_name,omitempty"`
	VacationBalance int       `json:"vacation_balance"`
	WeeklyHours     float64   `json:"weekly_hours"`
	WeeklyHoursText string    `json:"weekly_hours_text"`
	Cells           []DayCell `json:"cells"`
}

// WeekView is the rendered grid for one week
type WeekView struct {
	WeekStart string        `json:"week_start"`
	WeekEnd   string        `json:"week_end"`
	Dates     []string      `json:"dates"`
	Rows      []EmployeeRow `json:"rows"`
}

// BuildWeekView renders the grid for the week containing the given date.
// Employees are filtered to active and visible ones, optionally restricted
// to a set of department ids, and kept in directory order. Weekly hours sum
// shift durations only; time off is excluded.
func BuildWeekView(store *Store, dir Directory, date time.Time, departmentIDs []string) WeekView {
	start := WeekStart(date)
	dates := DatesOfWeek(start)

	view := WeekView{
		WeekStart: FormatDate(start),
		WeekEnd:   FormatDate(dates[6]),
		Dates:     make([]string, len(dates)),
		Rows:      []EmployeeRow{},
	}
	for i, d := range dates {
		view.Dates[i] = FormatDate(d)
	}

	deptFilter := make(map[string]bool, len(departmentIDs))
	for _, id := range departmentIDs {
		deptFilter[id] = true
	}

	for _, emp := range dir.ListEmployees() {
		if emp.Status == EmployeeStatusTerminated || !emp.IsVisible {
			continue
		}
		if len(deptFilter) > 0 && !deptFilter[emp.DepartmentID] {
			continue
		}

		row := EmployeeRow{
			EmployeeID:      emp.ID,
			DisplayName:     emp.DisplayName,
			VacationBalance: emp.VacationBalance,
			Cells:           make([]DayCell, 0, len(dates)),
		}
		if dept, ok := dir.FindDepartment(emp.DepartmentID); ok {
			row.DepartmentName = dept.Name
		}

		for _, d := range dates {
			dateStr := FormatDate(d)
			cell := DayCell{Date: dateStr, Items: []CellItem{}}
			for _, a := range store.Get(emp.ID, dateStr) {
				item, hours := renderItem(dir, a)
				row.WeeklyHours += hours
				cell.Items = append(cell.Items, item)
			}
			row.Cells = append(row.Cells, cell)
		}

		row.WeeklyHoursText = strconv.FormatFloat(row.WeeklyHours, 'f', 1, 64)
		view.Rows = append(view.Rows, row)
	}
	return view
}

// renderItem resolves one assignment to its display form and the hours it
// contributes to the weekly total.
func renderItem(dir Directory, a Assignment) (CellItem, float64) {
	item := CellItem{
		AssignmentID: a.AssignmentID,
		Type:         a.Type,
	}

	if a.Type == AssignmentTypeTimeOff {
		item.Reason = a.Reason
		item.Label = a.Reason
		return item, 0
	}

	item.RoleName = fallbackRoleName
	if role, ok := dir.FindRole(a.RoleID); ok {
		item.RoleName = role.Name
		item.Color = role.Color
		item.TextColor = ContrastColor(role.Color)
	}

	start, end := a.CustomStart, a.CustomEnd
	if !a.IsCustom {
		start, end = "", ""
		if tpl, ok := dir.FindShiftTemplate(a.ShiftTemplateID); ok {
			start, end = tpl.Start, tpl.End
		}
	}

	item.StartTime = start
	item.EndTime = end
	startText, endText := start, end
	if startText == "" {
		startText = fallbackTime
	}
	if endText == "" {
		endText = fallbackTime
	}
	item.Label = fmt.Sprintf("%s - %s | %s", startText, endText, item.RoleName)

	if start != "" && end != "" {
		return item, CalculateShiftDuration(start, end)
	}
	return item, 0
}

// ContrastColor picks dark or light text for a hex background color using
// YIQ brightness. Unparseable colors get the dark default.
func ContrastColor(hexColor string) string {
	const (
		dark  = "#1C3A4D"
		light = "#FFFFFF"
	)
	if len(hexColor) < 7 || hexColor[0] != '#' {
		return dark
	}
	r, errR := strconv.ParseInt(hexColor[1:3], 16, 32)
	g, errG := strconv.ParseInt(hexColor[3:5], 16, 32)
	b, errB := strconv.ParseInt(hexColor[5:7], 16, 32)
	if errR != nil || errG != nil || errB != nil {
		return dark
	}
	yiq := (r*299 + g*587 + b*114) / 1000
	if yiq >= 128 {
		return dark
	}
	return light
}
