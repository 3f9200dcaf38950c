package testutils

import (
	"time"

	"staff-scheduler-backend/internal/database/models"
	"staff-scheduler-backend/internal/schedule"

	"github.com/google/uuid"
)

// FactorySet bundles all model factories
type FactorySet struct {
	Department    *DepartmentFactory
	Role          *RoleFactory
	Employee      *EmployeeFactory
	ShiftTemplate *ShiftTemplateFactory
	ScheduleDay   *ScheduleDayFactory
}

// NewFactorySet creates a complete set of factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Department:    &DepartmentFactory{},
		Role:          &RoleFactory{},
		Employee:      &EmployeeFactory{},
		ShiftTemplate: &ShiftTemplateFactory{},
		ScheduleDay:   &ScheduleDayFactory{},
	}
}

func baseModel() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	return &models.Department{
		BaseModel:    baseModel(),
		Name:         "Kitchen " + uuid.NewString()[:8],
		Abbreviation: "KIT",
	}
}

// WithName sets a custom name for the department
func (f *DepartmentFactory) WithName(name string) *models.Department {
	dept := f.Create()
	dept.Name = name
	return dept
}

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// Create creates a test Role with default values
func (f *RoleFactory) Create() *models.Role {
	return &models.Role{
		BaseModel: baseModel(),
		Name:      "Server",
		Color:     "#FF9800",
	}
}

// WithDepartment attaches the role to a department
func (f *RoleFactory) WithDepartment(departmentID uuid.UUID) *models.Role {
	role := f.Create()
	role.DepartmentID = &departmentID
	return role
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	return &models.Employee{
		BaseModel:       baseModel(),
		DisplayName:     "Dana Test",
		Status:          models.EmployeeStatusActive,
		IsVisible:       true,
		VacationBalance: 14,
	}
}

// WithName sets a custom display name for the employee
func (f *EmployeeFactory) WithName(name string) *models.Employee {
	employee := f.Create()
	employee.DisplayName = name
	return employee
}

// Terminated creates a terminated employee
func (f *EmployeeFactory) Terminated() *models.Employee {
	employee := f.Create()
	employee.Status = models.EmployeeStatusTerminated
	return employee
}

// ShiftTemplateFactory provides methods to create test ShiftTemplate data
type ShiftTemplateFactory struct{}

// Create creates a test ShiftTemplate with default values
func (f *ShiftTemplateFactory) Create() *models.ShiftTemplate {
	return &models.ShiftTemplate{
		BaseModel: baseModel(),
		Name:      "Morning",
		StartTime: "08:00",
		EndTime:   "16:00",
	}
}

// Overnight creates a template that wraps past midnight
func (f *ShiftTemplateFactory) Overnight() *models.ShiftTemplate {
	template := f.Create()
	template.Name = "Night"
	template.StartTime = "22:00"
	template.EndTime = "06:00"
	return template
}

// ScheduleDayFactory provides methods to create test ScheduleDay data
type ScheduleDayFactory struct{}

// Create creates a test ScheduleDay with one time-off entry
func (f *ScheduleDayFactory) Create(employeeID uuid.UUID, date string) *models.ScheduleDay {
	return &models.ScheduleDay{
		BaseModel:  baseModel(),
		EmployeeID: employeeID,
		Date:       date,
		Shifts:     []schedule.Assignment{schedule.NewTimeOff("Vacation")},
	}
}

// WithShifts creates a day record holding the given assignments
func (f *ScheduleDayFactory) WithShifts(employeeID uuid.UUID, date string, shifts []schedule.Assignment) *models.ScheduleDay {
	day := f.Create(employeeID, date)
	day.Shifts = shifts
	return day
}
