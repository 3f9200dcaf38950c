package service

import (
	"staff-scheduler-backend/internal/schedule"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ScheduleServiceInterface defines the interface for the schedule service
type ScheduleServiceInterface interface {
	AssignShift(req *AssignShiftRequest) (*AssignmentResponse, error)
	DeleteAssignment(req *DeleteAssignmentRequest) error
	DragDrop(req *DragDropRequest) error
	Undo() (*HistoryStateResponse, error)
	Redo() (*HistoryStateResponse, error)
	ClearHistory() *HistoryStateResponse
	HistoryState() *HistoryStateResponse
	GetAssignments(employeeID uuid.UUID, date string) (*DayResponse, error)
	WeekView(date string, departmentIDs []string) (*schedule.WeekView, error)
	RemoveEmployeeAssignments(employeeID uuid.UUID) error
}

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	CreateDepartment(req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetDepartmentByID(id uuid.UUID) (*DepartmentResponse, error)
	GetDepartments(page, pageSize int) (*DepartmentListResponse, error)
	UpdateDepartment(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	DeleteDepartment(id uuid.UUID) error
}

// RoleServiceInterface defines the interface for role service
type RoleServiceInterface interface {
	CreateRole(req *CreateRoleRequest) (*RoleResponse, error)
	GetRoleByID(id uuid.UUID) (*RoleResponse, error)
	GetRoles(departmentID *uuid.UUID, page, pageSize int) (*RoleListResponse, error)
	UpdateRole(id uuid.UUID, req *UpdateRoleRequest) (*RoleResponse, error)
	DeleteRole(id uuid.UUID) error
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	CreateEmployee(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetEmployeeByID(id uuid.UUID) (*EmployeeResponse, error)
	GetEmployees(departmentID *uuid.UUID, page, pageSize int) (*EmployeeListResponse, error)
	UpdateEmployee(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	DeleteEmployee(id uuid.UUID) error
}

// ShiftTemplateServiceInterface defines the interface for shift template service
type ShiftTemplateServiceInterface interface {
	CreateShiftTemplate(req *CreateShiftTemplateRequest) (*ShiftTemplateResponse, error)
	GetShiftTemplateByID(id uuid.UUID) (*ShiftTemplateResponse, error)
	GetShiftTemplates(page, pageSize int) (*ShiftTemplateListResponse, error)
	UpdateShiftTemplate(id uuid.UUID, req *UpdateShiftTemplateRequest) (*ShiftTemplateResponse, error)
	DeleteShiftTemplate(id uuid.UUID) error
}

// Compile-time interface conformance checks
var (
	_ ScheduleServiceInterface      = (*ScheduleService)(nil)
	_ DepartmentServiceInterface    = (*DepartmentService)(nil)
	_ RoleServiceInterface          = (*RoleService)(nil)
	_ EmployeeServiceInterface      = (*EmployeeService)(nil)
	_ ShiftTemplateServiceInterface = (*ShiftTemplateService)(nil)
)
