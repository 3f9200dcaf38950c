package service

import (
	"fmt"
	"strings"

	"staff-scheduler-backend/internal/database/models"
	apperrors "staff-scheduler-backend/internal/errors"
	"staff-scheduler-backend/internal/logger"
	"staff-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScheduleCascade removes an employee's schedule data when the employee is
// deleted. Implemented by the schedule service.
type ScheduleCascade interface {
	RemoveEmployeeAssignments(employeeID uuid.UUID) error
}

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	deptRepo  repository.DepartmentRepositoryInterface
	cascade   ScheduleCascade
	validator *validator.Validate
	log       *logger.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	repo repository.EmployeeRepositoryInterface,
	deptRepo repository.DepartmentRepositoryInterface,
	cascade ScheduleCascade,
	validator *validator.Validate,
) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		deptRepo:  deptRepo,
		cascade:   cascade,
		validator: validator,
		log:       logger.New().WithField("component", "employee"),
	}
}

// CreateEmployeeRequest represents the data needed to create an employee
type CreateEmployeeRequest struct {
	DisplayName     string     `json:"display_name" validate:"required,max=200"`
	DepartmentID    *uuid.UUID `json:"department_id"`
	Status          *string    `json:"status"`
	IsVisible       *bool      `json:"is_visible"`
	VacationBalance *int       `json:"vacation_balance" validate:"omitempty,gte=0"`
}

// UpdateEmployeeRequest represents the data needed to update an employee
type UpdateEmployeeRequest struct {
	DisplayName     *string    `json:"display_name" validate:"omitempty,max=200"`
	DepartmentID    *uuid.UUID `json:"department_id"`
	Status          *string    `json:"status"`
	IsVisible       *bool      `json:"is_visible"`
	VacationBalance *int       `json:"vacation_balance" validate:"omitempty,gte=0"`
}

// EmployeeResponse represents the response data for an employee
type EmployeeResponse struct {
	ID              uuid.UUID  `json:"id"`
	DisplayName     string     `json:"display_name"`
	DepartmentID    *uuid.UUID `json:"department_id,omitempty"`
	Status          string     `json:"status"`
	IsVisible       bool       `json:"is_visible"`
	VacationBalance int        `json:"vacation_balance"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// CreateEmployee creates a new employee
func (s *EmployeeService) CreateEmployee(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(*req.DepartmentID); err != nil {
			return nil, apperrors.ErrDepartmentNotFound
		}
	}

	status := models.EmployeeStatusActive
	if req.Status != nil {
		status = models.EmployeeStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	employee := &models.Employee{
		DisplayName:  strings.TrimSpace(req.DisplayName),
		DepartmentID: req.DepartmentID,
		Status:       status,
		IsVisible:    isVisible,
	}
	if req.VacationBalance != nil {
		employee.VacationBalance = *req.VacationBalance
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.convertToResponse(employee), nil
}

// GetEmployeeByID retrieves an employee by ID
func (s *EmployeeService) GetEmployeeByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrEmployeeNotFound
	}

	return s.convertToResponse(employee), nil
}

// GetEmployees retrieves employees with pagination, optionally scoped to a
// department.
func (s *EmployeeService) GetEmployees(departmentID *uuid.UUID, page, pageSize int) (*EmployeeListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)
	offset := (page - 1) * pageSize

	var (
		employees []models.Employee
		total     int64
		err       error
	)
	if departmentID != nil {
		employees, total, err = s.repo.GetByDepartmentID(*departmentID, pageSize, offset)
	} else {
		employees, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = *s.convertToResponse(&employee)
	}

	return &EmployeeListResponse{
		Employees: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// UpdateEmployee updates an existing employee. Vacation balance edits apply
// immediately and are not part of the schedule undo history.
func (s *EmployeeService) UpdateEmployee(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrEmployeeNotFound
	}

	if req.DisplayName != nil {
		employee.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(*req.DepartmentID); err != nil {
			return nil, apperrors.ErrDepartmentNotFound
		}
		employee.DepartmentID = req.DepartmentID
	}
	if req.Status != nil {
		status := models.EmployeeStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		employee.Status = status
	}
	if req.IsVisible != nil {
		employee.IsVisible = *req.IsVisible
	}
	if req.VacationBalance != nil {
		employee.VacationBalance = *req.VacationBalance
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.convertToResponse(employee), nil
}

// DeleteEmployee deletes an employee and every schedule day stored for
// them. History entries referencing the employee become no-ops.
func (s *EmployeeService) DeleteEmployee(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrEmployeeNotFound
	}

	if err := s.cascade.RemoveEmployeeAssignments(id); err != nil {
		return fmt.Errorf("failed to remove employee schedule: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.log.WithField("employee_id", id).Info("employee deleted with schedule cascade")
	return nil
}

// convertToResponse converts an Employee model to API response
func (s *EmployeeService) convertToResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:              employee.ID,
		DisplayName:     employee.DisplayName,
		DepartmentID:    employee.DepartmentID,
		Status:          string(employee.Status),
		IsVisible:       employee.IsVisible,
		VacationBalance: employee.VacationBalance,
		CreatedAt:       employee.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       employee.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
