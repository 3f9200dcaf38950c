package service

import (
	"fmt"
	"strings"

	"staff-scheduler-backend/internal/database/models"
	apperrors "staff-scheduler-backend/internal/errors"
	"staff-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo      repository.DepartmentRepositoryInterface
	validator *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repository.DepartmentRepositoryInterface, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateDepartmentRequest represents the data needed to create a department
type CreateDepartmentRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Abbreviation string `json:"abbreviation" validate:"max=10"`
}

// UpdateDepartmentRequest represents the data needed to update a department
type UpdateDepartmentRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	Abbreviation *string `json:"abbreviation" validate:"omitempty,max=10"`
}

// DepartmentResponse represents the response data for a department
type DepartmentResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// DepartmentListResponse represents a paginated list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	department := &models.Department{
		Name:         strings.TrimSpace(req.Name),
		Abbreviation: strings.TrimSpace(req.Abbreviation),
	}
	if department.Name == "" {
		return nil, apperrors.NewValidationError("name", "must not be blank")
	}

	if err := s.repo.Create(department); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, apperrors.ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return s.convertToResponse(department), nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	return s.convertToResponse(department), nil
}

// GetDepartments retrieves departments with pagination
func (s *DepartmentService) GetDepartments(page, pageSize int) (*DepartmentListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	departments, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}

	responses := make([]DepartmentResponse, len(departments))
	for i, department := range departments {
		responses[i] = *s.convertToResponse(&department)
	}

	return &DepartmentListResponse{
		Departments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// UpdateDepartment updates an existing department
func (s *DepartmentService) UpdateDepartment(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	department, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	if req.Name != nil {
		department.Name = strings.TrimSpace(*req.Name)
	}
	if req.Abbreviation != nil {
		department.Abbreviation = strings.TrimSpace(*req.Abbreviation)
	}

	if err := s.repo.Update(department); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, apperrors.ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return s.convertToResponse(department), nil
}

// DeleteDepartment deletes a department. Roles and employees that pointed
// at it are detached by the foreign key, not deleted.
func (s *DepartmentService) DeleteDepartment(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrDepartmentNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// convertToResponse converts a Department model to API response
func (s *DepartmentService) convertToResponse(department *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:           department.ID,
		Name:         department.Name,
		Abbreviation: department.Abbreviation,
		CreatedAt:    department.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    department.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// normalizePaging clamps page parameters to sane bounds
func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}
	return page, pageSize
}
