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

// RoleService handles business logic for roles
type RoleService struct {
	repo      repository.RoleRepositoryInterface
	deptRepo  repository.DepartmentRepositoryInterface
	validator *validator.Validate
}

// NewRoleService creates a new role service
func NewRoleService(repo repository.RoleRepositoryInterface, deptRepo repository.DepartmentRepositoryInterface, validator *validator.Validate) *RoleService {
	return &RoleService{
		repo:      repo,
		deptRepo:  deptRepo,
		validator: validator,
	}
}

// CreateRoleRequest represents the data needed to create a role
type CreateRoleRequest struct {
	Name         string     `json:"name" validate:"required,max=100"`
	Color        string     `json:"color" validate:"required,hexcolor"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

// UpdateRoleRequest represents the data needed to update a role
type UpdateRoleRequest struct {
	Name         *string    `json:"name" validate:"omitempty,max=100"`
	Color        *string    `json:"color" validate:"omitempty,hexcolor"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

// RoleResponse represents the response data for a role
type RoleResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Color        string     `json:"color"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// RoleListResponse represents a paginated list of roles
type RoleListResponse struct {
	Roles    []RoleResponse `json:"roles"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateRole creates a new role
func (s *RoleService) CreateRole(req *CreateRoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(*req.DepartmentID); err != nil {
			return nil, apperrors.ErrDepartmentNotFound
		}
	}

	role := &models.Role{
		Name:         strings.TrimSpace(req.Name),
		Color:        req.Color,
		DepartmentID: req.DepartmentID,
	}

	if err := s.repo.Create(role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	return s.convertToResponse(role), nil
}

// GetRoleByID retrieves a role by ID
func (s *RoleService) GetRoleByID(id uuid.UUID) (*RoleResponse, error) {
	role, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrRoleNotFound
	}

	return s.convertToResponse(role), nil
}

// GetRoles retrieves roles with pagination, optionally scoped to a
// department.
func (s *RoleService) GetRoles(departmentID *uuid.UUID, page, pageSize int) (*RoleListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)
	offset := (page - 1) * pageSize

	var (
		roles []models.Role
		total int64
		err   error
	)
	if departmentID != nil {
		roles, total, err = s.repo.GetByDepartmentID(*departmentID, pageSize, offset)
	} else {
		roles, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}

	responses := make([]RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = *s.convertToResponse(&role)
	}

	return &RoleListResponse{
		Roles:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateRole updates an existing role
func (s *RoleService) UpdateRole(id uuid.UUID, req *UpdateRoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrRoleNotFound
	}

	if req.Name != nil {
		role.Name = strings.TrimSpace(*req.Name)
	}
	if req.Color != nil {
		role.Color = *req.Color
	}
	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(*req.DepartmentID); err != nil {
			return nil, apperrors.ErrDepartmentNotFound
		}
		role.DepartmentID = req.DepartmentID
	}

	if err := s.repo.Update(role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return s.convertToResponse(role), nil
}

// DeleteRole deletes a role. Assignments that reference it remain stored
// and render with the missing-role fallback.
func (s *RoleService) DeleteRole(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrRoleNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

// convertToResponse converts a Role model to API response
func (s *RoleService) convertToResponse(role *models.Role) *RoleResponse {
	return &RoleResponse{
		ID:           role.ID,
		Name:         role.Name,
		Color:        role.Color,
		DepartmentID: role.DepartmentID,
		CreatedAt:    role.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    role.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
