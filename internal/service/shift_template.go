package service

import (
	"fmt"
	"strings"

	"staff-scheduler-backend/internal/database/models"
	apperrors "staff-scheduler-backend/internal/errors"
	"staff-scheduler-backend/internal/repository"
	"staff-scheduler-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ShiftTemplateService handles business logic for shift templates
type ShiftTemplateService struct {
	repo      repository.ShiftTemplateRepositoryInterface
	validator *validator.Validate
}

// NewShiftTemplateService creates a new shift template service
func NewShiftTemplateService(repo repository.ShiftTemplateRepositoryInterface, validator *validator.Validate) *ShiftTemplateService {
	return &ShiftTemplateService{
		repo:      repo,
		validator: validator,
	}
}

// CreateShiftTemplateRequest represents the data needed to create a shift template
type CreateShiftTemplateRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	StartTime     string   `json:"start_time" validate:"required"`
	EndTime       string   `json:"end_time" validate:"required"`
	DepartmentIDs []string `json:"department_ids"`
	AvailableDays []string `json:"available_days" validate:"omitempty,dive,oneof=mon tue wed thu fri sat sun"`
}

// UpdateShiftTemplateRequest represents the data needed to update a shift template
type UpdateShiftTemplateRequest struct {
	Name          *string   `json:"name" validate:"omitempty,max=100"`
	StartTime     *string   `json:"start_time"`
	EndTime       *string   `json:"end_time"`
	DepartmentIDs *[]string `json:"department_ids"`
	AvailableDays *[]string `json:"available_days" validate:"omitempty,dive,oneof=mon tue wed thu fri sat sun"`
}

// ShiftTemplateResponse represents the response data for a shift template
type ShiftTemplateResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	DepartmentIDs []string  `json:"department_ids,omitempty"`
	AvailableDays []string  `json:"available_days,omitempty"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// ShiftTemplateListResponse represents a paginated list of shift templates
type ShiftTemplateListResponse struct {
	ShiftTemplates []ShiftTemplateResponse `json:"shift_templates"`
	Total          int64                   `json:"total"`
	Page           int                     `json:"page"`
	PageSize       int                     `json:"page_size"`
}

// CreateShiftTemplate creates a new shift template
func (s *ShiftTemplateService) CreateShiftTemplate(req *CreateShiftTemplateRequest) (*ShiftTemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateTemplateTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	template := &models.ShiftTemplate{
		Name:          strings.TrimSpace(req.Name),
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DepartmentIDs: req.DepartmentIDs,
		AvailableDays: req.AvailableDays,
	}

	if err := s.repo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create shift template: %w", err)
	}

	return s.convertToResponse(template), nil
}

// GetShiftTemplateByID retrieves a shift template by ID
func (s *ShiftTemplateService) GetShiftTemplateByID(id uuid.UUID) (*ShiftTemplateResponse, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrShiftTemplateNotFound
	}

	return s.convertToResponse(template), nil
}

// GetShiftTemplates retrieves shift templates with pagination, ordered by
// start time so pickers list morning shifts first.
func (s *ShiftTemplateService) GetShiftTemplates(page, pageSize int) (*ShiftTemplateListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	templates, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift templates: %w", err)
	}

	responses := make([]ShiftTemplateResponse, len(templates))
	for i, template := range templates {
		responses[i] = *s.convertToResponse(&template)
	}

	return &ShiftTemplateListResponse{
		ShiftTemplates: responses,
		Total:          total,
		Page:           page,
		PageSize:       pageSize,
	}, nil
}

// UpdateShiftTemplate updates an existing shift template
func (s *ShiftTemplateService) UpdateShiftTemplate(id uuid.UUID, req *UpdateShiftTemplateRequest) (*ShiftTemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	template, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrShiftTemplateNotFound
	}

	if req.Name != nil {
		template.Name = strings.TrimSpace(*req.Name)
	}
	if req.StartTime != nil {
		template.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		template.EndTime = *req.EndTime
	}
	if err := validateTemplateTimes(template.StartTime, template.EndTime); err != nil {
		return nil, err
	}
	if req.DepartmentIDs != nil {
		template.DepartmentIDs = *req.DepartmentIDs
	}
	if req.AvailableDays != nil {
		template.AvailableDays = *req.AvailableDays
	}

	if err := s.repo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update shift template: %w", err)
	}

	return s.convertToResponse(template), nil
}

// DeleteShiftTemplate deletes a shift template. Assignments that reference
// it remain stored and render with the missing-template fallback.
func (s *ShiftTemplateService) DeleteShiftTemplate(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrShiftTemplateNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift template: %w", err)
	}
	return nil
}

// validateTemplateTimes checks the HH:MM shape and rejects zero-length
// shifts. End before start is allowed and means an overnight shift.
func validateTemplateTimes(start, end string) error {
	if !timeOfDayPattern.MatchString(start) {
		return apperrors.NewValidationError("start_time", "must be HH:MM")
	}
	if !timeOfDayPattern.MatchString(end) {
		return apperrors.NewValidationError("end_time", "must be HH:MM")
	}
	if start == end {
		return apperrors.ErrZeroDurationShift
	}
	return nil
}

// convertToResponse converts a ShiftTemplate model to API response
func (s *ShiftTemplateService) convertToResponse(template *models.ShiftTemplate) *ShiftTemplateResponse {
	return &ShiftTemplateResponse{
		ID:            template.ID,
		Name:          template.Name,
		StartTime:     template.StartTime,
		EndTime:       template.EndTime,
		DurationHours: schedule.CalculateShiftDuration(template.StartTime, template.EndTime),
		DepartmentIDs: template.DepartmentIDs,
		AvailableDays: template.AvailableDays,
		CreatedAt:     template.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     template.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
