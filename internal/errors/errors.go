package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error caught at the edge, before
// any command is constructed or state is mutated
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrDepartmentNotFound    = &NotFoundError{Entity: "department"}
	ErrRoleNotFound          = &NotFoundError{Entity: "role"}
	ErrEmployeeNotFound      = &NotFoundError{Entity: "employee"}
	ErrShiftTemplateNotFound = &NotFoundError{Entity: "shift template"}
	ErrAssignmentNotFound    = &NotFoundError{Entity: "assignment"}
)

// Already Exists Errors
var (
	ErrDepartmentExists    = &AlreadyExistsError{Entity: "department", Context: "with this name"}
	ErrRoleExists          = &AlreadyExistsError{Entity: "role", Context: "with this name in the department"}
	ErrShiftTemplateExists = &AlreadyExistsError{Entity: "shift template", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrMissingRole          = &ValidationError{Field: "role_id", Message: "a role is required for a shift assignment"}
	ErrMissingShiftTemplate = &ValidationError{Field: "shift_template_id", Message: "a shift template selection is required"}
	ErrZeroDurationShift    = &ValidationError{Field: "custom_end", Message: "start and end time must differ"}
	ErrInvalidDateFormat    = &ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"}
	ErrInvalidStatus        = errors.New("invalid employee status")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrMissingToken       = &AuthenticationError{Message: "authorization token missing"}
	ErrInvalidToken       = &AuthenticationError{Message: "authorization token invalid or expired"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
