package repository

import (
	"staff-scheduler-backend/internal/database/models"
	"staff-scheduler-backend/internal/schedule"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(dept *models.Department) error
	GetByID(id uuid.UUID) (*models.Department, error)
	GetByName(name string) (*models.Department, error)
	GetAll(limit, offset int) ([]models.Department, int64, error)
	Update(dept *models.Department) error
	Delete(id uuid.UUID) error
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	Create(role *models.Role) error
	GetByID(id uuid.UUID) (*models.Role, error)
	GetAll(limit, offset int) ([]models.Role, int64, error)
	GetByDepartmentID(departmentID uuid.UUID, limit, offset int) ([]models.Role, int64, error)
	Update(role *models.Role) error
	Delete(id uuid.UUID) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetAll(limit, offset int) ([]models.Employee, int64, error)
	GetByDepartmentID(departmentID uuid.UUID, limit, offset int) ([]models.Employee, int64, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// ShiftTemplateRepositoryInterface defines the interface for shift template repository operations
type ShiftTemplateRepositoryInterface interface {
	Create(template *models.ShiftTemplate) error
	GetByID(id uuid.UUID) (*models.ShiftTemplate, error)
	GetAll(limit, offset int) ([]models.ShiftTemplate, int64, error)
	Update(template *models.ShiftTemplate) error
	Delete(id uuid.UUID) error
}

// ScheduleDayRepositoryInterface defines the interface for persisted day records
type ScheduleDayRepositoryInterface interface {
	LoadSnapshot() (map[string]schedule.DayRecord, error)
	SaveSnapshot(snapshot map[string]schedule.DayRecord) error
	DeleteByEmployeeID(employeeID uuid.UUID) error
}
