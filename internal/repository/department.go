package repository

import (
	"staff-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(dept *models.Department) error {
	return r.db.Create(dept).Error
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(id uuid.UUID) (*models.Department, error) {
	var dept models.Department
	err := r.db.First(&dept, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// GetByName retrieves a department by name
func (r *DepartmentRepository) GetByName(name string) (*models.Department, error) {
	var dept models.Department
	err := r.db.First(&dept, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// GetAll retrieves all departments with pagination
func (r *DepartmentRepository) GetAll(limit, offset int) ([]models.Department, int64, error) {
	var depts []models.Department
	var total int64

	if err := r.db.Model(&models.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at ASC").Limit(limit).Offset(offset).Find(&depts).Error
	return depts, total, err
}

// Update updates a department
func (r *DepartmentRepository) Update(dept *models.Department) error {
	return r.db.Save(dept).Error
}

// Delete deletes a department
func (r *DepartmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Department{}, "id = ?", id).Error
}
