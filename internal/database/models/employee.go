package models

import "github.com/google/uuid"

// Employee is a schedulable staff member. Assignments reference employees by
// identifier only; deleting an employee cascades deletion of their day
// records through the service layer.
type Employee struct {
	BaseModel
	DisplayName     string         `json:"display_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	DepartmentID    *uuid.UUID     `json:"department_id" gorm:"type:uuid;index"`
	Status          EmployeeStatus `json:"status" gorm:"type:varchar(20);not null;default:'Active'"`
	IsVisible       bool           `json:"is_visible" gorm:"not null;default:true"`
	VacationBalance int            `json:"vacation_balance" gorm:"not null;default:0"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
