package models

import "github.com/google/uuid"

// Role is a job function employees can be scheduled into, with a display
// color used by the schedule grid.
type Role struct {
	BaseModel
	Name         string     `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Color        string     `json:"color" gorm:"size:7" validate:"omitempty,hexcolor"`
	DepartmentID *uuid.UUID `json:"department_id" gorm:"type:uuid;index"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}
