package models

import (
	"staff-scheduler-backend/internal/schedule"

	"github.com/google/uuid"
)

// ScheduleDay is the persisted form of one assignment-store day record: the
// ordered assignment list for one employee on one date. The date is kept as
// the canonical YYYY-MM-DD string the store keys on.
type ScheduleDay struct {
	BaseModel
	EmployeeID uuid.UUID             `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_schedule_days_employee_date" validate:"required"`
	Date       string                `json:"date" gorm:"size:10;not null;uniqueIndex:idx_schedule_days_employee_date" validate:"required"`
	Shifts     []schedule.Assignment `json:"shifts" gorm:"type:jsonb;serializer:json;not null"`
}

// TableName returns the table name for ScheduleDay
func (ScheduleDay) TableName() string {
	return "schedule_days"
}
