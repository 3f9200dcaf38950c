package models

// ShiftTemplate is a reusable named start/end time pattern assignable across
// departments and days. Times are HH:MM strings; an end earlier than the
// start means the shift runs past midnight.
type ShiftTemplate struct {
	BaseModel
	Name          string   `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	StartTime     string   `json:"start_time" gorm:"size:5;not null" validate:"required"`
	EndTime       string   `json:"end_time" gorm:"size:5;not null" validate:"required"`
	DepartmentIDs []string `json:"department_ids" gorm:"type:jsonb;serializer:json"`
	AvailableDays []string `json:"available_days" gorm:"type:jsonb;serializer:json"`
}

// TableName returns the table name for ShiftTemplate
func (ShiftTemplate) TableName() string {
	return "shift_templates"
}
