package models

// Department groups roles and employees, e.g. Kitchen or Front of House
type Department struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Abbreviation string `json:"abbreviation" gorm:"size:10" validate:"max=10"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
