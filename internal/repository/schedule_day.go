package repository

import (
	"fmt"

	"staff-scheduler-backend/internal/database/models"
	"staff-scheduler-backend/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleDayRepository persists assignment-store day records. It is the
// durable backend behind the store's write-through persister.
type ScheduleDayRepository struct {
	db *gorm.DB
}

// NewScheduleDayRepository creates a new schedule day repository
func NewScheduleDayRepository(db *gorm.DB) *ScheduleDayRepository {
	return &ScheduleDayRepository{db: db}
}

// LoadSnapshot reads every persisted day record into the store's keyed shape
func (r *ScheduleDayRepository) LoadSnapshot() (map[string]schedule.DayRecord, error) {
	var days []models.ScheduleDay
	if err := r.db.Find(&days).Error; err != nil {
		return nil, err
	}

	snapshot := make(map[string]schedule.DayRecord, len(days))
	for _, day := range days {
		if len(day.Shifts) == 0 {
			continue
		}
		snapshot[schedule.Key(day.EmployeeID.String(), day.Date)] = schedule.DayRecord{Shifts: day.Shifts}
	}
	return snapshot, nil
}

// SaveSnapshot replaces the persisted day records with the given snapshot in
// a single transaction, so no partial-write state is observable to a
// subsequent load.
func (r *ScheduleDayRepository) SaveSnapshot(snapshot map[string]schedule.DayRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ScheduleDay{}).Error; err != nil {
			return err
		}
		for key, rec := range snapshot {
			if len(rec.Shifts) == 0 {
				continue
			}
			employeeID, date, err := splitKey(key)
			if err != nil {
				return err
			}
			day := models.ScheduleDay{
				EmployeeID: employeeID,
				Date:       date,
				Shifts:     rec.Shifts,
			}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByEmployeeID removes every day record for one employee
func (r *ScheduleDayRepository) DeleteByEmployeeID(employeeID uuid.UUID) error {
	return r.db.Delete(&models.ScheduleDay{}, "employee_id = ?", employeeID).Error
}

// splitKey decomposes a store key "<employeeId>-<YYYY-MM-DD>" from the
// right, since the employee UUID itself contains dashes.
func splitKey(key string) (uuid.UUID, string, error) {
	const dateLen = len(schedule.DateLayout)
	if len(key) < dateLen+2 {
		return uuid.Nil, "", fmt.Errorf("malformed schedule key %q", key)
	}
	date := key[len(key)-dateLen:]
	idPart := key[:len(key)-dateLen-1]
	employeeID, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("malformed schedule key %q: %w", key, err)
	}
	return employeeID, date, nil
}
