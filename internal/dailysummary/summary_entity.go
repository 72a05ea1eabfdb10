package dailysummary

import (
	"time"

	"github.com/google/uuid"
)

// DailySummary is the per-employee per-day projection built from
// attendance_recorded events.
type DailySummary struct {
	EmployeeID   uuid.UUID  `gorm:"column:employee_id;type:uuid;primaryKey"`
	WorkDate     time.Time  `gorm:"column:work_date;type:date;primaryKey"`
	Name         string     `gorm:"column:name"`
	Registration string     `gorm:"column:registration"`
	Department   string     `gorm:"column:department"`
	FirstIn      *time.Time `gorm:"column:first_in"`
	LastOut      *time.Time `gorm:"column:last_out"`
	Marks        int        `gorm:"column:marks"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (DailySummary) TableName() string {
	return "attendance_daily_summaries"
}
