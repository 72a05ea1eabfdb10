package attendance

import (
	"time"

	"go-ponto/internal/sequencer"

	"github.com/google/uuid"
)

// TimeRecord is one accepted mark. Rows are never updated.
type TimeRecord struct {
	ID         uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID           `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_time_record_kind"`
	WorkDate   time.Time           `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_time_record_kind"`
	RecordedAt time.Time           `gorm:"column:recorded_at;type:timestamptz;not null"`
	Kind       sequencer.EventKind `gorm:"column:kind;type:varchar(20);not null;uniqueIndex:uq_time_record_kind"`
}

func (TimeRecord) TableName() string {
	return "time_records"
}

func toEvents(rows []TimeRecord) []sequencer.Event {
	events := make([]sequencer.Event, len(rows))
	for i, r := range rows {
		events[i] = sequencer.Event{Kind: r.Kind, Timestamp: r.RecordedAt}
	}
	return events
}
