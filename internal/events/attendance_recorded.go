package events

import "time"

const AttendanceRecordedTopic = "ponto.attendance.recorded.v1"

const EventAttendanceRecorded = "attendance_recorded"

// AttendanceRecordedEvent is published once per accepted mark.
// Sequence is the 1-based position of the mark within WorkDate.
type AttendanceRecordedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	RecordID     string    `json:"record_id"`
	EmployeeID   string    `json:"employee_id"`
	Name         string    `json:"name"`
	Registration string    `json:"registration"`
	Department   string    `json:"department"`
	Kind         string    `json:"kind"`
	Sequence     int       `json:"sequence"`
	WorkDate     string    `json:"work_date"`
	RecordedAt   time.Time `json:"recorded_at"`
}
