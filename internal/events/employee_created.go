package events

import "time"

const EmployeeCreatedTopic = "ponto.employee.lifecycle.v1"

const EventEmployeeCreated = "employee_created"

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	Registration string    `json:"registration"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	OccurredAt   time.Time `json:"occurred_at"`
}
