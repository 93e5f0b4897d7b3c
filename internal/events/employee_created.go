package events

import "time"

const EmployeeCreatedTopic = "pravara.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeNumber string    `json:"employee_number"`
	Department     string    `json:"department"`
	OccurredAt     time.Time `json:"occurred_at"`
}
