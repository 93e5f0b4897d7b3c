package events

import "time"

const PayrollRunCompletedTopic = "pravara.payroll.run.v1"

// PayrollRunCompletedEvent is emitted after a bulk payroll run so the
// dashboard snapshot for that period can be re-derived.
type PayrollRunCompletedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	Created    int       `json:"created"`
	Skipped    int       `json:"skipped"`
	OccurredAt time.Time `json:"occurred_at"`
}
