package events

import "time"

const LeaveRequestStatusChangedTopic = "hr.leave.lifecycle.v1"

type LeaveRequestStatusChangedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	OldStatus      string    `json:"old_status"`
	NewStatus      string    `json:"new_status"`
	TotalDays      string    `json:"total_days"`
	OccurredAt     time.Time `json:"occurred_at"`
}
