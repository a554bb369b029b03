package messaging

import "time"

// EmployeeCreatedEvent is the JSON payload sent via SQS when a new employee
// record is created. The email worker turns it into a welcome email.
type EmployeeCreatedEvent struct {
	EventID    string    `json:"eventId"`
	EmployeeID string    `json:"employeeId"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurredAt"`
}
