package model

import (
	"time"
)

// AttendanceStatus is the state recorded for an employee on a given day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
)

// Valid reports whether s is one of the known attendance statuses.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// WelcomeEmailStatus defines the state of the onboarding email processing.
type WelcomeEmailStatus string

const (
	StatusWelcomePending   WelcomeEmailStatus = "PENDING"
	StatusWelcomeCompleted WelcomeEmailStatus = "COMPLETED"
	StatusWelcomeFailed    WelcomeEmailStatus = "FAILED"
)

type Employee struct {
	ID                int64              `json:"id"`
	EmployeeID        string             `json:"employee_id"`
	FullName          string             `json:"full_name"`
	Email             string             `json:"email"`
	Department        string             `json:"department"`
	WelcomeStatus     WelcomeEmailStatus `json:"-"`
	WelcomeRetryCount int                `json:"-"`
	CreatedAt         time.Time          `json:"created_at"`
}

// Attendance is one day's record for one employee. The (EmployeeID, Date)
// pair is unique; re-marking the same day updates Status in place.
type Attendance struct {
	ID         int64            `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"`
	Status     AttendanceStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

// AttendanceSummary is the read-only aggregate returned by the attendance query.
type AttendanceSummary struct {
	EmployeeID   string       `json:"employee_id"`
	TotalRecords int          `json:"total_records"`
	TotalPresent int          `json:"total_present"`
	Records      []Attendance `json:"records"`
}
