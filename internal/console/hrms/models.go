package hrms

import "time"

// Status is an employee's recorded state for one day.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
)

type Employee struct {
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewEmployee is the payload for creating an employee record.
type NewEmployee struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type AttendanceRecord struct {
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// AttendanceSummary is the server-derived aggregate; the console only displays it.
type AttendanceSummary struct {
	EmployeeID   string             `json:"employee_id"`
	TotalRecords int                `json:"total_records"`
	TotalPresent int                `json:"total_present"`
	Records      []AttendanceRecord `json:"records"`
}
