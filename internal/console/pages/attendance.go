package pages

import (
	"context"

	"hrms.lite/internal/console/hrms"
)

// AttendanceForm is the mark-attendance form state.
type AttendanceForm struct {
	EmployeeID string
	Date       string
	Status     hrms.Status
}

// AttendanceLookup is the records-lookup form state. Empty filter fields
// mean "no filter" and are translated into absent query options, never into
// empty-string parameters.
type AttendanceLookup struct {
	EmployeeID string
	Date       string
	Month      string
}

// AttendanceController owns the mark form and the summary lookup. After a
// successful mark it refreshes the displayed summary only when that summary
// belongs to the employee that was just mutated.
type AttendanceController struct {
	api    hrms.API
	notify Notifier

	Employees []hrms.Employee
	Summary   *hrms.AttendanceSummary
	Form      AttendanceForm
	Lookup    AttendanceLookup
	FormError string
	PageError string

	EmployeesLoading bool
	ActionLoading    bool
}

func NewAttendanceController(api hrms.API, notify Notifier) *AttendanceController {
	return &AttendanceController{
		api:    api,
		notify: notify,
		Form:   AttendanceForm{Status: hrms.StatusPresent},
	}
}

// Load fetches the employee reference list and defaults both the form and
// the lookup to the first employee.
func (c *AttendanceController) Load(ctx context.Context) {
	c.EmployeesLoading = true
	defer func() { c.EmployeesLoading = false }()

	employees, err := c.api.ListEmployees(ctx)
	if err != nil {
		c.PageError = err.Error()
		return
	}

	c.Employees = employees
	if len(employees) > 0 {
		if c.Form.EmployeeID == "" {
			c.Form.EmployeeID = employees[0].EmployeeID
		}
		if c.Lookup.EmployeeID == "" {
			c.Lookup.EmployeeID = employees[0].EmployeeID
		}
	}
}

// Mark submits the attendance form. Re-marking an already marked day is an
// update on the server side, so the same flow covers corrections.
func (c *AttendanceController) Mark(ctx context.Context) {
	if !required(c.Form.EmployeeID) || !required(c.Form.Date) || !required(string(c.Form.Status)) {
		c.FormError = "All attendance fields are required"
		return
	}

	c.FormError = ""
	c.ActionLoading = true
	defer func() { c.ActionLoading = false }()

	_, err := c.api.MarkAttendance(ctx, c.Form.EmployeeID, c.Form.Date, c.Form.Status)
	if err != nil {
		c.notify.Error(err.Error())
		return
	}

	c.notify.Success("Attendance saved successfully")
	if c.Lookup.EmployeeID == c.Form.EmployeeID {
		c.refreshCurrentLookup(ctx)
	}
}

// FetchRecords runs the summary lookup for the lookup form's employee.
func (c *AttendanceController) FetchRecords(ctx context.Context) {
	if !required(c.Lookup.EmployeeID) {
		c.PageError = "Please provide employee ID to fetch attendance"
		return
	}

	c.ActionLoading = true
	defer func() { c.ActionLoading = false }()

	summary, err := c.api.QueryAttendance(ctx, c.Lookup.EmployeeID, c.lookupOptions()...)
	if err != nil {
		c.PageError = err.Error()
		return
	}

	c.Summary = summary
	c.PageError = ""
}

// EditRecord loads an existing record back into the form for re-marking.
func (c *AttendanceController) EditRecord(record hrms.AttendanceRecord) {
	c.Form = AttendanceForm{
		EmployeeID: record.EmployeeID,
		Date:       record.Date,
		Status:     record.Status,
	}
	c.FormError = ""
	c.notify.Success("Attendance loaded. Update status and save.")
}

func (c *AttendanceController) refreshCurrentLookup(ctx context.Context) {
	if !required(c.Lookup.EmployeeID) {
		return
	}
	summary, err := c.api.QueryAttendance(ctx, c.Lookup.EmployeeID, c.lookupOptions()...)
	if err != nil {
		c.PageError = err.Error()
		return
	}
	c.Summary = summary
}

// lookupOptions builds query options only for filters that are actually set.
func (c *AttendanceController) lookupOptions() []hrms.QueryOption {
	var opts []hrms.QueryOption
	if c.Lookup.Date != "" {
		opts = append(opts, hrms.WithDate(c.Lookup.Date))
	}
	if c.Lookup.Month != "" {
		opts = append(opts, hrms.WithMonth(c.Lookup.Month))
	}
	return opts
}
