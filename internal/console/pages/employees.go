package pages

import (
	"context"

	"hrms.lite/internal/console/hrms"
)

// EmployeeForm is the add-employee form state.
type EmployeeForm struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// EmployeesController owns the employee list, the add form and the
// delete-confirmation flow. List loading and action loading are independent
// flags so a slow initial fetch never blocks the form.
type EmployeesController struct {
	api    hrms.API
	notify Notifier

	Employees  []hrms.Employee
	Form       EmployeeForm
	FormErrors map[string]string
	PageError  string

	ListLoading   bool
	ActionLoading bool

	pendingDelete *hrms.Employee
}

func NewEmployeesController(api hrms.API, notify Notifier) *EmployeesController {
	return &EmployeesController{api: api, notify: notify}
}

// Load fetches the employee list; called on mount and after each mutation.
func (c *EmployeesController) Load(ctx context.Context) {
	c.ListLoading = true
	defer func() { c.ListLoading = false }()

	employees, err := c.api.ListEmployees(ctx)
	if err != nil {
		c.PageError = err.Error()
		return
	}

	c.Employees = employees
	c.PageError = ""
}

// Validate recomputes the field error map. Each missing field gets its own
// labeled error; submission is blocked while any remain.
func (c *EmployeesController) Validate() bool {
	errors := map[string]string{}
	if !required(c.Form.EmployeeID) {
		errors["employee_id"] = "Employee ID is required"
	}
	if !required(c.Form.FullName) {
		errors["full_name"] = "Full name is required"
	}
	if !required(c.Form.Email) {
		errors["email"] = "Email is required"
	} else if !isValidEmail(c.Form.Email) {
		errors["email"] = "Invalid email format"
	}
	if !required(c.Form.Department) {
		errors["department"] = "Department is required"
	}

	c.FormErrors = errors
	return len(errors) == 0
}

// Submit creates the employee after local validation passes. On success the
// form resets and the list refreshes; on failure the form stays intact for
// correction.
func (c *EmployeesController) Submit(ctx context.Context) {
	if !c.Validate() {
		return
	}

	c.ActionLoading = true
	defer func() { c.ActionLoading = false }()

	_, err := c.api.CreateEmployee(ctx, hrms.NewEmployee{
		EmployeeID: c.Form.EmployeeID,
		FullName:   c.Form.FullName,
		Email:      c.Form.Email,
		Department: c.Form.Department,
	})
	if err != nil {
		c.notify.Error(err.Error())
		return
	}

	c.notify.Success("Employee added successfully")
	c.Form = EmployeeForm{}
	c.Load(ctx)
}

// RequestDelete opens the confirmation step for one employee. No call is
// issued until ConfirmDelete.
func (c *EmployeesController) RequestDelete(employee hrms.Employee) {
	c.pendingDelete = &employee
}

// PendingDelete exposes the employee awaiting confirmation, nil when none.
func (c *EmployeesController) PendingDelete() *hrms.Employee {
	return c.pendingDelete
}

// CancelDelete closes the confirmation step without issuing any call.
func (c *EmployeesController) CancelDelete() {
	c.pendingDelete = nil
}

// ConfirmDelete issues the delete for the employee chosen in RequestDelete.
func (c *EmployeesController) ConfirmDelete(ctx context.Context) {
	if c.pendingDelete == nil {
		return
	}

	c.ActionLoading = true
	defer func() { c.ActionLoading = false }()

	if err := c.api.RemoveEmployee(ctx, c.pendingDelete.EmployeeID); err != nil {
		c.notify.Error(err.Error())
		return
	}

	c.notify.Success("Employee deleted successfully")
	c.pendingDelete = nil
	c.Load(ctx)
}
