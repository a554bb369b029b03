package pages

import (
	"context"

	"hrms.lite/internal/console/hrms"
)

// DashboardController shows the employee headcount. Load failures stay on
// the page as a persistent alert rather than a transient notification.
type DashboardController struct {
	api hrms.API

	EmployeeCount int
	Error         string
	Loading       bool
}

func NewDashboardController(api hrms.API) *DashboardController {
	return &DashboardController{api: api}
}

func (c *DashboardController) Load(ctx context.Context) {
	c.Loading = true
	defer func() { c.Loading = false }()

	employees, err := c.api.ListEmployees(ctx)
	if err != nil {
		c.Error = err.Error()
		return
	}

	c.EmployeeCount = len(employees)
	c.Error = ""
}
