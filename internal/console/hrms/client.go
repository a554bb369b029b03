// Package hrms maps the console's domain operations one-to-one onto HRMS
// API requests. No decisions are made here; that is the controllers' job.
package hrms

import (
	"context"
	"net/http"
	"net/url"

	"hrms.lite/internal/console/gateway"
)

// API is what the page controllers program against.
type API interface {
	Enter(ctx context.Context, key string) error
	CreateEmployee(ctx context.Context, e NewEmployee) (*Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	RemoveEmployee(ctx context.Context, employeeID string) error
	MarkAttendance(ctx context.Context, employeeID, date string, status Status) (*AttendanceRecord, error)
	QueryAttendance(ctx context.Context, employeeID string, opts ...QueryOption) (*AttendanceSummary, error)
}

// QueryOption adds one optional refinement to an attendance query. An option
// that is never supplied leaves its parameter entirely absent from the
// request; filters are never sent as empty strings.
type QueryOption func(url.Values)

// WithDate narrows the query to a single calendar day (YYYY-MM-DD).
func WithDate(date string) QueryOption {
	return func(v url.Values) {
		v.Set("date", date)
	}
}

// WithMonth narrows the query to a calendar month (YYYY-MM).
func WithMonth(month string) QueryOption {
	return func(v url.Values) {
		v.Set("month", month)
	}
}

type Client struct {
	gw *gateway.Client
}

func NewClient(gw *gateway.Client) *Client {
	return &Client{gw: gw}
}

// Enter verifies the superadmin key with the server. The key travels in the
// body; this is the one call that works without a stored credential.
func (c *Client) Enter(ctx context.Context, key string) error {
	payload := map[string]string{"key": key}
	return c.gw.Do(ctx, http.MethodPost, "/auth/enter", nil, payload, nil)
}

func (c *Client) CreateEmployee(ctx context.Context, e NewEmployee) (*Employee, error) {
	var created Employee
	if err := c.gw.Do(ctx, http.MethodPost, "/employees", nil, e, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := c.gw.Do(ctx, http.MethodGet, "/employees", nil, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) RemoveEmployee(ctx context.Context, employeeID string) error {
	return c.gw.Do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(employeeID), nil, nil, nil)
}

func (c *Client) MarkAttendance(ctx context.Context, employeeID, date string, status Status) (*AttendanceRecord, error) {
	payload := map[string]string{
		"employee_id": employeeID,
		"date":        date,
		"status":      string(status),
	}

	var record AttendanceRecord
	if err := c.gw.Do(ctx, http.MethodPost, "/attendance", nil, payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) QueryAttendance(ctx context.Context, employeeID string, opts ...QueryOption) (*AttendanceSummary, error) {
	query := url.Values{}
	for _, opt := range opts {
		opt(query)
	}

	var summary AttendanceSummary
	if err := c.gw.Do(ctx, http.MethodGet, "/attendance/"+url.PathEscape(employeeID), query, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
