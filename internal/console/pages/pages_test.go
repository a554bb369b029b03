package pages_test

import (
	"context"
	"testing"

	"hrms.lite/internal/console/gateway"
	"hrms.lite/internal/console/hrms"
	"hrms.lite/internal/console/pages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records every domain call the controllers make.
type fakeAPI struct {
	enterKeys   []string
	enterErr    error
	created     []hrms.NewEmployee
	createErr   error
	employees   []hrms.Employee
	listErr     error
	removed     []string
	removeErr   error
	marked      []markCall
	markErr     error
	queried     []queryCall
	summary     *hrms.AttendanceSummary
	queryErr    error
}

type markCall struct {
	employeeID string
	date       string
	status     hrms.Status
}

type queryCall struct {
	employeeID string
	rawQuery   string
}

func (f *fakeAPI) Enter(_ context.Context, key string) error {
	f.enterKeys = append(f.enterKeys, key)
	return f.enterErr
}

func (f *fakeAPI) CreateEmployee(_ context.Context, e hrms.NewEmployee) (*hrms.Employee, error) {
	f.created = append(f.created, e)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &hrms.Employee{EmployeeID: e.EmployeeID}, nil
}

func (f *fakeAPI) ListEmployees(_ context.Context) ([]hrms.Employee, error) {
	return f.employees, f.listErr
}

func (f *fakeAPI) RemoveEmployee(_ context.Context, employeeID string) error {
	f.removed = append(f.removed, employeeID)
	return f.removeErr
}

func (f *fakeAPI) MarkAttendance(_ context.Context, employeeID, date string, status hrms.Status) (*hrms.AttendanceRecord, error) {
	f.marked = append(f.marked, markCall{employeeID, date, status})
	if f.markErr != nil {
		return nil, f.markErr
	}
	return &hrms.AttendanceRecord{EmployeeID: employeeID, Date: date, Status: status}, nil
}

func (f *fakeAPI) QueryAttendance(_ context.Context, employeeID string, opts ...hrms.QueryOption) (*hrms.AttendanceSummary, error) {
	values := make(map[string][]string)
	for _, opt := range opts {
		opt(values)
	}
	raw := ""
	for k, vs := range values {
		for _, v := range vs {
			if raw != "" {
				raw += "&"
			}
			raw += k + "=" + v
		}
	}
	f.queried = append(f.queried, queryCall{employeeID, raw})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.summary != nil {
		return f.summary, nil
	}
	return &hrms.AttendanceSummary{EmployeeID: employeeID}, nil
}

// recorder captures transient notifications.
type recorder struct {
	successes []string
	errors    []string
}

func (r *recorder) Success(m string) { r.successes = append(r.successes, m) }
func (r *recorder) Error(m string)   { r.errors = append(r.errors, m) }

// memKeys is an in-memory credential store.
type memKeys struct {
	key string
}

func (m *memKeys) Get() string          { return m.key }
func (m *memKeys) Set(key string) error { m.key = key; return nil }
func (m *memKeys) Clear() error         { m.key = ""; return nil }

func TestEmployeesController_ValidationBlocksSubmission(t *testing.T) {
	cases := []struct {
		name       string
		form       pages.EmployeeForm
		wantField  string
		wantErrMsg string
	}{
		{"missing employee id", pages.EmployeeForm{FullName: "John Doe", Email: "john@company.com", Department: "Eng"}, "employee_id", "Employee ID is required"},
		{"missing full name", pages.EmployeeForm{EmployeeID: "EMP001", Email: "john@company.com", Department: "Eng"}, "full_name", "Full name is required"},
		{"missing email", pages.EmployeeForm{EmployeeID: "EMP001", FullName: "John Doe", Department: "Eng"}, "email", "Email is required"},
		{"missing department", pages.EmployeeForm{EmployeeID: "EMP001", FullName: "John Doe", Email: "john@company.com"}, "department", "Department is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{}
			c := pages.NewEmployeesController(api, &recorder{})
			c.Form = tc.form

			c.Submit(context.Background())

			assert.Empty(t, api.created, "invalid form must not issue a create call")
			assert.Equal(t, tc.wantErrMsg, c.FormErrors[tc.wantField])
		})
	}
}

func TestEmployeesController_AllFieldsMissingEachLabeled(t *testing.T) {
	api := &fakeAPI{}
	c := pages.NewEmployeesController(api, &recorder{})

	c.Submit(context.Background())

	assert.Empty(t, api.created)
	assert.Len(t, c.FormErrors, 4, "every missing field gets its own labeled error")
}

func TestEmployeesController_EmailValidation(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"john@company.com", true},
		{"john@@x", false},
		{"john", false},
		{"john..doe@company.com", false},
		{".john@company.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			api := &fakeAPI{}
			c := pages.NewEmployeesController(api, &recorder{})
			c.Form = pages.EmployeeForm{
				EmployeeID: "EMP001",
				FullName:   "John Doe",
				Email:      tc.email,
				Department: "Engineering",
			}

			ok := c.Validate()
			if tc.valid {
				assert.True(t, ok)
				assert.NotContains(t, c.FormErrors, "email")
			} else {
				assert.False(t, ok)
				assert.Equal(t, "Invalid email format", c.FormErrors["email"])
			}
		})
	}
}

func TestEmployeesController_SubmitSuccessResetsFormAndRefreshes(t *testing.T) {
	api := &fakeAPI{employees: []hrms.Employee{{EmployeeID: "EMP001"}}}
	notify := &recorder{}
	c := pages.NewEmployeesController(api, notify)
	c.Form = pages.EmployeeForm{
		EmployeeID: "EMP001",
		FullName:   "John Doe",
		Email:      "john@company.com",
		Department: "Engineering",
	}

	c.Submit(context.Background())

	require.Len(t, api.created, 1)
	assert.Equal(t, "EMP001", api.created[0].EmployeeID)
	assert.Equal(t, pages.EmployeeForm{}, c.Form, "form resets after success")
	assert.Len(t, c.Employees, 1, "list refreshed after create")
	assert.Equal(t, []string{"Employee added successfully"}, notify.successes)
}

func TestEmployeesController_SubmitFailureKeepsForm(t *testing.T) {
	api := &fakeAPI{createErr: &gateway.Error{Kind: gateway.KindConflict, Message: "Employee with this employee_id already exists"}}
	notify := &recorder{}
	c := pages.NewEmployeesController(api, notify)
	form := pages.EmployeeForm{
		EmployeeID: "EMP001",
		FullName:   "John Doe",
		Email:      "john@company.com",
		Department: "Engineering",
	}
	c.Form = form

	c.Submit(context.Background())

	assert.Equal(t, form, c.Form, "form stays intact for correction")
	assert.Equal(t, []string{"Employee with this employee_id already exists"}, notify.errors)
}

func TestEmployeesController_DeleteRequiresConfirmation(t *testing.T) {
	employee := hrms.Employee{EmployeeID: "EMP001"}

	t.Run("confirm issues exactly one delete", func(t *testing.T) {
		api := &fakeAPI{}
		c := pages.NewEmployeesController(api, &recorder{})

		c.RequestDelete(employee)
		assert.Empty(t, api.removed, "no call before confirmation")

		c.ConfirmDelete(context.Background())
		assert.Equal(t, []string{"EMP001"}, api.removed)
		assert.Nil(t, c.PendingDelete())
	})

	t.Run("cancel issues none", func(t *testing.T) {
		api := &fakeAPI{}
		c := pages.NewEmployeesController(api, &recorder{})

		c.RequestDelete(employee)
		c.CancelDelete()
		c.ConfirmDelete(context.Background())

		assert.Empty(t, api.removed)
	})
}

func TestAttendanceController_MarkExactPayload(t *testing.T) {
	api := &fakeAPI{}
	notify := &recorder{}
	c := pages.NewAttendanceController(api, notify)
	c.Form = pages.AttendanceForm{EmployeeID: "EMP001", Date: "2026-02-25", Status: hrms.StatusPresent}

	c.Mark(context.Background())

	require.Len(t, api.marked, 1, "exactly one mark call")
	assert.Equal(t, markCall{"EMP001", "2026-02-25", hrms.StatusPresent}, api.marked[0])
	assert.Equal(t, []string{"Attendance saved successfully"}, notify.successes)
}

func TestAttendanceController_MarkRequiresAllFields(t *testing.T) {
	api := &fakeAPI{}
	c := pages.NewAttendanceController(api, &recorder{})
	c.Form = pages.AttendanceForm{EmployeeID: "EMP001", Status: hrms.StatusPresent}

	c.Mark(context.Background())

	assert.Empty(t, api.marked)
	assert.Equal(t, "All attendance fields are required", c.FormError)
}

func TestAttendanceController_SummaryRefreshOnlyForMatchingEmployee(t *testing.T) {
	t.Run("matching lookup refreshes", func(t *testing.T) {
		api := &fakeAPI{summary: &hrms.AttendanceSummary{EmployeeID: "EMP001", TotalRecords: 1, TotalPresent: 1}}
		c := pages.NewAttendanceController(api, &recorder{})
		c.Lookup.EmployeeID = "EMP001"
		c.Form = pages.AttendanceForm{EmployeeID: "EMP001", Date: "2026-02-25", Status: hrms.StatusPresent}

		c.Mark(context.Background())

		require.Len(t, api.queried, 1)
		assert.Equal(t, "EMP001", api.queried[0].employeeID)
		require.NotNil(t, c.Summary)
		assert.Equal(t, 1, c.Summary.TotalRecords)
	})

	t.Run("different lookup left alone", func(t *testing.T) {
		api := &fakeAPI{}
		c := pages.NewAttendanceController(api, &recorder{})
		c.Lookup.EmployeeID = "EMP002"
		c.Form = pages.AttendanceForm{EmployeeID: "EMP001", Date: "2026-02-25", Status: hrms.StatusPresent}

		c.Mark(context.Background())

		assert.Empty(t, api.queried, "unrelated summary must not refresh")
	})
}

func TestAttendanceController_FetchSendsOnlySetFilters(t *testing.T) {
	api := &fakeAPI{}
	c := pages.NewAttendanceController(api, &recorder{})
	c.Lookup = pages.AttendanceLookup{EmployeeID: "EMP001"}

	c.FetchRecords(context.Background())

	require.Len(t, api.queried, 1)
	assert.Empty(t, api.queried[0].rawQuery, "empty lookup fields must translate to absent filters")

	c.Lookup = pages.AttendanceLookup{EmployeeID: "EMP001", Month: "2026-02"}
	c.FetchRecords(context.Background())

	require.Len(t, api.queried, 2)
	assert.Equal(t, "month=2026-02", api.queried[1].rawQuery)
}

func TestAttendanceController_EditRecordLoadsForm(t *testing.T) {
	c := pages.NewAttendanceController(&fakeAPI{}, &recorder{})

	c.EditRecord(hrms.AttendanceRecord{EmployeeID: "EMP001", Date: "2026-02-25", Status: hrms.StatusAbsent})

	assert.Equal(t, pages.AttendanceForm{
		EmployeeID: "EMP001",
		Date:       "2026-02-25",
		Status:     hrms.StatusAbsent,
	}, c.Form)
}

func TestAttendanceController_LoadDefaultsToFirstEmployee(t *testing.T) {
	api := &fakeAPI{employees: []hrms.Employee{{EmployeeID: "EMP001"}, {EmployeeID: "EMP002"}}}
	c := pages.NewAttendanceController(api, &recorder{})

	c.Load(context.Background())

	assert.Equal(t, "EMP001", c.Form.EmployeeID)
	assert.Equal(t, "EMP001", c.Lookup.EmployeeID)
}

func TestSignInController_Flow(t *testing.T) {
	t.Run("empty key blocked locally", func(t *testing.T) {
		api := &fakeAPI{}
		c := pages.NewSignInController(api, &memKeys{}, &recorder{})
		c.Key = "   "

		assert.False(t, c.Submit(context.Background()))
		assert.Empty(t, api.enterKeys, "no call for an empty key")
		assert.Equal(t, "Superadmin key is required", c.Error)
	})

	t.Run("rejected key is not stored", func(t *testing.T) {
		api := &fakeAPI{enterErr: &gateway.Error{Kind: gateway.KindUnauthorized, Message: "Invalid superadmin key"}}
		keys := &memKeys{}
		c := pages.NewSignInController(api, keys, &recorder{})
		c.Key = "wrong-key"

		assert.False(t, c.Submit(context.Background()))
		assert.Equal(t, "", keys.Get())
		assert.Equal(t, "Invalid superadmin key", c.Error)
	})

	t.Run("accepted key is stored trimmed", func(t *testing.T) {
		api := &fakeAPI{}
		keys := &memKeys{}
		notify := &recorder{}
		c := pages.NewSignInController(api, keys, notify)
		c.Key = "  secret-key  "

		assert.True(t, c.Submit(context.Background()))
		assert.Equal(t, []string{"secret-key"}, api.enterKeys)
		assert.Equal(t, "secret-key", keys.Get())
		assert.Equal(t, []string{"Access granted"}, notify.successes)
	})
}

func TestDashboardController_Load(t *testing.T) {
	api := &fakeAPI{employees: []hrms.Employee{{EmployeeID: "EMP001"}, {EmployeeID: "EMP002"}}}
	c := pages.NewDashboardController(api)

	c.Load(context.Background())

	assert.Equal(t, 2, c.EmployeeCount)
	assert.Empty(t, c.Error)

	api.listErr = &gateway.Error{Kind: gateway.KindNetwork, Message: "Unexpected error occurred"}
	c.Load(context.Background())
	assert.Equal(t, "Unexpected error occurred", c.Error)
}
