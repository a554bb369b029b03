package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrms.lite/internal/apperror"
	"hrms.lite/internal/core"
	"hrms.lite/internal/core/model"
	"hrms.lite/internal/ports/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]*model.Employee
	nextID    int64
	deleted   []string
	statuses  []statusUpdate
	err       error
}

type statusUpdate struct {
	employeeID string
	status     model.WelcomeEmailStatus
	retryCount int
}

func newFakeEmployeeRepo(seed ...model.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: map[string]*model.Employee{}}
	for i := range seed {
		e := seed[i]
		r.employees[e.EmployeeID] = &e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *model.Employee) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	e.ID = r.nextID
	e.WelcomeStatus = model.StatusWelcomePending
	e.CreatedAt = time.Now().UTC()
	stored := *e
	r.employees[e.EmployeeID] = &stored
	return e.ID, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (*model.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.employees[employeeID], nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetAll(_ context.Context) ([]model.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	all := []model.Employee{}
	for _, e := range r.employees {
		all = append(all, *e)
	}
	return all, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, employeeID string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.employees, employeeID)
	r.deleted = append(r.deleted, employeeID)
	return nil
}

func (r *fakeEmployeeRepo) UpdateWelcomeStatus(_ context.Context, employeeID string, status model.WelcomeEmailStatus, retryCount int) error {
	r.statuses = append(r.statuses, statusUpdate{employeeID, status, retryCount})
	return r.err
}

type fakeProducer struct {
	events []messaging.EmployeeCreatedEvent
	err    error
}

func (p *fakeProducer) PublishEmployeeCreated(_ context.Context, event messaging.EmployeeCreatedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	input := model.Employee{
		EmployeeID: "EMP001",
		FullName:   "John Doe",
		Email:      "john@company.com",
		Department: "Engineering",
	}

	t.Run("success publishes onboarding event", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		producer := &fakeProducer{}
		svc := core.NewEmployeeService(repo, producer)

		created, err := svc.CreateEmployee(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "EMP001", created.EmployeeID)
		assert.NotZero(t, created.ID)

		require.Len(t, producer.events, 1)
		event := producer.events[0]
		assert.NotEmpty(t, event.EventID)
		assert.Equal(t, "EMP001", event.EmployeeID)
		assert.Equal(t, "john@company.com", event.Email)
		assert.False(t, event.OccurredAt.IsZero())
	})

	t.Run("duplicate employee_id is a conflict", func(t *testing.T) {
		repo := newFakeEmployeeRepo(model.Employee{EmployeeID: "EMP001", Email: "other@company.com"})
		svc := core.NewEmployeeService(repo, &fakeProducer{})

		_, err := svc.CreateEmployee(context.Background(), input)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConflict, appErr.Code)
		assert.Equal(t, "Employee with this employee_id already exists", appErr.Message)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := newFakeEmployeeRepo(model.Employee{EmployeeID: "EMP999", Email: "john@company.com"})
		svc := core.NewEmployeeService(repo, &fakeProducer{})

		_, err := svc.CreateEmployee(context.Background(), input)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConflict, appErr.Code)
		assert.Equal(t, "Employee with this email already exists", appErr.Message)
	})

	t.Run("publish failure does not fail the create", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		producer := &fakeProducer{err: errors.New("queue unavailable")}
		svc := core.NewEmployeeService(repo, producer)

		created, err := svc.CreateEmployee(context.Background(), input)

		require.NoError(t, err)
		assert.NotNil(t, created)
		assert.NotNil(t, repo.employees["EMP001"], "record persisted despite publish failure")
	})
}

func TestEmployeeService_DeleteEmployee(t *testing.T) {
	t.Run("removes an existing employee", func(t *testing.T) {
		repo := newFakeEmployeeRepo(model.Employee{EmployeeID: "EMP001"})
		svc := core.NewEmployeeService(repo, &fakeProducer{})

		require.NoError(t, svc.DeleteEmployee(context.Background(), "EMP001"))
		assert.Equal(t, []string{"EMP001"}, repo.deleted)
	})

	t.Run("unknown employee is not found", func(t *testing.T) {
		svc := core.NewEmployeeService(newFakeEmployeeRepo(), &fakeProducer{})

		err := svc.DeleteEmployee(context.Background(), "EMP404")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
		assert.Equal(t, "Employee not found", appErr.Message)
	})
}

func TestEmployeeService_ListEmployees(t *testing.T) {
	repo := newFakeEmployeeRepo(
		model.Employee{EmployeeID: "EMP001"},
		model.Employee{EmployeeID: "EMP002"},
	)
	svc := core.NewEmployeeService(repo, &fakeProducer{})

	employees, err := svc.ListEmployees(context.Background())

	require.NoError(t, err)
	assert.Len(t, employees, 2)

	repo.err = errors.New("connection reset")
	_, err = svc.ListEmployees(context.Background())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInternalError, appErr.Code)
}
