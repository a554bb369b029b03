package repository

import (
	"context"
	"database/sql"
	"time"

	"hrms.lite/internal/core/model"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EmployeeRepository contract
type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) (int64, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	GetAll(ctx context.Context) ([]model.Employee, error)
	Delete(ctx context.Context, employeeID string) error
	UpdateWelcomeStatus(ctx context.Context, employeeID string, status model.WelcomeEmailStatus, retryCount int) error
}

// PostgresEmployeeRepository is the concrete implementation for a PostgreSQL database.
type PostgresEmployeeRepository struct {
	DB *sql.DB
}

// NewEmployeeRepository create new instance
func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &PostgresEmployeeRepository{DB: db}
}

const employeeColumns = `id, employee_id, full_name, email, department, welcome_email_status, welcome_retry_count, created_at`

// Create inserts a new employee and returns its row id. The server assigns
// created_at and the welcome email starts out PENDING.
func (r *PostgresEmployeeRepository) Create(ctx context.Context, e *model.Employee) (int64, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", e.EmployeeID))

	var id int64
	var createdAt time.Time
	query := `INSERT INTO employees (employee_id, full_name, email, department, welcome_email_status, welcome_retry_count)
              VALUES ($1, $2, $3, $4, $5, 0) RETURNING id, created_at`

	err := r.DB.QueryRowContext(ctx, query,
		e.EmployeeID, e.FullName, e.Email, e.Department, model.StatusWelcomePending,
	).Scan(&id, &createdAt)
	if err != nil {
		return 0, err
	}

	e.ID = id
	e.WelcomeStatus = model.StatusWelcomePending
	e.CreatedAt = createdAt
	return id, nil
}

// GetByEmployeeID fetches one employee by its external id, nil when absent.
func (r *PostgresEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", employeeID))

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, employeeID))
}

// GetByEmail fetches one employee by email, nil when absent.
func (r *PostgresEmployeeRepository) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

// GetAll lists every employee ordered by employee_id.
func (r *PostgresEmployeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department,
			&e.WelcomeStatus, &e.WelcomeRetryCount, &e.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Delete removes an employee row. Attendance rows go with it via the
// ON DELETE CASCADE on the foreign key.
func (r *PostgresEmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", employeeID))

	_, err := r.DB.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	return err
}

// UpdateWelcomeStatus updates the status and retry count of the onboarding email job.
func (r *PostgresEmployeeRepository) UpdateWelcomeStatus(ctx context.Context, employeeID string, status model.WelcomeEmailStatus, retryCount int) error {
	query := `UPDATE employees
              SET welcome_email_status = $1,
                  welcome_retry_count = $2
              WHERE employee_id = $3`

	_, err := r.DB.ExecContext(ctx, query, status, retryCount, employeeID)
	return err
}

func (r *PostgresEmployeeRepository) scanOne(row *sql.Row) (*model.Employee, error) {
	e := &model.Employee{}
	err := row.Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department,
		&e.WelcomeStatus, &e.WelcomeRetryCount, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}
