package repository

import (
	"context"
	"database/sql"
	"time"

	"hrms.lite/internal/core/model"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AttendanceRepository contract
type AttendanceRepository interface {
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error)
	Create(ctx context.Context, employeeID string, date time.Time, status model.AttendanceStatus) (*model.Attendance, error)
	UpdateStatus(ctx context.Context, id int64, status model.AttendanceStatus) (*model.Attendance, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]model.Attendance, error)
	CountPresent(ctx context.Context, employeeID string) (int, error)
}

// PostgresAttendanceRepository is the concrete implementation for a PostgreSQL database.
type PostgresAttendanceRepository struct {
	DB *sql.DB
}

// NewAttendanceRepository create new instance
func NewAttendanceRepository(db *sql.DB) AttendanceRepository {
	return &PostgresAttendanceRepository{DB: db}
}

const dateLayout = "2006-01-02"

// FindByEmployeeAndDate returns the record for one employee-day, nil when absent.
func (r *PostgresAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", employeeID))

	query := `SELECT id, employee_id, date, status, created_at
              FROM attendance
              WHERE employee_id = $1 AND date = $2`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, employeeID, date))
}

// Create inserts a new attendance record.
func (r *PostgresAttendanceRepository) Create(ctx context.Context, employeeID string, date time.Time, status model.AttendanceStatus) (*model.Attendance, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", employeeID))

	query := `INSERT INTO attendance (employee_id, date, status)
              VALUES ($1, $2, $3)
              RETURNING id, employee_id, date, status, created_at`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, employeeID, date, status))
}

// UpdateStatus changes the status of an existing record (the re-mark path).
func (r *PostgresAttendanceRepository) UpdateStatus(ctx context.Context, id int64, status model.AttendanceStatus) (*model.Attendance, error) {
	query := `UPDATE attendance SET status = $1 WHERE id = $2
              RETURNING id, employee_id, date, status, created_at`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, status, id))
}

// GetByEmployee lists all records for one employee, oldest date first.
func (r *PostgresAttendanceRepository) GetByEmployee(ctx context.Context, employeeID string) ([]model.Attendance, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", employeeID))

	query := `SELECT id, employee_id, date, status, created_at
              FROM attendance
              WHERE employee_id = $1
              ORDER BY date`

	rows, err := r.DB.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.Attendance{}
	for rows.Next() {
		var rec model.Attendance
		var day time.Time
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &day, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Date = day.Format(dateLayout)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountPresent counts all-time PRESENT days for one employee.
func (r *PostgresAttendanceRepository) CountPresent(ctx context.Context, employeeID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM attendance WHERE employee_id = $1 AND status = $2`

	err := r.DB.QueryRowContext(ctx, query, employeeID, model.StatusPresent).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresAttendanceRepository) scanOne(row *sql.Row) (*model.Attendance, error) {
	rec := &model.Attendance{}
	var day time.Time
	err := row.Scan(&rec.ID, &rec.EmployeeID, &day, &rec.Status, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.Date = day.Format(dateLayout)
	return rec, nil
}
