package core

import (
	"context"
	"time"

	"hrms.lite/internal/apperror"
	"hrms.lite/internal/core/model"
	"hrms.lite/internal/ports/repository"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// AttendanceQuery carries the optional refinements of an attendance lookup.
// A nil field means the filter is absent, which is different from an empty
// string and must stay that way through the whole call chain.
type AttendanceQuery struct {
	Date  *string
	Month *string
}

type AttendanceService struct {
	attendance repository.AttendanceRepository
	employees  repository.EmployeeRepository
}

func NewAttendanceService(attendance repository.AttendanceRepository, employees repository.EmployeeRepository) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		employees:  employees,
	}
}

// MarkAttendance records an employee's status for one day. Marking an
// already-marked day updates the status instead of duplicating the row.
// The second return value reports whether a new record was created.
func (s *AttendanceService) MarkAttendance(ctx context.Context, employeeID, date string, status model.AttendanceStatus) (*model.Attendance, bool, error) {
	if !status.Valid() {
		return nil, false, apperror.BadRequest("Invalid attendance status").
			WithDetails(map[string]string{"status": string(status)})
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, false, apperror.BadRequest("Invalid date format. Use YYYY-MM-DD").
			WithDetails(map[string]string{"date": date})
	}

	employee, err := s.employees.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, false, apperror.Internal(err)
	}
	if employee == nil {
		return nil, false, apperror.NotFound("Employee not found").
			WithDetails(map[string]string{"employee_id": employeeID})
	}

	existing, err := s.attendance.FindByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return nil, false, apperror.Internal(err)
	}

	if existing != nil {
		updated, err := s.attendance.UpdateStatus(ctx, existing.ID, status)
		if err != nil {
			return nil, false, apperror.Internal(err)
		}
		return updated, false, nil
	}

	record, err := s.attendance.Create(ctx, employeeID, day, status)
	if err != nil {
		return nil, false, apperror.Internal(err)
	}
	return record, true, nil
}

// GetEmployeeAttendance builds the attendance summary for one employee,
// optionally narrowed to a single day or a calendar month. Without filters
// the present count covers all records, matching the unfiltered record set.
func (s *AttendanceService) GetEmployeeAttendance(ctx context.Context, employeeID string, q AttendanceQuery) (*model.AttendanceSummary, error) {
	employee, err := s.employees.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if employee == nil {
		return nil, apperror.NotFound("Employee not found").
			WithDetails(map[string]string{"employee_id": employeeID})
	}

	records, err := s.attendance.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if q.Month != nil {
		monthStart, err := time.Parse(monthLayout, *q.Month)
		if err != nil {
			return nil, apperror.BadRequest("Invalid month format. Use YYYY-MM").
				WithDetails(map[string]string{"month": *q.Month})
		}
		monthEnd := monthStart.AddDate(0, 1, 0)

		filtered := records[:0:0]
		for _, rec := range records {
			day, err := time.Parse(dateLayout, rec.Date)
			if err != nil {
				continue
			}
			if !day.Before(monthStart) && day.Before(monthEnd) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if q.Date != nil {
		filtered := records[:0:0]
		for _, rec := range records {
			if rec.Date == *q.Date {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	var presentCount int
	if q.Date != nil || q.Month != nil {
		for _, rec := range records {
			if rec.Status == model.StatusPresent {
				presentCount++
			}
		}
	} else {
		presentCount, err = s.attendance.CountPresent(ctx, employeeID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if records == nil {
		records = []model.Attendance{}
	}

	return &model.AttendanceSummary{
		EmployeeID:   employeeID,
		TotalRecords: len(records),
		TotalPresent: presentCount,
		Records:      records,
	}, nil
}
