package core

import (
	"context"
	"time"

	"hrms.lite/internal/apperror"
	"hrms.lite/internal/core/model"
	"hrms.lite/internal/ports/messaging"
	"hrms.lite/internal/ports/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type EmployeeService struct {
	repo     repository.EmployeeRepository
	producer messaging.QueueProducer
}

// NewEmployeeService wires up the employee repository and the message queue
// producer used for onboarding notifications.
func NewEmployeeService(repo repository.EmployeeRepository, p messaging.QueueProducer) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		producer: p,
	}
}

// CreateEmployee stores a new employee record. Both employee_id and email
// must be unused; either collision is a conflict decided server-side.
func (s *EmployeeService) CreateEmployee(ctx context.Context, e model.Employee) (*model.Employee, error) {
	existing, err := s.repo.GetByEmployeeID(ctx, e.EmployeeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Employee with this employee_id already exists").
			WithDetails(map[string]string{"employee_id": e.EmployeeID})
	}

	existing, err = s.repo.GetByEmail(ctx, e.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Employee with this email already exists").
			WithDetails(map[string]string{"email": e.Email})
	}

	if _, err := s.repo.Create(ctx, &e); err != nil {
		return nil, apperror.Internal(err)
	}

	// Best effort: the record is created even if the event cannot be queued.
	event := messaging.EmployeeCreatedEvent{
		EventID:    uuid.NewString(),
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.PublishEmployeeCreated(ctx, event); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("employee_id", e.EmployeeID).Msg("Failed to publish employee-created event")
	}

	return &e, nil
}

// ListEmployees returns every employee ordered by employee_id.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return employees, nil
}

// DeleteEmployee removes an employee by its external id.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	existing, err := s.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil {
		return apperror.NotFound("Employee not found").
			WithDetails(map[string]string{"employee_id": employeeID})
	}

	if err := s.repo.Delete(ctx, employeeID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// UpdateWelcomeStatus is a pass-through to the repository layer, used by the
// email worker to track the state of the onboarding job.
func (s *EmployeeService) UpdateWelcomeStatus(ctx context.Context, employeeID string, status model.WelcomeEmailStatus, retryCount int) error {
	return s.repo.UpdateWelcomeStatus(ctx, employeeID, status, retryCount)
}
