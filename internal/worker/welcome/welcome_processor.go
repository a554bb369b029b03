package welcome

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"hrms.lite/internal/core"
	"hrms.lite/internal/core/model"
	"hrms.lite/internal/ports/messaging"
	"hrms.lite/internal/ports/repository"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"
)

// Processor handles employee-created events from the welcome queue by
// sending the onboarding email and tracking the job state on the employee row.
type Processor struct {
	emailService core.EmailService
	repo         repository.EmployeeRepository
}

func NewProcessor(emailService core.EmailService, repo repository.EmployeeRepository) *Processor {
	return &Processor{
		emailService: emailService,
		repo:         repo,
	}
}

// Process handles one message from the welcome queue. It tells the worker to
// retry with backoff when sending fails, and skips employees whose welcome
// email already went out (re-delivered messages are harmless).
func (p *Processor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.EmployeeCreatedEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal employee-created event")
		return false, 0, err // Do not retry on malformed message
	}

	employee, err := p.repo.GetByEmployeeID(ctx, event.EmployeeID)
	if err != nil {
		// If we can't get the record, retry after a short delay.
		return true, 10, fmt.Errorf("failed to get employee for welcome processing: %w", err)
	}
	if employee == nil {
		// Deleted before the message arrived; nothing to welcome.
		log.Ctx(ctx).Info().Str("employee_id", event.EmployeeID).Msg("Employee no longer exists. Skipping welcome email.")
		return false, 0, nil
	}

	if employee.WelcomeStatus == model.StatusWelcomeCompleted {
		log.Ctx(ctx).Info().Str("employee_id", event.EmployeeID).Msg("Welcome email already sent. Skipping.")
		return false, 0, nil
	}

	err = p.emailService.SendWelcome(ctx, event.Email, event.FullName)
	if err != nil {
		newCount := employee.WelcomeRetryCount + 1
		p.repo.UpdateWelcomeStatus(ctx, event.EmployeeID, model.StatusWelcomePending, newCount)

		delay := calculateBackoff(newCount)
		return true, delay, err
	}

	err = p.repo.UpdateWelcomeStatus(ctx, event.EmployeeID, model.StatusWelcomeCompleted, 0)
	return false, 0, err
}

// calculateBackoff determines how long to wait before retrying a failed job.
// It increases the delay exponentially with each retry.
func calculateBackoff(retryCount int) int32 {
	backoff := int32(math.Pow(2, float64(retryCount)) * 10)
	if backoff > 3600 {
		return 3600 // cap at 1 hour
	}
	return backoff
}
