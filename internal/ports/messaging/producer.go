package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Producer struct {
	sender          MessageSender
	welcomeQueueURL string
}

func NewProducer(sender MessageSender, welcomeQueueURL string) *Producer {
	return &Producer{
		sender:          sender,
		welcomeQueueURL: welcomeQueueURL,
	}
}

// NewSQSProducer creates a new Producer backed by an AWS SQS sender.
func NewSQSProducer(client SQSClient, welcomeQueueURL string) *Producer {
	return NewProducer(&SQSSender{client: client}, welcomeQueueURL)
}

// PublishEmployeeCreated sends an employee-created event to the welcome queue.
func (p *Producer) PublishEmployeeCreated(ctx context.Context, event EmployeeCreatedEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Enrich the current span with the employee id
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() && event.EmployeeID != "" {
		span.SetAttributes(attribute.String("app.employeeId", event.EmployeeID))
	}

	if err := p.sender.SendMessage(ctx, p.welcomeQueueURL, b); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
