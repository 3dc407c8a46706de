package inbound

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=inbound

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"ops-dashboard/internal/events"
	inquiryProcessor "ops-dashboard/internal/inquiries/processor"
	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"
	"ops-dashboard/internal/workers"
)

// InquiryCreator records an inquiry for a sender, creating the client if needed
type InquiryCreator interface {
	CreateInquiry(ctx context.Context, params inquiryProcessor.CreateInquiryParams) (store.Inquiry, error)
}

const defaultSubject = "(no subject)"

// Processor turns email.received events from the inbound topic into inquiries
type Processor struct {
	inquiries InquiryCreator
	logger    *observability.Logger
}

func NewProcessor(inquiries InquiryCreator, logger *observability.Logger) *Processor {
	return &Processor{
		inquiries: inquiries,
		logger:    logger,
	}
}

// Process records one received email. Malformed events are logged and
// acknowledged so they are not redelivered forever.
func (p *Processor) Process(ctx context.Context, event workers.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
	)

	if event.Type != events.EventEmailReceived {
		return nil
	}

	from, _ := event.Data["from"].(string)
	sender, err := mail.ParseAddress(strings.TrimSpace(from))
	if err != nil {
		p.logger.Error(ctx, "email event has an unusable sender", err)
		return nil
	}

	subject, _ := event.Data["subject"].(string)
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = defaultSubject
	}
	body, _ := event.Data["body"].(string)
	if strings.TrimSpace(body) == "" {
		p.logger.Warn(ctx, "email event has an empty body, skipping")
		return nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "client_email", Value: sender.Address})

	inquiry, err := p.inquiries.CreateInquiry(ctx, inquiryProcessor.CreateInquiryParams{
		ClientName:  sender.Name,
		ClientEmail: sender.Address,
		Subject:     subject,
		Message:     body,
		Source:      store.InquirySourceEmail,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record inquiry from email", err)
		return fmt.Errorf("failed to record inquiry: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "inquiry_id", Value: inquiry.ID.String()})
	p.logger.Info(ctx, "recorded inquiry from email")
	return nil
}

func (p *Processor) Name() string {
	return "inbound-email"
}
