package events

//go:generate go run go.uber.org/mock/mockgen@latest -source=publisher.go -destination=mocks_test.go -package=events

import (
	"context"
	"time"

	"ops-dashboard/internal/clients/kafka"
	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"

	"github.com/google/uuid"
)

// Event types published on the dashboard events topic
const (
	EventResponseCreated = "response.created"
	EventDealWon         = "deal.won"
	EventDealLost        = "deal.lost"
	EventLicenseIssued   = "license.issued"

	// EventEmailReceived is consumed from the inbound topic
	EventEmailReceived = "email.received"
)

type Producer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events to Kafka
type Publisher struct {
	producer Producer
	logger   *observability.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(producer Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
	}
}

func newEvent(eventType string, entityID uuid.UUID, data map[string]interface{}) kafka.EventMessage {
	return kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		EntityID:  entityID.String(),
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// PublishResponseCreated publishes a response.created event
func (p *Publisher) PublishResponseCreated(ctx context.Context, response store.Response) error {
	return p.producer.PublishEvent(ctx, newEvent(EventResponseCreated, response.ID, map[string]interface{}{
		"response_id": response.ID.String(),
		"inquiry_id":  response.InquiryID.String(),
		"user_id":     response.UserID.String(),
	}))
}

// PublishDealClosed publishes deal.won or deal.lost depending on the response's deal status
func (p *Publisher) PublishDealClosed(ctx context.Context, response store.Response) error {
	eventType := EventDealLost
	if response.DealStatus == store.DealStatusClosedWon {
		eventType = EventDealWon
	}
	data := map[string]interface{}{
		"response_id": response.ID.String(),
		"inquiry_id":  response.InquiryID.String(),
		"deal_status": response.DealStatus,
	}
	if response.DealClosedAt != nil {
		data["deal_closed_at"] = response.DealClosedAt.UTC().Format(time.RFC3339)
	}
	return p.producer.PublishEvent(ctx, newEvent(eventType, response.ID, data))
}

// PublishLicenseIssued publishes a license.issued event
func (p *Publisher) PublishLicenseIssued(ctx context.Context, license store.License) error {
	data := map[string]interface{}{
		"license_id":   license.ID.String(),
		"response_id":  license.ResponseID.String(),
		"client_id":    license.ClientID.String(),
		"license_type": license.LicenseType,
		"start_date":   license.StartDate.Format("2006-01-02"),
		"end_date":     license.EndDate.Format("2006-01-02"),
	}
	if license.Price != nil {
		data["price"] = *license.Price
	}
	return p.producer.PublishEvent(ctx, newEvent(EventLicenseIssued, license.ResponseID, data))
}
