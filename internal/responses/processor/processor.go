package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"

	"github.com/google/uuid"
)

// ResponseStore defines the database operations required by ResponseProcessor
type ResponseStore interface {
	CreateResponse(ctx context.Context, params store.CreateResponseParams) (store.Response, error)
	GetResponseByID(ctx context.Context, responseID uuid.UUID) (store.Response, error)
	GetResponseDetail(ctx context.Context, responseID uuid.UUID) (store.ResponseDetail, error)
	UpdateResponseFollowUp(ctx context.Context, responseID uuid.UUID, mutate func(store.Response) (store.Response, error)) (store.Response, error)
	AppendConversationMessage(ctx context.Context, responseID uuid.UUID, sender string, message string) (store.ConversationMessage, error)
}

// EmailSender delivers a response to the client
type EmailSender interface {
	SendResponseEmail(ctx context.Context, to string, clientName string, inquirySubject string, body string, signature string) (string, error)
}

// EventPublisher announces lifecycle changes to downstream consumers
type EventPublisher interface {
	PublishResponseCreated(ctx context.Context, response store.Response) error
	PublishDealClosed(ctx context.Context, response store.Response) error
}

// StatsCache holds the license dashboard stats, which depend on deal state
type StatsCache interface {
	Invalidate(ctx context.Context)
}

var (
	ErrResponseNotFound      = errors.New("response not found")
	ErrInquiryNotFound       = errors.New("inquiry not found")
	ErrDealClosed            = errors.New("deal is already closed")
	ErrInvalidFollowUpUpdate = errors.New("invalid follow-up update")
	ErrEmptyMessage          = errors.New("message is required")
	ErrEmailDeliveryFailed   = errors.New("response saved but email delivery failed")
)

// EmailDeliveryError reports a persisted response whose email was not sent
type EmailDeliveryError struct {
	ResponseID uuid.UUID
	Err        error
}

func (e *EmailDeliveryError) Error() string {
	return fmt.Sprintf("response %s saved but email delivery failed: %v", e.ResponseID, e.Err)
}

func (e *EmailDeliveryError) Unwrap() error {
	return ErrEmailDeliveryFailed
}

type ResponseProcessor struct {
	store     ResponseStore
	email     EmailSender
	events    EventPublisher
	stats     StatsCache
	signature string
	logger    *observability.Logger
	now       func() time.Time
}

func New(store ResponseStore, email EmailSender, events EventPublisher, stats StatsCache, signature string, logger *observability.Logger) ResponseProcessor {
	return ResponseProcessor{
		store:     store,
		email:     email,
		events:    events,
		stats:     stats,
		signature: signature,
		logger:    logger,
		now:       time.Now,
	}
}

type CreateResponseParams struct {
	InquiryID    uuid.UUID
	UserID       uuid.UUID
	ResponseText string
	SendEmail    bool
}

// FollowUpUpdate carries exactly one follow-up action
type FollowUpUpdate struct {
	ClientReplied  *bool
	FollowUpMethod *string
	DealStatus     *string
}

// CreateResponse records the reply and marks the inquiry responded. Email
// delivery happens after the commit, so a failed send returns an
// *EmailDeliveryError alongside the persisted response.
func (p *ResponseProcessor) CreateResponse(ctx context.Context, params CreateResponseParams) (store.Response, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "inquiry_id", Value: params.InquiryID.String()},
		observability.Field{Key: "user_id", Value: params.UserID.String()},
		observability.Field{Key: "send_email", Value: params.SendEmail},
	)

	response, err := p.store.CreateResponse(ctx, store.CreateResponseParams{
		InquiryID:    params.InquiryID,
		UserID:       params.UserID,
		ResponseText: params.ResponseText,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Response{}, ErrInquiryNotFound
		}
		p.logger.Error(ctx, "failed to create response", err)
		return store.Response{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "response_id", Value: response.ID.String()})
	p.logger.Info(ctx, "response created successfully")

	if err := p.events.PublishResponseCreated(ctx, response); err != nil {
		p.logger.Error(ctx, "failed to publish response created event", err)
	}

	if !params.SendEmail {
		return response, nil
	}

	if err := p.sendResponseEmail(ctx, response); err != nil {
		p.logger.Error(ctx, "failed to send response email", err)
		return response, &EmailDeliveryError{ResponseID: response.ID, Err: err}
	}
	return response, nil
}

func (p *ResponseProcessor) sendResponseEmail(ctx context.Context, response store.Response) error {
	detail, err := p.store.GetResponseDetail(ctx, response.ID)
	if err != nil {
		return fmt.Errorf("failed to load response recipient: %w", err)
	}

	messageID, err := p.email.SendResponseEmail(ctx, detail.ClientEmail, detail.ClientName, detail.InquirySubject, response.ResponseText, p.signature)
	if err != nil {
		return err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "email_message_id", Value: messageID})
	p.logger.Info(ctx, "response email sent successfully")
	return nil
}

// GetResponse returns the response with its thread and joined client fields
func (p *ResponseProcessor) GetResponse(ctx context.Context, responseID uuid.UUID) (store.ResponseDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "response_id", Value: responseID.String()})

	detail, err := p.store.GetResponseDetail(ctx, responseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ResponseDetail{}, ErrResponseNotFound
		}
		p.logger.Error(ctx, "failed to get response", err)
		return store.ResponseDetail{}, err
	}
	return detail, nil
}

// UpdateFollowUp dispatches one follow-up action. deal_status wins over
// follow_up_method, which wins over client_replied.
func (p *ResponseProcessor) UpdateFollowUp(ctx context.Context, responseID uuid.UUID, update FollowUpUpdate) (store.Response, error) {
	switch {
	case update.DealStatus != nil:
		switch *update.DealStatus {
		case store.DealStatusClosedWon:
			return p.MarkDealWon(ctx, responseID)
		case store.DealStatusClosedLost:
			return p.MarkDealLost(ctx, responseID)
		}
	case update.FollowUpMethod != nil:
		switch *update.FollowUpMethod {
		case store.FollowUpMethodOtherChannel:
			return p.MarkOtherChannel(ctx, responseID)
		case store.FollowUpMethodEmail:
			return p.MarkReplied(ctx, responseID)
		}
	case update.ClientReplied != nil:
		// client_replied can only move to true
		if *update.ClientReplied {
			return p.MarkReplied(ctx, responseID)
		}
	}
	return store.Response{}, ErrInvalidFollowUpUpdate
}

// MarkReplied records that the client answered by email. Re-marking is a no-op.
func (p *ResponseProcessor) MarkReplied(ctx context.Context, responseID uuid.UUID) (store.Response, error) {
	return p.mutate(ctx, responseID, "client_replied", func(r store.Response) (store.Response, error) {
		if r.ClientReplied {
			return r, nil
		}
		if r.DealStatus != store.DealStatusOpen {
			return r, ErrDealClosed
		}
		r.ClientReplied = true
		if r.FollowUpMethod == nil {
			method := store.FollowUpMethodEmail
			r.FollowUpMethod = &method
		}
		return r, nil
	})
}

// MarkOtherChannel records that the conversation moved off email
func (p *ResponseProcessor) MarkOtherChannel(ctx context.Context, responseID uuid.UUID) (store.Response, error) {
	return p.mutate(ctx, responseID, "other_channel", func(r store.Response) (store.Response, error) {
		if r.DealStatus != store.DealStatusOpen {
			return r, ErrDealClosed
		}
		method := store.FollowUpMethodOtherChannel
		r.FollowUpMethod = &method
		r.ClientReplied = true
		return r, nil
	})
}

// MarkDealWon closes the deal as won; the response then waits in the deal
// queue until a license is issued for it.
func (p *ResponseProcessor) MarkDealWon(ctx context.Context, responseID uuid.UUID) (store.Response, error) {
	return p.closeDeal(ctx, responseID, store.DealStatusClosedWon)
}

func (p *ResponseProcessor) MarkDealLost(ctx context.Context, responseID uuid.UUID) (store.Response, error) {
	return p.closeDeal(ctx, responseID, store.DealStatusClosedLost)
}

func (p *ResponseProcessor) closeDeal(ctx context.Context, responseID uuid.UUID, status string) (store.Response, error) {
	response, err := p.mutate(ctx, responseID, status, func(r store.Response) (store.Response, error) {
		if r.DealStatus != store.DealStatusOpen {
			return r, ErrDealClosed
		}
		closedAt := p.now().UTC()
		r.DealStatus = status
		r.DealClosedAt = &closedAt
		return r, nil
	})
	if err != nil {
		return store.Response{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "response_id", Value: responseID.String()},
		observability.Field{Key: "deal_status", Value: status},
	)
	p.stats.Invalidate(ctx)
	if err := p.events.PublishDealClosed(ctx, response); err != nil {
		p.logger.Error(ctx, "failed to publish deal closed event", err)
	}
	return response, nil
}

func (p *ResponseProcessor) mutate(ctx context.Context, responseID uuid.UUID, action string, fn func(store.Response) (store.Response, error)) (store.Response, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "response_id", Value: responseID.String()},
		observability.Field{Key: "follow_up_action", Value: action},
	)

	response, err := p.store.UpdateResponseFollowUp(ctx, responseID, fn)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Response{}, ErrResponseNotFound
		case errors.Is(err, ErrDealClosed):
			p.logger.Warn(ctx, "follow-up rejected on closed deal")
			return store.Response{}, ErrDealClosed
		}
		p.logger.Error(ctx, "failed to update response follow-up", err)
		return store.Response{}, err
	}

	p.logger.Info(ctx, "response follow-up updated successfully")
	return response, nil
}

// AppendClientMessage adds a client entry to the thread without touching
// client_replied or the deal status.
func (p *ResponseProcessor) AppendClientMessage(ctx context.Context, responseID uuid.UUID, message string) (store.ConversationMessage, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "response_id", Value: responseID.String()})
	if message == "" {
		return store.ConversationMessage{}, ErrEmptyMessage
	}

	entry, err := p.store.AppendConversationMessage(ctx, responseID, store.MessageSenderClient, message)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ConversationMessage{}, ErrResponseNotFound
		}
		p.logger.Error(ctx, "failed to append client message", err)
		return store.ConversationMessage{}, err
	}

	p.logger.Info(ctx, "client message appended successfully")
	return entry, nil
}
