package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"ops-dashboard/internal/jobs"
	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"

	"github.com/google/uuid"
)

// PublisherStore defines the database operations required by PublisherProcessor
type PublisherStore interface {
	BulkInsertPublishers(ctx context.Context, publishers []store.CreatePublisherParams) (int, error)
	ListPublishers(ctx context.Context, params store.ListPublishersParams) ([]store.Publisher, error)
	CountPublishers(ctx context.Context, search string, status string) (int, error)
	ListPublisherRecipients(ctx context.Context, ids []uuid.UUID) ([]store.Publisher, error)
	UpdatePublishersStatus(ctx context.Context, ids []uuid.UUID, status string) (int, error)
}

// BroadcastQueue hands a broadcast to the background workers
type BroadcastQueue interface {
	EnqueueBroadcastJob(ctx context.Context, payload jobs.BroadcastJobPayload) (string, error)
}

var (
	ErrNoPublishers          = errors.New("no publishers data provided")
	ErrInvalidStatus         = errors.New("invalid publisher status")
	ErrNoPublisherIDs        = errors.New("at least one publisher id is required")
	ErrNoRecipients          = errors.New("no active publishers to send to")
	ErrBroadcastUnavailable  = errors.New("background jobs are not configured")
	ErrEmptyBroadcastSubject = errors.New("subject is required")
)

type PublisherProcessor struct {
	store  PublisherStore
	queue  BroadcastQueue
	logger *observability.Logger
}

// New wires the processor. A nil queue disables broadcasts.
func New(store PublisherStore, queue BroadcastQueue, logger *observability.Logger) PublisherProcessor {
	return PublisherProcessor{
		store:  store,
		queue:  queue,
		logger: logger,
	}
}

type PublisherInput struct {
	Name     string
	Email    string
	Category string
}

// BulkUploadResult reports how many rows were new and how many were dropped
type BulkUploadResult struct {
	Received int `json:"received"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

type ListPublishersResult struct {
	Publishers []store.Publisher
	TotalCount int
	Page       int
	PerPage    int
	TotalPages int
}

type BroadcastParams struct {
	PublisherIDs []uuid.UUID
	Subject      string
	Body         string
	RequestedBy  uuid.UUID
}

type BroadcastResult struct {
	TaskID     string `json:"task_id"`
	Recipients int    `json:"recipients"`
}

// BulkUpload inserts the valid rows; rows without a usable email and emails
// already on the list are skipped.
func (p *PublisherProcessor) BulkUpload(ctx context.Context, inputs []PublisherInput) (BulkUploadResult, error) {
	if len(inputs) == 0 {
		return BulkUploadResult{}, ErrNoPublishers
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "publishers_received", Value: len(inputs)})

	rows := make([]store.CreatePublisherParams, 0, len(inputs))
	for _, input := range inputs {
		email := strings.ToLower(strings.TrimSpace(input.Email))
		if !strings.Contains(email, "@") {
			continue
		}
		name := strings.TrimSpace(input.Name)
		if name == "" {
			name = email
		}
		rows = append(rows, store.CreatePublisherParams{
			Name:     name,
			Email:    email,
			Category: strings.TrimSpace(input.Category),
		})
	}

	inserted := 0
	if len(rows) > 0 {
		var err error
		inserted, err = p.store.BulkInsertPublishers(ctx, rows)
		if err != nil {
			p.logger.Error(ctx, "failed to bulk insert publishers", err)
			return BulkUploadResult{}, err
		}
	}

	result := BulkUploadResult{
		Received: len(inputs),
		Inserted: inserted,
		Skipped:  len(inputs) - inserted,
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "publishers_inserted", Value: inserted})
	p.logger.Info(ctx, "publishers uploaded successfully")
	return result, nil
}

func (p *PublisherProcessor) ListPublishers(ctx context.Context, search, status string, page, perPage int) (ListPublishersResult, error) {
	if status != "" && !isValidStatus(status) {
		return ListPublishersResult{}, ErrInvalidStatus
	}

	publishers, err := p.store.ListPublishers(ctx, store.ListPublishersParams{
		Search: search,
		Status: status,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list publishers", err)
		return ListPublishersResult{}, err
	}

	total, err := p.store.CountPublishers(ctx, search, status)
	if err != nil {
		p.logger.Error(ctx, "failed to count publishers", err)
		return ListPublishersResult{}, err
	}

	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return ListPublishersResult{
		Publishers: publishers,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus sets one status on many publishers and returns how many changed
func (p *PublisherProcessor) UpdateStatus(ctx context.Context, ids []uuid.UUID, status string) (int, error) {
	if len(ids) == 0 {
		return 0, ErrNoPublisherIDs
	}
	if !isValidStatus(status) {
		return 0, ErrInvalidStatus
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "publisher_count", Value: len(ids)},
		observability.Field{Key: "publisher_status", Value: status},
	)

	updated, err := p.store.UpdatePublishersStatus(ctx, ids, status)
	if err != nil {
		p.logger.Error(ctx, "failed to update publishers status", err)
		return 0, err
	}

	p.logger.Info(ctx, "publishers status updated successfully")
	return updated, nil
}

// Broadcast queues one email to the selected, or all, active publishers
func (p *PublisherProcessor) Broadcast(ctx context.Context, params BroadcastParams) (BroadcastResult, error) {
	if p.queue == nil {
		return BroadcastResult{}, ErrBroadcastUnavailable
	}
	if strings.TrimSpace(params.Subject) == "" {
		return BroadcastResult{}, ErrEmptyBroadcastSubject
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "requested_by", Value: params.RequestedBy.String()})

	recipients, err := p.store.ListPublisherRecipients(ctx, params.PublisherIDs)
	if err != nil {
		p.logger.Error(ctx, "failed to list broadcast recipients", err)
		return BroadcastResult{}, err
	}
	if len(recipients) == 0 {
		return BroadcastResult{}, ErrNoRecipients
	}

	taskID, err := p.queue.EnqueueBroadcastJob(ctx, jobs.BroadcastJobPayload{
		PublisherIDs: params.PublisherIDs,
		Subject:      params.Subject,
		Body:         params.Body,
		RequestedBy:  params.RequestedBy,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to enqueue broadcast", err)
		return BroadcastResult{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "task_id", Value: taskID},
		observability.Field{Key: "recipients", Value: len(recipients)},
	)
	p.logger.Info(ctx, "broadcast queued successfully")
	return BroadcastResult{TaskID: taskID, Recipients: len(recipients)}, nil
}

func isValidStatus(status string) bool {
	return status == store.PublisherStatusActive || status == store.PublisherStatusInactive
}
