package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"

	"github.com/google/uuid"
)

// InquiryStore defines the database operations required by InquiryProcessor
type InquiryStore interface {
	CreateInquiry(ctx context.Context, params store.CreateInquiryParams) (store.Inquiry, error)
	CreateInquiryForContact(ctx context.Context, params store.CreateInquiryForContactParams) (store.Inquiry, store.Client, error)
	GetInquiryByID(ctx context.Context, inquiryID uuid.UUID) (store.Inquiry, error)
	ListInquiries(ctx context.Context, params store.ListInquiriesParams) ([]store.InquirySummary, error)
	CountInquiries(ctx context.Context, status string) (int, error)
	UpdateInquiryStatus(ctx context.Context, inquiryID uuid.UUID, status string) (store.Inquiry, error)
	GetInquiryStatusCounts(ctx context.Context) ([]store.InquiryStatusCount, error)
}

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrMissingClient   = errors.New("either client_id or client_email is required")
	ErrInvalidStatus   = errors.New("invalid inquiry status")
)

var validStatuses = []string{
	store.InquiryStatusPending,
	store.InquiryStatusInProgress,
	store.InquiryStatusResponded,
	store.InquiryStatusClosed,
}

func isValidStatus(status string) bool {
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type InquiryProcessor struct {
	store  InquiryStore
	logger *observability.Logger
}

func New(store InquiryStore, logger *observability.Logger) InquiryProcessor {
	return InquiryProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateInquiryParams identifies the client either by ClientID or by
// ClientEmail; an unseen email creates the client.
type CreateInquiryParams struct {
	ClientID    *uuid.UUID
	ClientName  string
	ClientEmail string
	Subject     string
	Message     string
	Source      string
	Priority    string
	AssignedTo  *uuid.UUID
}

type ListInquiriesParams struct {
	Status         string
	SortByPriority bool
	Page           int
	PerPage        int
}

type ListInquiriesResult struct {
	Inquiries  []store.InquirySummary
	TotalCount int
	Page       int
	PerPage    int
	TotalPages int
}

// InquiryStats counts inquiries per status; every status is present
type InquiryStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// CreateInquiry records a new pending inquiry. Missing priority is derived
// from the subject and message.
func (p *InquiryProcessor) CreateInquiry(ctx context.Context, params CreateInquiryParams) (store.Inquiry, error) {
	source := params.Source
	if source == "" {
		source = store.InquirySourceManual
	}
	priority := params.Priority
	if priority == "" {
		priority = DetectPriority(params.Subject, params.Message)
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "inquiry_source", Value: source},
		observability.Field{Key: "inquiry_priority", Value: priority},
	)

	if params.ClientID != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: params.ClientID.String()})
		inquiry, err := p.store.CreateInquiry(ctx, store.CreateInquiryParams{
			ClientID:   *params.ClientID,
			Subject:    params.Subject,
			Message:    params.Message,
			Source:     source,
			Priority:   priority,
			AssignedTo: params.AssignedTo,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return store.Inquiry{}, ErrClientNotFound
			}
			p.logger.Error(ctx, "failed to create inquiry", err)
			return store.Inquiry{}, err
		}
		p.logger.Info(ctx, "inquiry created successfully")
		return inquiry, nil
	}

	email := strings.ToLower(strings.TrimSpace(params.ClientEmail))
	if email == "" {
		return store.Inquiry{}, ErrMissingClient
	}
	name := strings.TrimSpace(params.ClientName)
	if name == "" {
		name = email
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_email", Value: email})

	inquiry, client, err := p.store.CreateInquiryForContact(ctx, store.CreateInquiryForContactParams{
		ClientName:  name,
		ClientEmail: email,
		Subject:     params.Subject,
		Message:     params.Message,
		Source:      source,
		Priority:    priority,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create inquiry for contact", err)
		return store.Inquiry{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "client_id", Value: client.ID.String()},
		observability.Field{Key: "inquiry_id", Value: inquiry.ID.String()},
	)
	p.logger.Info(ctx, "inquiry created successfully")
	return inquiry, nil
}

func (p *InquiryProcessor) GetInquiry(ctx context.Context, inquiryID uuid.UUID) (store.Inquiry, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "inquiry_id", Value: inquiryID.String()})

	inquiry, err := p.store.GetInquiryByID(ctx, inquiryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Inquiry{}, ErrInquiryNotFound
		}
		p.logger.Error(ctx, "failed to get inquiry", err)
		return store.Inquiry{}, err
	}
	return inquiry, nil
}

func (p *InquiryProcessor) ListInquiries(ctx context.Context, params ListInquiriesParams) (ListInquiriesResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_filter", Value: params.Status},
		observability.Field{Key: "page", Value: params.Page},
	)

	if params.Status != "" && !isValidStatus(params.Status) {
		return ListInquiriesResult{}, ErrInvalidStatus
	}

	inquiries, err := p.store.ListInquiries(ctx, store.ListInquiriesParams{
		Status:         params.Status,
		SortByPriority: params.SortByPriority,
		Limit:          params.PerPage,
		Offset:         (params.Page - 1) * params.PerPage,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list inquiries", err)
		return ListInquiriesResult{}, err
	}

	total, err := p.store.CountInquiries(ctx, params.Status)
	if err != nil {
		p.logger.Error(ctx, "failed to count inquiries", err)
		return ListInquiriesResult{}, err
	}

	return ListInquiriesResult{
		Inquiries:  inquiries,
		TotalCount: total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: (total + params.PerPage - 1) / params.PerPage,
	}, nil
}

// UpdateStatus moves an inquiry to any of the known statuses. The first move
// to responded stamps responded_at.
func (p *InquiryProcessor) UpdateStatus(ctx context.Context, inquiryID uuid.UUID, status string) (store.Inquiry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "inquiry_id", Value: inquiryID.String()},
		observability.Field{Key: "inquiry_status", Value: status},
	)

	if !isValidStatus(status) {
		return store.Inquiry{}, ErrInvalidStatus
	}

	inquiry, err := p.store.UpdateInquiryStatus(ctx, inquiryID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Inquiry{}, ErrInquiryNotFound
		}
		p.logger.Error(ctx, "failed to update inquiry status", err)
		return store.Inquiry{}, err
	}

	p.logger.Info(ctx, "inquiry status updated successfully")
	return inquiry, nil
}

func (p *InquiryProcessor) GetStats(ctx context.Context) (InquiryStats, error) {
	counts, err := p.store.GetInquiryStatusCounts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get inquiry status counts", err)
		return InquiryStats{}, err
	}

	stats := InquiryStats{ByStatus: make(map[string]int, len(validStatuses))}
	for _, s := range validStatuses {
		stats.ByStatus[s] = 0
	}
	for _, c := range counts {
		stats.ByStatus[c.Status] = c.Count
		stats.Total += c.Count
	}
	return stats, nil
}
