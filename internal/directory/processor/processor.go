package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"

	"github.com/google/uuid"
)

// DirectoryStore defines the database operations required by DirectoryProcessor
type DirectoryStore interface {
	CreateClient(ctx context.Context, params store.CreateClientParams) (store.Client, error)
	GetClientByID(ctx context.Context, clientID uuid.UUID) (store.Client, error)
	ListClients(ctx context.Context, params store.ListClientsParams) ([]store.Client, error)
	CountClients(ctx context.Context, search string) (int, error)
	UpdateClient(ctx context.Context, clientID uuid.UUID, params store.UpdateClientParams) (store.Client, error)
	DeleteClient(ctx context.Context, clientID uuid.UUID) (int, error)
}

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrEmailAlreadyExists = errors.New("a client with this email already exists")
	ErrClientHasInquiries = errors.New("client has inquiries")
)

// ClientHasInquiriesError reports how many inquiries block a client delete
type ClientHasInquiriesError struct {
	Count int
}

func (e *ClientHasInquiriesError) Error() string {
	return fmt.Sprintf("cannot delete client with %d existing inquiries", e.Count)
}

func (e *ClientHasInquiriesError) Unwrap() error {
	return ErrClientHasInquiries
}

type DirectoryProcessor struct {
	store  DirectoryStore
	logger *observability.Logger
}

func New(store DirectoryStore, logger *observability.Logger) DirectoryProcessor {
	return DirectoryProcessor{
		store:  store,
		logger: logger,
	}
}

type CreateClientParams struct {
	FullName string
	Email    string
	Phone    *string
	Company  *string
	Notes    *string
}

type UpdateClientParams struct {
	FullName *string
	Email    *string
	Phone    *string
	Company  *string
	Notes    *string
}

// ListClientsResult is one page of the directory
type ListClientsResult struct {
	Clients    []store.Client
	TotalCount int
	Page       int
	PerPage    int
	TotalPages int
}

func (p *DirectoryProcessor) CreateClient(ctx context.Context, params CreateClientParams) (store.Client, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_email", Value: params.Email})

	client, err := p.store.CreateClient(ctx, store.CreateClientParams{
		FullName: strings.TrimSpace(params.FullName),
		Email:    strings.TrimSpace(params.Email),
		Phone:    params.Phone,
		Company:  params.Company,
		Notes:    params.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrUniqueViolation) {
			return store.Client{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to create client", err)
		return store.Client{}, err
	}

	p.logger.Info(ctx, "client created successfully")
	return client, nil
}

func (p *DirectoryProcessor) GetClient(ctx context.Context, clientID uuid.UUID) (store.Client, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: clientID.String()})

	client, err := p.store.GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Client{}, ErrClientNotFound
		}
		p.logger.Error(ctx, "failed to get client", err)
		return store.Client{}, err
	}
	return client, nil
}

// ListClients returns one page of clients matching search on name, email or company
func (p *DirectoryProcessor) ListClients(ctx context.Context, search string, page, perPage int) (ListClientsResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "search", Value: search},
		observability.Field{Key: "page", Value: page},
	)

	search = strings.TrimSpace(search)
	clients, err := p.store.ListClients(ctx, store.ListClientsParams{
		Search: search,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list clients", err)
		return ListClientsResult{}, err
	}

	total, err := p.store.CountClients(ctx, search)
	if err != nil {
		p.logger.Error(ctx, "failed to count clients", err)
		return ListClientsResult{}, err
	}

	return ListClientsResult{
		Clients:    clients,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}, nil
}

func (p *DirectoryProcessor) UpdateClient(ctx context.Context, clientID uuid.UUID, params UpdateClientParams) (store.Client, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: clientID.String()})

	client, err := p.store.UpdateClient(ctx, clientID, store.UpdateClientParams{
		FullName: params.FullName,
		Email:    params.Email,
		Phone:    params.Phone,
		Company:  params.Company,
		Notes:    params.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Client{}, ErrClientNotFound
		case errors.Is(err, store.ErrUniqueViolation):
			return store.Client{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to update client", err)
		return store.Client{}, err
	}

	p.logger.Info(ctx, "client updated successfully")
	return client, nil
}

// DeleteClient removes a client. It fails with a *ClientHasInquiriesError
// while inquiries still reference the client.
func (p *DirectoryProcessor) DeleteClient(ctx context.Context, clientID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: clientID.String()})

	blocking, err := p.store.DeleteClient(ctx, clientID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ErrClientNotFound
		case errors.Is(err, store.ErrClientHasInquiries):
			ctx = observability.WithFields(ctx, observability.Field{Key: "inquiry_count", Value: blocking})
			p.logger.Warn(ctx, "client delete blocked by inquiries")
			return &ClientHasInquiriesError{Count: blocking}
		}
		p.logger.Error(ctx, "failed to delete client", err)
		return err
	}

	p.logger.Info(ctx, "client deleted successfully")
	return nil
}
