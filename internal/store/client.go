package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrClientHasInquiries is returned when deleting a client that inquiries still reference
var ErrClientHasInquiries = errors.New("client has inquiries")

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

type ListClientsParams struct {
	Search string
	Limit  int
	Offset int
}

const clientColumns = `id, full_name, email, phone, company, notes, created_at, updated_at`

const sqlCreateClient = `
INSERT INTO clients (full_name, email, phone, company, notes)
VALUES ($1, LOWER($2), $3, $4, $5)
RETURNING ` + clientColumns

func (s *Store) CreateClient(ctx context.Context, params CreateClientParams) (Client, error) {
	var client Client
	err := s.db.GetContext(ctx, &client, sqlCreateClient,
		params.FullName, params.Email, params.Phone, params.Company, params.Notes)
	if err != nil {
		s.logger.Error(ctx, "failed to create client", err)
		return Client{}, fmt.Errorf("failed to create client: %w", translateError(err))
	}
	return client, nil
}

const sqlGetClientByID = `
SELECT ` + clientColumns + `
FROM clients
WHERE id = $1`

func (s *Store) GetClientByID(ctx context.Context, clientID uuid.UUID) (Client, error) {
	var client Client
	err := s.db.GetContext(ctx, &client, sqlGetClientByID, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Client{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get client by id", err)
		return Client{}, fmt.Errorf("failed to get client by id: %w", err)
	}
	return client, nil
}

const sqlGetClientByEmail = `
SELECT ` + clientColumns + `
FROM clients
WHERE email = LOWER($1)`

func (s *Store) GetClientByEmail(ctx context.Context, email string) (Client, error) {
	var client Client
	err := s.db.GetContext(ctx, &client, sqlGetClientByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Client{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get client by email", err)
		return Client{}, fmt.Errorf("failed to get client by email: %w", err)
	}
	return client, nil
}

const sqlInsertClientIfAbsent = `
INSERT INTO clients (full_name, email)
VALUES ($1, LOWER($2))
ON CONFLICT (email) DO NOTHING
RETURNING ` + clientColumns

// getOrCreateClient returns the client owning email, creating it with fullName when absent.
func getOrCreateClient(ctx context.Context, tx *sqlx.Tx, fullName, email string) (Client, error) {
	var client Client
	err := tx.GetContext(ctx, &client, sqlInsertClientIfAbsent, fullName, email)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Client{}, fmt.Errorf("failed to insert client: %w", translateError(err))
	}
	// Conflict: the row already exists.
	if err := tx.GetContext(ctx, &client, sqlGetClientByEmail, email); err != nil {
		return Client{}, fmt.Errorf("failed to get client by email: %w", err)
	}
	return client, nil
}

const sqlListClients = `
SELECT ` + clientColumns + `
FROM clients
WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR company ILIKE '%' || $1 || '%')
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

func (s *Store) ListClients(ctx context.Context, params ListClientsParams) ([]Client, error) {
	clients := []Client{}
	err := s.db.SelectContext(ctx, &clients, sqlListClients, params.Search, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list clients", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

const sqlCountClients = `
SELECT COUNT(*)
FROM clients
WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR company ILIKE '%' || $1 || '%')`

func (s *Store) CountClients(ctx context.Context, search string) (int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountClients, search); err != nil {
		s.logger.Error(ctx, "failed to count clients", err)
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return total, nil
}

const sqlUpdateClient = `
UPDATE clients
SET full_name  = COALESCE($2, full_name),
    email      = COALESCE(LOWER($3), email),
    phone      = COALESCE($4, phone),
    company    = COALESCE($5, company),
    notes      = COALESCE($6, notes),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + clientColumns

func (s *Store) UpdateClient(ctx context.Context, clientID uuid.UUID, params UpdateClientParams) (Client, error) {
	var client Client
	err := s.db.GetContext(ctx, &client, sqlUpdateClient,
		clientID, params.FullName, params.Email, params.Phone, params.Company, params.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Client{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update client", err)
		return Client{}, fmt.Errorf("failed to update client: %w", translateError(err))
	}
	return client, nil
}

const (
	sqlLockClient           = `SELECT id FROM clients WHERE id = $1 FOR UPDATE`
	sqlCountClientInquiries = `SELECT COUNT(*) FROM inquiries WHERE client_id = $1`
	sqlDeleteClient         = `DELETE FROM clients WHERE id = $1`
)

// DeleteClient removes a client that no inquiry references. When inquiries
// block the delete, their count is returned together with ErrClientHasInquiries.
func (s *Store) DeleteClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	var blocking int
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var id uuid.UUID
		if err := tx.GetContext(ctx, &id, sqlLockClient, clientID); err != nil {
			return translateError(err)
		}
		if err := tx.GetContext(ctx, &blocking, sqlCountClientInquiries, clientID); err != nil {
			return fmt.Errorf("failed to count client inquiries: %w", err)
		}
		if blocking > 0 {
			return ErrClientHasInquiries
		}
		if _, err := tx.ExecContext(ctx, sqlDeleteClient, clientID); err != nil {
			return fmt.Errorf("failed to delete client: %w", translateError(err))
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrClientHasInquiries) {
			s.logger.Error(ctx, "failed to delete client", err)
		}
		return blocking, err
	}
	return 0, nil
}
