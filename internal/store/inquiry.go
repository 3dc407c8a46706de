package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CreateInquiryParams struct {
	ClientID   uuid.UUID
	Subject    string
	Message    string
	Source     string
	Priority   string
	AssignedTo *uuid.UUID
}

// CreateInquiryForContactParams creates an inquiry for the client owning
// ClientEmail, creating that client first when the address is unseen.
type CreateInquiryForContactParams struct {
	ClientName  string
	ClientEmail string
	Subject     string
	Message     string
	Source      string
	Priority    string
}

type ListInquiriesParams struct {
	Status         string
	SortByPriority bool
	Limit          int
	Offset         int
}

const inquiryColumns = `id, client_id, subject, message, source, priority, status, received_at, responded_at, assigned_to`

const sqlCreateInquiry = `
INSERT INTO inquiries (client_id, subject, message, source, priority, status, assigned_to)
VALUES ($1, $2, $3, $4, $5, 'pending', $6)
RETURNING ` + inquiryColumns

func (s *Store) CreateInquiry(ctx context.Context, params CreateInquiryParams) (Inquiry, error) {
	var inquiry Inquiry
	err := s.db.GetContext(ctx, &inquiry, sqlCreateInquiry,
		params.ClientID, params.Subject, params.Message, params.Source, params.Priority, params.AssignedTo)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrForeignKeyViolation) {
			return Inquiry{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to create inquiry", err)
		return Inquiry{}, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return inquiry, nil
}

// CreateInquiryForContact resolves the client by email and records the inquiry in one transaction.
func (s *Store) CreateInquiryForContact(ctx context.Context, params CreateInquiryForContactParams) (Inquiry, Client, error) {
	var (
		inquiry Inquiry
		client  Client
	)
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		client, err = getOrCreateClient(ctx, tx, params.ClientName, params.ClientEmail)
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &inquiry, sqlCreateInquiry,
			client.ID, params.Subject, params.Message, params.Source, params.Priority, nil)
	})
	if err != nil {
		s.logger.Error(ctx, "failed to create inquiry for contact", err)
		return Inquiry{}, Client{}, fmt.Errorf("failed to create inquiry for contact: %w", err)
	}
	return inquiry, client, nil
}

const sqlGetInquiryByID = `
SELECT ` + inquiryColumns + `
FROM inquiries
WHERE id = $1`

func (s *Store) GetInquiryByID(ctx context.Context, inquiryID uuid.UUID) (Inquiry, error) {
	var inquiry Inquiry
	err := s.db.GetContext(ctx, &inquiry, sqlGetInquiryByID, inquiryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Inquiry{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get inquiry by id", err)
		return Inquiry{}, fmt.Errorf("failed to get inquiry by id: %w", err)
	}
	return inquiry, nil
}

const sqlListInquiries = `
SELECT i.id, i.client_id, i.subject, i.message, i.source, i.priority, i.status,
       i.received_at, i.responded_at, i.assigned_to,
       c.full_name AS client_name, c.email AS client_email
FROM inquiries i
JOIN clients c ON c.id = i.client_id
WHERE ($1 = '' OR i.status = $1)
ORDER BY
    CASE WHEN $2 THEN CASE i.priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END ELSE 0 END DESC,
    i.received_at DESC,
    i.id
LIMIT $3 OFFSET $4`

func (s *Store) ListInquiries(ctx context.Context, params ListInquiriesParams) ([]InquirySummary, error) {
	inquiries := []InquirySummary{}
	err := s.db.SelectContext(ctx, &inquiries, sqlListInquiries,
		params.Status, params.SortByPriority, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list inquiries", err)
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

const sqlCountInquiries = `
SELECT COUNT(*) FROM inquiries WHERE ($1 = '' OR status = $1)`

func (s *Store) CountInquiries(ctx context.Context, status string) (int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountInquiries, status); err != nil {
		s.logger.Error(ctx, "failed to count inquiries", err)
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return total, nil
}

// responded_at is stamped only on the first transition into responded and never cleared.
const sqlUpdateInquiryStatus = `
UPDATE inquiries
SET status       = $2,
    responded_at = CASE
                       WHEN $2 = 'responded' AND responded_at IS NULL THEN NOW()
                       ELSE responded_at
                   END
WHERE id = $1
RETURNING ` + inquiryColumns

func (s *Store) UpdateInquiryStatus(ctx context.Context, inquiryID uuid.UUID, status string) (Inquiry, error) {
	var inquiry Inquiry
	err := s.db.GetContext(ctx, &inquiry, sqlUpdateInquiryStatus, inquiryID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Inquiry{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update inquiry status", err)
		return Inquiry{}, fmt.Errorf("failed to update inquiry status: %w", err)
	}
	return inquiry, nil
}

const sqlGetInquiryStatusCounts = `
SELECT status, COUNT(*) AS count
FROM inquiries
GROUP BY status
ORDER BY status`

func (s *Store) GetInquiryStatusCounts(ctx context.Context) ([]InquiryStatusCount, error) {
	counts := []InquiryStatusCount{}
	if err := s.db.SelectContext(ctx, &counts, sqlGetInquiryStatusCounts); err != nil {
		s.logger.Error(ctx, "failed to get inquiry status counts", err)
		return nil, fmt.Errorf("failed to get inquiry status counts: %w", err)
	}
	return counts, nil
}
