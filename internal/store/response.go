package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CreateResponseParams struct {
	InquiryID    uuid.UUID
	UserID       uuid.UUID
	ResponseText string
}

const responseColumns = `id, inquiry_id, user_id, response_text, sent_at, client_replied, follow_up_method, deal_status, deal_closed_at, updated_at`

const (
	sqlLockInquiry = `SELECT id FROM inquiries WHERE id = $1 FOR UPDATE`

	sqlInsertResponse = `
INSERT INTO responses (inquiry_id, user_id, response_text)
VALUES ($1, $2, $3)
RETURNING ` + responseColumns

	sqlInsertConversationMessage = `
INSERT INTO conversation_messages (response_id, sender, message)
VALUES ($1, $2, $3)
RETURNING id, response_id, sender, message, sent_at`

	sqlMarkInquiryResponded = `
UPDATE inquiries
SET status       = 'responded',
    responded_at = COALESCE(responded_at, NOW())
WHERE id = $1`
)

// CreateResponse records the reply, seeds its thread with the agent message and
// moves the parent inquiry to responded, all in one transaction.
func (s *Store) CreateResponse(ctx context.Context, params CreateResponseParams) (Response, error) {
	var response Response
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var id uuid.UUID
		if err := tx.GetContext(ctx, &id, sqlLockInquiry, params.InquiryID); err != nil {
			return translateError(err)
		}
		if err := tx.GetContext(ctx, &response, sqlInsertResponse,
			params.InquiryID, params.UserID, params.ResponseText); err != nil {
			return fmt.Errorf("failed to insert response: %w", translateError(err))
		}
		var message ConversationMessage
		if err := tx.GetContext(ctx, &message, sqlInsertConversationMessage,
			response.ID, MessageSenderAgent, params.ResponseText); err != nil {
			return fmt.Errorf("failed to insert conversation message: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlMarkInquiryResponded, params.InquiryID); err != nil {
			return fmt.Errorf("failed to mark inquiry responded: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Response{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to create response", err)
		return Response{}, fmt.Errorf("failed to create response: %w", err)
	}
	return response, nil
}

const sqlGetResponseByID = `
SELECT ` + responseColumns + `
FROM responses
WHERE id = $1`

func (s *Store) GetResponseByID(ctx context.Context, responseID uuid.UUID) (Response, error) {
	var response Response
	err := s.db.GetContext(ctx, &response, sqlGetResponseByID, responseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Response{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get response by id", err)
		return Response{}, fmt.Errorf("failed to get response by id: %w", err)
	}
	return response, nil
}

const sqlGetResponseDetail = `
SELECT r.id, r.inquiry_id, r.user_id, r.response_text, r.sent_at, r.client_replied,
       r.follow_up_method, r.deal_status, r.deal_closed_at, r.updated_at,
       i.subject AS inquiry_subject, i.message AS inquiry_message, i.status AS inquiry_status,
       c.id AS client_id, c.full_name AS client_name, c.email AS client_email, c.company AS client_company,
       u.full_name AS agent_name,
       EXISTS (SELECT 1 FROM licenses l WHERE l.response_id = r.id) AS has_license
FROM responses r
JOIN inquiries i ON i.id = r.inquiry_id
JOIN clients c ON c.id = i.client_id
JOIN users u ON u.id = r.user_id
WHERE r.id = $1`

// GetResponseDetail returns the response with its inquiry, client, agent and conversation thread
func (s *Store) GetResponseDetail(ctx context.Context, responseID uuid.UUID) (ResponseDetail, error) {
	var detail ResponseDetail
	err := s.db.GetContext(ctx, &detail, sqlGetResponseDetail, responseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ResponseDetail{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get response detail", err)
		return ResponseDetail{}, fmt.Errorf("failed to get response detail: %w", err)
	}

	thread, err := s.ListConversationMessages(ctx, responseID)
	if err != nil {
		return ResponseDetail{}, err
	}
	detail.ConversationThread = thread
	return detail, nil
}

const sqlListConversationMessages = `
SELECT id, response_id, sender, message, sent_at
FROM conversation_messages
WHERE response_id = $1
ORDER BY sent_at, id`

func (s *Store) ListConversationMessages(ctx context.Context, responseID uuid.UUID) ([]ConversationMessage, error) {
	messages := []ConversationMessage{}
	if err := s.db.SelectContext(ctx, &messages, sqlListConversationMessages, responseID); err != nil {
		s.logger.Error(ctx, "failed to list conversation messages", err)
		return nil, fmt.Errorf("failed to list conversation messages: %w", err)
	}
	return messages, nil
}

const (
	sqlLockResponse = `
SELECT ` + responseColumns + `
FROM responses
WHERE id = $1
FOR UPDATE`

	sqlUpdateResponseFollowUp = `
UPDATE responses
SET client_replied   = $2,
    follow_up_method = $3,
    deal_status      = $4,
    deal_closed_at   = $5,
    updated_at       = NOW()
WHERE id = $1
RETURNING ` + responseColumns
)

// UpdateResponseFollowUp locks the response row and persists whatever mutate
// returns. An error from mutate aborts the transaction and is returned as is.
func (s *Store) UpdateResponseFollowUp(ctx context.Context, responseID uuid.UUID, mutate func(Response) (Response, error)) (Response, error) {
	var updated Response
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var current Response
		if err := tx.GetContext(ctx, &current, sqlLockResponse, responseID); err != nil {
			return translateError(err)
		}
		next, err := mutate(current)
		if err != nil {
			return err
		}
		err = tx.GetContext(ctx, &updated, sqlUpdateResponseFollowUp,
			responseID, next.ClientReplied, next.FollowUpMethod, next.DealStatus, next.DealClosedAt)
		if err != nil {
			s.logger.Error(ctx, "failed to update response follow-up", err)
			return fmt.Errorf("failed to update response follow-up: %w", err)
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return updated, nil
}

const sqlAppendConversationMessage = `
INSERT INTO conversation_messages (response_id, sender, message)
SELECT id, $2, $3 FROM responses WHERE id = $1
RETURNING id, response_id, sender, message, sent_at`

// AppendConversationMessage adds one entry to a response thread.
func (s *Store) AppendConversationMessage(ctx context.Context, responseID uuid.UUID, sender, message string) (ConversationMessage, error) {
	var entry ConversationMessage
	err := s.db.GetContext(ctx, &entry, sqlAppendConversationMessage, responseID, sender, message)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ConversationMessage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to append conversation message", err)
		return ConversationMessage{}, fmt.Errorf("failed to append conversation message: %w", err)
	}
	return entry, nil
}
