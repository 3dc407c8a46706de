package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// publisherBatchSize bounds the rows of a single multi-row insert.
const publisherBatchSize = 100

type CreatePublisherParams struct {
	Name     string
	Email    string
	Category string
}

type ListPublishersParams struct {
	Search string
	Status string
	Limit  int
	Offset int
}

// BulkInsertPublishers inserts publishers in batches, skipping emails already
// present. It returns how many rows were actually inserted.
func (s *Store) BulkInsertPublishers(ctx context.Context, publishers []CreatePublisherParams) (int, error) {
	inserted := 0
	for start := 0; start < len(publishers); start += publisherBatchSize {
		end := start + publisherBatchSize
		if end > len(publishers) {
			end = len(publishers)
		}
		batch := publishers[start:end]

		var query strings.Builder
		query.WriteString("INSERT INTO publishers (name, email, category) VALUES ")
		args := make([]interface{}, 0, len(batch)*3)
		for i, p := range batch {
			if i > 0 {
				query.WriteString(", ")
			}
			n := i * 3
			fmt.Fprintf(&query, "($%d, LOWER($%d), $%d)", n+1, n+2, n+3)
			args = append(args, p.Name, p.Email, p.Category)
		}
		query.WriteString(" ON CONFLICT (email) DO NOTHING")

		result, err := s.db.ExecContext(ctx, query.String(), args...)
		if err != nil {
			s.logger.Error(ctx, "failed to bulk insert publishers", err)
			return inserted, fmt.Errorf("failed to bulk insert publishers: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("failed to read inserted publisher count: %w", err)
		}
		inserted += int(rows)
	}
	return inserted, nil
}

const publisherColumns = `id, name, email, category, status, created_at`

const sqlListPublishers = `
SELECT ` + publisherColumns + `
FROM publishers
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%')
  AND ($2 = '' OR status = $2)
ORDER BY created_at DESC, id
LIMIT $3 OFFSET $4`

func (s *Store) ListPublishers(ctx context.Context, params ListPublishersParams) ([]Publisher, error) {
	publishers := []Publisher{}
	err := s.db.SelectContext(ctx, &publishers, sqlListPublishers,
		params.Search, params.Status, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list publishers", err)
		return nil, fmt.Errorf("failed to list publishers: %w", err)
	}
	return publishers, nil
}

const sqlCountPublishers = `
SELECT COUNT(*)
FROM publishers
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%')
  AND ($2 = '' OR status = $2)`

func (s *Store) CountPublishers(ctx context.Context, search, status string) (int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountPublishers, search, status); err != nil {
		s.logger.Error(ctx, "failed to count publishers", err)
		return 0, fmt.Errorf("failed to count publishers: %w", err)
	}
	return total, nil
}

const sqlListPublisherRecipients = `
SELECT ` + publisherColumns + `
FROM publishers
WHERE status = 'active'
  AND (cardinality($1::uuid[]) = 0 OR id = ANY($1::uuid[]))
ORDER BY created_at, id`

// ListPublisherRecipients returns active publishers, restricted to ids when any are given
func (s *Store) ListPublisherRecipients(ctx context.Context, ids []uuid.UUID) ([]Publisher, error) {
	publishers := []Publisher{}
	if err := s.db.SelectContext(ctx, &publishers, sqlListPublisherRecipients, pq.Array(uuidStrings(ids))); err != nil {
		s.logger.Error(ctx, "failed to list publisher recipients", err)
		return nil, fmt.Errorf("failed to list publisher recipients: %w", err)
	}
	return publishers, nil
}

const sqlUpdatePublishersStatus = `
UPDATE publishers
SET status = $2
WHERE id = ANY($1::uuid[])`

// UpdatePublishersStatus sets status on every listed publisher and returns the number updated
func (s *Store) UpdatePublishersStatus(ctx context.Context, ids []uuid.UUID, status string) (int, error) {
	result, err := s.db.ExecContext(ctx, sqlUpdatePublishersStatus, pq.Array(uuidStrings(ids)), status)
	if err != nil {
		s.logger.Error(ctx, "failed to update publishers status", err)
		return 0, fmt.Errorf("failed to update publishers status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read updated publisher count: %w", err)
	}
	return int(rows), nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
