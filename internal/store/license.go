package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CreateLicenseParams struct {
	ResponseID  uuid.UUID
	ClientID    uuid.UUID
	LicenseType string
	StartDate   time.Time
	EndDate     time.Time
	SalesPerson string
	Source      string
	Price       *float64
	Notes       *string
	CreatedBy   *uuid.UUID
}

const licenseColumns = `id, response_id, client_id, license_type, start_date, end_date, sales_person, source, price, notes, created_by, created_at`

const sqlInsertLicense = `
INSERT INTO licenses (response_id, client_id, license_type, start_date, end_date, sales_person, source, price, notes, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + licenseColumns

// CreateLicense locks the originating response, lets check veto the issuance
// and inserts the license. A second license for the same response fails with
// ErrUniqueViolation from the licenses_response_id_key constraint.
func (s *Store) CreateLicense(ctx context.Context, params CreateLicenseParams, check func(Response) error) (License, error) {
	var license License
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var response Response
		if err := tx.GetContext(ctx, &response, sqlLockResponse, params.ResponseID); err != nil {
			return translateError(err)
		}
		if check != nil {
			if err := check(response); err != nil {
				return err
			}
		}
		err := tx.GetContext(ctx, &license, sqlInsertLicense,
			params.ResponseID, params.ClientID, params.LicenseType, params.StartDate, params.EndDate,
			params.SalesPerson, params.Source, params.Price, params.Notes, params.CreatedBy)
		if err != nil {
			err = translateError(err)
			if errors.Is(err, ErrUniqueViolation) || errors.Is(err, ErrForeignKeyViolation) {
				return err
			}
			s.logger.Error(ctx, "failed to create license", err)
			return fmt.Errorf("failed to create license: %w", err)
		}
		return nil
	})
	if err != nil {
		return License{}, err
	}
	return license, nil
}

const sqlListLicenses = `
SELECT l.id, l.response_id, l.client_id, l.license_type, l.start_date, l.end_date, l.sales_person,
       l.source, l.price, l.notes, l.created_by, l.created_at,
       c.full_name AS client_name, c.email AS client_email, c.company AS client_company
FROM licenses l
JOIN clients c ON c.id = l.client_id
ORDER BY l.end_date, l.id`

// ListLicenses returns every license with its client, soonest expiry first
func (s *Store) ListLicenses(ctx context.Context) ([]LicenseWithClient, error) {
	licenses := []LicenseWithClient{}
	if err := s.db.SelectContext(ctx, &licenses, sqlListLicenses); err != nil {
		s.logger.Error(ctx, "failed to list licenses", err)
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}
	return licenses, nil
}

const sqlListLicensesExpiringBetween = `
SELECT l.id, l.response_id, l.client_id, l.license_type, l.start_date, l.end_date, l.sales_person,
       l.source, l.price, l.notes, l.created_by, l.created_at,
       c.full_name AS client_name, c.email AS client_email, c.company AS client_company
FROM licenses l
JOIN clients c ON c.id = l.client_id
WHERE l.end_date BETWEEN $1::date AND $2::date
ORDER BY l.end_date, l.id`

func (s *Store) ListLicensesExpiringBetween(ctx context.Context, from, to time.Time) ([]LicenseWithClient, error) {
	licenses := []LicenseWithClient{}
	if err := s.db.SelectContext(ctx, &licenses, sqlListLicensesExpiringBetween, from, to); err != nil {
		s.logger.Error(ctx, "failed to list expiring licenses", err)
		return nil, fmt.Errorf("failed to list expiring licenses: %w", err)
	}
	return licenses, nil
}

// Queue membership is computed: won deals with no license row.
const sqlListDealsInQueue = `
SELECT r.id AS response_id, r.inquiry_id, c.id AS client_id, c.full_name AS client_name,
       c.company AS client_company, c.email AS client_email, r.updated_at
FROM responses r
JOIN inquiries i ON i.id = r.inquiry_id
JOIN clients c ON c.id = i.client_id
WHERE r.deal_status = 'closed_won'
  AND NOT EXISTS (SELECT 1 FROM licenses l WHERE l.response_id = r.id)
ORDER BY r.deal_closed_at DESC NULLS LAST, r.id ASC`

func (s *Store) ListDealsInQueue(ctx context.Context) ([]DealQueueItem, error) {
	deals := []DealQueueItem{}
	if err := s.db.SelectContext(ctx, &deals, sqlListDealsInQueue); err != nil {
		s.logger.Error(ctx, "failed to list deals in queue", err)
		return nil, fmt.Errorf("failed to list deals in queue: %w", err)
	}
	return deals, nil
}

const sqlGetLicenseStats = `
SELECT
    (SELECT COUNT(*) FROM licenses WHERE end_date >= $1::date) AS total_active,
    (SELECT COUNT(*) FROM licenses WHERE end_date BETWEEN $1::date AND $1::date + 30) AS expiring_soon,
    (SELECT COUNT(*) FROM licenses WHERE end_date < $1::date) AS expired,
    (SELECT COUNT(*)
       FROM responses r
      WHERE r.deal_status = 'closed_won'
        AND NOT EXISTS (SELECT 1 FROM licenses l WHERE l.response_id = r.id)) AS deals_in_queue,
    (SELECT COALESCE(SUM(price), 0)::float8 FROM licenses) AS total_revenue`

// GetLicenseStats aggregates the dashboard counters relative to today
func (s *Store) GetLicenseStats(ctx context.Context, today time.Time) (LicenseStats, error) {
	var stats LicenseStats
	if err := s.db.GetContext(ctx, &stats, sqlGetLicenseStats, today); err != nil {
		s.logger.Error(ctx, "failed to get license stats", err)
		return LicenseStats{}, fmt.Errorf("failed to get license stats: %w", err)
	}
	return stats, nil
}
