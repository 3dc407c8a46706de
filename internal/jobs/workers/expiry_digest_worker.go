package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ops-dashboard/internal/email"
	"ops-dashboard/internal/jobs"
	"ops-dashboard/internal/observability"

	"github.com/hibiken/asynq"
)

const defaultDigestWindowDays = 30

// ExpiryDigestWorker mails the list of licenses about to expire
type ExpiryDigestWorker struct {
	licenses ExpiringLicenseLister
	sender   DigestSender
	logger   *observability.Logger
	now      func() time.Time
}

func NewExpiryDigestWorker(licenses ExpiringLicenseLister, sender DigestSender, logger *observability.Logger) *ExpiryDigestWorker {
	return &ExpiryDigestWorker{
		licenses: licenses,
		sender:   sender,
		logger:   logger,
		now:      time.Now,
	}
}

// ProcessExpiryDigestTask processes the scheduled digest task (for Asynq)
func (w *ExpiryDigestWorker) ProcessExpiryDigestTask(ctx context.Context, task *asynq.Task) error {
	payload := jobs.ExpiryDigestJobPayload{WithinDays: defaultDigestWindowDays}
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			w.logger.Error(ctx, "failed to unmarshal expiry digest payload", err)
			return fmt.Errorf("failed to unmarshal expiry digest payload: %v: %w", err, asynq.SkipRetry)
		}
	}
	if payload.WithinDays <= 0 {
		payload.WithinDays = defaultDigestWindowDays
	}
	return w.SendDigest(ctx, payload.WithinDays)
}

// SendDigest mails licenses ending within days. Nothing is sent when none are.
func (w *ExpiryDigestWorker) SendDigest(ctx context.Context, days int) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "within_days", Value: days})

	views, err := w.licenses.ListExpiringLicenses(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to list expiring licenses: %w", err)
	}
	if len(views) == 0 {
		w.logger.Info(ctx, "no licenses expiring, skipping digest")
		return nil
	}

	expiring := make([]email.ExpiringLicense, 0, len(views))
	for _, view := range views {
		expiring = append(expiring, email.ExpiringLicense{
			ClientName:    view.ClientName,
			ClientEmail:   view.ClientEmail,
			LicenseType:   view.LicenseType,
			EndDate:       view.EndDate,
			DaysRemaining: view.DaysRemaining,
		})
	}

	if err := w.sender.SendExpiryDigest(ctx, w.now(), expiring); err != nil {
		w.logger.Error(ctx, "failed to send expiry digest", err)
		return fmt.Errorf("failed to send expiry digest: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "expiring_licenses", Value: len(expiring)})
	w.logger.Info(ctx, "expiry digest sent successfully")
	return nil
}
