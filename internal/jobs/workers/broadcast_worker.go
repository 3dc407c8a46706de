package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"ops-dashboard/internal/jobs"
	"ops-dashboard/internal/observability"

	"github.com/hibiken/asynq"
)

// ErrBroadcastFailed is returned when no recipient could be mailed
var ErrBroadcastFailed = errors.New("broadcast failed for every recipient")

const defaultBroadcastConcurrency = 5

// BroadcastResult counts the outcome of one broadcast
type BroadcastResult struct {
	Recipients int
	Sent       int
	Failed     int
}

// BroadcastWorker mails a message to the publisher list
type BroadcastWorker struct {
	store       RecipientStore
	sender      BroadcastSender
	concurrency int
	logger      *observability.Logger
}

// NewBroadcastWorker creates a new broadcast worker
func NewBroadcastWorker(store RecipientStore, sender BroadcastSender, concurrency int, logger *observability.Logger) *BroadcastWorker {
	if concurrency <= 0 {
		concurrency = defaultBroadcastConcurrency
	}
	return &BroadcastWorker{
		store:       store,
		sender:      sender,
		concurrency: concurrency,
		logger:      logger,
	}
}

// ProcessBroadcastTask processes a broadcast task (for Asynq)
func (w *BroadcastWorker) ProcessBroadcastTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.BroadcastJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal broadcast job payload", err)
		return fmt.Errorf("failed to unmarshal broadcast job payload: %v: %w", err, asynq.SkipRetry)
	}
	_, err := w.Broadcast(ctx, payload)
	return err
}

// Broadcast sends the message to every recipient, a few at a time. Single
// failures are logged and counted; only a total failure is an error.
func (w *BroadcastWorker) Broadcast(ctx context.Context, payload jobs.BroadcastJobPayload) (BroadcastResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "requested_by", Value: payload.RequestedBy.String()},
		observability.Field{Key: "broadcast_subject", Value: payload.Subject},
	)

	recipients, err := w.store.ListPublisherRecipients(ctx, payload.PublisherIDs)
	if err != nil {
		w.logger.Error(ctx, "failed to list broadcast recipients", err)
		return BroadcastResult{}, fmt.Errorf("failed to list broadcast recipients: %w", err)
	}

	result := BroadcastResult{Recipients: len(recipients)}
	if len(recipients) == 0 {
		w.logger.Warn(ctx, "broadcast has no active recipients")
		return result, nil
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, w.concurrency)
	)
	for _, recipient := range recipients {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			err := w.sender.SendBroadcastEmail(ctx, recipient.Email, recipient.Name, payload.Subject, payload.Body)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				recipientCtx := observability.WithFields(ctx, observability.Field{Key: "publisher_id", Value: recipient.ID.String()})
				w.logger.Error(recipientCtx, "failed to send broadcast email", err)
				return
			}
			result.Sent++
		}()
	}
	wg.Wait()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "recipients", Value: result.Recipients},
		observability.Field{Key: "sent", Value: result.Sent},
		observability.Field{Key: "failed", Value: result.Failed},
	)
	if result.Sent == 0 {
		w.logger.Error(ctx, "broadcast failed", ErrBroadcastFailed)
		return result, ErrBroadcastFailed
	}

	w.logger.Info(ctx, "broadcast completed successfully")
	return result, nil
}
