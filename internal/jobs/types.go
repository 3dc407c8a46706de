package jobs

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypePublisherBroadcast  = "publishers:broadcast"
	TypeLicenseExpiryDigest = "licenses:expiry_digest"
)

// Queue names
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// BroadcastJobPayload is one bulk email to the publisher list. An empty
// PublisherIDs means every active publisher.
type BroadcastJobPayload struct {
	PublisherIDs []uuid.UUID `json:"publisher_ids,omitempty"`
	Subject      string      `json:"subject"`
	Body         string      `json:"body"`
	RequestedBy  uuid.UUID   `json:"requested_by"`
}

// NewBroadcastTask creates a new publisher broadcast task. Retries are off
// because a retry would mail recipients that already got the message.
func NewBroadcastTask(payload BroadcastJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePublisherBroadcast, data,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(0),
		asynq.Timeout(30*time.Minute),
	), nil
}

// ExpiryDigestJobPayload selects how far ahead the digest looks
type ExpiryDigestJobPayload struct {
	WithinDays int `json:"within_days"`
}

// NewExpiryDigestTask creates the daily license expiry digest task
func NewExpiryDigestTask(payload ExpiryDigestJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLicenseExpiryDigest, data, asynq.Queue(QueueLow), asynq.MaxRetry(3)), nil
}
