package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=workers

import (
	"context"
	"time"

	"ops-dashboard/internal/email"
	"ops-dashboard/internal/licenses/processor"
	"ops-dashboard/internal/store"

	"github.com/google/uuid"
)

// RecipientStore lists the publishers a broadcast goes to
type RecipientStore interface {
	ListPublisherRecipients(ctx context.Context, ids []uuid.UUID) ([]store.Publisher, error)
}

// BroadcastSender sends one broadcast email
type BroadcastSender interface {
	SendBroadcastEmail(ctx context.Context, to string, name string, subject string, body string) error
}

// ExpiringLicenseLister finds licenses that end soon
type ExpiringLicenseLister interface {
	ListExpiringLicenses(ctx context.Context, days int) ([]processor.LicenseView, error)
}

// DigestSender mails the expiry digest to the sales mailbox
type DigestSender interface {
	SendExpiryDigest(ctx context.Context, today time.Time, licenses []email.ExpiringLicense) error
}
