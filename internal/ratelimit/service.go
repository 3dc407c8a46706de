package ratelimit

import (
	"context"
	"time"

	"ops-dashboard/internal/observability"
)

// Window is the one-minute window every limit is counted in
const Window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// WindowStore records hits in a sliding window
type WindowStore interface {
	IsEnabled() bool
	RecordInWindow(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// Service limits how often a key may hit an endpoint. Without a working
// window store every request is allowed.
type Service struct {
	windows WindowStore
	logger  *observability.Logger
	now     func() time.Time
}

// NewService creates a new rate limiting service
func NewService(windows WindowStore, logger *observability.Logger) *Service {
	return &Service{
		windows: windows,
		logger:  logger,
		now:     time.Now,
	}
}

// CheckRateLimit records a hit for key and reports whether it is within limit
func (s *Service) CheckRateLimit(ctx context.Context, key string, limit int) RateLimitResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_key", Value: key},
		observability.Field{Key: "rate_limit", Value: limit},
	)

	now := s.now()
	allowAll := RateLimitResult{Allowed: true, Limit: limit, Remaining: limit, ResetAt: now.Add(Window)}
	if limit <= 0 || s.windows == nil || !s.windows.IsEnabled() {
		return allowAll
	}

	count, oldest, err := s.windows.RecordInWindow(ctx, "rl:"+key, Window)
	if err != nil {
		s.logger.Error(ctx, "rate limit check failed, allowing request", err)
		return allowAll
	}

	resetAt := oldest.Add(Window)
	if int(count) >= limit {
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count) - 1,
		ResetAt:   resetAt,
	}
}
