package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"ops-dashboard/internal/licenses/extraction"
	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"

	"github.com/google/uuid"
)

// LicenseStore defines the database operations required by LicenseProcessor
type LicenseStore interface {
	CreateLicense(ctx context.Context, params store.CreateLicenseParams, check func(store.Response) error) (store.License, error)
	ListLicenses(ctx context.Context) ([]store.LicenseWithClient, error)
	ListLicensesExpiringBetween(ctx context.Context, from time.Time, to time.Time) ([]store.LicenseWithClient, error)
	ListDealsInQueue(ctx context.Context) ([]store.DealQueueItem, error)
	GetLicenseStats(ctx context.Context, today time.Time) (store.LicenseStats, error)
	GetResponseDetail(ctx context.Context, responseID uuid.UUID) (store.ResponseDetail, error)
}

// StatsCache keeps the dashboard stats between requests
type StatsCache interface {
	Get(ctx context.Context) (store.LicenseStats, bool)
	Set(ctx context.Context, stats store.LicenseStats)
	Invalidate(ctx context.Context)
}

type EventPublisher interface {
	PublishLicenseIssued(ctx context.Context, license store.License) error
}

var (
	ErrResponseNotFound = errors.New("response not found")
	ErrDealNotWon       = errors.New("deal must be closed won before issuing a license")
	ErrLicenseExists    = errors.New("a license already exists for this response")
	ErrClientNotFound   = errors.New("client not found")
)

// ValidationKind tells a missing field apart from an inconsistent one
type ValidationKind string

const (
	ValidationMissingField ValidationKind = "missing_field"
	ValidationInvalidRange ValidationKind = "invalid_range"
)

// ValidationError describes the first invalid field of a license request
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ExpiringSoonDays is the window in which a license counts as expiring soon
const ExpiringSoonDays = 30

const (
	BucketActive       = "active"
	BucketExpiringSoon = "expiring_soon"
	BucketExpired      = "expired"
)

type LicenseProcessor struct {
	store  LicenseStore
	stats  StatsCache
	events EventPublisher
	logger *observability.Logger
	now    func() time.Time
}

func New(store LicenseStore, stats StatsCache, events EventPublisher, logger *observability.Logger) LicenseProcessor {
	return LicenseProcessor{
		store:  store,
		stats:  stats,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

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

// LicenseView is a license with its remaining lifetime relative to today
type LicenseView struct {
	store.LicenseWithClient
	DaysRemaining int    `json:"days_remaining"`
	Bucket        string `json:"bucket"`
}

// Validate checks the request in a fixed order and reports the first failure
func (params CreateLicenseParams) Validate() error {
	switch {
	case strings.TrimSpace(params.LicenseType) == "":
		return &ValidationError{Kind: ValidationMissingField, Message: "license type is required"}
	case params.StartDate.IsZero() || params.EndDate.IsZero():
		return &ValidationError{Kind: ValidationMissingField, Message: "start date and end date are required"}
	case !params.EndDate.After(params.StartDate):
		return &ValidationError{Kind: ValidationInvalidRange, Message: "end date must be after start date"}
	case strings.TrimSpace(params.SalesPerson) == "":
		return &ValidationError{Kind: ValidationMissingField, Message: "sales person is required"}
	case strings.TrimSpace(params.Source) == "":
		return &ValidationError{Kind: ValidationMissingField, Message: "source is required"}
	}
	return nil
}

// CreateLicense issues the single license of a won deal
func (p *LicenseProcessor) CreateLicense(ctx context.Context, params CreateLicenseParams) (store.License, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "response_id", Value: params.ResponseID.String()},
		observability.Field{Key: "client_id", Value: params.ClientID.String()},
	)

	if err := params.Validate(); err != nil {
		return store.License{}, err
	}

	license, err := p.store.CreateLicense(ctx, store.CreateLicenseParams{
		ResponseID:  params.ResponseID,
		ClientID:    params.ClientID,
		LicenseType: strings.TrimSpace(params.LicenseType),
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		SalesPerson: strings.TrimSpace(params.SalesPerson),
		Source:      params.Source,
		Price:       params.Price,
		Notes:       params.Notes,
		CreatedBy:   params.CreatedBy,
	}, requireWonDeal)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.License{}, ErrResponseNotFound
		case errors.Is(err, ErrDealNotWon):
			return store.License{}, ErrDealNotWon
		case errors.Is(err, store.ErrUniqueViolation):
			p.logger.Warn(ctx, "license already issued for response")
			return store.License{}, ErrLicenseExists
		case errors.Is(err, store.ErrForeignKeyViolation):
			return store.License{}, ErrClientNotFound
		}
		p.logger.Error(ctx, "failed to create license", err)
		return store.License{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "license_id", Value: license.ID.String()})
	p.logger.Info(ctx, "license created successfully")

	p.stats.Invalidate(ctx)
	if err := p.events.PublishLicenseIssued(ctx, license); err != nil {
		p.logger.Error(ctx, "failed to publish license issued event", err)
	}
	return license, nil
}

func requireWonDeal(response store.Response) error {
	if response.DealStatus != store.DealStatusClosedWon {
		return ErrDealNotWon
	}
	return nil
}

// ListLicenses returns every license with days remaining and a status bucket
func (p *LicenseProcessor) ListLicenses(ctx context.Context) ([]LicenseView, error) {
	licenses, err := p.store.ListLicenses(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list licenses", err)
		return nil, err
	}

	today := p.today()
	views := make([]LicenseView, 0, len(licenses))
	for _, license := range licenses {
		views = append(views, newLicenseView(license, today))
	}
	return views, nil
}

// ListExpiringLicenses returns licenses ending within the next days days
func (p *LicenseProcessor) ListExpiringLicenses(ctx context.Context, days int) ([]LicenseView, error) {
	today := p.today()
	licenses, err := p.store.ListLicensesExpiringBetween(ctx, today, today.AddDate(0, 0, days))
	if err != nil {
		p.logger.Error(ctx, "failed to list expiring licenses", err)
		return nil, err
	}

	views := make([]LicenseView, 0, len(licenses))
	for _, license := range licenses {
		views = append(views, newLicenseView(license, today))
	}
	return views, nil
}

func newLicenseView(license store.LicenseWithClient, today time.Time) LicenseView {
	days := DaysBetween(today, license.EndDate)
	return LicenseView{
		LicenseWithClient: license,
		DaysRemaining:     days,
		Bucket:            BucketFor(days),
	}
}

// DaysBetween counts calendar days from one date to another
func DaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func BucketFor(daysRemaining int) string {
	switch {
	case daysRemaining < 0:
		return BucketExpired
	case daysRemaining <= ExpiringSoonDays:
		return BucketExpiringSoon
	default:
		return BucketActive
	}
}

func (p *LicenseProcessor) ListDealsInQueue(ctx context.Context) ([]store.DealQueueItem, error) {
	deals, err := p.store.ListDealsInQueue(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list deals in queue", err)
		return nil, err
	}
	return deals, nil
}

// GetStats serves the dashboard counters, from cache when fresh
func (p *LicenseProcessor) GetStats(ctx context.Context) (store.LicenseStats, error) {
	if stats, ok := p.stats.Get(ctx); ok {
		return stats, nil
	}

	stats, err := p.store.GetLicenseStats(ctx, p.today())
	if err != nil {
		p.logger.Error(ctx, "failed to get license stats", err)
		return store.LicenseStats{}, err
	}

	p.stats.Set(ctx, stats)
	return stats, nil
}

// DraftForResponse proposes license terms from the inquiry message alone
func (p *LicenseProcessor) DraftForResponse(ctx context.Context, responseID uuid.UUID, agentName string) (extraction.Draft, store.ResponseDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "response_id", Value: responseID.String()})

	detail, err := p.store.GetResponseDetail(ctx, responseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return extraction.Draft{}, store.ResponseDetail{}, ErrResponseNotFound
		}
		p.logger.Error(ctx, "failed to load response for license draft", err)
		return extraction.Draft{}, store.ResponseDetail{}, err
	}

	draft := extraction.Extract(detail.InquiryMessage, extraction.Defaults{
		Today:          p.today(),
		AgentName:      agentName,
		FollowUpMethod: detail.FollowUpMethod,
	})
	return draft, detail, nil
}

func (p *LicenseProcessor) today() time.Time {
	now := p.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
