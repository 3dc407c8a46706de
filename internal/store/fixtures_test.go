package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- User Fixtures ---

func (f *Fixtures) CreateUser() User {
	f.t.Helper()
	suffix := uuid.NewString()[:8]
	user, err := f.testDB.Store.CreateUser(f.ctx, CreateUserParams{
		Username:     "agent-" + suffix,
		FullName:     "Agent " + suffix,
		Email:        fmt.Sprintf("agent-%s@example.com", suffix),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuu",
	})
	require.NoError(f.t, err, "failed to create test user")
	return user
}

// --- Client Fixtures ---

func (f *Fixtures) CreateClient(opts ...func(*CreateClientParams)) Client {
	f.t.Helper()
	suffix := uuid.NewString()[:8]
	params := CreateClientParams{
		FullName: "Client " + suffix,
		Email:    fmt.Sprintf("client-%s@example.com", suffix),
	}
	for _, fn := range opts {
		fn(&params)
	}
	client, err := f.testDB.Store.CreateClient(f.ctx, params)
	require.NoError(f.t, err, "failed to create test client")
	return client
}

// --- Inquiry Fixtures ---

func (f *Fixtures) CreateInquiry(clientID uuid.UUID, opts ...func(*CreateInquiryParams)) Inquiry {
	f.t.Helper()
	params := CreateInquiryParams{
		ClientID: clientID,
		Subject:  "Pricing question",
		Message:  "How much is the professional plan?",
		Source:   InquirySourceWeb,
		Priority: InquiryPriorityLow,
	}
	for _, fn := range opts {
		fn(&params)
	}
	inquiry, err := f.testDB.Store.CreateInquiry(f.ctx, params)
	require.NoError(f.t, err, "failed to create test inquiry")
	return inquiry
}

// --- Response Fixtures ---

// CreateResponse creates a client, an inquiry and a response sent by user.
func (f *Fixtures) CreateResponse(user User) (Response, Inquiry, Client) {
	f.t.Helper()
	client := f.CreateClient()
	inquiry := f.CreateInquiry(client.ID)
	response, err := f.testDB.Store.CreateResponse(f.ctx, CreateResponseParams{
		InquiryID:    inquiry.ID,
		UserID:       user.ID,
		ResponseText: "Enterprise plan, $12,500.00, 2 years",
	})
	require.NoError(f.t, err, "failed to create test response")
	return response, inquiry, client
}

// SetDealStatus forces the deal status of a response.
func (f *Fixtures) SetDealStatus(responseID uuid.UUID, status string) Response {
	f.t.Helper()
	response, err := f.testDB.Store.UpdateResponseFollowUp(f.ctx, responseID, func(r Response) (Response, error) {
		now := time.Now()
		r.DealStatus = status
		r.DealClosedAt = &now
		return r, nil
	})
	require.NoError(f.t, err, "failed to set deal status")
	return response
}

// --- License Fixtures ---

func (f *Fixtures) CreateLicense(responseID, clientID uuid.UUID, start, end time.Time, price *float64) License {
	f.t.Helper()
	license, err := f.testDB.Store.CreateLicense(f.ctx, CreateLicenseParams{
		ResponseID:  responseID,
		ClientID:    clientID,
		LicenseType: LicenseTypeEnterprise,
		StartDate:   start,
		EndDate:     end,
		SalesPerson: "Agent",
		Source:      LicenseSourceEmail,
		Price:       price,
	}, nil)
	require.NoError(f.t, err, "failed to create test license")
	return license
}
