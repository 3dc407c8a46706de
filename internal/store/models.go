package store

import (
	"time"

	"github.com/google/uuid"
)

// User is a dashboard agent
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	FullName     string    `db:"full_name" json:"full_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Client is a contact record keyed by email
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Company   *string   `db:"company" json:"company,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Inquiry is an inbound client message
type Inquiry struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ClientID    uuid.UUID  `db:"client_id" json:"client_id"`
	Subject     string     `db:"subject" json:"subject"`
	Message     string     `db:"message" json:"message"`
	Source      string     `db:"source" json:"source"`
	Priority    string     `db:"priority" json:"priority"`
	Status      string     `db:"status" json:"status"`
	ReceivedAt  time.Time  `db:"received_at" json:"received_at"`
	RespondedAt *time.Time `db:"responded_at" json:"responded_at,omitempty"`
	AssignedTo  *uuid.UUID `db:"assigned_to" json:"assigned_to,omitempty"`
}

// InquirySummary is an inquiry joined with its client for list views
type InquirySummary struct {
	Inquiry
	ClientName  string `db:"client_name" json:"client_name"`
	ClientEmail string `db:"client_email" json:"client_email"`
}

// InquiryStatusCount is the number of inquiries in one status
type InquiryStatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

// Response is an outbound reply and its follow-up state
type Response struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	InquiryID      uuid.UUID  `db:"inquiry_id" json:"inquiry_id"`
	UserID         uuid.UUID  `db:"user_id" json:"user_id"`
	ResponseText   string     `db:"response_text" json:"response_text"`
	SentAt         time.Time  `db:"sent_at" json:"sent_at"`
	ClientReplied  bool       `db:"client_replied" json:"client_replied"`
	FollowUpMethod *string    `db:"follow_up_method" json:"follow_up_method"`
	DealStatus     string     `db:"deal_status" json:"deal_status"`
	DealClosedAt   *time.Time `db:"deal_closed_at" json:"deal_closed_at,omitempty"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// ConversationMessage is one append-only entry of a response thread
type ConversationMessage struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ResponseID uuid.UUID `db:"response_id" json:"response_id"`
	Sender     string    `db:"sender" json:"sender"`
	Message    string    `db:"message" json:"message"`
	SentAt     time.Time `db:"sent_at" json:"sent_at"`
}

// ResponseDetail is a response joined with its inquiry, client and thread
type ResponseDetail struct {
	Response
	InquirySubject     string                `db:"inquiry_subject" json:"inquiry_subject"`
	InquiryMessage     string                `db:"inquiry_message" json:"inquiry_message"`
	InquiryStatus      string                `db:"inquiry_status" json:"inquiry_status"`
	ClientID           uuid.UUID             `db:"client_id" json:"client_id"`
	ClientName         string                `db:"client_name" json:"client_name"`
	ClientEmail        string                `db:"client_email" json:"client_email"`
	ClientCompany      *string               `db:"client_company" json:"client_company,omitempty"`
	AgentName          string                `db:"agent_name" json:"agent_name"`
	HasLicense         bool                  `db:"has_license" json:"has_license"`
	ConversationThread []ConversationMessage `db:"-" json:"conversation_thread"`
}

// License is the issued record of a won deal
type License struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ResponseID  uuid.UUID  `db:"response_id" json:"response_id"`
	ClientID    uuid.UUID  `db:"client_id" json:"client_id"`
	LicenseType string     `db:"license_type" json:"license_type"`
	StartDate   time.Time  `db:"start_date" json:"start_date"`
	EndDate     time.Time  `db:"end_date" json:"end_date"`
	SalesPerson string     `db:"sales_person" json:"sales_person"`
	Source      string     `db:"source" json:"source"`
	Price       *float64   `db:"price" json:"price,omitempty"`
	Notes       *string    `db:"notes" json:"notes,omitempty"`
	CreatedBy   *uuid.UUID `db:"created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// LicenseWithClient is a license joined with its client for list views
type LicenseWithClient struct {
	License
	ClientName    string  `db:"client_name" json:"client_name"`
	ClientEmail   string  `db:"client_email" json:"client_email"`
	ClientCompany *string `db:"client_company" json:"client_company,omitempty"`
}

// DealQueueItem is a won deal that has no license yet
type DealQueueItem struct {
	ResponseID    uuid.UUID `db:"response_id" json:"response_id"`
	InquiryID     uuid.UUID `db:"inquiry_id" json:"inquiry_id"`
	ClientID      uuid.UUID `db:"client_id" json:"client_id"`
	ClientName    string    `db:"client_name" json:"client_name"`
	ClientCompany *string   `db:"client_company" json:"client_company"`
	ClientEmail   string    `db:"client_email" json:"client_email"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// LicenseStats are the dashboard aggregate counts. TotalActive counts every
// license not yet expired, so it includes the ExpiringSoon ones.
type LicenseStats struct {
	TotalActive  int     `db:"total_active" json:"total_active"`
	ExpiringSoon int     `db:"expiring_soon" json:"expiring_soon"`
	Expired      int     `db:"expired" json:"expired"`
	DealsInQueue int     `db:"deals_in_queue" json:"deals_in_queue"`
	TotalRevenue float64 `db:"total_revenue" json:"total_revenue"`
}

// Publisher is a contact of the publisher list
type Publisher struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Category  string    `db:"category" json:"category"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
