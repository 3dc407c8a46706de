package store

// Inquiry ENUMs
const (
	InquiryStatusPending    = "pending"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusResponded  = "responded"
	InquiryStatusClosed     = "closed"
)

const (
	InquiryPriorityHigh   = "high"
	InquiryPriorityMedium = "medium"
	InquiryPriorityLow    = "low"
)

const (
	InquirySourceEmail  = "email"
	InquirySourcePhone  = "phone"
	InquirySourceWeb    = "web"
	InquirySourceManual = "manual"
)

// Response ENUMs
const (
	DealStatusOpen       = "open"
	DealStatusClosedWon  = "closed_won"
	DealStatusClosedLost = "closed_lost"
)

const (
	FollowUpMethodEmail        = "email"
	FollowUpMethodOtherChannel = "other_channel"
)

const (
	MessageSenderAgent  = "agent"
	MessageSenderClient = "client"
)

// License ENUMs
const (
	LicenseTypeBasic        = "Basic"
	LicenseTypeProfessional = "Professional"
	LicenseTypeEnterprise   = "Enterprise"
)

const (
	LicenseSourceEmail         = "email"
	LicenseSourceOther         = "other"
	LicenseSourceManualEntered = "manual-entered"
)

// Publisher ENUMs
const (
	PublisherStatusActive   = "active"
	PublisherStatusInactive = "inactive"
)
