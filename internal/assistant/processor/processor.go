package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"

	"github.com/google/uuid"
)

// AssistantStore defines the database operations required by AssistantProcessor
type AssistantStore interface {
	GetInquiryByID(ctx context.Context, inquiryID uuid.UUID) (store.Inquiry, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
}

// Drafter is a text generation backend
type Drafter interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrDraftFailed     = errors.New("failed to generate a reply draft")
	ErrEmptyText       = errors.New("text is required")
)

const systemPrompt = "You are a professional business assistant helping to respond to client inquiries.\n" +
	"Generate clear, helpful, and professional email responses.\n" +
	"Be concise but thorough. Always maintain a friendly, professional tone."

const defaultSummaryLength = 200

type AssistantProcessor struct {
	store    AssistantStore
	drafter  Drafter
	position string
	logger   *observability.Logger
}

// New wires the assistant. position is the job title used in signatures.
func New(store AssistantStore, drafter Drafter, position string, logger *observability.Logger) AssistantProcessor {
	if position == "" {
		position = "Sales Representative"
	}
	return AssistantProcessor{
		store:    store,
		drafter:  drafter,
		position: position,
		logger:   logger,
	}
}

type DraftReplyParams struct {
	InquiryID uuid.UUID
	UserID    uuid.UUID
	Context   string
}

type DraftReply struct {
	InquiryID uuid.UUID `json:"inquiry_id"`
	Subject   string    `json:"subject"`
	Text      string    `json:"text"`
}

// DraftReply asks the model for a reply to the inquiry, signed by the agent
func (p *AssistantProcessor) DraftReply(ctx context.Context, params DraftReplyParams) (DraftReply, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "inquiry_id", Value: params.InquiryID.String()})

	inquiry, err := p.store.GetInquiryByID(ctx, params.InquiryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DraftReply{}, ErrInquiryNotFound
		}
		p.logger.Error(ctx, "failed to get inquiry", err)
		return DraftReply{}, err
	}

	var signature string
	if params.UserID != uuid.Nil {
		agent, err := p.store.GetUserByID(ctx, params.UserID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to get agent for signature", err)
			return DraftReply{}, err
		}
		if err == nil {
			signature = p.signature(agent)
		}
	}

	text, err := p.drafter.Complete(ctx, systemPrompt, buildReplyPrompt(inquiry, params.Context, signature))
	if err != nil {
		p.logger.Error(ctx, "reply draft generation failed", err)
		return DraftReply{}, fmt.Errorf("%w: %v", ErrDraftFailed, err)
	}

	p.logger.Info(ctx, "reply draft generated successfully")
	return DraftReply{
		InquiryID: inquiry.ID,
		Subject:   replySubject(inquiry.Subject),
		Text:      text,
	}, nil
}

func (p *AssistantProcessor) signature(agent store.User) string {
	var b strings.Builder
	b.WriteString("Sign the email with this signature format:\n")
	b.WriteString("Best regards,\n")
	b.WriteString(agent.FullName)
	b.WriteString("\n")
	b.WriteString(p.position)
	if agent.Email != "" {
		b.WriteString("\nEmail: ")
		b.WriteString(agent.Email)
	}
	return b.String()
}

func buildReplyPrompt(inquiry store.Inquiry, extra, signature string) string {
	var b strings.Builder
	b.WriteString("Generate a professional response to this inquiry:\n\n")
	fmt.Fprintf(&b, "Subject: %s\n\nMessage: %s\n", inquiry.Subject, inquiry.Message)
	if extra = strings.TrimSpace(extra); extra != "" {
		fmt.Fprintf(&b, "\nAdditional context: %s\n", extra)
	}
	if signature != "" {
		b.WriteString("\n")
		b.WriteString(signature)
		b.WriteString("\n")
	}
	b.WriteString("\nGenerate only the email response text.")
	return b.String()
}

func replySubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return "Re: " + subject
}

// Summarize shortens text with the model. When the model is unavailable the
// text is truncated instead, so callers always get something to show.
func (p *AssistantProcessor) Summarize(ctx context.Context, text string, maxLength int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if maxLength <= 0 {
		maxLength = defaultSummaryLength
	}

	summary, err := p.drafter.Complete(ctx, "",
		fmt.Sprintf("Summarize this text in %d characters or less:\n\n%s", maxLength, text))
	if err != nil {
		p.logger.Error(ctx, "summary generation failed, truncating", err)
		return truncate(text, maxLength), nil
	}
	return summary, nil
}

func truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}
