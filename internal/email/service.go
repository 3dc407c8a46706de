package email

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"ops-dashboard/internal/observability"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrSendingEmail        = errors.New("error sending email")
	ErrEmptyTemplate       = errors.New("email template is empty")
)

// MailClient delivers one rendered message and returns the provider message id.
// *mail.ResendClient satisfies it.
type MailClient interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// EmailService renders the dashboard's outbound emails and hands them to the mail client
type EmailService struct {
	mailClient    MailClient
	logger        *observability.Logger
	defaultSender string
	salesMailbox  string
	templates     map[string]*template.Template
}

// ExpiringLicense is one line of the expiry digest
type ExpiringLicense struct {
	ClientName    string
	ClientEmail   string
	LicenseType   string
	EndDate       time.Time
	DaysRemaining int
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	RecipientName string
	Paragraphs    []string
	Signature     string
	Licenses      []ExpiringLicense
	GeneratedOn   string
}

const (
	templateResponse     = "response"
	templateBroadcast    = "broadcast"
	templateExpiryDigest = "expiry_digest"
)

var defaultTemplates = map[string]string{
	templateResponse: `
			<html>
				<body>
					<p>Hi {{.RecipientName}},</p>
					{{range .Paragraphs}}<p>{{.}}</p>
					{{end}}
					{{if .Signature}}<p>{{.Signature}}</p>{{end}}
				</body>
			</html>
			`,
	templateBroadcast: `
			<html>
				<body>
					<p>Dear {{.RecipientName}},</p>
					{{range .Paragraphs}}<p>{{.}}</p>
					{{end}}
				</body>
			</html>
			`,
	templateExpiryDigest: `
			<html>
				<body>
					<h1>Licenses expiring soon</h1>
					<p>Generated on {{.GeneratedOn}}.</p>
					<table>
						<tr><th>Client</th><th>Email</th><th>Type</th><th>Ends</th><th>Days left</th></tr>
						{{range .Licenses}}<tr><td>{{.ClientName}}</td><td>{{.ClientEmail}}</td><td>{{.LicenseType}}</td><td>{{.EndDate.Format "2006-01-02"}}</td><td>{{.DaysRemaining}}</td></tr>
						{{end}}
					</table>
				</body>
			</html>
			`,
}

// New creates a new EmailService
func New(mailClient MailClient, defaultSender, salesMailbox string, logger *observability.Logger) *EmailService {
	templates := make(map[string]*template.Template, len(defaultTemplates))
	for name, content := range defaultTemplates {
		templates[name] = template.Must(template.New(name).Parse(content))
	}
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		salesMailbox:  salesMailbox,
		templates:     templates,
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// paragraphs splits plain text on blank lines
func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *EmailService) send(ctx context.Context, to, subject, templateName string, data TemplateData) (string, error) {
	if !strings.Contains(to, "@") {
		s.logger.Error(ctx, "refusing to send email", ErrInvalidEmailAddress)
		return "", ErrInvalidEmailAddress
	}

	htmlContent, err := s.renderTemplate(templateName, data)
	if err != nil {
		s.logger.Error(ctx, "failed to render email template", err)
		return "", fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	messageID, err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return messageID, nil
}

// SendResponseEmail delivers an agent's reply to a client and returns the message id
func (s *EmailService) SendResponseEmail(ctx context.Context, to, clientName, inquirySubject, body, signature string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: templateResponse},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := inquirySubject
	if !strings.HasPrefix(strings.ToLower(subject), "re:") {
		subject = "Re: " + subject
	}

	return s.send(ctx, to, subject, templateResponse, TemplateData{
		RecipientName: clientName,
		Paragraphs:    paragraphs(body),
		Signature:     signature,
	})
}

// SendBroadcastEmail sends one message of a publisher broadcast
func (s *EmailService) SendBroadcastEmail(ctx context.Context, to, name, subject, body string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: templateBroadcast},
		observability.Field{Key: "recipient", Value: to},
	)

	_, err := s.send(ctx, to, subject, templateBroadcast, TemplateData{
		RecipientName: name,
		Paragraphs:    paragraphs(body),
	})
	return err
}

// SendExpiryDigest mails the list of soon-to-expire licenses to the sales mailbox
func (s *EmailService) SendExpiryDigest(ctx context.Context, today time.Time, licenses []ExpiringLicense) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: templateExpiryDigest},
		observability.Field{Key: "recipient", Value: s.salesMailbox},
		observability.Field{Key: "license_count", Value: len(licenses)},
	)

	subject := fmt.Sprintf("%d license(s) expiring in the next 30 days", len(licenses))
	_, err := s.send(ctx, s.salesMailbox, subject, templateExpiryDigest, TemplateData{
		Licenses:    licenses,
		GeneratedOn: today.Format("2006-01-02"),
	})
	return err
}
