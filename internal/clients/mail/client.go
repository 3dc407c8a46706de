package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ops-dashboard/internal/observability"

	"github.com/resendlabs/resend-go"
)

var ErrNoRecipient = errors.New("email has no recipient")

type sendFunc func(params *resend.SendEmailRequest) (resend.SendEmailResponse, error)

// ResendClient delivers dashboard mail through Resend. When replyTo is set,
// client answers go to the sales mailbox that feeds the inbound topic.
type ResendClient struct {
	send    sendFunc
	replyTo string
	logger  *observability.Logger
}

func NewResendClient(apiKey, replyTo string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Resend API key is required")
	}
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		send:    client.Emails.Send,
		replyTo: strings.TrimSpace(replyTo),
		logger:  logger,
	}, nil
}

func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", ErrNoRecipient
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
		ReplyTo: c.replyTo,
	}

	res, err := c.send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "email_id", Value: res.Id})
	c.logger.Info(ctx, "email sent")
	return res.Id, nil
}
