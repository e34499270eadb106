package notify

import (
	"context"
	"fmt"
	"net/http"

	gerr "github.com/jekabolt/lottery-manager/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers e-mails through the SendGrid v3 API.
type SendGridSender struct {
	cli *sendgrid.Client
}

// NewSendGridSender returns nil when no API key is configured.
func NewSendGridSender(c *Config) *SendGridSender {
	if c == nil || c.APIKey == "" {
		return nil
	}
	return &SendGridSender{cli: sendgrid.NewSendClient(c.APIKey)}
}

func (s *SendGridSender) Send(ctx context.Context, msg *mail.SGMailV3) error {
	resp, err := s.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", gerr.ErrMailLimitReached, resp.Body)
	case resp.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
