package email

import (
	"fmt"
	"strconv"

	"gopkg.in/mail.v2"

	"github.com/aliskhannn/assist-notify/internal/settings"
)

// Client sends notification copies to the user's own mailbox. The SMTP
// account lives in the user settings and can change at runtime, so the
// dialer is built per send from the snapshot the gate passes in.
type Client struct{}

// NewClient creates an email client.
func NewClient() *Client {
	return &Client{}
}

// Send delivers a notification email to the configured account.
func (c *Client) Send(account settings.Email, subject, body string) error {
	port, err := strconv.Atoi(account.Port)
	if err != nil {
		return fmt.Errorf("invalid smtp port %q: %w", account.Port, err)
	}

	message := mail.NewMessage()
	message.SetHeader("From", account.Username)
	message.SetHeader("To", account.Username)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	dialer := mail.NewDialer(account.Server, port, account.Username, account.Password)

	return dialer.DialAndSend(message)
}
