package smtp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/eventfindr/notifier/internal/domain/common/errorz"
	"github.com/eventfindr/notifier/internal/domain/utils/email"
)

// Config holds the SMTP transport settings. All values are supplied at
// construction; nothing is read from the environment at send time.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Domain   string
}

// Client is the SMTP mail client.
type Client struct {
	cfg    Config
	dialer *gomail.Dialer
}

// NewClient builds a Client. A client built from an incomplete config is
// still usable as a value but refuses to send.
func NewClient(cfg Config) *Client {
	c := &Client{cfg: cfg}
	if cfg.Host != "" && cfg.Password != "" {
		c.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return c
}

// Send delivers a rendered email to a single recipient. The send is bounded
// by the context deadline; gomail has no context support, so the dial runs
// in its own goroutine and an expired context abandons it.
func (c *Client) Send(ctx context.Context, to, name string, msg email.Rendered) error {
	if c.dialer == nil {
		return errorz.SMTPNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("Message-ID", generateMessageID(c.cfg.Domain))
	m.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	m.SetHeader("From", m.FormatAddress(c.cfg.From, c.cfg.FromName))
	if name != "" {
		m.SetHeader("To", m.FormatAddress(to, name))
	} else {
		m.SetHeader("To", to)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	done := make(chan error, 1)
	go func() {
		done <- c.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func generateMessageID(domain string) string {
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}
