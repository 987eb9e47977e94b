package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// Config points the client at the identity provider's token endpoint.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Session is the provider's response to a successful code exchange.
type Session struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int         `json:"expires_in"`
	User         SessionUser `json:"user"`
}

type SessionUser struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"user_metadata"`
}

type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"msg"`
}

// Client exchanges OAuth authorization codes for sessions against the
// hosted identity provider.
type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// ExchangeCode trades an authorization code for a session. A non-success
// response surfaces the provider's message as the error.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Session, error) {
	body, err := json.Marshal(map[string]string{"auth_code": code})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/auth/v1/token?grant_type=authorization_code", c.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("code exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var pe providerError
		if json.Unmarshal(respBody, &pe) == nil {
			if pe.ErrorDescription != "" {
				return nil, fmt.Errorf("code exchange rejected: %s", pe.ErrorDescription)
			}
			if pe.Message != "" {
				return nil, fmt.Errorf("code exchange rejected: %s", pe.Message)
			}
			if pe.Error != "" {
				return nil, fmt.Errorf("code exchange rejected: %s", pe.Error)
			}
		}
		return nil, fmt.Errorf("code exchange failed with status %d", resp.StatusCode)
	}

	var session Session
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}
