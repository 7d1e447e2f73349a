package buttons

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrUnexpectedStatus is returned when the API answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status from api")

// Client triggers playback on the API server over HTTP.
type Client struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a client for the play endpoint at playURL (e.g. http://localhost:5000/play).
func NewClient(playURL string, timeout time.Duration) *Client {
	return &Client{baseURL: strings.TrimRight(playURL, "/"), timeout: timeout}
}

// URL returns the endpoint requested for button.
func (c *Client) URL(button int) string {
	return fmt.Sprintf("%s/%d", c.baseURL, button)
}

// Trigger issues GET {playURL}/{button}. No retry.
func (c *Client) Trigger(button int) error {
	agent := fiber.Get(c.URL(button))
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request to %s failed: %w", c.URL(button), errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, code, strings.TrimSpace(string(body)))
	}
	return nil
}
