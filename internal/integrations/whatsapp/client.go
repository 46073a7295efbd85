package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnavailable     = errors.New("whatsapp gateway unavailable")
	ErrInvalidResponse = errors.New("whatsapp gateway returned an invalid response")
)

// Client talks to the WhatsApp gateway over its JSON HTTP API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(baseURL, apiToken string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Send delivers a text message to the given phone number. The subject is
// ignored; WhatsApp messages have no subject line.
func (c *Client) Send(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(sendMessageRequest{
		Phone:   recipient,
		Message: body,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInvalidResponse, err)
	}

	url := c.baseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		c.log.Debugf("WhatsApp message accepted for %s", recipient)
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
