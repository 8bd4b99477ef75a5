package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/google/uuid"
)

const (
	// UnreachableCode is the code returned when the webhook could not be reached.
	UnreachableCode = -1

	requestIDHeader = "X-Request-Id"
	userAgent       = "DIMO-Webhook-Probe/1.0"
)

// WebhookClient posts payloads to the webhook under test.
type WebhookClient struct {
	client *http.Client
	url    string
}

// NewWebhookClient creates a WebhookClient for the given URL.
// A nil client gets a default one without timeout.
func NewWebhookClient(client *http.Client, url string) *WebhookClient {
	if client == nil {
		client = &http.Client{}
	}
	return &WebhookClient{
		client: client,
		url:    url,
	}
}

// URL returns the target webhook URL.
func (w *WebhookClient) URL() string {
	return w.url
}

// Post sends body as JSON with the token header and returns the response status code.
// Failures to reach the webhook are returned as a rich error with UnreachableCode.
func (w *WebhookClient) Post(ctx context.Context, token string, body any) (int, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(data))
	if err != nil {
		return 0, richerrors.Error{
			Code: UnreachableCode,
			Err:  fmt.Errorf("invalid webhook URL: %w", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(requestIDHeader, uuid.NewString())
	req.Header.Set(TokenHeader, token)

	resp, err := w.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, fmt.Errorf("webhook request to %s canceled: %w", w.url, ctxErr)
		}
		return 0, richerrors.Error{
			Code: UnreachableCode,
			Err:  fmt.Errorf("failed to POST to webhook %s: %w", w.url, err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// IsUnreachable reports whether err means the webhook could not be reached.
func IsUnreachable(err error) bool {
	var richErr richerrors.Error
	return errors.As(err, &richErr) && richErr.Code == UnreachableCode
}
