package reference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DIMO-Network/webhook-probe/internal/callbacks"
)

const (
	defaultCallbackTimeout = 10 * time.Second
	maxResponseBodySize    = 1024
)

var callbackPaths = map[callbacks.Kind]string{
	callbacks.KindConfirmation: "/confirmar",
	callbacks.KindCancellation: "/cancelar",
}

// CallbackNotifier posts confirm and cancel notifications back to the caller's receiver.
type CallbackNotifier struct {
	client  *http.Client
	baseURL string
}

// NewCallbackNotifier creates a CallbackNotifier that posts under baseURL.
func NewCallbackNotifier(client *http.Client, baseURL string) *CallbackNotifier {
	if client == nil {
		client = &http.Client{Timeout: defaultCallbackTimeout}
	}
	return &CallbackNotifier{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Notify sends the callback of the given kind for a transaction.
func (n *CallbackNotifier) Notify(ctx context.Context, kind callbacks.Kind, transactionID string) error {
	path, ok := callbackPaths[kind]
	if !ok {
		return fmt.Errorf("unknown callback kind %q", kind)
	}
	body, err := json.Marshal(map[string]string{"transaction_id": transactionID})
	if err != nil {
		return fmt.Errorf("failed to marshal callback payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to POST callback: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return fmt.Errorf("callback returned status code %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
