package reference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/webhook-probe/internal/callbacks"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "meu-token-secreto"

type notification struct {
	kind          callbacks.Kind
	transactionID string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, kind callbacks.Kind, transactionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, notification{kind: kind, transactionID: transactionID})
	return f.err
}

func (f *fakeNotifier) notifications() []notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notification(nil), f.sent...)
}

func validBody(transactionID string) map[string]string {
	return map[string]string{
		"event":          "payment_success",
		"transaction_id": transactionID,
		"amount":         "49.90",
		"currency":       "BRL",
		"timestamp":      "2023-10-01T12:00:00Z",
	}
}

func TestWebhookController_HandleTransaction(t *testing.T) {
	t.Parallel()

	t.Run("valid transaction is confirmed", func(t *testing.T) {
		app, controller, notifier := newTestApp(time.Hour)

		resp := send(t, app, testToken, validBody("abc123"))
		defer resp.Body.Close()
		controller.Wait()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, []notification{{callbacks.KindConfirmation, "abc123"}}, notifier.notifications())
	})

	t.Run("duplicate transaction is rejected", func(t *testing.T) {
		app, controller, notifier := newTestApp(time.Hour)

		first := send(t, app, testToken, validBody("abc123"))
		first.Body.Close()
		second := send(t, app, testToken, validBody("abc123"))
		defer second.Body.Close()
		controller.Wait()

		assert.Equal(t, fiber.StatusOK, first.StatusCode)
		assert.Equal(t, fiber.StatusConflict, second.StatusCode)
		assert.Len(t, notifier.notifications(), 1)
	})

	t.Run("duplicate is accepted again after the ttl", func(t *testing.T) {
		app, controller, _ := newTestApp(20 * time.Millisecond)

		first := send(t, app, testToken, validBody("abc123"))
		first.Body.Close()
		time.Sleep(40 * time.Millisecond)
		second := send(t, app, testToken, validBody("abc123"))
		defer second.Body.Close()
		controller.Wait()

		assert.Equal(t, fiber.StatusOK, second.StatusCode)
	})

	t.Run("zero amount is canceled", func(t *testing.T) {
		app, controller, notifier := newTestApp(time.Hour)

		body := validBody("abc123a")
		body["amount"] = "0.00"
		resp := send(t, app, testToken, body)
		defer resp.Body.Close()
		controller.Wait()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []notification{{callbacks.KindCancellation, "abc123a"}}, notifier.notifications())
	})

	t.Run("malformed amounts are canceled", func(t *testing.T) {
		tests := []struct {
			name   string
			amount string
		}{
			{name: "words", amount: "lots"},
			{name: "negative", amount: "-10.00"},
			{name: "not a number", amount: "NaN"},
			{name: "infinity", amount: "Inf"},
			{name: "signed infinity", amount: "+Inf"},
			{name: "hex float", amount: "0x1p-2"},
			{name: "exponent", amount: "1e3"},
			{name: "underscores", amount: "1_000"},
			{name: "empty", amount: ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				app, controller, notifier := newTestApp(time.Hour)

				body := validBody("abc123a")
				body["amount"] = tt.amount
				resp := send(t, app, testToken, body)
				defer resp.Body.Close()
				controller.Wait()

				assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(t, []notification{{callbacks.KindCancellation, "abc123a"}}, notifier.notifications())
			})
		}
	})

	t.Run("plain decimal amounts are confirmed", func(t *testing.T) {
		for _, amount := range []string{"49.90", "1", "+0.01"} {
			app, controller, notifier := newTestApp(time.Hour)

			body := validBody("abc123")
			body["amount"] = amount
			resp := send(t, app, testToken, body)
			resp.Body.Close()
			controller.Wait()

			assert.Equal(t, fiber.StatusOK, resp.StatusCode, amount)
			assert.Equal(t, []notification{{callbacks.KindConfirmation, "abc123"}}, notifier.notifications(), amount)
		}
	})

	t.Run("invalid token is rejected without callback", func(t *testing.T) {
		app, controller, notifier := newTestApp(time.Hour)

		resp := send(t, app, "invalid-token", validBody("abc123ab"))
		defer resp.Body.Close()
		controller.Wait()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, notifier.notifications())
	})

	t.Run("empty payload is rejected without callback", func(t *testing.T) {
		app, controller, notifier := newTestApp(time.Hour)

		resp := send(t, app, testToken, map[string]string{})
		defer resp.Body.Close()
		controller.Wait()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, notifier.notifications())
	})

	t.Run("missing timestamp is canceled", func(t *testing.T) {
		app, controller, notifier := newTestApp(time.Hour)

		body := validBody("abc123abc")
		delete(body, "timestamp")
		resp := send(t, app, testToken, body)
		defer resp.Body.Close()
		controller.Wait()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []notification{{callbacks.KindCancellation, "abc123abc"}}, notifier.notifications())
	})

	t.Run("malformed timestamp is canceled", func(t *testing.T) {
		app, controller, notifier := newTestApp(time.Hour)

		body := validBody("abc123")
		body["timestamp"] = "yesterday"
		resp := send(t, app, testToken, body)
		defer resp.Body.Close()
		controller.Wait()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []notification{{callbacks.KindCancellation, "abc123"}}, notifier.notifications())
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		app, _, notifier := newTestApp(time.Hour)

		req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte("not json")))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TokenHeader, testToken)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, notifier.notifications())
	})

	t.Run("notifier failure does not change the response", func(t *testing.T) {
		app, controller, notifier := newTestApp(time.Hour)
		notifier.err = errors.New("receiver down")

		resp := send(t, app, testToken, validBody("abc123"))
		defer resp.Body.Close()
		controller.Wait()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func newTestApp(dedupeTTL time.Duration) (*fiber.App, *WebhookController, *fakeNotifier) {
	notifier := &fakeNotifier{}
	controller := NewWebhookController(testToken, notifier, dedupeTTL)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Post("/webhook", controller.HandleTransaction)
	return app, controller, notifier
}

func send(t *testing.T, app *fiber.App, token string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TokenHeader, token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}
