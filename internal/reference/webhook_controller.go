package reference

import (
	"context"
	"crypto/subtle"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/webhook-probe/internal/callbacks"
	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// TokenHeader carries the shared secret.
const TokenHeader = "X-Webhook-Token"

// Notifier delivers callbacks for processed transactions.
type Notifier interface {
	Notify(ctx context.Context, kind callbacks.Kind, transactionID string) error
}

// WebhookController is a well-behaved implementation of the webhook the probe validates.
// It confirms valid transactions and cancels invalid ones through its Notifier.
type WebhookController struct {
	token    string
	notifier Notifier
	seen     *cache.Cache
	validate *validator.Validate
	pending  sync.WaitGroup
}

// NewWebhookController creates a new WebhookController. Transaction ids are
// remembered for dedupeTTL to reject duplicates.
func NewWebhookController(token string, notifier Notifier, dedupeTTL time.Duration) *WebhookController {
	return &WebhookController{
		token:    token,
		notifier: notifier,
		seen:     cache.New(dedupeTTL, 2*dedupeTTL),
		validate: validator.New(),
	}
}

// HandleTransaction processes a transaction notification.
func (w *WebhookController) HandleTransaction(c *fiber.Ctx) error {
	if subtle.ConstantTimeCompare([]byte(c.Get(TokenHeader)), []byte(w.token)) != 1 {
		return richerrors.Error{
			ExternalMsg: "Invalid webhook token",
			Code:        fiber.StatusUnauthorized,
		}
	}

	var payload TransactionRequest
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	if err := w.validateTransaction(&payload); err != nil {
		if payload.TransactionID != "" {
			w.notify(c, callbacks.KindCancellation, payload.TransactionID)
		}
		return err
	}

	if err := w.seen.Add(payload.TransactionID, struct{}{}, cache.DefaultExpiration); err != nil {
		return richerrors.Error{
			ExternalMsg: fmt.Sprintf("Transaction '%s' already processed", payload.TransactionID),
			Err:         err,
			Code:        fiber.StatusConflict,
		}
	}

	w.notify(c, callbacks.KindConfirmation, payload.TransactionID)
	return c.JSON(GenericResponse{Message: "Transaction confirmed"})
}

// Wait blocks until every pending callback has been delivered or has failed.
func (w *WebhookController) Wait() {
	w.pending.Wait()
}

func (w *WebhookController) validateTransaction(payload *TransactionRequest) error {
	if err := w.validate.Struct(payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Missing or malformed fields",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	amount, err := strconv.ParseFloat(payload.Amount, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return richerrors.Error{
			ExternalMsg: fmt.Sprintf("Invalid amount '%s'", payload.Amount),
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	if _, err := time.Parse(time.RFC3339, payload.Timestamp); err != nil {
		return richerrors.Error{
			ExternalMsg: fmt.Sprintf("Invalid timestamp '%s'", payload.Timestamp),
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	return nil
}

// notify delivers the callback in the background; the request context is not reused.
func (w *WebhookController) notify(c *fiber.Ctx, kind callbacks.Kind, transactionID string) {
	logger := zerolog.Ctx(c.UserContext()).With().
		Str("kind", string(kind)).
		Str("transactionId", transactionID).
		Logger()

	w.pending.Add(1)
	go func() {
		defer w.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), defaultCallbackTimeout)
		defer cancel()
		if err := w.notifier.Notify(ctx, kind, transactionID); err != nil {
			logger.Error().Err(err).Msg("Failed to deliver callback")
			return
		}
		logger.Debug().Msg("Callback delivered")
	}()
}
