package callback

import (
	"encoding/json"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/webhook-probe/internal/callbacks"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Recorder stores the transaction ids received by the callback routes.
type Recorder interface {
	Record(kind callbacks.Kind, transactionID string)
}

// CallbackController receives the confirm and cancel notifications sent by the webhook under test.
type CallbackController struct {
	recorder Recorder
}

// NewCallbackController creates a new CallbackController.
func NewCallbackController(recorder Recorder) *CallbackController {
	return &CallbackController{recorder: recorder}
}

// Confirm records a confirmed transaction.
func (cc *CallbackController) Confirm(c *fiber.Ctx) error {
	return cc.record(c, callbacks.KindConfirmation)
}

// Cancel records a canceled transaction.
func (cc *CallbackController) Cancel(c *fiber.Ctx) error {
	return cc.record(c, callbacks.KindCancellation)
}

func (cc *CallbackController) record(c *fiber.Ctx, kind callbacks.Kind) error {
	// The body is JSON whatever Content-Type the sender set.
	var payload CallbackRequest
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	if payload.TransactionID == "" {
		return richerrors.Error{
			ExternalMsg: "transaction_id is required",
			Code:        fiber.StatusBadRequest,
		}
	}

	zerolog.Ctx(c.UserContext()).Info().
		Str("kind", string(kind)).
		Str("transactionId", payload.TransactionID).
		Msg("Callback received")
	cc.recorder.Record(kind, payload.TransactionID)

	return c.JSON(StatusResponse{Status: "ok"})
}
