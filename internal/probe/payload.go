package probe

const (
	DefaultEvent         = "payment_success"
	DefaultTransactionID = "abc123"
	DefaultAmount        = "49.90"
	DefaultCurrency      = "BRL"
	DefaultTimestamp     = "2023-10-01T12:00:00Z"
	DefaultToken         = "meu-token-secreto"

	// TokenHeader carries the shared secret expected by the webhook under test.
	TokenHeader = "X-Webhook-Token"
	// InvalidToken is sent by the invalid token scenario.
	InvalidToken = "invalid-token"
)

// Payload is the transaction notification sent to the webhook under test.
// All values are sent as JSON strings.
type Payload struct {
	Event         string `json:"event"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Timestamp     string `json:"timestamp"`
}

// withoutTimestamp is a Payload whose timestamp key was removed.
type withoutTimestamp struct {
	Event         string `json:"event"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

// Input is the starting point of a probe run.
type Input struct {
	Payload Payload
	Token   string
}

// DefaultInput returns the input used when no arguments are given.
func DefaultInput() Input {
	return Input{
		Payload: Payload{
			Event:         DefaultEvent,
			TransactionID: DefaultTransactionID,
			Amount:        DefaultAmount,
			Currency:      DefaultCurrency,
			Timestamp:     DefaultTimestamp,
		},
		Token: DefaultToken,
	}
}

// InputFromArgs overrides the defaults with positional arguments in the order
// event, transaction_id, amount, currency, timestamp, token. Extra arguments are ignored.
func InputFromArgs(args []string) Input {
	in := DefaultInput()
	fields := []*string{
		&in.Payload.Event,
		&in.Payload.TransactionID,
		&in.Payload.Amount,
		&in.Payload.Currency,
		&in.Payload.Timestamp,
		&in.Token,
	}
	for i, arg := range args {
		if i >= len(fields) {
			break
		}
		*fields[i] = arg
	}
	return in
}
