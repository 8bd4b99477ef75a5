package reference

// TransactionRequest is the notification accepted by the reference webhook.
type TransactionRequest struct {
	Event         string `json:"event" validate:"required"`
	TransactionID string `json:"transaction_id" validate:"required"`
	// Amount is a plain decimal string and must be greater than zero.
	Amount    string `json:"amount" validate:"required,numeric"`
	Currency  string `json:"currency" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}

// GenericResponse is a simple response wrapper with a human-readable message.
type GenericResponse struct {
	Message string `json:"message"`
}
