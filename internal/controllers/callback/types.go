package callback

// CallbackRequest is the body posted to the confirm and cancel routes.
type CallbackRequest struct {
	// TransactionID identifies the transaction being confirmed or canceled.
	TransactionID string `json:"transaction_id"`
}

// StatusResponse is the fixed acknowledgment returned by the callback routes.
type StatusResponse struct {
	Status string `json:"status"`
}
