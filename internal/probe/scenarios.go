package probe

import "github.com/DIMO-Network/webhook-probe/internal/callbacks"

// State is the payload and token carried from one scenario to the next.
// Scenarios mutate it in place, so order matters.
type State struct {
	Payload Payload
	Token   string
	// OriginalToken is the token the run started with.
	OriginalToken string
	// EmptyBody sends {} instead of the payload.
	EmptyBody bool
	// TimestampRemoved drops the timestamp key from the body; an empty
	// timestamp is otherwise sent as "".
	TimestampRemoved bool
}

// Body returns what should be posted for the current state.
func (s *State) Body() any {
	switch {
	case s.EmptyBody:
		return struct{}{}
	case s.TimestampRemoved:
		return withoutTimestamp{
			Event:         s.Payload.Event,
			TransactionID: s.Payload.TransactionID,
			Amount:        s.Payload.Amount,
			Currency:      s.Payload.Currency,
		}
	default:
		return s.Payload
	}
}

// Scenario is one request against the webhook under test.
type Scenario struct {
	Name string
	// Prepare mutates the state before the request is sent. May be nil.
	Prepare func(*State)
	// AwaitCallback is the callback kind to wait for after the request, empty for none.
	AwaitCallback callbacks.Kind
	Expect        *Expectation
}

// DefaultScenarios returns the six checks in the order they must run.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:          "successful",
			AwaitCallback: callbacks.KindConfirmation,
			Expect:        MustCompileExpectation("status == 200 && confirmed"),
		},
		{
			Name:   "duplicate transaction",
			Expect: MustCompileExpectation("status != 200"),
		},
		{
			Name: "invalid amount",
			Prepare: func(s *State) {
				s.Payload.TransactionID += "a"
				s.Payload.Amount = "0.00"
			},
			AwaitCallback: callbacks.KindCancellation,
			Expect:        MustCompileExpectation("status != 200 && canceled"),
		},
		{
			Name: "invalid token",
			Prepare: func(s *State) {
				s.Token = InvalidToken
				s.Payload.TransactionID += "b"
			},
			Expect: MustCompileExpectation("status != 200"),
		},
		{
			Name: "invalid payload",
			Prepare: func(s *State) {
				s.EmptyBody = true
			},
			Expect: MustCompileExpectation("status != 200"),
		},
		{
			Name: "missing fields",
			Prepare: func(s *State) {
				s.EmptyBody = false
				s.TimestampRemoved = true
				s.Token = s.OriginalToken
				s.Payload.TransactionID += "c"
			},
			AwaitCallback: callbacks.KindCancellation,
			Expect:        MustCompileExpectation("status != 200 && canceled"),
		},
	}
}
