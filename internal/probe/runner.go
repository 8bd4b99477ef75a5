package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/DIMO-Network/webhook-probe/internal/callbacks"
	"github.com/rs/zerolog"
)

// Sender posts a body to the webhook under test and returns the status code.
type Sender interface {
	Post(ctx context.Context, token string, body any) (int, error)
}

// CallbackStore exposes the callbacks received so far.
type CallbackStore interface {
	Contains(kind callbacks.Kind, transactionID string) bool
	WaitFor(ctx context.Context, kind callbacks.Kind, transactionID string) bool
}

// Result is the outcome of a single scenario.
type Result struct {
	Number        int    `json:"number"`
	Name          string `json:"name"`
	TransactionID string `json:"transactionId"`
	Observation
	Passed bool `json:"passed"`
}

// Report summarizes a probe run.
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Total   int      `json:"total"`
	// Aborted is set when the run stopped before every scenario was sent.
	Aborted bool `json:"aborted"`
}

// Runner executes scenarios in order against a webhook.
type Runner struct {
	sender       Sender
	store        CallbackStore
	scenarios    []Scenario
	callbackWait time.Duration
}

// NewRunner creates a Runner for the default scenarios.
func NewRunner(sender Sender, store CallbackStore, callbackWait time.Duration) *Runner {
	return &Runner{
		sender:       sender,
		store:        store,
		scenarios:    DefaultScenarios(),
		callbackWait: callbackWait,
	}
}

// Run sends every scenario in sequence. An unreachable webhook or a canceled
// context stops the run; the report then holds the scenarios completed so far
// and the error is returned alongside it.
func (r *Runner) Run(ctx context.Context, in Input) (*Report, error) {
	logger := zerolog.Ctx(ctx)
	state := &State{
		Payload:       in.Payload,
		Token:         in.Token,
		OriginalToken: in.Token,
	}
	report := &Report{
		Results: make([]Result, 0, len(r.scenarios)),
		Total:   len(r.scenarios),
	}

	for i, scenario := range r.scenarios {
		if err := ctx.Err(); err != nil {
			report.Aborted = true
			return report, err
		}
		number := i + 1
		if scenario.Prepare != nil {
			scenario.Prepare(state)
		}

		result, err := r.runScenario(ctx, number, scenario, state)
		if err != nil {
			report.Aborted = true
			if IsUnreachable(err) {
				logger.Error().Err(err).Int("scenario", number).Msg("Could not connect to the webhook server")
			}
			return report, err
		}

		report.Results = append(report.Results, result)
		if result.Passed {
			report.Passed++
			logger.Info().Int("status", result.StatusCode).Msgf("%d. Webhook test ok: %s!", number, scenario.Name)
		} else {
			logger.Warn().
				Int("status", result.StatusCode).
				Bool("confirmed", result.Confirmed).
				Bool("canceled", result.Canceled).
				Str("expected", scenario.Expect.String()).
				Msgf("%d. Webhook test failed: %s!", number, scenario.Name)
		}
	}
	return report, nil
}

func (r *Runner) runScenario(ctx context.Context, number int, scenario Scenario, state *State) (Result, error) {
	transactionID := state.Payload.TransactionID
	status, err := r.sender.Post(ctx, state.Token, state.Body())
	if err != nil {
		return Result{}, fmt.Errorf("scenario %d (%s): %w", number, scenario.Name, err)
	}

	if scenario.AwaitCallback != "" {
		waitCtx, cancel := context.WithTimeout(ctx, r.callbackWait)
		r.store.WaitFor(waitCtx, scenario.AwaitCallback, transactionID)
		cancel()
	}

	obs := Observation{
		StatusCode: status,
		Confirmed:  r.store.Contains(callbacks.KindConfirmation, transactionID),
		Canceled:   r.store.Contains(callbacks.KindCancellation, transactionID),
	}
	passed, err := scenario.Expect.Evaluate(obs)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %d (%s): %w", number, scenario.Name, err)
	}
	return Result{
		Number:        number,
		Name:          scenario.Name,
		TransactionID: transactionID,
		Observation:   obs,
		Passed:        passed,
	}, nil
}
