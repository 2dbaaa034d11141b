package generator

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/culinary/provider"
)

// Escalation defines how a failed model call is retried.
type Escalation struct {
	// Models in the order they are tried. "" means the client's default
	// model. The last model is retried until attempts run out.
	Models []string

	// MaxAttempts is the maximum total attempts per call.
	MaxAttempts int
}

// DefaultEscalation retries the client's default model once.
var DefaultEscalation = Escalation{Models: []string{""}, MaxAttempts: 2}

// NoEscalation makes a single attempt.
var NoEscalation = Escalation{Models: []string{""}, MaxAttempts: 1}

// WithFallback returns an escalation that tries the default model and then
// fallback, each at most once. An empty fallback returns DefaultEscalation.
func WithFallback(fallback string) Escalation {
	if fallback == "" {
		return DefaultEscalation
	}
	return Escalation{Models: []string{"", fallback}, MaxAttempts: 2}
}

// Next returns the model for the given zero-based attempt and whether the
// attempt is allowed.
func (e Escalation) Next(attempt int) (string, bool) {
	if attempt >= e.MaxAttempts {
		return "", false
	}
	if len(e.Models) == 0 {
		return "", true
	}
	if attempt >= len(e.Models) {
		return e.Models[len(e.Models)-1], true
	}
	return e.Models[attempt], true
}

// run calls complete with each model the escalation allows until a call
// succeeds or fails with a non-retryable error. It returns the last error.
func (e Escalation) run(ctx context.Context, step string, call func(ctx context.Context, model string) error) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		model, ok := e.Next(attempt)
		if !ok {
			return lastErr
		}
		if attempt > 0 {
			slog.Warn("retrying model call",
				slog.String("step", step),
				slog.Int("attempt", attempt+1),
				slog.String("model", model),
				slog.Any("error", lastErr))
		}

		lastErr = call(ctx, model)
		if lastErr == nil || !provider.IsRetryable(lastErr) || ctx.Err() != nil {
			return lastErr
		}
	}
}
