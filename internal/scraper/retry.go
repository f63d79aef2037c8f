package scraper

import (
	"context"
	"time"
)

// Outcome is the typed result of one attempt, so callers branch on an
// enumerated value rather than on error presence.
type Outcome int

const (
	// Succeeded ends the retry loop with a usable result.
	Succeeded Outcome = iota
	// RetriableFailure is worth another attempt.
	RetriableFailure
	// TerminalFailure ends the retry loop immediately.
	TerminalFailure
)

// RetryPolicy bounds how stubbornly an operation is retried.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Run invokes fn until it succeeds, fails terminally, or the attempts are
// exhausted. The inter-attempt delay respects context cancellation.
func (p RetryPolicy) Run(ctx context.Context, fn func() Outcome) Outcome {
	last := RetriableFailure

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return TerminalFailure
			case <-time.After(p.Delay):
			}
		}

		last = fn()
		if last != RetriableFailure {
			return last
		}
	}

	return last
}
