// Package throttle spaces requests out with jittered delays. Uniform request
// timing is a bot fingerprint, so every wait is randomized within a band.
package throttle

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Jitter picks a uniform duration in [min, max). A degenerate band collapses
// to min.
func Jitter(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}

// Sleep pauses for d unless the context is cancelled first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Pacer enforces a jittered minimum spacing between successive actions. Time
// already spent since the previous action counts toward the delay; the first
// action is never delayed.
type Pacer struct {
	mu   sync.Mutex
	min  time.Duration
	max  time.Duration
	last time.Time
}

func NewPacer(min, max time.Duration) *Pacer {
	return &Pacer{min: min, max: max}
}

// Wait blocks until the jittered spacing since the previous Wait has passed,
// then marks the action as taken.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		delay := Jitter(p.min, p.max)
		if elapsed := time.Since(p.last); elapsed < delay {
			if err := Sleep(ctx, delay-elapsed); err != nil {
				return err
			}
		}
	}

	p.last = time.Now()
	return nil
}

// SetBand replaces the delay band, for callers that slow down after seeing
// pushback.
func (p *Pacer) SetBand(min, max time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.min = min
	p.max = max
}
