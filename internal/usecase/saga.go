package usecase

import (
	"context"
	"log"
	"time"
)

// sideEffectStep is one best-effort follow-up action run after a primary write
// has already been committed and reported. Steps are not transactional with
// the primary write: each carries its own retry budget, and exhausting it is
// logged for reconciliation audits rather than surfaced to the caller.
type sideEffectStep struct {
	Name     string
	Attempts int
	Backoff  time.Duration
	Run      func(ctx context.Context) error
}

const sideEffectTimeout = 30 * time.Second

// runSideEffects executes steps in order against a fresh context (the request
// context is gone by the time these run). A failed step does not stop the
// remaining ones.
func runSideEffects(tag string, steps []sideEffectStep) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	for _, step := range steps {
		attempts := step.Attempts
		if attempts < 1 {
			attempts = 1
		}

		var err error
		for i := 1; i <= attempts; i++ {
			if err = step.Run(ctx); err == nil {
				break
			}
			log.Printf("[%s][side-effect] step=%s attempt=%d/%d err=%v", tag, step.Name, i, attempts, err)
			if i < attempts && step.Backoff > 0 {
				time.Sleep(step.Backoff)
			}
		}
		if err != nil {
			log.Printf("[%s][side-effect] step=%s exhausted retries; leaving for audit err=%v", tag, step.Name, err)
		}
	}
}
