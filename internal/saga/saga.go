// Package saga runs an ordered list of steps with compensating actions.
// The store has no multi-document transaction primitive, so operations that
// touch several documents (registrar compra: stock + compra + pago) get
// their all-or-nothing semantics from ordered compensation instead.
package saga

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Step pairs an action with its compensating action. Compensate may be nil
// for steps that need no undo (typically the last one).
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Run applies steps in order. On the first failure it invokes the
// compensations of every previously completed step in reverse order, then
// returns the original error.
//
// Compensation itself is best-effort: if an undo fails the store is already
// in an unrecoverable state, so the failure is logged and the remaining
// compensations still run.
func Run(ctx context.Context, steps []Step) error {
	done := make([]Step, 0, len(steps))
	for _, step := range steps {
		if err := step.Run(ctx); err != nil {
			rollback(ctx, done)
			return err
		}
		done = append(done, step)
	}
	return nil
}

func rollback(ctx context.Context, done []Step) {
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			log.Warn().Err(err).Str("step", step.Name).
				Msg("saga: fallo la compensación, el estado puede quedar inconsistente")
		}
	}
}
