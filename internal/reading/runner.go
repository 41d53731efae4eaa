// internal/reading/runner.go
package reading

import (
	"context"
	"errors"
	"time"
)

// Runner re-assembles a fixed descriptor set on a clock.
type Runner struct {
	asm      *Assembler
	descs    []Descriptor
	interval time.Duration
}

// NewRunner creates a Runner. interval must be > 0.
func NewRunner(asm *Assembler, descs []Descriptor, interval time.Duration) (*Runner, error) {
	if asm == nil {
		return nil, errors.New("reading: assembler required")
	}
	if interval <= 0 {
		return nil, errors.New("reading: interval must be > 0")
	}
	if len(descs) == 0 {
		return nil, errors.New("reading: at least one descriptor required")
	}
	return &Runner{asm: asm, descs: descs, interval: interval}, nil
}

// Run emits one Batch immediately and then one per tick until ctx is done.
// Batches never overlap: a slow cycle delays the next tick.
func (r *Runner) Run(ctx context.Context, out chan<- Batch) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case out <- r.asm.Batch(r.descs):
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
