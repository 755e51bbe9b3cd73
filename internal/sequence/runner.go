// internal/sequence/runner.go
package sequence

import (
	"context"
	"fmt"
	"time"
)

// Run plays the sequence until every loop is done or ctx is cancelled.
// A failed send aborts the run. No retries.
func (p *Player) Run(ctx context.Context) error {
	for loop := 0; p.cfg.Loops == 0 || loop < p.cfg.Loops; loop++ {
		for i, st := range p.cfg.Steps {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := p.ind.SetColor(st.Color); err != nil {
				return fmt.Errorf("sequence: loop %d step %d (%s): %w", loop, i, st.Color, err)
			}
			if err := hold(ctx, st.Hold); err != nil {
				return err
			}
		}
	}

	if p.cfg.QuitAtEnd {
		if err := p.ind.Quit(); err != nil {
			return fmt.Errorf("sequence: quit: %w", err)
		}
	}
	return nil
}

func hold(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
