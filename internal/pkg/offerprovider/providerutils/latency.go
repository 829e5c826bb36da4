package providerutils

import (
	"context"
	"fmt"
	"time"
)

// SimulateLatency blocks for d or until ctx is done, whichever comes first.
func SimulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
	}
}
