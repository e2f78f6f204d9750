package expiry

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Deactivator expires licenses past their end date.
type Deactivator interface {
	DeactivateExpired(ctx context.Context) (int, error)
}

// Run sweeps expired licenses every interval until ctx is done. An interval
// of zero or less disables the sweeper.
func Run(ctx context.Context, d Deactivator, interval time.Duration, clock clockwork.Clock) {
	if interval <= 0 {
		return
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := zerolog.Ctx(ctx)
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			n, err := d.DeactivateExpired(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.Error().Err(err).Msg("expiry sweep failed")
				}
				continue
			}
			logger.Debug().Int("deactivated", n).Msg("expiry sweep done")
		}
	}
}
