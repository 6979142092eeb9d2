package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunSweeper drops sessions idle longer than ttl every interval until ctx
// is cancelled.
func RunSweeper(ctx context.Context, s Store, ttl, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.Sweep(ctx, now.Add(-ttl)); n > 0 {
				log.Debug().Int("removed", n).Msg("swept idle sessions")
			}
		}
	}
}
