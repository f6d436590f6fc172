package urgent

import (
	"context"
	"log/slog"
	"time"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

// Sweeper periodically clears expired urgent slots so a session whose
// creator never closed it does not occupy the group forever.
type Sweeper struct {
	manager  *Manager
	interval time.Duration
	clock    domain.Clock
}

func NewSweeper(manager *Manager, interval time.Duration, clock domain.Clock) *Sweeper {
	return &Sweeper{manager: manager, interval: interval, clock: clock}
}

// Start blocks until ctx is cancelled. Sweep errors are logged and the
// loop keeps going.
func (s *Sweeper) Start(ctx context.Context) {
	slog.InfoContext(ctx, "urgent sweeper starting", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "urgent sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.manager.Sweep(ctx, s.clock.Now()); err != nil {
				slog.ErrorContext(ctx, "urgent sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}
