package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/assist-notify/internal/model"
)

type promoter interface {
	PromoteDue(now time.Time) []model.Notification
}

// Sweeper periodically promotes due pending notifications to active and
// routes each newly active unread one through the delivery gate exactly
// once. All promotions of a tick commit before the first delivery fires.
//
// A linear scan per tick is fine at this scale; the pending set of a
// single-user dashboard stays far below the point where a due-time heap
// would pay off.
type Sweeper struct {
	store    promoter
	gate     deliveryGate
	interval time.Duration
}

// NewSweeper creates the sweep worker.
func NewSweeper(store promoter, gate deliveryGate, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		gate:     gate,
		interval: interval,
	}
}

// Run ticks until ctx is cancelled.
func (w *Sweeper) Run(ctx context.Context) {
	zlog.Logger.Info().Dur("interval", w.interval).Msg("sweep worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("sweep worker shutting down")
			return
		case now := <-ticker.C:
			w.tick(now)
		}
	}
}

func (w *Sweeper) tick(now time.Time) {
	promoted := w.store.PromoteDue(now)

	for _, n := range promoted {
		zlog.Logger.Info().Str("id", n.ID.String()).Msg("scheduled notification due, delivering")
		w.gate.Deliver(n)
	}
}
