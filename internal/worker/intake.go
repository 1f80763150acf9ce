package worker

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/assist-notify/internal/model"
)

type eventStream interface {
	Notifications() <-chan model.Notification
}

type ingester interface {
	Ingest(n model.Notification)
}

type deliveryGate interface {
	Deliver(n model.Notification)
}

// Intake routes incoming stream notifications into the store and through the
// delivery gate. A non-scheduled notification becomes active on arrival, so
// the gate fires here, once, immediately after ingest.
type Intake struct {
	stream eventStream
	store  ingester
	gate   deliveryGate
}

// NewIntake creates the intake worker.
func NewIntake(stream eventStream, store ingester, gate deliveryGate) *Intake {
	return &Intake{
		stream: stream,
		store:  store,
		gate:   gate,
	}
}

// Run consumes the stream until ctx is cancelled.
func (w *Intake) Run(ctx context.Context) {
	zlog.Logger.Info().Msg("intake worker started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("intake worker shutting down")
			return
		case n, ok := <-w.stream.Notifications():
			if !ok {
				zlog.Logger.Info().Msg("stream channel closed, intake shutting down")
				return
			}

			w.store.Ingest(n)
			w.gate.Deliver(n)
		}
	}
}
