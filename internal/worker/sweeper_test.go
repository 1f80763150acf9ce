package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	mocks "github.com/aliskhannn/assist-notify/internal/mocks/worker"
	"github.com/aliskhannn/assist-notify/internal/model"
	"github.com/aliskhannn/assist-notify/internal/store"
)

func TestSweeper_Tick_DeliversPromoted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	promoter := mocks.NewMockpromoter(ctrl)
	gate := mocks.NewMockdeliveryGate(ctrl)

	now := time.Now()
	a := model.Notification{ID: uuid.New(), Type: model.TypeEmail, Title: "a"}
	b := model.Notification{ID: uuid.New(), Type: model.TypeFile, Title: "b"}

	promoter.EXPECT().PromoteDue(now).Return([]model.Notification{a, b})
	gate.EXPECT().Deliver(a)
	gate.EXPECT().Deliver(b)

	NewSweeper(promoter, gate, time.Minute).tick(now)
}

func TestSweeper_Tick_NothingDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	promoter := mocks.NewMockpromoter(ctrl)
	gate := mocks.NewMockdeliveryGate(ctrl)

	now := time.Now()
	promoter.EXPECT().PromoteDue(now).Return(nil)

	NewSweeper(promoter, gate, time.Minute).tick(now)
}

// End to end against the real store: a due item is promoted and delivered
// exactly once across repeated ticks.
func TestSweeper_Tick_DeliversExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := store.New()
	gate := mocks.NewMockdeliveryGate(ctrl)

	n := s.Schedule(model.Notification{Type: model.TypeSocial, Title: "due"}, time.Now().Add(-time.Second))

	gate.EXPECT().Deliver(gomock.AssignableToTypeOf(model.Notification{})).Do(func(got model.Notification) {
		if got.ID != n.ID {
			t.Errorf("delivered wrong notification: %s", got.ID)
		}
		if got.Pending() {
			t.Error("delivered notification still pending")
		}
	})

	w := NewSweeper(s, gate, time.Minute)
	w.tick(time.Now())
	w.tick(time.Now())
	w.tick(time.Now())
}

func TestSweeper_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	promoter := mocks.NewMockpromoter(ctrl)
	gate := mocks.NewMockdeliveryGate(ctrl)

	promoter.EXPECT().PromoteDue(gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewSweeper(promoter, gate, 10*time.Millisecond).Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not shut down")
	}
}
