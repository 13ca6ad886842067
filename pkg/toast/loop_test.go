package toast

import (
	"context"
	"testing"
	"time"

	"github.com/vango-dev/toastkit/pkg/dom"
	"github.com/vango-dev/toastkit/pkg/loop"
	"github.com/vango-dev/toastkit/pkg/timer"
)

func TestAutoDismissSurvivesBusyLoop(t *testing.T) {
	l := loop.New(1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	go l.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-l.Done()
	})

	doc := dom.NewDocument()
	tt := New(doc, timer.NewReal(l.Post), WithConfig(Config{
		InfoDelay:    10 * time.Millisecond,
		DefaultDelay: 10 * time.Millisecond,
		ExitDelay:    10 * time.Millisecond,
	}))

	var shown *Toast
	if err := l.Call(ctx, func() { shown = tt.Show(ctx, "Saved.", TypeSuccess) }); err != nil {
		t.Fatalf("Call: %v", err)
	}

	// Keep the loop busy past the auto-dismiss delay with the queue full.
	if err := l.Dispatch(func() { time.Sleep(60 * time.Millisecond) }); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	for l.Dispatch(func() {}) == nil {
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		var state State
		var connected bool
		err := l.Call(ctx, func() {
			state = shown.State()
			connected = shown.Element().IsConnected()
		})
		if err == nil && state == StateRemoved && !connected {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("toast not removed: state=%v connected=%v err=%v", state, connected, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
