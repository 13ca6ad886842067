package vtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/toastkit/pkg/dom"
	"github.com/vango-dev/toastkit/pkg/render"
	"github.com/vango-dev/toastkit/pkg/timer"
	"github.com/vango-dev/toastkit/pkg/toast"
)

// Harness drives a Toaster on a virtual clock.
type Harness struct {
	t        testing.TB
	Doc      *dom.Document
	Clock    *timer.Manual
	Toaster  *toast.Toaster
	Events   []toast.Event
	renderer *render.Renderer
}

// New creates a Harness. Toast IDs are "t1", "t2", ... unless opts
// override the ID function.
func New(t testing.TB, opts ...toast.Option) *Harness {
	t.Helper()
	h := &Harness{
		t:        t,
		Doc:      dom.NewDocument(),
		Clock:    timer.NewManual(),
		renderer: render.NewRenderer(render.RendererConfig{OmitHydration: true}),
	}

	n := 0
	base := []toast.Option{
		toast.WithIDFunc(func() string {
			n++
			return fmt.Sprintf("t%d", n)
		}),
		toast.WithObserver(toast.ObserverFunc(func(e toast.Event) {
			h.Events = append(h.Events, e)
		})),
	}
	h.Toaster = toast.New(h.Doc, h.Clock, append(base, opts...)...)
	return h
}

// Show shows a toast and returns its ID.
func (h *Harness) Show(message string, typ toast.Type) string {
	return h.Toaster.Show(context.Background(), message, typ).ID()
}

// Advance moves the virtual clock forward, firing due timers.
func (h *Harness) Advance(d time.Duration) {
	h.Clock.Advance(d)
}

// Click clicks the close button of the toast with the given ID.
// The test fails if no such toast is in the document.
func (h *Harness) Click(id string) {
	h.t.Helper()
	if !toast.Close(h.Doc, id) {
		h.t.Fatalf("vtest: no toast %q to click", id)
	}
}

// Toasts returns the toast elements in the container.
func (h *Harness) Toasts() []*dom.Node {
	return toast.List(h.Doc, h.Toaster.Config())
}

// HTML renders the container.
func (h *Harness) HTML() string {
	h.t.Helper()
	html, err := h.renderer.RenderNode(h.Toaster.Container())
	if err != nil {
		h.t.Fatalf("vtest: render failed: %v", err)
	}
	return html
}

// Kinds returns the kinds of the observed events, in order.
func (h *Harness) Kinds() []toast.EventKind {
	out := make([]toast.EventKind, len(h.Events))
	for i, e := range h.Events {
		out[i] = e.Kind
	}
	return out
}

// ExpectCount fails the test unless the container holds n toasts.
func (h *Harness) ExpectCount(n int) {
	h.t.Helper()
	if got := len(h.Toasts()); got != n {
		h.t.Errorf("expected %d toasts, got %d\n%s", n, got, h.HTML())
	}
}

// ExpectExiting fails the test unless the toast is present with toast-exit.
func (h *Harness) ExpectExiting(id string) {
	h.t.Helper()
	el := toast.Find(h.Doc, id)
	if el == nil {
		h.t.Errorf("expected toast %q to be exiting, but it is gone", id)
		return
	}
	if !el.ClassList().Contains(toast.ExitClass) {
		h.t.Errorf("expected toast %q to be exiting, class=%q", id, el.ClassList().String())
	}
}

// ExpectVisible fails the test unless the toast is present without toast-exit.
func (h *Harness) ExpectVisible(id string) {
	h.t.Helper()
	el := toast.Find(h.Doc, id)
	if el == nil {
		h.t.Errorf("expected toast %q to be visible, but it is gone", id)
		return
	}
	if el.ClassList().Contains(toast.ExitClass) {
		h.t.Errorf("expected toast %q to be visible, but it is exiting", id)
	}
}

// ExpectGone fails the test if the toast is still in the document.
func (h *Harness) ExpectGone(id string) {
	h.t.Helper()
	if toast.Find(h.Doc, id) != nil {
		h.t.Errorf("expected toast %q to be removed", id)
	}
}

// ExpectContains fails the test unless the container HTML contains s.
func (h *Harness) ExpectContains(s string) {
	h.t.Helper()
	if html := h.HTML(); !strings.Contains(html, s) {
		h.t.Errorf("expected HTML to contain %q\n%s", s, html)
	}
}

// ExpectNotContains fails the test if the container HTML contains s.
func (h *Harness) ExpectNotContains(s string) {
	h.t.Helper()
	if html := h.HTML(); strings.Contains(html, s) {
		h.t.Errorf("expected HTML not to contain %q\n%s", s, html)
	}
}
