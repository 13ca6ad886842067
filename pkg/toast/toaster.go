package toast

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/toastkit/pkg/dom"
	"github.com/vango-dev/toastkit/pkg/timer"
)

const tracerName = "toastkit"

// Toaster shows toasts in a document.
//
// A Toaster shares the document's threading rules: Show, Dismiss and the
// scheduled callbacks must all run on the goroutine that owns the document.
// With a timer.Real scheduler, pass the event loop as its dispatcher.
type Toaster struct {
	doc       *dom.Document
	sched     timer.Scheduler
	config    Config
	logger    *slog.Logger
	observers []Observer
	tracer    trace.Tracer
	newID     func() string
}

// New creates a Toaster for doc, scheduling timers on sched.
func New(doc *dom.Document, sched timer.Scheduler, opts ...Option) *Toaster {
	t := &Toaster{
		doc:    doc,
		sched:  sched,
		config: DefaultConfig(),
		logger: slog.Default().With("component", "toast"),
		tracer: otel.Tracer(tracerName),
		newID:  newUUID,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Config returns the effective configuration.
func (t *Toaster) Config() Config {
	return t.config
}

// Document returns the document toasts are shown in.
func (t *Toaster) Document() *dom.Document {
	return t.doc
}

// Container returns the shared container, creating it if needed.
func (t *Toaster) Container() *dom.Node {
	return EnsureContainer(t.doc, t.config)
}

// Show builds a toast, appends it to the container and schedules its
// automatic dismissal. The toast is in the document when Show returns.
func (t *Toaster) Show(ctx context.Context, message string, typ Type) *Toast {
	toast := &Toast{
		toaster: t,
		id:      t.newID(),
		typ:     typ,
		message: message,
	}

	_, span := t.tracer.Start(ctx, "toast.Show", trace.WithAttributes(
		attribute.String("toast.id", toast.id),
		attribute.String("toast.type", string(typ)),
		attribute.String("toast.variant", string(typ.Variant())),
	))
	defer span.End()

	container := t.Container()

	toast.el = t.doc.Mount(Build(toast.id, message, typ, t.config.MessageMode, toast.Dismiss))
	container.AppendChild(toast.el)

	delay := t.config.AutoDismissDelay(typ)
	toast.cancelAuto = t.sched.AfterFunc(delay, func() {
		toast.dismiss(ReasonAuto)
	})

	t.logger.Debug("toast shown",
		"id", toast.id,
		"type", string(typ),
		"auto_dismiss", delay)
	t.emit(toast.event(EventShown, ""))

	return toast
}

// Success shows a success toast.
//
//	t.Success(ctx, "Changes saved!")
func (t *Toaster) Success(ctx context.Context, message string) *Toast {
	return t.Show(ctx, message, TypeSuccess)
}

// Error shows an error toast.
func (t *Toaster) Error(ctx context.Context, message string) *Toast {
	return t.Show(ctx, message, TypeError)
}

// Warning shows a warning toast.
func (t *Toaster) Warning(ctx context.Context, message string) *Toast {
	return t.Show(ctx, message, TypeWarning)
}

// Info shows an info toast.
func (t *Toaster) Info(ctx context.Context, message string) *Toast {
	return t.Show(ctx, message, TypeInfo)
}

func (t *Toaster) emit(e Event) {
	for _, o := range t.observers {
		o.OnToastEvent(e)
	}
}

// Toast is a shown toast.
type Toast struct {
	toaster    *Toaster
	id         string
	typ        Type
	message    string
	el         *dom.Node
	state      State
	cancelAuto timer.Cancel
}

// ID returns the toast ID, also rendered as data-toast-id.
func (t *Toast) ID() string { return t.id }

// Type returns the type the toast was shown with.
func (t *Toast) Type() Type { return t.typ }

// Message returns the message the toast was shown with.
func (t *Toast) Message() string { return t.message }

// Element returns the toast's element.
func (t *Toast) Element() *dom.Node { return t.el }

// State returns the lifecycle state.
func (t *Toast) State() State { return t.state }

// Dismiss starts a manual dismissal. Calls after the first are no-ops.
func (t *Toast) Dismiss() {
	t.dismiss(ReasonManual)
}

func (t *Toast) dismiss(reason Reason) {
	if t.state != StateVisible {
		return
	}
	t.state = StateExiting

	if t.cancelAuto != nil {
		t.cancelAuto()
		t.cancelAuto = nil
	}

	tt := t.toaster
	t.el.ClassList().Add(ExitClass)
	tt.logger.Debug("toast dismissed", "id", t.id, "reason", string(reason))
	tt.emit(t.event(EventExiting, reason))

	tt.sched.AfterFunc(tt.config.ExitDelay, func() {
		t.el.Remove()
		t.state = StateRemoved
		tt.emit(t.event(EventRemoved, reason))
	})
}

func (t *Toast) event(kind EventKind, reason Reason) Event {
	return Event{
		Kind:    kind,
		ToastID: t.id,
		Type:    t.typ,
		Variant: t.typ.Variant(),
		Message: t.message,
		Reason:  reason,
	}
}

// Close simulates a click on the close button of the connected toast with
// the given ID. It reports whether such a toast was found.
func Close(doc *dom.Document, id string) bool {
	el := Find(doc, id)
	if el == nil {
		return false
	}
	btn := el.QuerySelectorClass(CloseClass)
	if btn == nil {
		return false
	}
	return btn.Dispatch("click")
}

// Find returns the connected toast element with the given ID, or nil.
func Find(doc *dom.Document, id string) *dom.Node {
	if id == "" {
		return nil
	}
	return doc.Body().Find(func(n *dom.Node) bool {
		v, ok := n.Attr(IDAttr)
		return ok && v == id
	})
}

// List returns the toast elements currently in the container, in order.
func List(doc *dom.Document, cfg Config) []*dom.Node {
	cfg = cfg.withDefaults()
	c := doc.ElementByID(cfg.ContainerID)
	if c == nil {
		return nil
	}
	var out []*dom.Node
	for _, n := range c.ChildElements() {
		if n.ClassList().Contains("toast") {
			out = append(out, n)
		}
	}
	return out
}
