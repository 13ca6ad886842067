package toast

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultContainerID is the id of the shared container element.
	DefaultContainerID = "toastContainer"

	// DefaultContainerClass is the class of the shared container element.
	DefaultContainerClass = "toast-container"

	// DefaultInfoDelay is the auto-dismiss delay for info toasts.
	DefaultInfoDelay = 10 * time.Second

	// DefaultDelay is the auto-dismiss delay for every other type.
	DefaultDelay = 5 * time.Second

	// DefaultExitDelay is how long the toast-exit state lasts before removal.
	DefaultExitDelay = 300 * time.Millisecond

	// ExitClass is added to a toast when it starts dismissing.
	ExitClass = "toast-exit"
)

// MessageMode controls how the message is inserted into the toast.
type MessageMode string

const (
	// MessageText inserts the message as a text node.
	MessageText MessageMode = "text"

	// MessageMarkup inserts the message as raw HTML. Callers passing
	// untrusted content open an injection hole.
	MessageMarkup MessageMode = "markup"
)

// ParseMessageMode parses "text" or "markup". The empty string is text.
func ParseMessageMode(s string) (MessageMode, error) {
	switch MessageMode(s) {
	case "", MessageText:
		return MessageText, nil
	case MessageMarkup:
		return MessageMarkup, nil
	default:
		return "", fmt.Errorf("unknown message mode %q", s)
	}
}

// Config holds toast behavior settings.
type Config struct {
	ContainerID    string
	ContainerClass string

	// InfoDelay is the auto-dismiss delay for TypeInfo.
	InfoDelay time.Duration

	// DefaultDelay is the auto-dismiss delay for all other types.
	DefaultDelay time.Duration

	// ExitDelay is the time between adding toast-exit and removal.
	ExitDelay time.Duration

	// MessageMode selects text (escaped) or markup insertion.
	MessageMode MessageMode
}

// DefaultConfig returns the standard toast settings.
func DefaultConfig() Config {
	return Config{
		ContainerID:    DefaultContainerID,
		ContainerClass: DefaultContainerClass,
		InfoDelay:      DefaultInfoDelay,
		DefaultDelay:   DefaultDelay,
		ExitDelay:      DefaultExitDelay,
		MessageMode:    MessageText,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ContainerID == "" {
		c.ContainerID = d.ContainerID
	}
	if c.ContainerClass == "" {
		c.ContainerClass = d.ContainerClass
	}
	if c.InfoDelay <= 0 {
		c.InfoDelay = d.InfoDelay
	}
	if c.DefaultDelay <= 0 {
		c.DefaultDelay = d.DefaultDelay
	}
	if c.ExitDelay <= 0 {
		c.ExitDelay = d.ExitDelay
	}
	if c.MessageMode == "" {
		c.MessageMode = d.MessageMode
	}
	return c
}

// AutoDismissDelay returns the auto-dismiss delay for typ.
func (c Config) AutoDismissDelay(typ Type) time.Duration {
	if typ == TypeInfo {
		return c.InfoDelay
	}
	return c.DefaultDelay
}

// Option configures a Toaster.
type Option func(*Toaster)

// WithConfig sets the toast configuration. Zero fields use defaults.
func WithConfig(cfg Config) Option {
	return func(t *Toaster) {
		t.config = cfg.withDefaults()
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Toaster) {
		if logger != nil {
			t.logger = logger.With("component", "toast")
		}
	}
}

// WithObserver adds a lifecycle observer.
func WithObserver(o Observer) Option {
	return func(t *Toaster) {
		if o != nil {
			t.observers = append(t.observers, o)
		}
	}
}

// WithTracer sets the tracer used for Show spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(t *Toaster) {
		if tracer != nil {
			t.tracer = tracer
		}
	}
}

// WithIDFunc sets the toast ID generator.
func WithIDFunc(fn func() string) Option {
	return func(t *Toaster) {
		if fn != nil {
			t.newID = fn
		}
	}
}

func newUUID() string {
	return uuid.NewString()
}
