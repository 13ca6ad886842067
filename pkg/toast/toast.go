package toast

// EventName is the event name dispatched to clients for toasts.
// Client-side code should listen for this event.
const EventName = "vango:toast"

// Type represents the toast notification type. Any string is accepted;
// unrecognized values fall back to the alert variant.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Variant is the visual family a Type resolves to.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantInfo    Variant = "info"
	VariantAlert   Variant = "alert"
)

// Variant returns the icon variant for the type.
func (t Type) Variant() Variant {
	switch t {
	case TypeSuccess:
		return VariantSuccess
	case TypeInfo:
		return VariantInfo
	default:
		return VariantAlert
	}
}

// Class returns the type-specific class, e.g. "toast-success".
func (t Type) Class() string {
	return "toast-" + string(t)
}

// State is a toast's position in its lifecycle.
type State uint8

const (
	StateVisible State = iota
	StateExiting
	StateRemoved
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateExiting:
		return "exiting"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Reason explains why a toast was dismissed.
type Reason string

const (
	ReasonManual Reason = "manual"
	ReasonAuto   Reason = "auto"
)

// EventKind identifies a lifecycle event.
type EventKind string

const (
	EventShown   EventKind = "shown"
	EventExiting EventKind = "exiting"
	EventRemoved EventKind = "removed"
)

// Event describes a toast lifecycle transition.
type Event struct {
	Kind    EventKind
	ToastID string
	Type    Type
	Variant Variant
	Message string
	Reason  Reason // empty for EventShown
}

// Payload returns the client event detail for the event.
//
// The client receives a CustomEvent with:
//   - event.type = "vango:toast"
//   - event.detail = { kind, id, level, variant, message, reason? }
func (e Event) Payload() map[string]any {
	p := map[string]any{
		"kind":    string(e.Kind),
		"id":      e.ToastID,
		"level":   string(e.Type),
		"variant": string(e.Variant),
		"message": e.Message,
	}
	if e.Reason != "" {
		p["reason"] = string(e.Reason)
	}
	return p
}

// Observer receives toast lifecycle events. Observers run synchronously on
// the goroutine that drives the document.
type Observer interface {
	OnToastEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnToastEvent implements Observer.
func (f ObserverFunc) OnToastEvent(e Event) { f(e) }
