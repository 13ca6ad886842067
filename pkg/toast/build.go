package toast

import "github.com/vango-dev/toastkit/pkg/vdom"

const (
	// MessageClass marks the message span.
	MessageClass = "toast-message"

	// CloseClass marks the close button.
	CloseClass = "toast-close"

	// IDAttr carries the toast ID on the toast element.
	IDAttr = "data-toast-id"
)

// Build returns the markup for a single toast: icon, message and close
// button, in that order. onClose is bound to the close button's click.
func Build(id, message string, typ Type, mode MessageMode, onClose func()) *vdom.VNode {
	var msg *vdom.VNode
	if mode == MessageMarkup {
		msg = vdom.Raw(message)
	} else {
		msg = vdom.Text(message)
	}

	var closeHandler any
	if onClose != nil {
		closeHandler = vdom.OnClick(onClose)
	}

	return vdom.Div(
		vdom.Class("toast", typ.Class()),
		vdom.Attribute(IDAttr, id),
		Icon(typ.Variant()),
		vdom.Span(vdom.Class(MessageClass), msg),
		vdom.Button(vdom.Class(CloseClass), vdom.AriaLabel("Close"), closeHandler,
			closeIcon(),
		),
	)
}
