// Package vdom provides the element builders used to describe toast markup.
//
// A VNode tree is an in-memory description of markup: elements, text,
// fragments and raw HTML. Trees are built with variadic factory functions
// and later mounted into a live document (package dom) or rendered to HTML
// (package render).
//
// # Element API
//
//	Div(Class("toast", "toast-success"),
//	    Span(Class("toast-message"), Text("Saved.")),
//	    Button(Class("toast-close"), AriaLabel("Close"), OnClick(close)),
//	)
//
// Arguments may be nil, Attr, []Attr, *VNode, []*VNode, string (text
// shorthand) or EventHandler. Nil arguments are skipped, which allows
// conditional attributes and children.
//
// # Hydration IDs
//
// HIDGenerator hands out the "h1", "h2", ... IDs that a live document
// assigns to nodes with listeners. Rendered as data-hid, they let a client
// address the node when it reports an event.
package vdom
