package dom

import (
	"fmt"
	"strings"
)

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	ElementNode  NodeKind = iota // <div>, <button>, etc.
	TextNode                     // Plain text
	RawNode                      // Unescaped markup
	FragmentNode                 // Children are moved on append
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case RawNode:
		return "Raw"
	case FragmentNode:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Event is delivered to listeners by Node.Dispatch.
type Event struct {
	Type   string
	Target *Node
}

// Listener handles a dispatched event.
type Listener func(Event)

// Node is a live node owned by a Document.
type Node struct {
	doc       *Document
	kind      NodeKind
	tag       string
	attrs     map[string]string
	attrOrder []string
	classes   []string
	text      string
	hid       string
	parent    *Node
	children  []*Node
	listeners map[string][]Listener
}

// Kind returns the node kind.
func (n *Node) Kind() NodeKind { return n.kind }

// Tag returns the element tag name. Empty for non-element nodes.
func (n *Node) Tag() string { return n.tag }

// HID returns the hydration ID assigned to an interactive node.
func (n *Node) HID() string { return n.hid }

// Document returns the owning document.
func (n *Node) Document() *Document { return n.doc }

// ID returns the id attribute.
func (n *Node) ID() string { return n.attrs["id"] }

// SetID sets the id attribute.
func (n *Node) SetID(id string) { n.SetAttr("id", id) }

// Attr returns the named attribute and whether it is present.
// The class attribute is served from the class list.
func (n *Node) Attr(name string) (string, bool) {
	if name == "class" {
		if len(n.classes) == 0 {
			return "", false
		}
		return strings.Join(n.classes, " "), true
	}
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr sets an attribute. Setting "class" replaces the class list.
func (n *Node) SetAttr(name, value string) {
	if n.kind != ElementNode {
		return
	}
	if name == "class" {
		n.classes = splitClasses(value)
		n.doc.notify(Mutation{Type: MutationClass, Target: n})
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	if _, exists := n.attrs[name]; !exists {
		n.attrOrder = append(n.attrOrder, name)
	}
	n.attrs[name] = value
}

// ClassList returns a view of the node's classes.
func (n *Node) ClassList() *ClassList { return &ClassList{node: n} }

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildElements returns only the element children.
func (n *Node) ChildElements() []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.kind == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// AppendChild appends child as the last child of n and returns it.
// A child that already has a parent is moved. Appending a fragment moves
// its children instead.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil {
		return nil
	}
	if child.kind == FragmentNode {
		for _, c := range child.Children() {
			n.AppendChild(c)
		}
		return child
	}
	if child.parent != nil {
		child.Remove()
	}
	child.parent = n
	n.children = append(n.children, child)
	n.doc.notify(Mutation{Type: MutationAppend, Target: n, Node: child})
	return child
}

// Remove detaches the node from its parent. Removing a detached node is a
// no-op and publishes nothing.
func (n *Node) Remove() {
	parent := n.parent
	if parent == nil {
		return
	}
	for i, c := range parent.children {
		if c == n {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	n.parent = nil
	n.doc.notify(Mutation{Type: MutationRemove, Target: parent, Node: n})
}

// IsConnected reports whether the node is attached to the document body.
func (n *Node) IsConnected() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == n.doc.body {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of the node and its
// descendants. Raw nodes contribute their markup source.
func (n *Node) TextContent() string {
	switch n.kind {
	case TextNode, RawNode:
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Find returns the first descendant (depth-first, excluding n) matching fn.
func (n *Node) Find(fn func(*Node) bool) *Node {
	for _, c := range n.children {
		if fn(c) {
			return c
		}
		if found := c.Find(fn); found != nil {
			return found
		}
	}
	return nil
}

// QuerySelectorClass returns the first descendant element carrying class.
func (n *Node) QuerySelectorClass(class string) *Node {
	return n.Find(func(c *Node) bool {
		return c.kind == ElementNode && c.ClassList().Contains(class)
	})
}

// AddEventListener registers fn for events of the given type.
func (n *Node) AddEventListener(typ string, fn Listener) {
	if fn == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	n.listeners[typ] = append(n.listeners[typ], fn)
	if n.hid == "" {
		n.hid = n.doc.hids.Next()
	}
}

// Dispatch runs the listeners registered for typ, in registration order.
// Events do not bubble. It reports whether any listener ran.
func (n *Node) Dispatch(typ string) bool {
	ls := n.listeners[typ]
	if len(ls) == 0 {
		return false
	}
	ev := Event{Type: typ, Target: n}
	for _, fn := range append([]Listener(nil), ls...) {
		fn(ev)
	}
	return true
}

// String returns a short debug description.
func (n *Node) String() string {
	switch n.kind {
	case ElementNode:
		if id := n.ID(); id != "" {
			return fmt.Sprintf("<%s#%s>", n.tag, id)
		}
		if len(n.classes) > 0 {
			return fmt.Sprintf("<%s.%s>", n.tag, strings.Join(n.classes, "."))
		}
		return "<" + n.tag + ">"
	case TextNode:
		return fmt.Sprintf("%q", n.text)
	default:
		return n.kind.String()
	}
}

func splitClasses(s string) []string {
	return strings.Fields(s)
}
