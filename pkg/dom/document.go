package dom

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vango-dev/toastkit/pkg/vdom"
)

// MutationType identifies a document change.
type MutationType uint8

const (
	MutationAppend MutationType = iota // Node appended to Target
	MutationRemove                     // Node removed from Target
	MutationClass                      // Target's class list changed
)

// String returns the string representation of the MutationType.
func (t MutationType) String() string {
	switch t {
	case MutationAppend:
		return "append"
	case MutationRemove:
		return "remove"
	case MutationClass:
		return "class"
	default:
		return "unknown"
	}
}

// Mutation describes a single change to the document.
type Mutation struct {
	Type   MutationType
	Target *Node
	Node   *Node
}

// Document is the root of a live node tree.
type Document struct {
	body      *Node
	hids      *vdom.HIDGenerator
	observers []observer
	nextObs   int
}

type observer struct {
	id int
	fn func(Mutation)
}

// NewDocument creates an empty document with a body.
func NewDocument() *Document {
	d := &Document{
		hids: vdom.NewHIDGenerator(),
	}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the body element.
func (d *Document) Body() *Node { return d.body }

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *Node {
	return &Node{doc: d, kind: ElementNode, tag: strings.ToLower(tag)}
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *Node {
	return &Node{doc: d, kind: TextNode, text: text}
}

// ElementByID returns the first connected element with the given id, or nil.
func (d *Document) ElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	if d.body.ID() == id {
		return d.body
	}
	return d.body.Find(func(n *Node) bool {
		return n.kind == ElementNode && n.ID() == id
	})
}

// ElementByHID returns the connected node with the given hydration ID, or nil.
func (d *Document) ElementByHID(hid string) *Node {
	if hid == "" {
		return nil
	}
	return d.body.Find(func(n *Node) bool { return n.hid == hid })
}

// Observe registers fn for every subsequent mutation and returns a
// function that unregisters it. Observers are notified in registration
// order.
func (d *Document) Observe(fn func(Mutation)) (unsubscribe func()) {
	id := d.nextObs
	d.nextObs++
	d.observers = append(d.observers, observer{id: id, fn: fn})
	return func() {
		d.observers = slices.DeleteFunc(d.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

func (d *Document) notify(m Mutation) {
	for _, o := range slices.Clone(d.observers) {
		o.fn(m)
	}
}

// Mount converts a builder tree into detached live nodes. Props whose key
// starts with "on" and whose value is a func() or Listener become event
// listeners; all other props become attributes.
func (d *Document) Mount(v *vdom.VNode) *Node {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case vdom.KindText:
		return d.CreateTextNode(v.Text)
	case vdom.KindRaw:
		return &Node{doc: d, kind: RawNode, text: v.Text}
	case vdom.KindFragment:
		frag := &Node{doc: d, kind: FragmentNode}
		d.mountChildren(frag, v)
		return frag
	}

	n := d.CreateElement(v.Tag)
	keys := sortedKeys(v.Props)
	for _, key := range keys {
		value := v.Props[key]
		if strings.HasPrefix(key, "on") {
			if l := toListener(value); l != nil {
				n.AddEventListener(key[2:], l)
				continue
			}
		}
		if key == "class" {
			n.classes = splitClasses(attrString(value))
			continue
		}
		n.SetAttr(key, attrString(value))
	}
	d.mountChildren(n, v)
	return n
}

func (d *Document) mountChildren(parent *Node, v *vdom.VNode) {
	for _, c := range v.Children {
		child := d.Mount(c)
		if child == nil {
			continue
		}
		if child.kind == FragmentNode {
			for _, fc := range child.children {
				fc.parent = parent
				parent.children = append(parent.children, fc)
			}
			continue
		}
		child.parent = parent
		parent.children = append(parent.children, child)
	}
}

func toListener(v any) Listener {
	switch fn := v.(type) {
	case func():
		return func(Event) { fn() }
	case func(Event):
		return fn
	case Listener:
		return fn
	default:
		return nil
	}
}

func attrString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", x)
	}
}
