package dom

import (
	"sort"

	"github.com/vango-dev/toastkit/pkg/vdom"
)

// ToVNode snapshots the node and its subtree as a builder tree. Listeners
// are exported as "on<type>" props that dispatch back into this node, so
// renderers mark them as interactive.
func (n *Node) ToVNode() *vdom.VNode {
	switch n.kind {
	case TextNode:
		return vdom.Text(n.text)
	case RawNode:
		return vdom.Raw(n.text)
	case FragmentNode:
		f := vdom.Fragment()
		for _, c := range n.children {
			f.Children = append(f.Children, c.ToVNode())
		}
		return f
	}

	v := &vdom.VNode{
		Kind:     vdom.KindElement,
		Tag:      n.tag,
		Props:    make(vdom.Props, len(n.attrs)+1),
		Children: make([]*vdom.VNode, 0, len(n.children)),
		HID:      n.hid,
	}
	for k, val := range n.attrs {
		v.Props[k] = val
	}
	if len(n.classes) > 0 {
		v.Props["class"] = n.ClassList().String()
	}
	for typ := range n.listeners {
		typ := typ
		v.Props["on"+typ] = func() { n.Dispatch(typ) }
	}
	for _, c := range n.children {
		v.Children = append(v.Children, c.ToVNode())
	}
	return v
}

func sortedKeys(p vdom.Props) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
