package dom

import (
	"slices"
	"strings"
)

// ClassList is a live view of a node's class attribute.
type ClassList struct {
	node *Node
}

// Add appends classes not already present. A change publishes one
// MutationClass.
func (c *ClassList) Add(classes ...string) {
	changed := false
	for _, cls := range classes {
		if cls == "" || slices.Contains(c.node.classes, cls) {
			continue
		}
		c.node.classes = append(c.node.classes, cls)
		changed = true
	}
	if changed {
		c.node.doc.notify(Mutation{Type: MutationClass, Target: c.node})
	}
}

// Remove deletes the given classes. A change publishes one MutationClass.
func (c *ClassList) Remove(classes ...string) {
	before := len(c.node.classes)
	c.node.classes = slices.DeleteFunc(c.node.classes, func(cls string) bool {
		return slices.Contains(classes, cls)
	})
	if len(c.node.classes) != before {
		c.node.doc.notify(Mutation{Type: MutationClass, Target: c.node})
	}
}

// Contains reports whether class is present.
func (c *ClassList) Contains(class string) bool {
	return slices.Contains(c.node.classes, class)
}

// Values returns a copy of the classes in order.
func (c *ClassList) Values() []string {
	return slices.Clone(c.node.classes)
}

// String returns the space-joined class attribute value.
func (c *ClassList) String() string {
	return strings.Join(c.node.classes, " ")
}
