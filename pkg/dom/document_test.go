package dom

import (
	"testing"

	"github.com/vango-dev/toastkit/pkg/vdom"
)

func TestElementByID(t *testing.T) {
	doc := NewDocument()

	if got := doc.ElementByID("toastContainer"); got != nil {
		t.Fatalf("ElementByID on empty document = %v, want nil", got)
	}

	el := doc.CreateElement("div")
	el.SetID("toastContainer")
	if got := doc.ElementByID("toastContainer"); got != nil {
		t.Fatal("detached elements must not be found")
	}

	doc.Body().AppendChild(el)
	if got := doc.ElementByID("toastContainer"); got != el {
		t.Fatalf("ElementByID = %v, want %v", got, el)
	}
}

func TestMount(t *testing.T) {
	doc := NewDocument()
	clicks := 0

	n := doc.Mount(vdom.Div(vdom.Class("toast", "toast-info"),
		vdom.Span(vdom.Class("toast-message"), vdom.Text("Heads up")),
		vdom.Button(vdom.Class("toast-close"), vdom.AriaLabel("Close"),
			vdom.OnClick(func() { clicks++ }),
		),
		vdom.Fragment(vdom.Text("a"), vdom.Text("b")),
	))

	if n.Kind() != ElementNode || n.Tag() != "div" {
		t.Fatalf("mounted %v", n)
	}
	if got := n.ClassList().String(); got != "toast toast-info" {
		t.Errorf("class = %q", got)
	}
	if len(n.Children()) != 4 {
		t.Fatalf("children = %d, want 4 (fragment flattened)", len(n.Children()))
	}
	if got := n.QuerySelectorClass("toast-message").TextContent(); got != "Heads up" {
		t.Errorf("message text = %q", got)
	}

	btn := n.QuerySelectorClass("toast-close")
	if label, _ := btn.Attr("aria-label"); label != "Close" {
		t.Errorf("aria-label = %q", label)
	}
	if btn.HID() == "" {
		t.Error("interactive node should have a HID")
	}
	if _, ok := btn.Attr("onclick"); ok {
		t.Error("handlers must not become attributes")
	}
	if !btn.Dispatch("click") || clicks != 1 {
		t.Errorf("click dispatch ran %d handlers", clicks)
	}
	if n.Dispatch("click") {
		t.Error("events must not bubble")
	}
}

func TestAppendAndRemove(t *testing.T) {
	doc := NewDocument()
	var muts []Mutation
	unsubscribe := doc.Observe(func(m Mutation) { muts = append(muts, m) })

	a := doc.CreateElement("div")
	b := doc.CreateElement("div")
	doc.Body().AppendChild(a)
	a.AppendChild(b)

	if !b.IsConnected() {
		t.Error("b should be connected")
	}

	b.Remove()
	if b.IsConnected() || b.Parent() != nil {
		t.Error("b should be detached")
	}
	b.Remove() // detached: no-op

	if len(muts) != 3 {
		t.Fatalf("mutations = %d, want 3", len(muts))
	}
	if muts[2].Type != MutationRemove || muts[2].Node != b || muts[2].Target != a {
		t.Errorf("last mutation = %+v", muts[2])
	}

	unsubscribe()
	doc.Body().AppendChild(b)
	if len(muts) != 3 {
		t.Error("unsubscribed observer was notified")
	}
}

func TestAppendMovesNode(t *testing.T) {
	doc := NewDocument()
	a := doc.Body().AppendChild(doc.CreateElement("div"))
	b := doc.Body().AppendChild(doc.CreateElement("div"))
	c := a.AppendChild(doc.CreateElement("span"))

	b.AppendChild(c)
	if len(a.Children()) != 0 || c.Parent() != b {
		t.Error("append should move the node")
	}
}

func TestClassList(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	classMuts := 0
	doc.Observe(func(m Mutation) {
		if m.Type == MutationClass {
			classMuts++
		}
	})

	el.ClassList().Add("toast", "toast-success")
	el.ClassList().Add("toast") // already present
	el.ClassList().Add("toast-exit")

	if got := el.ClassList().String(); got != "toast toast-success toast-exit" {
		t.Errorf("classes = %q", got)
	}
	if !el.ClassList().Contains("toast-exit") {
		t.Error("Contains(toast-exit) = false")
	}
	el.ClassList().Remove("toast-exit", "missing")
	if el.ClassList().Contains("toast-exit") {
		t.Error("toast-exit should be removed")
	}
	if classMuts != 3 {
		t.Errorf("class mutations = %d, want 3", classMuts)
	}
}

func TestToVNode(t *testing.T) {
	doc := NewDocument()
	fired := false
	n := doc.Mount(vdom.Button(vdom.ID("b"), vdom.Class("x"),
		vdom.OnClick(func() { fired = true }), vdom.Text("ok")))

	v := n.ToVNode()
	if v.Tag != "button" || v.Props["id"] != "b" || v.Props["class"] != "x" {
		t.Fatalf("snapshot = %+v", v)
	}
	if v.HID != n.HID() {
		t.Errorf("HID = %q, want %q", v.HID, n.HID())
	}
	fn, ok := v.Props["onclick"].(func())
	if !ok {
		t.Fatalf("onclick prop type %T", v.Props["onclick"])
	}
	fn()
	if !fired {
		t.Error("snapshot handler should dispatch into the live node")
	}
	if len(v.Children) != 1 || v.Children[0].Text != "ok" {
		t.Errorf("children = %+v", v.Children)
	}
}

func TestObserversNotifiedInRegistrationOrder(t *testing.T) {
	doc := NewDocument()
	var order []int
	var unsubs []func()
	for i := 0; i < 8; i++ {
		i := i
		unsubs = append(unsubs, doc.Observe(func(Mutation) { order = append(order, i) }))
	}
	unsubs[3]()

	doc.Body().AppendChild(doc.CreateElement("div"))

	want := []int{0, 1, 2, 4, 5, 6, 7}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestElementByHID(t *testing.T) {
	doc := NewDocument()
	btn := doc.Mount(vdom.Button(vdom.OnClick(func() {})))
	if btn.HID() == "" {
		t.Fatal("node with a listener should get a hydration ID")
	}
	if doc.ElementByHID(btn.HID()) != nil {
		t.Error("detached node should not be found")
	}

	doc.Body().AppendChild(btn)
	if doc.ElementByHID(btn.HID()) != btn {
		t.Error("connected node not found by hydration ID")
	}
	if doc.ElementByHID("") != nil {
		t.Error("empty hydration ID should match nothing")
	}
}
