package vdom

import "testing"

func TestCreateElementArguments(t *testing.T) {
	clicked := false
	node := Button(
		nil,
		Class("toast-close"),
		AriaLabel("Close"),
		[]Attr{Attribute("type", "button"), Attribute("data-toast-id", "t1")},
		OnClick(func() { clicked = true }),
		Svg(ViewBox("0 0 24 24")),
		"label",
		[]*VNode{nil, Span()},
	)

	if node.Kind != KindElement || node.Tag != "button" {
		t.Fatalf("got kind=%v tag=%q", node.Kind, node.Tag)
	}
	if node.Props["class"] != "toast-close" {
		t.Errorf("class = %v", node.Props["class"])
	}
	if node.Props["aria-label"] != "Close" {
		t.Errorf("aria-label = %v", node.Props["aria-label"])
	}
	if node.Props["type"] != "button" {
		t.Errorf("type = %v", node.Props["type"])
	}
	if node.Props["data-toast-id"] != "t1" {
		t.Errorf("data-toast-id = %v", node.Props["data-toast-id"])
	}
	if len(node.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(node.Children))
	}
	if node.Children[1].Kind != KindText || node.Children[1].Text != "label" {
		t.Errorf("string shorthand should become a text node, got %+v", node.Children[1])
	}

	fn, ok := node.Props["onclick"].(func())
	if !ok {
		t.Fatalf("onclick handler has type %T", node.Props["onclick"])
	}
	fn()
	if !clicked {
		t.Error("handler not stored")
	}
}

func TestClassMerging(t *testing.T) {
	node := Div(Class("toast"), Class("toast-info"))
	if got := node.Props["class"]; got != "toast toast-info" {
		t.Errorf("class = %q, want %q", got, "toast toast-info")
	}
}

func TestSvgAttributes(t *testing.T) {
	node := Line(X1("18"), Y1("6"), X2("6"), Y2("18"), StrokeWidth(2))
	want := map[string]string{"x1": "18", "y1": "6", "x2": "6", "y2": "18", "stroke-width": "2"}
	for k, v := range want {
		if node.Props[k] != v {
			t.Errorf("%s = %v, want %q", k, node.Props[k], v)
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Error("br is void")
	}
	if IsVoidElement("div") {
		t.Error("div is not void")
	}
}
