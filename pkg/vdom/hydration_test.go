package vdom

import "testing"

func TestHIDGenerator(t *testing.T) {
	gen := NewHIDGenerator()

	if h := gen.Next(); h != "h1" {
		t.Errorf("first HID = %v, want h1", h)
	}
	if h := gen.Next(); h != "h2" {
		t.Errorf("second HID = %v, want h2", h)
	}
	if h := NewHIDGenerator().Next(); h != "h1" {
		t.Errorf("generators must not share state, got %v", h)
	}
}

func TestFragment(t *testing.T) {
	f := Fragment(nil, Text("a"), "b", []*VNode{Text("c"), nil})
	if f.Kind != KindFragment {
		t.Fatalf("kind = %v", f.Kind)
	}
	if len(f.Children) != 3 {
		t.Errorf("children = %d, want 3", len(f.Children))
	}
}
