package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/toastkit/pkg/dom"
	"github.com/vango-dev/toastkit/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<b>hi</b>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "&lt;b&gt;hi&lt;/b&gt;" {
		t.Errorf("got %q", html)
	}
}

func TestRenderRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Raw("<b>hi</b>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<b>hi</b>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("toast", "toast-success"),
		vdom.Span(vdom.Class("toast-message"), vdom.Text("Saved.")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<div class="toast toast-success"><span class="toast-message">Saved.</span></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Line(vdom.Y2("18"), vdom.X1("18"), vdom.Y1("6"), vdom.X2("6"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<line x1="18" x2="6" y1="6" y2="18"></line>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderEventMarkers(t *testing.T) {
	node := vdom.Button(vdom.Class("toast-close"), vdom.OnClick(func() {}))
	node.HID = "h3"

	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `data-hid="h3"`) || !strings.Contains(html, `data-on-click="true"`) {
		t.Errorf("missing hydration markers: %q", html)
	}
	if strings.Contains(html, "onclick") {
		t.Errorf("handler rendered as attribute: %q", html)
	}

	html, err = NewRenderer(RendererConfig{OmitHydration: true}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<button class="toast-close"></button>` {
		t.Errorf("OmitHydration output = %q", html)
	}
}

func TestRenderVoidAndBoolean(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.CustomElement("input", vdom.Attribute("disabled", true), vdom.Attribute("hidden", false))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<input disabled>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderNode(t *testing.T) {
	doc := dom.NewDocument()
	n := doc.Mount(vdom.Div(vdom.ID("toastContainer"), vdom.Class("toast-container")))
	doc.Body().AppendChild(n)

	html, err := NewRenderer(RendererConfig{}).RenderNode(doc.ElementByID("toastContainer"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div class="toast-container" id="toastContainer"></div>` {
		t.Errorf("got %q", html)
	}

	if html, _ := NewRenderer(RendererConfig{}).RenderNode(nil); html != "" {
		t.Errorf("nil node rendered %q", html)
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	html, err := renderer.RenderToString(vdom.Div(vdom.Div(vdom.Text("x"))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div>\n  <div>\nx  </div>\n</div>\n" {
		t.Errorf("got %q", html)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderToWriter(&buf, &vdom.VNode{Kind: vdom.VKind(99)})
	if err == nil {
		t.Error("expected error for unknown node kind")
	}
}
