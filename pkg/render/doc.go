// Package render provides server-side rendering of toast markup.
//
// The render package converts VNode trees, or live dom nodes, into HTML
// strings or streams:
//
//   - HTML5 compliant element rendering
//   - Text and attribute escaping
//   - Void element and boolean attribute handling
//   - Hydration markers (data-hid, data-on-<event>) for interactive nodes
//   - Full page rendering with DOCTYPE, head and body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To render a live node:
//
//	html, err := renderer.RenderNode(doc.ElementByID("toastContainer"))
//
// # Security
//
// All text content is escaped. Raw HTML is inserted through KindRaw nodes
// only, and should only carry trusted content.
package render
