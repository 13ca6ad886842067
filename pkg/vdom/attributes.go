package vdom

import (
	"strconv"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Attribute creates an arbitrary attribute.
func Attribute(key string, value any) Attr { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Accessibility attributes

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// SVG presentation attributes

func ViewBox(v string) Attr        { return attr("viewBox", v) }
func Fill(v string) Attr           { return attr("fill", v) }
func Stroke(v string) Attr         { return attr("stroke", v) }
func StrokeWidth(w int) Attr       { return attr("stroke-width", strconv.Itoa(w)) }
func StrokeLinecap(v string) Attr  { return attr("stroke-linecap", v) }
func StrokeLinejoin(v string) Attr { return attr("stroke-linejoin", v) }
func Points(v string) Attr         { return attr("points", v) }
func Cx(v string) Attr             { return attr("cx", v) }
func Cy(v string) Attr             { return attr("cy", v) }
func R(v string) Attr              { return attr("r", v) }
func X1(v string) Attr             { return attr("x1", v) }
func Y1(v string) Attr             { return attr("y1", v) }
func X2(v string) Attr             { return attr("x2", v) }
func Y2(v string) Attr             { return attr("y2", v) }
