package toast

import "github.com/vango-dev/toastkit/pkg/vdom"

// strokeIcon returns the common 24x24 stroked svg wrapper.
func strokeIcon(class string, children ...any) *vdom.VNode {
	args := []any{
		vdom.ViewBox("0 0 24 24"),
		vdom.Fill("none"),
		vdom.Stroke("currentColor"),
		vdom.StrokeWidth(2),
		vdom.StrokeLinecap("round"),
		vdom.StrokeLinejoin("round"),
	}
	if class != "" {
		args = append(args, vdom.Class(class))
	}
	return vdom.Svg(append(args, children...)...)
}

func line(x1, y1, x2, y2 string) *vdom.VNode {
	return vdom.Line(vdom.X1(x1), vdom.Y1(y1), vdom.X2(x2), vdom.Y2(y2))
}

func circle() *vdom.VNode {
	return vdom.Circle(vdom.Cx("12"), vdom.Cy("12"), vdom.R("10"))
}

// Icon returns the icon for a variant: a checkmark for success, an "i"
// for info, and an exclamation mark for everything else.
func Icon(v Variant) *vdom.VNode {
	switch v {
	case VariantSuccess:
		return strokeIcon("toast-icon",
			vdom.Polyline(vdom.Points("20 6 9 17 4 12")),
		)
	case VariantInfo:
		return strokeIcon("toast-icon",
			circle(),
			line("12", "16", "12", "12"),
			line("12", "8", "12.01", "8"),
		)
	default:
		return strokeIcon("toast-icon",
			circle(),
			line("12", "8", "12", "12"),
			line("12", "16", "12.01", "16"),
		)
	}
}

// closeIcon is the X drawn inside the close button.
func closeIcon() *vdom.VNode {
	return strokeIcon("",
		line("18", "6", "6", "18"),
		line("6", "6", "18", "18"),
	)
}
