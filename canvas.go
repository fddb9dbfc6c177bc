package wag

// Stop is one color stop of a gradient, at Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  Color
}

// Canvas is the 2D immediate-mode surface the painter draws into. The method
// set mirrors a small subset of github.com/gogpu/gg's Context — shapes,
// Bezier paths, solid and gradient brushes, and a save/restore transform
// stack — so any drawing backend offering those primitives can host the
// painter unchanged. [NewGGCanvas] provides the gg-backed implementation.
//
// Brush semantics follow gg: one current brush serves both fill and stroke,
// so multi-pass drawing sets the brush before each pass. Shape methods build
// the current path; Fill and Stroke consume it, while the Preserve variants
// keep it for another pass.
type Canvas interface {
	// Push saves the current transform; Pop restores the last saved one.
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	// SetColor sets the current brush to a solid color.
	SetColor(c Color)
	// SetLinearGradient sets the current brush to a linear gradient along
	// the segment (x0, y0)-(x1, y1).
	SetLinearGradient(x0, y0, x1, y1 float64, stops ...Stop)
	// SetRadialGradient sets the current brush to a radial gradient between
	// the radii r0 and r1 around (cx, cy).
	SetRadialGradient(cx, cy, r0, r1 float64, stops ...Stop)
	SetLineWidth(w float64)

	DrawCircle(x, y, r float64)
	DrawEllipse(x, y, rx, ry float64)
	DrawRoundedRectangle(x, y, w, h, r float64)
	// DrawArc appends a circular arc from angle1 to angle2, radians,
	// measured from the positive x axis toward positive y.
	DrawArc(x, y, r, angle1, angle2 float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	Fill()
	Stroke()
	FillPreserve()
	StrokePreserve()
}
