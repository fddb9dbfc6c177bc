package wag

import (
	"math"

	"github.com/gogpu/gg"
)

// ggCanvas adapts a gg.Context to the Canvas interface.
//
// gg stores paths in device coordinates (points are transformed as they are
// added) and evaluates brushes in device space too. The painter specifies
// gradients in local coordinates, so the two gradient methods map their
// geometry through the current transform before building the brush.
type ggCanvas struct {
	dc *gg.Context
}

// NewGGCanvas wraps dc so it can serve as the painter's Canvas.
// The caller keeps ownership of dc and reads the pixels back from it.
func NewGGCanvas(dc *gg.Context) Canvas {
	return &ggCanvas{dc: dc}
}

func ggColor(c Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// --- Transform stack ---

func (g *ggCanvas) Push()                { g.dc.Push() }
func (g *ggCanvas) Pop()                 { g.dc.Pop() }
func (g *ggCanvas) Translate(x, y float64) { g.dc.Translate(x, y) }
func (g *ggCanvas) Rotate(radians float64) { g.dc.Rotate(radians) }
func (g *ggCanvas) Scale(x, y float64)     { g.dc.Scale(x, y) }

// --- Brush state ---

func (g *ggCanvas) SetColor(c Color) {
	g.dc.SetFillBrush(gg.Solid(ggColor(c)))
}

func (g *ggCanvas) SetLinearGradient(x0, y0, x1, y1 float64, stops ...Stop) {
	ax0, ay0 := g.dc.TransformPoint(x0, y0)
	ax1, ay1 := g.dc.TransformPoint(x1, y1)
	b := gg.NewLinearGradientBrush(ax0, ay0, ax1, ay1)
	for _, s := range stops {
		b.AddColorStop(s.Offset, ggColor(s.Color))
	}
	g.dc.SetFillBrush(b)
}

func (g *ggCanvas) SetRadialGradient(cx, cy, r0, r1 float64, stops ...Stop) {
	acx, acy := g.dc.TransformPoint(cx, cy)
	b := gg.NewRadialGradientBrush(acx, acy, g.deviceRadius(cx, cy, r0), g.deviceRadius(cx, cy, r1))
	for _, s := range stops {
		b.AddColorStop(s.Offset, ggColor(s.Color))
	}
	g.dc.SetFillBrush(b)
}

// deviceRadius converts a radius around (cx, cy) to device space by measuring
// the transformed distance. Exact for the translate/rotate/flip transforms the
// painter uses.
func (g *ggCanvas) deviceRadius(cx, cy, r float64) float64 {
	acx, acy := g.dc.TransformPoint(cx, cy)
	aex, aey := g.dc.TransformPoint(cx+r, cy)
	return math.Hypot(aex-acx, aey-acy)
}

func (g *ggCanvas) SetLineWidth(w float64) { g.dc.SetLineWidth(w) }

// --- Shapes and paths ---

func (g *ggCanvas) DrawCircle(x, y, r float64)          { g.dc.DrawCircle(x, y, r) }
func (g *ggCanvas) DrawEllipse(x, y, rx, ry float64)    { g.dc.DrawEllipse(x, y, rx, ry) }
func (g *ggCanvas) DrawRoundedRectangle(x, y, w, h, r float64) {
	g.dc.DrawRoundedRectangle(x, y, w, h, r)
}
func (g *ggCanvas) DrawArc(x, y, r, angle1, angle2 float64) { g.dc.DrawArc(x, y, r, angle1, angle2) }

func (g *ggCanvas) MoveTo(x, y float64)                   { g.dc.MoveTo(x, y) }
func (g *ggCanvas) LineTo(x, y float64)                   { g.dc.LineTo(x, y) }
func (g *ggCanvas) QuadraticTo(cx, cy, x, y float64)      { g.dc.QuadraticTo(cx, cy, x, y) }
func (g *ggCanvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	g.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (g *ggCanvas) ClosePath() { g.dc.ClosePath() }

// --- Paint operations ---

func (g *ggCanvas) Fill()           { g.dc.Fill() }
func (g *ggCanvas) Stroke()         { g.dc.Stroke() }
func (g *ggCanvas) FillPreserve()   { g.dc.FillPreserve() }
func (g *ggCanvas) StrokePreserve() { g.dc.StrokePreserve() }
