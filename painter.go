package wag

import "math"

const (
	// depthDim multiplies the colors and the stroke width of back-layer
	// parts so overlapping limbs read at a glance.
	depthDim = 0.90

	// outlineDim derives the clay outline color from the coat color.
	outlineDim = 0.40

	// tailRestTilt is how far above horizontal a straight tail sits before
	// Pose.TailAngle is added.
	tailRestTilt = 0.55

	// mouthOpenThreshold separates a closed-mouth smile line from an open
	// mouth with a visible inside.
	mouthOpenThreshold = 0.25
)

// Fixed detail colors shared by every breed. Coat colors come from the
// Skeleton; these are the parts that look the same on every dog.
var (
	eyeColor    = Color{R: 0.15, G: 0.12, B: 0.11, A: 1}
	noseColor   = Color{R: 0.13, G: 0.10, B: 0.09, A: 1}
	mouthColor  = Color{R: 0.32, G: 0.14, B: 0.14, A: 1}
	tongueColor = Color{R: 0.95, G: 0.45, B: 0.55, A: 1}
	blushColor  = Color{R: 0.96, G: 0.55, B: 0.60, A: 0.45}
	glintColor  = Color{R: 1, G: 1, B: 1, A: 0.9}
)

// maskedBreeds carry a light mask around the eyes. This is the one breed
// look no proportion flag captures, so it keys off the identifier.
var maskedBreeds = map[Breed]bool{
	BreedHusky:   true,
	BreedAussie:  true,
	BreedBernese: true,
}

// Frame identifies one rendered image completely: if two Frames are equal,
// Paint produces identical pixels for them. It is comparable so hosts can
// keep the previous Frame and skip repaints.
type Frame struct {
	Breed      Breed
	Pose       Pose
	Expression Expression
}

// ShouldRepaint reports whether next would render differently from prev.
// Hosts that cache the last bitmap call this once per tick and repaint only
// when it returns true.
func ShouldRepaint(prev, next Frame) bool {
	return prev != next
}

// Paint draws the dog described by skel in the given pose and expression
// onto c. The drawing fills a w by h viewport: the dog stands on an implied
// ground line near the bottom and faces right unless the pose says otherwise.
//
// Layers go back to front: rear legs, coat texture, torso, tail, head, front
// legs. Every solid part is drawn twice, outline stroke then fill, which is
// what gives the figure its clay-toy finish. Rear-layer parts are dimmed by
// depthDim.
//
// Paint keeps no state between calls and touches nothing but c.
func Paint(c Canvas, skel Skeleton, pose Pose, expr Expression, w, h float64) {
	m := computeMetrics(skel, w, h)
	face := expr.Face()
	outline := skel.Primary.Dim(outlineDim)

	c.Push()
	if !pose.FacingRight {
		// Mirror the whole viewport. Everything below draws the dog
		// facing right.
		c.Translate(w, 0)
		c.Scale(-1, 1)
	}
	c.Translate(m.cx, m.torsoCY-pose.Lift*m.unit)
	c.Rotate(-pose.TorsoAngle)

	drawLeg(c, m, skel.Primary, outline, m.hipRear-m.legW*0.45, pose.BackLeftLeg, pose.BackLeftKnee, depthDim)
	drawLeg(c, m, skel.Primary, outline, m.hipRear+m.legW*0.45, pose.BackRightLeg, pose.BackRightKnee, depthDim)

	if skel.Fuzzy {
		drawCoatFuzz(c, m, skel.Primary, outline)
	}
	c.DrawRoundedRectangle(-m.torsoW/2, -m.unit/2, m.torsoW, m.unit, m.unit*0.42)
	paintShapeRadial(c, -m.torsoW*0.08, -m.unit*0.24, m.torsoW*0.85, skel.Primary, outline, m.outline)

	// Belly patch, a soft fill with no outline.
	c.DrawEllipse(m.torsoW*0.05, m.unit*0.26, m.torsoW*0.30, m.unit*0.26)
	c.SetColor(skel.Secondary)
	c.Fill()

	if skel.Spotted {
		drawSpots(c, m, skel.Accent)
	}

	drawTail(c, m, skel, outline, pose.TailAngle)
	drawHead(c, m, skel, face, outline, pose.HeadAngle)

	drawLeg(c, m, skel.Primary, outline, m.hipFront-m.legW*0.45, pose.FrontLeftLeg, pose.FrontLeftKnee, 1)
	drawLeg(c, m, skel.Primary, outline, m.hipFront+m.legW*0.45, pose.FrontRightLeg, pose.FrontRightKnee, 1)

	c.Pop()
}

// paintShape draws the current path twice: the outline stroke first, then the
// fill on the preserved path. The fill covers the inner half of the stroke,
// leaving a uniform outline around the shape.
func paintShape(c Canvas, fill, outline Color, width float64) {
	c.SetColor(outline)
	c.SetLineWidth(width)
	c.StrokePreserve()
	c.SetColor(fill)
	c.Fill()
}

// paintShapeRadial is paintShape with a radial highlight instead of a flat
// fill. The highlight center is in the same local coordinates as the path.
func paintShapeRadial(c Canvas, cx, cy, r float64, fill, outline Color, width float64) {
	c.SetColor(outline)
	c.SetLineWidth(width)
	c.StrokePreserve()
	c.SetRadialGradient(cx, cy, r*0.10, r,
		Stop{Offset: 0, Color: fill.Lighten(0.22)},
		Stop{Offset: 1, Color: fill})
	c.Fill()
}

// drawLeg draws one leg hanging from (hipX, m.hipY): an upper segment that
// rotates about the hip by legAngle, a lower segment that adds kneeAngle at
// the knee, and a paw. Positive legAngle swings the paw toward the nose;
// positive kneeAngle bends the lower leg toward the tail. dim < 1 pushes the
// leg into the back layer.
func drawLeg(c Canvas, m metrics, coat, outline Color, hipX, legAngle, kneeAngle, dim float64) {
	upper := m.legLen * 0.55
	lower := m.legLen * 0.45
	fill := coat.Dim(dim)
	line := outline.Dim(dim)
	width := m.outline * dim

	c.Push()
	c.Translate(hipX, m.hipY)
	c.Rotate(-legAngle)
	c.DrawRoundedRectangle(-m.legW/2, -m.legW*0.35, m.legW, upper+m.legW*0.35, m.legW*0.45)
	paintShape(c, fill, line, width)

	c.Translate(0, upper)
	c.Rotate(kneeAngle)
	c.DrawRoundedRectangle(-m.legW*0.42, -m.legW*0.25, m.legW*0.84, lower+m.legW*0.25, m.legW*0.38)
	paintShape(c, fill, line, width)

	c.DrawEllipse(m.legW*0.18, lower, m.legW*0.60, m.legW*0.35)
	paintShape(c, fill, line, width)
	c.Pop()
}

// drawCoatFuzz scallops the torso's top edge with a row of bumps. The torso
// is drawn over the bottom half of each bump, so only the fluffy crest shows.
func drawCoatFuzz(c Canvas, m metrics, coat, outline Color) {
	const bumps = 6
	r := m.unit * 0.16
	for i := 0; i < bumps; i++ {
		t := (float64(i) + 0.5) / bumps
		c.DrawCircle(-m.torsoW/2+t*m.torsoW, -m.unit/2, r)
		paintShape(c, coat, outline, m.outline*0.9)
	}
}

// drawSpots lays a few translucent accent patches on the torso. Positions are
// fixed fractions of the torso so every spotted breed gets the same pattern
// scaled to its body.
func drawSpots(c Canvas, m metrics, accent Color) {
	spots := [...]struct{ x, y, rx, ry float64 }{
		{-0.26, -0.16, 0.16, 0.12},
		{0.08, 0.10, 0.12, 0.09},
		{0.27, -0.06, 0.10, 0.08},
	}
	c.SetColor(accent.WithAlpha(accent.A * 0.85))
	for _, s := range spots {
		c.DrawEllipse(s.x*m.torsoW, s.y*m.unit, s.rx*m.torsoW, s.ry*m.unit)
		c.Fill()
	}
}

// drawTail draws either a curled loop over the back or a straight tail,
// rotated by angle about its base. For the straight tail the tip points away
// from the nose, so a positive angle raises it.
func drawTail(c Canvas, m metrics, skel Skeleton, outline Color, angle float64) {
	c.Push()
	c.Translate(-m.torsoW/2+m.tailW*0.25, -m.unit*0.26)
	if skel.CurlTail {
		// The loop is stroked twice, a wide outline pass under a
		// narrower coat pass, because an open path has no fill.
		c.Rotate(angle * 0.6)
		c.DrawArc(0, -m.tailLen*0.26, m.tailLen*0.26, math.Pi*0.60, math.Pi*2.35)
		c.SetColor(outline)
		c.SetLineWidth(m.tailW + m.outline*2)
		c.StrokePreserve()
		c.SetColor(skel.Primary)
		c.SetLineWidth(m.tailW)
		c.Stroke()
	} else {
		c.Rotate(tailRestTilt + angle)
		c.DrawRoundedRectangle(-m.tailLen, -m.tailW/2, m.tailLen+m.tailW*0.2, m.tailW, m.tailW/2)
		paintShape(c, skel.Primary, outline, m.outline)
	}
	c.Pop()
}

// drawHead draws the head group: far ear, skull, near ear, face mask on the
// breeds that carry one, muzzle, nose and the expression face, all rotated
// together about the neck by angle.
func drawHead(c Canvas, m metrics, skel Skeleton, face Face, outline Color, angle float64) {
	c.Push()
	c.Translate(m.torsoW/2-m.headR*0.12, -m.unit*0.30)
	c.Rotate(-angle)

	hx := m.headR * 0.30
	hy := -m.headR * 0.46

	drawEar(c, m, skel, outline, hx-m.headR*0.42, hy-m.headR*0.52, -0.20, depthDim, false)

	c.DrawCircle(hx, hy, m.headR)
	paintShapeRadial(c, hx-m.headR*0.22, hy-m.headR*0.28, m.headR*1.25, skel.Primary, outline, m.outline)

	drawEar(c, m, skel, outline, hx+m.headR*0.40, hy-m.headR*0.58, 0.16, 1, true)

	if maskedBreeds[skel.Breed] {
		// Soft patch, no outline, same color as the muzzle so the two
		// read as one marking. The eyes land on top of it.
		c.DrawEllipse(hx+m.headR*0.18, hy-m.headR*0.10, m.headR*0.78, m.headR*0.55)
		c.SetColor(skel.Secondary)
		c.Fill()
	}

	var muzCX, muzCY, muzRX, muzRY float64
	if skel.FlatFace {
		muzCX = hx + m.headR*0.38
		muzCY = hy + m.headR*0.22
		muzRX = m.headR * 0.48
		muzRY = m.headR * 0.34
	} else {
		muzCX = hx + m.headR*0.34 + m.snout*0.50
		muzCY = hy + m.headR*0.16
		muzRX = m.headR*0.26 + m.snout*0.55
		muzRY = m.headR * 0.32
	}
	c.DrawEllipse(muzCX, muzCY, muzRX, muzRY)
	paintShape(c, skel.Secondary, outline, m.outline*0.9)

	c.DrawCircle(muzCX+muzRX*0.68, muzCY-muzRY*0.52, m.headR*0.11)
	paintShape(c, noseColor, outline, m.outline*0.7)

	drawFace(c, m, face, hx, hy, muzCX, muzCY, muzRY)
	c.Pop()
}

// drawEar draws one ear at (x, y) leaning by lean radians. Floppy ears hang
// as an ellipse beside the skull; upright ears are a soft triangle with an
// inner fold on the near side.
func drawEar(c Canvas, m metrics, skel Skeleton, outline Color, x, y, lean, dim float64, near bool) {
	c.Push()
	c.Translate(x, y)
	c.Rotate(lean)
	if skel.FloppyEars {
		c.DrawEllipse(0, m.earH*0.34, m.earW*0.54, m.earH*0.60)
		paintShape(c, skel.Primary.Dim(dim), outline.Dim(dim), m.outline*dim)
	} else {
		c.MoveTo(-m.earW*0.5, 0)
		c.QuadraticTo(-m.earW*0.58, -m.earH*0.85, 0, -m.earH)
		c.QuadraticTo(m.earW*0.58, -m.earH*0.85, m.earW*0.5, 0)
		c.ClosePath()
		paintShape(c, skel.Primary.Dim(dim), outline.Dim(dim), m.outline*dim)
		if near {
			c.MoveTo(-m.earW*0.22, -m.earH*0.10)
			c.QuadraticTo(-m.earW*0.26, -m.earH*0.62, 0, -m.earH*0.74)
			c.QuadraticTo(m.earW*0.26, -m.earH*0.62, m.earW*0.22, -m.earH*0.10)
			c.ClosePath()
			c.SetColor(tongueColor.WithAlpha(0.5))
			c.Fill()
		}
	}
	c.Pop()
}

// drawFace places the eyes, mouth and blush for one Face. Coordinates are
// head-local: (hx, hy) is the skull center, the muzzle ellipse anchors the
// mouth.
func drawFace(c Canvas, m metrics, face Face, hx, hy, muzCX, muzCY, muzRY float64) {
	er := m.eyeR * face.EyeScale
	eyeY := hy - m.headR*0.20
	for _, ex := range [2]float64{hx - m.headR*0.12, hx + m.headR*0.52} {
		if face.EyesOpen {
			c.DrawCircle(ex, eyeY, er)
			c.SetColor(eyeColor)
			c.Fill()
			c.DrawCircle(ex+er*0.32, eyeY-er*0.32, er*0.34)
			c.SetColor(glintColor)
			c.Fill()
		} else {
			// Closed lid: the lower half-arc of where the eye
			// would be.
			c.DrawArc(ex, eyeY, er, math.Pi*0.15, math.Pi*0.85)
			c.SetColor(eyeColor)
			c.SetLineWidth(m.outline * 0.9)
			c.Stroke()
		}
	}

	mx := muzCX - muzRY*0.10
	my := muzCY + muzRY*0.34
	if face.MouthOpen < mouthOpenThreshold {
		c.DrawArc(mx, my, m.headR*0.17, math.Pi*0.15, math.Pi*0.85)
		c.SetColor(eyeColor)
		c.SetLineWidth(m.outline * 0.8)
		c.Stroke()
	} else {
		mh := m.headR * (0.08 + 0.18*face.MouthOpen)
		c.DrawEllipse(mx, my+mh*0.4, m.headR*0.16, mh)
		c.SetColor(mouthColor)
		c.Fill()
		if face.Tongue {
			c.DrawRoundedRectangle(mx-m.headR*0.09, my+mh*0.5, m.headR*0.18, m.headR*0.30, m.headR*0.09)
			paintShape(c, tongueColor, tongueColor.Dim(0.7), m.outline*0.6)
		}
	}

	if face.Blush {
		c.SetColor(blushColor)
		c.DrawCircle(hx-m.headR*0.34, hy+m.headR*0.32, m.headR*0.15)
		c.Fill()
		c.DrawCircle(hx+m.headR*0.80, hy+m.headR*0.20, m.headR*0.15)
		c.Fill()
	}
}
