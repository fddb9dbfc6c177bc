package wag

import "math"

// metrics holds every pixel dimension for one paint, derived once from the
// canvas size and the breed's skeleton ratios. All the painter's geometry
// reads from here so a breed tweak or a canvas resize moves the whole dog
// consistently.
type metrics struct {
	w, h float64

	// unit is the torso height in pixels. Pose.Lift is expressed in units.
	unit float64

	cx      float64 // horizontal body center
	groundY float64 // paw line at rest
	torsoCY float64 // torso center line at rest, before Lift

	torsoW float64

	legLen   float64
	legW     float64
	hipFront float64 // front hip x offset from torso center
	hipRear  float64 // rear hip x offset from torso center
	hipY     float64 // hip line y offset from torso center

	headR float64
	snout float64
	earH  float64
	earW  float64
	eyeR  float64

	tailLen float64
	tailW   float64

	outline float64 // stroke width of the clay outline
}

func computeMetrics(skel Skeleton, w, h float64) metrics {
	m := metrics{w: w, h: h}
	ref := math.Min(w, h)

	m.unit = ref * 0.24 * skel.HeightScale
	m.torsoW = m.unit * skel.TorsoAspect
	m.legLen = m.unit * skel.LegLength
	m.legW = m.unit * skel.LegThickness
	m.headR = m.unit * skel.HeadSize
	m.snout = m.headR * skel.SnoutLength
	m.earH = m.headR * skel.EarHeight
	m.earW = m.earH * 0.62
	m.eyeR = m.headR * 0.13
	m.tailLen = m.unit * 0.92
	m.tailW = m.legW * 0.85

	m.hipFront = m.torsoW * 0.32
	m.hipRear = -m.torsoW * 0.32
	m.hipY = m.unit * 0.28

	m.cx = w * 0.5
	m.groundY = h * 0.86
	// Resting paw bottom sits on the ground line: hip offset, then the full
	// leg, then the paw ellipse.
	m.torsoCY = m.groundY - m.hipY - m.legLen - m.legW*0.35

	m.outline = math.Max(1.5, m.unit*0.055)
	return m
}
