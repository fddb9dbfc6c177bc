package wag

// Pose is one frame's skeleton configuration: joint angles in radians plus a
// vertical body offset. Poses are immutable values produced fresh every tick;
// the controller retains only the previous committed pose, to blend across
// state transitions.
//
// Sign conventions, with the dog facing right: positive leg angles swing the
// paw toward the nose; positive knee angles bend the lower leg toward the
// tail; positive TorsoAngle and HeadAngle pitch the nose upward; positive
// TailAngle raises the tail tip. Lift is a fraction of body height, positive
// upward. Facing left mirrors all of this at render time via a canvas flip.
type Pose struct {
	TorsoAngle float64
	HeadAngle  float64
	TailAngle  float64

	FrontLeftLeg  float64
	FrontRightLeg float64
	BackLeftLeg   float64
	BackRightLeg  float64

	FrontLeftKnee  float64
	FrontRightKnee float64
	BackLeftKnee   float64
	BackRightKnee  float64

	// Lift is the vertical body offset in body heights. Positive raises the
	// body (walk bounce, breathing); negative lowers it (sleeping crouch).
	Lift float64

	// FacingRight is the horizontal orientation. Defaults to true and
	// persists across states until the next nonzero walk velocity.
	FacingRight bool
}

// PoseLerp linearly interpolates every numeric field from a to b by t.
// Boolean fields flip at t >= 0.5.
func PoseLerp(a, b Pose, t float64) Pose {
	p := Pose{
		TorsoAngle: lerp(a.TorsoAngle, b.TorsoAngle, t),
		HeadAngle:  lerp(a.HeadAngle, b.HeadAngle, t),
		TailAngle:  lerp(a.TailAngle, b.TailAngle, t),

		FrontLeftLeg:  lerp(a.FrontLeftLeg, b.FrontLeftLeg, t),
		FrontRightLeg: lerp(a.FrontRightLeg, b.FrontRightLeg, t),
		BackLeftLeg:   lerp(a.BackLeftLeg, b.BackLeftLeg, t),
		BackRightLeg:  lerp(a.BackRightLeg, b.BackRightLeg, t),

		FrontLeftKnee:  lerp(a.FrontLeftKnee, b.FrontLeftKnee, t),
		FrontRightKnee: lerp(a.FrontRightKnee, b.FrontRightKnee, t),
		BackLeftKnee:   lerp(a.BackLeftKnee, b.BackLeftKnee, t),
		BackRightKnee:  lerp(a.BackRightKnee, b.BackRightKnee, t),

		Lift: lerp(a.Lift, b.Lift, t),

		FacingRight: a.FacingRight,
	}
	if t >= 0.5 {
		p.FacingRight = b.FacingRight
	}
	return p
}

// finitePose reports whether every field of the pose is finite.
func finitePose(p Pose) bool {
	return finite(p.TorsoAngle) && finite(p.HeadAngle) && finite(p.TailAngle) &&
		finite(p.FrontLeftLeg) && finite(p.FrontRightLeg) &&
		finite(p.BackLeftLeg) && finite(p.BackRightLeg) &&
		finite(p.FrontLeftKnee) && finite(p.FrontRightKnee) &&
		finite(p.BackLeftKnee) && finite(p.BackRightKnee) &&
		finite(p.Lift)
}
