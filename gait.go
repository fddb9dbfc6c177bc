package wag

import "math"

// Motion tuning. Angles are radians, lifts are body heights, frequencies are
// cycles per second of scaled clock time.
const (
	breathHz  = 0.4  // chest rise rate while idle/sitting/petting
	sleepHz   = 0.25 // slower breathing while asleep
	breathAmp = 0.018

	gaitHz     = 1.0  // stride rate while walking at SpeedScale 1
	zoomiesHz  = 2.2  // stride rate during zoomies
	legAmp     = 0.55 // hip swing amplitude
	kneeAmp    = 0.30 // knee bend amplitude
	kneeLag    = math.Pi / 3 // knee trails its hip within the stride
	backLegLag = 0.25 // rear hips trail their diagonal front partner
	bounceAmp  = 0.035
	zoomiesMul = 1.45 // amplitude boost during zoomies
	zoomiesLean = 0.12 // forward torso lean during zoomies

	sitBackFold   = 0.95 // folded haunch angle
	sitBackKnee   = 0.60
	sitTorsoTilt  = 0.16
	sitFrontBrace = 0.05

	wagHz    = 4.5  // tail rate for the tap response
	wagPetHz = 6.0  // maximum tail rate, used while petting
	wagAmp   = 0.85
	wagBobHz = 2.25 // body bob under the tap-response wag

	tiltMax     = 0.38 // peak head tilt
	tiltCycle   = 2.4  // seconds per tilt-and-return
	petHeadBias = 0.12 // head leans into the petting hand

	sleepDrop = 0.10 // crouch depth while asleep
)

// stateCycle returns the fundamental period of a state's motion, in seconds
// of scaled clock time. The clock wraps modulo this period before any
// trigonometry, so phase stays bounded no matter how long a state runs.
// Every frequency used inside a state is an integer multiple of its
// fundamental, keeping the wrap seamless.
func stateCycle(s State) float64 {
	switch s {
	case StateIdle:
		return 1 / breathHz
	case StateWalking:
		return 1 / gaitHz
	case StateSitting:
		return 1 / breathHz
	case StateTailWag:
		return 1 / wagBobHz
	case StateHeadTilt:
		return tiltCycle
	case StatePetting:
		return 1 / breathHz
	case StateZoomies:
		return 1 / zoomiesHz
	case StateSleeping:
		return 1 / sleepHz
	default:
		return 1 / breathHz
	}
}

// gaitBearing reports whether the state's clock accumulates scaled by the
// skeleton's SpeedScale. Only locomotion is breed-speed dependent; breathing
// and wagging run at the same rate for every breed.
func gaitBearing(s State) bool {
	return s == StateWalking || s == StateZoomies
}

// CycleDuration returns the length of one full animation loop for s, in
// seconds of scaled clock time. Capturing exactly this much motion yields a
// seamless loop, which is what the sprite-sheet renderer does.
func CycleDuration(s State) float64 {
	return stateCycle(s)
}

// poseAt synthesizes the canonical pose for a state at clock time t. Pure and
// deterministic: equal inputs give equal poses. t is expected pre-wrapped to
// the state's cycle but any finite t produces a finite pose.
func poseAt(s State, t float64) Pose {
	switch s {
	case StateIdle:
		return idlePose(t)
	case StateWalking:
		return trotPose(t, gaitHz, 1, 0)
	case StateSitting:
		return sitPose(t)
	case StateTailWag:
		return tailWagPose(t)
	case StateHeadTilt:
		return headTiltPose(t)
	case StatePetting:
		return pettingPose(t)
	case StateZoomies:
		return trotPose(t, zoomiesHz, zoomiesMul, -zoomiesLean)
	case StateSleeping:
		return sleepPose(t)
	default:
		return idlePose(t)
	}
}

// idlePose is a standing breath: the body rises and falls, the tail sways,
// everything else stays at rest.
func idlePose(t float64) Pose {
	phi := 2 * math.Pi * breathHz * t
	return Pose{
		Lift:      breathAmp * (1 + math.Sin(phi)) / 2,
		TailAngle: 0.10 * math.Sin(phi),
		FacingRight: true,
	}
}

// trotPose is the shared locomotion function for walking and zoomies.
// Diagonal leg pairs move together: front-right with back-left, front-left
// with back-right. The front pair is strictly opposite phase; the rear pair
// trails its diagonal partner by backLegLag. Knees are smaller sinusoids
// lagging their hip, and the body bounces at twice the stride rate.
func trotPose(t, hz, ampMul, lean float64) Pose {
	phi := 2 * math.Pi * hz * t
	amp := legAmp * ampMul
	knee := kneeAmp * ampMul
	return Pose{
		FrontRightLeg: amp * math.Sin(phi),
		FrontLeftLeg:  amp * math.Sin(phi+math.Pi),
		BackLeftLeg:   amp * math.Sin(phi-backLegLag),
		BackRightLeg:  amp * math.Sin(phi+math.Pi-backLegLag),

		FrontRightKnee: knee * math.Sin(phi+kneeLag),
		FrontLeftKnee:  knee * math.Sin(phi+math.Pi+kneeLag),
		BackLeftKnee:   knee * math.Sin(phi-backLegLag+kneeLag),
		BackRightKnee:  knee * math.Sin(phi+math.Pi-backLegLag+kneeLag),

		Lift:       bounceAmp * ampMul * (1 - math.Cos(2*phi)) / 2,
		TorsoAngle: lean + 0.02*ampMul*math.Sin(2*phi),
		HeadAngle:  0.05 * ampMul * math.Sin(2*phi+math.Pi),
		TailAngle:  0.25 * ampMul * math.Sin(phi),

		FacingRight: true,
	}
}

// sitPose folds the haunches to a fixed positive angle and tilts the chest
// up. Front legs brace near rest; a reduced breath keeps the pose alive.
func sitPose(t float64) Pose {
	phi := 2 * math.Pi * breathHz * t
	return Pose{
		BackLeftLeg:   sitBackFold,
		BackRightLeg:  sitBackFold,
		BackLeftKnee:  sitBackKnee,
		BackRightKnee: sitBackKnee,

		FrontLeftLeg:  sitFrontBrace,
		FrontRightLeg: sitFrontBrace,

		TorsoAngle: sitTorsoTilt,
		TailAngle:  0.18 * math.Sin(phi),
		Lift:       breathAmp * 0.6 * (1 + math.Sin(phi)) / 2,

		FacingRight: true,
	}
}

// tailWagPose is the tap response: a big tail oscillation with a light body
// bob and head bounce riding under it.
func tailWagPose(t float64) Pose {
	bob := 2 * math.Pi * wagBobHz * t
	return Pose{
		TailAngle: wagAmp * math.Sin(2*math.Pi*wagHz*t),
		HeadAngle: 0.05 * math.Sin(bob),
		Lift:      0.010 * (1 - math.Cos(bob)) / 2,

		FacingRight: true,
	}
}

// headTiltPose is the other tap response: the head rolls to a peak tilt and
// back over one cycle, with the tail drifting along.
func headTiltPose(t float64) Pose {
	phi := 2 * math.Pi * t / tiltCycle
	return Pose{
		HeadAngle: tiltMax * (1 - math.Cos(phi)) / 2,
		TailAngle: 0.15 * math.Sin(phi),
		Lift:      breathAmp * 0.5 * (1 - math.Cos(phi)) / 2,

		FacingRight: true,
	}
}

// pettingPose holds the body in a content idle while the tail wags at its
// maximum rate and the head leans into the hand. The 6 Hz wag is the 15th
// harmonic of the breath, so the shared clock wraps cleanly.
func pettingPose(t float64) Pose {
	phi := 2 * math.Pi * breathHz * t
	return Pose{
		TailAngle: wagAmp * math.Sin(2*math.Pi*wagPetHz*t),
		HeadAngle: petHeadBias + 0.03*math.Sin(phi),
		Lift:      breathAmp * (1 + math.Sin(phi)) / 2,

		FacingRight: true,
	}
}

// sleepPose drops the body into a crouch with only a slow breath moving.
func sleepPose(t float64) Pose {
	phi := 2 * math.Pi * sleepHz * t
	return Pose{
		Lift:      -sleepDrop + breathAmp*0.7*(1+math.Sin(phi))/2,
		HeadAngle: -0.08,
		TailAngle: 0.04 * math.Sin(phi),

		FacingRight: true,
	}
}
