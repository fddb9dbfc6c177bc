package wag

import (
	"math"
	"testing"
)

// testSkeleton is a mid-sized generic dog, registered nowhere, so tests can
// tweak it without touching the global registry.
func testSkeleton(speed float64) Skeleton {
	return Skeleton{
		Breed:        "test_harness",
		HeightScale:  0.7,
		TorsoAspect:  1.6,
		LegLength:    0.9,
		LegThickness: 0.22,
		HeadSize:     0.62,
		SnoutLength:  0.55,
		EarHeight:    0.7,
		Primary:      Color{R: 0.62, G: 0.45, B: 0.28, A: 1},
		Secondary:    Color{R: 0.92, G: 0.86, B: 0.72, A: 1},
		Accent:       Color{R: 0.32, G: 0.22, B: 0.12, A: 1},
		SpeedScale:   speed,
	}
}

// --- Lifecycle ---

func TestControllerStartsIdleFacingRight(t *testing.T) {
	c := NewController(testSkeleton(1))
	if c.State() != StateIdle {
		t.Errorf("initial state = %v, want %v", c.State(), StateIdle)
	}
	if !c.Pose().FacingRight {
		t.Error("a fresh controller should face right")
	}
	if c.Expression() != ExpressionNeutral {
		t.Errorf("initial expression = %v, want %v", c.Expression(), ExpressionNeutral)
	}
	assertFinitePose(t, "initial", c.Pose())
}

func TestTickSurvivesHostileDeltas(t *testing.T) {
	c := NewController(testSkeleton(1))
	for _, dt := range []float64{0, -5, math.NaN(), math.Inf(1), 1000, 1.0 / 60} {
		c.Tick(dt)
		assertFinitePose(t, "after hostile dt", c.Pose())
	}

	c.SetState(StateWalking)
	c.Tick(1e9)
	if cycle := stateCycle(StateWalking); c.clock >= cycle {
		t.Errorf("clock %v escaped the cycle wrap %v", c.clock, cycle)
	}
	assertFinitePose(t, "after huge dt", c.Pose())
}

func TestTickBreathes(t *testing.T) {
	c := NewController(testSkeleton(1))
	c.Tick(1.0 / 60)
	first := c.Pose().Lift
	for i := 0; i < 30; i++ {
		c.Tick(1.0 / 60)
	}
	if c.Pose().Lift == first {
		t.Error("idle pose did not breathe across ticks")
	}
}

// --- State changes and blending ---

func TestWalkOppositePhaseAfterQuarterStride(t *testing.T) {
	c := NewController(testSkeleton(1))
	c.SetWalkVelocity(1)
	if c.State() != StateWalking {
		t.Fatalf("state = %v, want %v", c.State(), StateWalking)
	}
	// A quarter stride in one tick; the transition blend finishes inside it.
	c.Tick(0.25)
	p := c.Pose()
	if p.FrontRightLeg*p.FrontLeftLeg >= 0 {
		t.Errorf("front legs not in opposite phase: FR=%v FL=%v", p.FrontRightLeg, p.FrontLeftLeg)
	}
}

func TestTransitionBlendsFromThePreviousPose(t *testing.T) {
	c := NewController(testSkeleton(1))
	c.SetState(StateSitting)
	c.Tick(1.0 / 60)
	p := c.Pose()
	// One frame in, the haunches are folding but have not snapped to the
	// full sit.
	if p.BackLeftLeg <= 0 || p.BackRightLeg <= 0 {
		t.Errorf("back legs not folding on the first frame: %v, %v",
			p.BackLeftLeg, p.BackRightLeg)
	}
	if p.BackLeftLeg >= sitBackFold {
		t.Errorf("back legs snapped to %v instead of blending", p.BackLeftLeg)
	}
	// Half a second later the blend is long done.
	for i := 0; i < 30; i++ {
		c.Tick(1.0 / 60)
	}
	assertNear(t, "settled fold", c.Pose().BackLeftLeg, sitBackFold)
}

func TestSpeedScaleChangesStride(t *testing.T) {
	slow := NewController(testSkeleton(1.0))
	fast := NewController(testSkeleton(1.2))
	slow.SetState(StateWalking)
	fast.SetState(StateWalking)
	for i := 0; i < 30; i++ {
		slow.Tick(1.0 / 60)
		fast.Tick(1.0 / 60)
	}
	if math.Abs(slow.Pose().FrontRightLeg-fast.Pose().FrontRightLeg) < 1e-6 {
		t.Error("speed 1.2 and 1.0 walked in lockstep")
	}
}

func TestSpeedScaleLeavesBreathingAlone(t *testing.T) {
	slow := NewController(testSkeleton(1.0))
	fast := NewController(testSkeleton(2.0))
	for i := 0; i < 30; i++ {
		slow.Tick(1.0 / 60)
		fast.Tick(1.0 / 60)
	}
	assertNear(t, "idle lift", fast.Pose().Lift, slow.Pose().Lift)
}

// --- Velocity and facing ---

func TestFacingFollowsVelocitySign(t *testing.T) {
	c := NewController(testSkeleton(1))
	c.SetWalkVelocity(-3.2)
	c.Tick(1.0 / 60)
	if c.Pose().FacingRight {
		t.Error("negative velocity should face left")
	}
	c.SetWalkVelocity(0.01)
	c.Tick(1.0 / 60)
	if !c.Pose().FacingRight {
		t.Error("positive velocity should face right")
	}
}

func TestFacingPersistsAfterWalkEnds(t *testing.T) {
	c := NewController(testSkeleton(1))
	c.SetWalkVelocity(-1)
	c.Tick(0.25)
	c.TriggerRelease()
	for i := 0; i < 60; i++ {
		c.Tick(1.0 / 60)
	}
	if c.State() != StateIdle {
		t.Errorf("state = %v, want %v", c.State(), StateIdle)
	}
	if c.Pose().FacingRight {
		t.Error("facing reset when the walk ended")
	}
}

func TestSetWalkVelocityIgnoresZeroAndNaN(t *testing.T) {
	c := NewController(testSkeleton(1))
	notified := 0
	c.OnStateChange(func(State) { notified++ })
	c.SetWalkVelocity(0)
	c.SetWalkVelocity(math.NaN())
	if c.State() != StateIdle {
		t.Errorf("state = %v, want %v", c.State(), StateIdle)
	}
	if notified != 0 {
		t.Errorf("%d notifications fired for ignored velocities", notified)
	}
	if !c.Pose().FacingRight {
		t.Error("ignored velocity changed the facing")
	}
}

func TestSetWalkVelocityKeepsPhaseWhileWalking(t *testing.T) {
	c := NewController(testSkeleton(1))
	c.SetWalkVelocity(1)
	c.Tick(0.25)
	clock := c.clock
	c.SetWalkVelocity(1.5)
	if c.clock != clock {
		t.Error("pan update reset the gait phase")
	}
	c.SetWalkVelocity(-1)
	if c.clock != clock {
		t.Error("direction change reset the gait phase")
	}
	c.Tick(1.0 / 60)
	if c.Pose().FacingRight {
		t.Error("direction change did not turn the dog")
	}
}

// --- Taps ---

func TestTapAlternatesResponses(t *testing.T) {
	c := NewController(testSkeleton(1))
	c.TriggerTap()
	if c.State() != StateTailWag {
		t.Fatalf("first tap = %v, want %v", c.State(), StateTailWag)
	}
	c.TriggerTap()
	if c.State() != StateHeadTilt {
		t.Fatalf("second tap = %v, want %v", c.State(), StateHeadTilt)
	}
	c.TriggerTap()
	if c.State() != StateTailWag {
		t.Fatalf("third tap = %v, want %v", c.State(), StateTailWag)
	}
}

func TestHoldAndRelease(t *testing.T) {
	c := NewController(testSkeleton(1))
	c.TriggerHold()
	if c.State() != StatePetting {
		t.Fatalf("hold = %v, want %v", c.State(), StatePetting)
	}
	if c.Expression() != ExpressionLoving {
		t.Errorf("petting expression = %v, want %v", c.Expression(), ExpressionLoving)
	}
	c.TriggerRelease()
	if c.State() != StateIdle {
		t.Fatalf("release = %v, want %v", c.State(), StateIdle)
	}
}

// --- Notifications ---

func TestStateChangeNotifications(t *testing.T) {
	c := NewController(testSkeleton(1))
	var got []State
	c.OnStateChange(func(s State) { got = append(got, s) })

	c.SetState(StateSitting)
	c.SetState(StateSleeping)
	c.SetState(StateSitting)
	c.SetState(StateSitting)

	want := []State{StateSitting, StateSleeping, StateSitting, StateSitting}
	if len(got) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStateHandleRemove(t *testing.T) {
	c := NewController(testSkeleton(1))
	removedCalls := 0
	keptCalls := 0
	h := c.OnStateChange(func(State) { removedCalls++ })
	c.OnStateChange(func(State) { keptCalls++ })

	c.SetState(StateSitting)
	h.Remove()
	c.SetState(StateIdle)

	if removedCalls != 1 {
		t.Errorf("removed handler fired %d times, want 1", removedCalls)
	}
	if keptCalls != 2 {
		t.Errorf("kept handler fired %d times, want 2", keptCalls)
	}
	h.Remove() // removing twice is harmless
}

// --- Dispose ---

func TestDisposeStopsTheController(t *testing.T) {
	c := NewController(testSkeleton(1))
	c.Tick(1.0 / 60)
	frozen := c.Pose()

	c.Dispose()
	c.Dispose()

	c.Tick(0.25)
	if c.Pose() != frozen {
		t.Error("disposed controller kept animating")
	}
	c.SetState(StateZoomies)
	if c.State() != StateIdle {
		t.Errorf("disposed controller changed state to %v", c.State())
	}
	h := c.OnStateChange(func(State) { t.Error("handler registered after dispose fired") })
	if h.ctrl != nil {
		t.Error("disposed controller handed out a live handle")
	}
	h.Remove()
}

func BenchmarkControllerTick(b *testing.B) {
	c := NewController(testSkeleton(1))
	c.SetState(StateWalking)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Tick(1.0 / 60)
	}
}
