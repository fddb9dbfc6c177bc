package wag

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// maxTickDelta caps a single tick's clock contribution. A host resuming
	// from a long stall (backgrounded app, debugger pause) feeds one huge
	// delta; clamping it keeps the phase step small, and the modulo wrap in
	// Tick keeps the clock itself bounded.
	maxTickDelta = 0.25

	// blendDuration is the window over which a state transition eases from
	// the previously committed pose into the new state's synthesized pose.
	blendDuration = 0.15
)

type stateHandler struct {
	id uint32
	fn func(State)
}

// StateHandle allows removing a state-change callback registered with
// [Controller.OnStateChange].
type StateHandle struct {
	id   uint32
	ctrl *Controller
}

// Remove unregisters this callback so it no longer fires.
func (h StateHandle) Remove() {
	if h.ctrl == nil {
		return
	}
	s := h.ctrl.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = stateHandler{}
			h.ctrl.handlers = s[:len(s)-1]
			return
		}
	}
}

// Controller owns the animation clock and current state for one companion.
// It is single-threaded by design: the host render loop is the sole caller,
// ticking once per frame and reading the committed pose on the same
// goroutine. Create one per companion with [NewController]; create a fresh
// one on breed change.
type Controller struct {
	skel  Skeleton
	state State

	// clock is the state-local elapsed time, wrapped modulo the state's
	// cycle. All periodic motion derives from it; nothing integrates angles
	// frame-to-frame, so there is no drift to accumulate.
	clock float64

	facingRight bool

	pose  Pose
	prev  Pose // committed pose captured at the last transition
	blend *gween.Tween

	handlers []stateHandler
	nextID   uint32
	tapTilt  bool // next tap picks the head tilt instead of the tail wag

	disposed bool
}

// NewController creates a controller for the given skeleton, starting idle
// and facing right.
func NewController(skel Skeleton) *Controller {
	c := &Controller{skel: skel, facingRight: true}
	c.pose = poseAt(StateIdle, 0)
	return c
}

// Tick advances the animation clock by dt seconds and commits the pose for
// the new time. Call once per render frame, before reading [Controller.Pose].
// dt is clamped to a bounded step, so a stalled host resumes smoothly, and
// anomalous inputs (negative, NaN) contribute nothing. Never blocks; for a
// given accumulated clock the committed pose is always the same.
func (c *Controller) Tick(dt float64) {
	if c.disposed {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	if dt > maxTickDelta {
		dt = maxTickDelta
	}

	step := dt
	if gaitBearing(c.state) {
		step *= c.skel.SpeedScale
	}
	c.clock = math.Mod(c.clock+step, stateCycle(c.state))

	pose := poseAt(c.state, c.clock)
	if c.blend != nil {
		v, done := c.blend.Update(float32(dt))
		pose = PoseLerp(c.prev, pose, float64(v))
		if done {
			c.blend = nil
		}
	}
	// Facing is committed directly, not blended: a direction change reads as
	// intent and must land on the very next frame.
	pose.FacingRight = c.facingRight
	c.pose = pose
}

// SetState performs a hard transition to s. The phase clock resets so the
// state starts from its canonical pose, a short ease-out blend carries the
// previously committed pose into the new motion, and observers are notified
// exactly once per call.
func (c *Controller) SetState(s State) {
	if c.disposed {
		return
	}
	c.prev = c.pose
	c.state = s
	c.clock = 0
	c.blend = gween.New(0, 1, blendDuration, ease.OutQuad)
	for _, h := range c.handlers {
		h.fn(s)
	}
}

// SetWalkVelocity records the facing direction from the sign of dx and
// enters the walking state. A zero dx is a silent no-op. The magnitude is
// otherwise unused. Repeated calls while already walking only update facing;
// re-entering the state on every pan event would reset the gait phase each
// frame and pin the legs at their canonical pose.
func (c *Controller) SetWalkVelocity(dx float64) {
	if c.disposed {
		return
	}
	if dx == 0 || math.IsNaN(dx) {
		return
	}
	c.facingRight = dx > 0
	if c.state != StateWalking {
		c.SetState(StateWalking)
	}
}

// TriggerTap plays a one-shot emotive response, alternating between the tail
// wag and the head tilt, starting with the tail wag.
func (c *Controller) TriggerTap() {
	if c.disposed {
		return
	}
	if c.tapTilt {
		c.SetState(StateHeadTilt)
	} else {
		c.SetState(StateTailWag)
	}
	c.tapTilt = !c.tapTilt
}

// TriggerHold enters the petting state. Paired with [Controller.TriggerRelease].
func (c *Controller) TriggerHold() {
	c.SetState(StatePetting)
}

// TriggerRelease returns to idle after a hold or drag ends.
func (c *Controller) TriggerRelease() {
	c.SetState(StateIdle)
}

// State returns the current animation state.
func (c *Controller) State() State {
	return c.state
}

// Pose returns the pose committed by the most recent Tick.
func (c *Controller) Pose() Pose {
	return c.pose
}

// Expression returns the facial expression derived from the current state.
func (c *Controller) Expression() Expression {
	return ExpressionFor(c.state)
}

// Skeleton returns the skeleton this controller animates.
func (c *Controller) Skeleton() Skeleton {
	return c.skel
}

// OnStateChange registers fn to run on every state transition, after the
// state has changed. Returns a handle for removal.
func (c *Controller) OnStateChange(fn func(State)) StateHandle {
	if c.disposed {
		return StateHandle{}
	}
	c.nextID++
	id := c.nextID
	c.handlers = append(c.handlers, stateHandler{id: id, fn: fn})
	return StateHandle{id: id, ctrl: c}
}

// Dispose releases the controller. All further calls are no-ops; getters
// keep returning the last committed values. Safe to call more than once.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.handlers = nil
	c.blend = nil
}
