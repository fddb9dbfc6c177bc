package wag

// Interactions arbitrates concurrent gesture and mood signals into controller
// calls, by fixed priority: petting (an active long-press) beats taps, taps
// beat drags, and ambient mood suggestions come last. While petting, lower
// priority inputs are absorbed as silent no-ops — the hand on the dog wins.
type Interactions struct {
	ctrl    *Controller
	petting bool
}

// NewInteractions creates the gesture arbiter for a controller.
func NewInteractions(ctrl *Controller) *Interactions {
	return &Interactions{ctrl: ctrl}
}

// Petting reports whether a long-press is currently active.
func (in *Interactions) Petting() bool {
	return in.petting
}

// OnTap plays the tap response. Absorbed while petting.
func (in *Interactions) OnTap() {
	if in.petting {
		return
	}
	in.ctrl.TriggerTap()
}

// OnLongPressStart begins petting. Repeated starts while already petting are
// absorbed, so gesture spam cannot restart the wag mid-cycle.
func (in *Interactions) OnLongPressStart() {
	if in.petting {
		return
	}
	in.petting = true
	in.ctrl.TriggerHold()
}

// OnLongPressEnd finishes petting and returns the dog to idle. A release
// without a matching start is absorbed.
func (in *Interactions) OnLongPressEnd() {
	if !in.petting {
		return
	}
	in.petting = false
	in.ctrl.TriggerRelease()
}

// OnPanUpdate walks the dog in the direction of the drag. Only the sign of
// dx matters. Absorbed while petting.
func (in *Interactions) OnPanUpdate(dx float64) {
	if in.petting {
		return
	}
	in.ctrl.SetWalkVelocity(dx)
}

// OnPanEnd stops walking. Absorbed while petting.
func (in *Interactions) OnPanEnd() {
	if in.petting {
		return
	}
	in.ctrl.TriggerRelease()
}

// ApplyMood maps a mood key from an external subsystem onto an animation
// state. The vocabulary is closed; unrecognized keys resolve to idle rather
// than erroring, and the whole call is absorbed while petting.
func (in *Interactions) ApplyMood(key string) {
	if in.petting {
		return
	}
	in.ctrl.SetState(stateForMood(key))
}

// stateForMood is the closed mood-key vocabulary. Total: anything
// unrecognized is idle.
func stateForMood(key string) State {
	switch key {
	case "tail_wag":
		return StateTailWag
	case "head_tilt":
		return StateHeadTilt
	case "zoomies":
		return StateZoomies
	case "yawn":
		return StateSleeping
	case "sit":
		return StateSitting
	case "wander":
		return StateWalking
	case "calm":
		return StateIdle
	default:
		return StateIdle
	}
}
