package wag

import "fmt"

// State identifies one of the companion's animation states. States are
// selected only by explicit [Controller] calls — there are no implicit or
// timed transitions.
type State uint8

const (
	StateIdle     State = iota // standing, breathing gently
	StateWalking               // trot gait driven by pan gestures
	StateSitting               // haunches folded, torso tilted up
	StateTailWag               // big tail oscillation (tap response)
	StateHeadTilt              // quizzical head tilt (tap response)
	StatePetting               // long-press response; fastest tail wag
	StateZoomies               // high-frequency, high-amplitude trot
	StateSleeping              // crouched low, slow breathing
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateSitting:
		return "sitting"
	case StateTailWag:
		return "tail-wag"
	case StateHeadTilt:
		return "head-tilt"
	case StatePetting:
		return "petting"
	case StateZoomies:
		return "zoomies"
	case StateSleeping:
		return "sleeping"
	default:
		return "unknown"
	}
}

// ParseState returns the state named by s, accepting the names String
// produces. Unknown names are an error so callers surface typos instead of
// animating the wrong state.
func ParseState(s string) (State, error) {
	for st := StateIdle; st <= StateSleeping; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return StateIdle, fmt.Errorf("unknown animation state %q", s)
}

// Expression is the companion's facial mood. Always derived from the current
// [State] via [ExpressionFor]; never stored or mutated independently.
type Expression uint8

const (
	ExpressionNeutral Expression = iota
	ExpressionHappy
	ExpressionExcited
	ExpressionCurious
	ExpressionLoving
	ExpressionSleepy
)

// String returns the expression's name.
func (e Expression) String() string {
	switch e {
	case ExpressionNeutral:
		return "neutral"
	case ExpressionHappy:
		return "happy"
	case ExpressionExcited:
		return "excited"
	case ExpressionCurious:
		return "curious"
	case ExpressionLoving:
		return "loving"
	case ExpressionSleepy:
		return "sleepy"
	default:
		return "unknown"
	}
}

// ExpressionFor maps an animation state to its facial expression. The mapping
// is total: unrecognized states resolve to ExpressionNeutral.
func ExpressionFor(s State) Expression {
	switch s {
	case StateIdle:
		return ExpressionNeutral
	case StateWalking:
		return ExpressionHappy
	case StateSitting:
		return ExpressionNeutral
	case StateTailWag:
		return ExpressionExcited
	case StateHeadTilt:
		return ExpressionCurious
	case StatePetting:
		return ExpressionLoving
	case StateZoomies:
		return ExpressionExcited
	case StateSleeping:
		return ExpressionSleepy
	default:
		return ExpressionNeutral
	}
}

// Face holds the constant facial parameters for one expression.
// The painter is entirely table-driven from these values.
type Face struct {
	// EyeScale multiplies the base eye radius.
	EyeScale float64
	// MouthOpen is how far the mouth is open, 0 (closed) to 1.
	// Below 0.25 the mouth renders as a smile arc instead of an open shape.
	MouthOpen float64
	// EyesOpen draws round eyes when true, closed arcs when false.
	EyesOpen bool
	// Tongue draws a hanging tongue below the open mouth.
	Tongue bool
	// Blush draws soft cheek marks.
	Blush bool
}

// Face returns the constant face parameters for the expression.
// The mapping is total: unrecognized expressions resolve to the neutral face.
func (e Expression) Face() Face {
	switch e {
	case ExpressionNeutral:
		return Face{EyeScale: 1.0, MouthOpen: 0.15, EyesOpen: true}
	case ExpressionHappy:
		return Face{EyeScale: 1.0, MouthOpen: 0.45, EyesOpen: true, Tongue: true}
	case ExpressionExcited:
		return Face{EyeScale: 1.15, MouthOpen: 0.65, EyesOpen: true, Tongue: true}
	case ExpressionCurious:
		return Face{EyeScale: 1.25, MouthOpen: 0.10, EyesOpen: true}
	case ExpressionLoving:
		return Face{EyeScale: 0.90, MouthOpen: 0.35, EyesOpen: true, Blush: true}
	case ExpressionSleepy:
		return Face{EyeScale: 1.0, MouthOpen: 0.05}
	default:
		return Face{EyeScale: 1.0, MouthOpen: 0.15, EyesOpen: true}
	}
}
