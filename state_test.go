package wag

import "testing"

// --- State ---

func TestStateStringRoundTrip(t *testing.T) {
	for s := StateIdle; s <= StateSleeping; s++ {
		name := s.String()
		if name == "unknown" {
			t.Fatalf("state %d has no name", s)
		}
		got, err := ParseState(name)
		if err != nil {
			t.Fatalf("ParseState(%q): %v", name, err)
		}
		if got != s {
			t.Errorf("ParseState(%q) = %v, want %v", name, got, s)
		}
	}
}

func TestParseStateUnknown(t *testing.T) {
	if _, err := ParseState("bork"); err == nil {
		t.Error("expected error for an unknown state name")
	}
	if _, err := ParseState(""); err == nil {
		t.Error("expected error for an empty state name")
	}
	if got := State(255).String(); got != "unknown" {
		t.Errorf("State(255).String() = %q, want %q", got, "unknown")
	}
}

// --- Expressions ---

func TestExpressionForEveryState(t *testing.T) {
	cases := []struct {
		s    State
		want Expression
	}{
		{StateIdle, ExpressionNeutral},
		{StateWalking, ExpressionHappy},
		{StateSitting, ExpressionNeutral},
		{StateTailWag, ExpressionExcited},
		{StateHeadTilt, ExpressionCurious},
		{StatePetting, ExpressionLoving},
		{StateZoomies, ExpressionExcited},
		{StateSleeping, ExpressionSleepy},
		{State(255), ExpressionNeutral},
	}
	for _, tc := range cases {
		if got := ExpressionFor(tc.s); got != tc.want {
			t.Errorf("ExpressionFor(%v) = %v, want %v", tc.s, got, tc.want)
		}
	}
}

func TestFaceValuesStayRenderable(t *testing.T) {
	for e := ExpressionNeutral; e <= ExpressionSleepy; e++ {
		f := e.Face()
		if f.EyeScale <= 0 {
			t.Errorf("%v: eye scale %v must be positive", e, f.EyeScale)
		}
		if f.MouthOpen < 0 || f.MouthOpen > 1 {
			t.Errorf("%v: mouth open %v outside [0, 1]", e, f.MouthOpen)
		}
	}
}

func TestFaceDistinguishesMoods(t *testing.T) {
	if !ExpressionExcited.Face().Tongue {
		t.Error("excited face should show the tongue")
	}
	if ExpressionSleepy.Face().EyesOpen {
		t.Error("sleepy face should close the eyes")
	}
	if !ExpressionLoving.Face().Blush {
		t.Error("loving face should blush")
	}
	if ExpressionNeutral.Face().MouthOpen >= mouthOpenThreshold {
		t.Error("neutral face should keep the mouth closed")
	}
	if ExpressionCurious.Face().EyeScale <= ExpressionNeutral.Face().EyeScale {
		t.Error("curious face should widen the eyes")
	}
}
