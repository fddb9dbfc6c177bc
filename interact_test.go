package wag

import "testing"

// --- Petting priority ---

func TestHoldEntersAndLeavesPetting(t *testing.T) {
	c := NewController(testSkeleton(1))
	in := NewInteractions(c)

	in.OnLongPressStart()
	if c.State() != StatePetting {
		t.Fatalf("state = %v, want %v", c.State(), StatePetting)
	}
	if !in.Petting() {
		t.Error("Petting() = false during a hold")
	}

	in.OnLongPressEnd()
	if c.State() != StateIdle {
		t.Fatalf("state after release = %v, want %v", c.State(), StateIdle)
	}
	if in.Petting() {
		t.Error("Petting() = true after the release")
	}
}

func TestPettingAbsorbsLowerPriorityInput(t *testing.T) {
	c := NewController(testSkeleton(1))
	in := NewInteractions(c)
	notified := 0
	c.OnStateChange(func(State) { notified++ })

	in.OnLongPressStart()
	if notified != 1 {
		t.Fatalf("hold fired %d notifications, want 1", notified)
	}

	in.OnTap()
	if c.State() != StatePetting {
		t.Error("tap broke through an active petting hold")
	}
	in.OnPanUpdate(12)
	if c.State() != StatePetting {
		t.Error("drag broke through an active petting hold")
	}
	c.Tick(1.0 / 60)
	if !c.Pose().FacingRight {
		t.Error("absorbed drag still turned the dog")
	}
	in.ApplyMood("zoomies")
	if c.State() != StatePetting {
		t.Error("mood broke through an active petting hold")
	}
	in.OnPanEnd()
	if c.State() != StatePetting {
		t.Error("stray pan end broke through an active petting hold")
	}
	in.OnLongPressStart()
	if notified != 1 {
		t.Errorf("repeated hold start fired %d notifications, want 1", notified)
	}

	in.OnLongPressEnd()
	if c.State() != StateIdle {
		t.Errorf("state after release = %v, want %v", c.State(), StateIdle)
	}
}

func TestReleaseWithoutHoldIsAbsorbed(t *testing.T) {
	c := NewController(testSkeleton(1))
	in := NewInteractions(c)
	c.SetState(StateSitting)

	in.OnLongPressEnd()
	if c.State() != StateSitting {
		t.Errorf("stray release moved the dog to %v", c.State())
	}
}

// --- Drag ---

func TestPanWalksAndFaces(t *testing.T) {
	c := NewController(testSkeleton(1))
	in := NewInteractions(c)

	in.OnPanUpdate(-8)
	if c.State() != StateWalking {
		t.Fatalf("state = %v, want %v", c.State(), StateWalking)
	}
	c.Tick(1.0 / 60)
	if c.Pose().FacingRight {
		t.Error("leftward drag should face the dog left")
	}

	in.OnPanUpdate(0)
	if c.State() != StateWalking {
		t.Error("zero-delta pan frame disturbed the walk")
	}

	in.OnPanEnd()
	if c.State() != StateIdle {
		t.Errorf("state after pan end = %v, want %v", c.State(), StateIdle)
	}
}

// --- Moods ---

func TestMoodVocabulary(t *testing.T) {
	cases := []struct {
		key  string
		want State
	}{
		{"tail_wag", StateTailWag},
		{"head_tilt", StateHeadTilt},
		{"zoomies", StateZoomies},
		{"yawn", StateSleeping},
		{"sit", StateSitting},
		{"wander", StateWalking},
		{"calm", StateIdle},
		{"playful_bounce", StateIdle},
		{"ZOOMIES", StateIdle},
		{"", StateIdle},
	}
	for _, tc := range cases {
		c := NewController(testSkeleton(1))
		in := NewInteractions(c)
		in.ApplyMood(tc.key)
		if c.State() != tc.want {
			t.Errorf("ApplyMood(%q) = %v, want %v", tc.key, c.State(), tc.want)
		}
	}
}
