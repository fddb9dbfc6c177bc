package wag

import "testing"

// --- ParseColor ---

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#FFF", Color{R: 1, G: 1, B: 1, A: 1}},
		{"fff", Color{R: 1, G: 1, B: 1, A: 1}},
		{"#000000", Color{R: 0, G: 0, B: 0, A: 1}},
		{"#FF8000", Color{R: 1, G: float64(0x80) / 255, B: 0, A: 1}},
		{"ff8000", Color{R: 1, G: float64(0x80) / 255, B: 0, A: 1}},
		{"#FF800080", Color{R: 1, G: float64(0x80) / 255, B: 0, A: float64(0x80) / 255}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		assertNear(t, tc.in+" R", got.R, tc.want.R)
		assertNear(t, tc.in+" G", got.G, tc.want.G)
		assertNear(t, tc.in+" B", got.B, tc.want.B)
		assertNear(t, tc.in+" A", got.A, tc.want.A)
	}
}

func TestParseColorRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "#", "#12", "#12345", "#1234567", "red", "#GGHHII"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) accepted malformed input", bad)
		}
	}
}

// --- Color helpers ---

func TestColorDimKeepsAlpha(t *testing.T) {
	c := Color{R: 0.8, G: 0.6, B: 0.4, A: 0.5}
	d := c.Dim(0.5)
	assertNear(t, "R", d.R, 0.4)
	assertNear(t, "G", d.G, 0.3)
	assertNear(t, "B", d.B, 0.2)
	assertNear(t, "A", d.A, 0.5)
}

func TestColorLighten(t *testing.T) {
	c := Color{R: 0.2, G: 0.4, B: 0.6, A: 1}
	if l := c.Lighten(0); l != c {
		t.Errorf("Lighten(0) = %+v, want unchanged", l)
	}
	full := c.Lighten(1)
	assertNear(t, "full R", full.R, 1)
	assertNear(t, "full G", full.G, 1)
	assertNear(t, "full B", full.B, 1)
	half := c.Lighten(0.5)
	assertNear(t, "half R", half.R, 0.6)
	assertNear(t, "half A", half.A, 1)
}

func TestColorWithAlpha(t *testing.T) {
	c := Color{R: 0.9, G: 0.8, B: 0.7, A: 1}
	got := c.WithAlpha(0.25)
	assertNear(t, "A", got.A, 0.25)
	assertNear(t, "R", got.R, 0.9)
}

func TestColorLerp(t *testing.T) {
	a := Color{R: 0, G: 0.5, B: 1, A: 1}
	b := Color{R: 1, G: 0.5, B: 0, A: 0.5}
	mid := a.Lerp(b, 0.5)
	assertNear(t, "R", mid.R, 0.5)
	assertNear(t, "G", mid.G, 0.5)
	assertNear(t, "B", mid.B, 0.5)
	assertNear(t, "A", mid.A, 0.75)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(b, 0) = %+v, want a", got)
	}
}
