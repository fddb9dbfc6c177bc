package wag

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Breed identifies a registered skeleton.
type Breed string

// Built-in breeds. All are registered at package init; hosts can add more
// with [Register] or [LoadSkeletonFile].
const (
	BreedShiba        Breed = "shiba"
	BreedCorgi        Breed = "corgi"
	BreedGolden       Breed = "golden_retriever"
	BreedLabrador     Breed = "labrador"
	BreedHusky        Breed = "husky"
	BreedBeagle       Breed = "beagle"
	BreedDachshund    Breed = "dachshund"
	BreedPug          Breed = "pug"
	BreedFrenchie     Breed = "french_bulldog"
	BreedBulldog      Breed = "bulldog"
	BreedPoodle       Breed = "poodle"
	BreedToyPoodle    Breed = "toy_poodle"
	BreedChihuahua    Breed = "chihuahua"
	BreedPomeranian   Breed = "pomeranian"
	BreedBorderCollie Breed = "border_collie"
	BreedShepherd     Breed = "german_shepherd"
	BreedGreatDane    Breed = "great_dane"
	BreedDalmatian    Breed = "dalmatian"
	BreedSamoyed      Breed = "samoyed"
	BreedShihTzu      Breed = "shih_tzu"
	BreedJackRussell  Breed = "jack_russell"
	BreedAussie       Breed = "australian_shepherd"
	BreedBernese      Breed = "bernese"
	BreedGreyhound    Breed = "greyhound"
)

// Skeleton is the immutable per-breed proportion and color table. One
// Skeleton exists per breed identifier, shared read-only by the controller
// and painter. The ratios drive layout; the flags select breed-specific
// looks in the painter — there is no per-breed drawing code.
type Skeleton struct {
	// Breed identifies this skeleton in the registry.
	Breed Breed
	// HeightScale is the overall body size relative to the canvas, in [0.4, 1.1].
	HeightScale float64
	// TorsoAspect is torso length over torso height.
	TorsoAspect float64
	// LegLength is leg length as a fraction of torso height.
	LegLength float64
	// LegThickness is leg width as a fraction of torso height.
	LegThickness float64
	// HeadSize is head radius as a fraction of torso height.
	HeadSize float64
	// SnoutLength is muzzle protrusion as a fraction of head radius.
	SnoutLength float64
	// EarHeight is ear length as a fraction of head radius.
	EarHeight float64
	// FloppyEars folds the ears down beside the head instead of upright.
	FloppyEars bool
	// CurlTail draws the tail curled over the back instead of trailing.
	CurlTail bool
	// FlatFace draws a pressed-in muzzle close to the head.
	FlatFace bool
	// Spotted overlays accent patch markings on the torso.
	Spotted bool
	// Fuzzy draws a lumpy coat silhouette on torso and head.
	Fuzzy bool
	// Primary is the main coat color.
	Primary Color
	// Secondary is the belly and muzzle color.
	Secondary Color
	// Accent is the marking and patch color.
	Accent Color
	// SpeedScale multiplies gait clock accumulation, in [0.5, 2.0].
	SpeedScale float64
}

// validate checks that every field is inside its documented range.
func (s Skeleton) validate() error {
	if s.Breed == "" {
		return fmt.Errorf("skeleton has empty breed identifier")
	}
	if s.HeightScale < 0.4 || s.HeightScale > 1.1 {
		return fmt.Errorf("breed %q: height scale %.2f outside [0.4, 1.1]", s.Breed, s.HeightScale)
	}
	if s.SpeedScale < 0.5 || s.SpeedScale > 2.0 {
		return fmt.Errorf("breed %q: speed scale %.2f outside [0.5, 2.0]", s.Breed, s.SpeedScale)
	}
	ratios := []struct {
		name  string
		value float64
	}{
		{"torso aspect", s.TorsoAspect},
		{"leg length", s.LegLength},
		{"leg thickness", s.LegThickness},
		{"head size", s.HeadSize},
		{"snout length", s.SnoutLength},
		{"ear height", s.EarHeight},
	}
	for _, r := range ratios {
		if !finite(r.value) || r.value <= 0 {
			return fmt.Errorf("breed %q: %s %.2f must be a positive ratio", s.Breed, r.name, r.value)
		}
	}
	for _, c := range []struct {
		name  string
		color Color
	}{{"primary", s.Primary}, {"secondary", s.Secondary}, {"accent", s.Accent}} {
		if c.color.A <= 0 {
			return fmt.Errorf("breed %q: %s color is fully transparent", s.Breed, c.name)
		}
	}
	return nil
}

// --- Registry ---

var registry = map[Breed]Skeleton{}

// Register adds a skeleton to the registry. Registering an out-of-range
// skeleton or a duplicate breed identifier is an error: exactly one skeleton
// exists per breed, and it never changes after registration.
func Register(s Skeleton) error {
	if err := s.validate(); err != nil {
		return err
	}
	if _, ok := registry[s.Breed]; ok {
		return fmt.Errorf("breed %q already registered", s.Breed)
	}
	registry[s.Breed] = s
	return nil
}

// MustRegister is like [Register] but panics on error. For registering
// compiled-in breed tables, where failure is a programmer error.
func MustRegister(s Skeleton) {
	if err := Register(s); err != nil {
		panic("wag: " + err.Error())
	}
}

// SkeletonFor returns the skeleton registered for the breed. An unregistered
// breed is a configuration error: fail fast at setup rather than render a
// wrong or default dog.
func SkeletonFor(b Breed) (Skeleton, error) {
	s, ok := registry[b]
	if !ok {
		return Skeleton{}, fmt.Errorf("breed %q is not registered", b)
	}
	return s, nil
}

// MustSkeleton is like [SkeletonFor] but panics on unknown breeds.
func MustSkeleton(b Breed) Skeleton {
	s, err := SkeletonFor(b)
	if err != nil {
		panic("wag: " + err.Error())
	}
	return s
}

// Breeds returns all registered breed identifiers, sorted.
func Breeds() []Breed {
	out := make([]Breed, 0, len(registry))
	for b := range registry {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// --- Breed files ---

// skeletonDoc is the TOML form of a Skeleton; colors are hex strings.
type skeletonDoc struct {
	Breed        string  `toml:"breed"`
	HeightScale  float64 `toml:"heightScale"`
	TorsoAspect  float64 `toml:"torsoAspect"`
	LegLength    float64 `toml:"legLength"`
	LegThickness float64 `toml:"legThickness"`
	HeadSize     float64 `toml:"headSize"`
	SnoutLength  float64 `toml:"snoutLength"`
	EarHeight    float64 `toml:"earHeight"`
	FloppyEars   bool    `toml:"floppyEars"`
	CurlTail     bool    `toml:"curlTail"`
	FlatFace     bool    `toml:"flatFace"`
	Spotted      bool    `toml:"spotted"`
	Fuzzy        bool    `toml:"fuzzy"`
	Primary      string  `toml:"primary"`
	Secondary    string  `toml:"secondary"`
	Accent       string  `toml:"accent"`
	SpeedScale   float64 `toml:"speedScale"`
}

type breedFile struct {
	Breeds []skeletonDoc `toml:"breed"`
}

// LoadSkeletons reads breed definitions from TOML and registers each one,
// returning the registered identifiers. The format is a list of [[breed]]
// tables mirroring the Skeleton fields, with colors as hex strings:
//
//	[[breed]]
//	breed = "mutt"
//	heightScale = 0.7
//	torsoAspect = 1.6
//	legLength = 0.9
//	legThickness = 0.22
//	headSize = 0.62
//	snoutLength = 0.55
//	earHeight = 0.7
//	floppyEars = true
//	primary = "#A9824C"
//	secondary = "#E8D8B8"
//	accent = "#6B4A2B"
//	speedScale = 1.0
//
// Any invalid or duplicate definition fails the whole load.
func LoadSkeletons(r io.Reader) ([]Breed, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read breed data: %w", err)
	}
	var file breedFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse breed data: %w", err)
	}
	loaded := make([]Breed, 0, len(file.Breeds))
	for _, doc := range file.Breeds {
		s, err := doc.skeleton()
		if err != nil {
			return nil, err
		}
		if err := Register(s); err != nil {
			return nil, err
		}
		loaded = append(loaded, s.Breed)
	}
	return loaded, nil
}

// LoadSkeletonFile reads and registers breed definitions from a TOML file.
func LoadSkeletonFile(path string) ([]Breed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open breed file: %w", err)
	}
	defer f.Close()
	return LoadSkeletons(f)
}

func (d skeletonDoc) skeleton() (Skeleton, error) {
	s := Skeleton{
		Breed:        Breed(d.Breed),
		HeightScale:  d.HeightScale,
		TorsoAspect:  d.TorsoAspect,
		LegLength:    d.LegLength,
		LegThickness: d.LegThickness,
		HeadSize:     d.HeadSize,
		SnoutLength:  d.SnoutLength,
		EarHeight:    d.EarHeight,
		FloppyEars:   d.FloppyEars,
		CurlTail:     d.CurlTail,
		FlatFace:     d.FlatFace,
		Spotted:      d.Spotted,
		Fuzzy:        d.Fuzzy,
		SpeedScale:   d.SpeedScale,
	}
	var err error
	if s.Primary, err = ParseColor(d.Primary); err != nil {
		return Skeleton{}, fmt.Errorf("breed %q: primary: %w", d.Breed, err)
	}
	if s.Secondary, err = ParseColor(d.Secondary); err != nil {
		return Skeleton{}, fmt.Errorf("breed %q: secondary: %w", d.Breed, err)
	}
	if s.Accent, err = ParseColor(d.Accent); err != nil {
		return Skeleton{}, fmt.Errorf("breed %q: accent: %w", d.Breed, err)
	}
	return s, nil
}

// --- Built-in breed table ---

// builtinSkeletons is the compiled-in breed data. Small companions sit near
// the bottom of the height range, giants at the top; ratios are tuned by eye
// against the painter's layout.
var builtinSkeletons = []Skeleton{
	{
		Breed: BreedShiba, HeightScale: 0.60,
		TorsoAspect: 1.55, LegLength: 0.85, LegThickness: 0.22,
		HeadSize: 0.62, SnoutLength: 0.55, EarHeight: 0.62,
		CurlTail: true,
		Primary:  hex("#D9883D"), Secondary: hex("#F2E3C9"), Accent: hex("#8A4F1D"),
		SpeedScale: 1.10,
	},
	{
		Breed: BreedCorgi, HeightScale: 0.46,
		TorsoAspect: 2.05, LegLength: 0.48, LegThickness: 0.24,
		HeadSize: 0.66, SnoutLength: 0.50, EarHeight: 0.80,
		Primary: hex("#E0A050"), Secondary: hex("#F7EBD4"), Accent: hex("#9C6A2E"),
		SpeedScale: 1.20,
	},
	{
		Breed: BreedGolden, HeightScale: 0.86,
		TorsoAspect: 1.65, LegLength: 1.00, LegThickness: 0.23,
		HeadSize: 0.60, SnoutLength: 0.65, EarHeight: 0.65,
		FloppyEars: true,
		Primary:    hex("#D9A955"), Secondary: hex("#EED9A8"), Accent: hex("#A87B32"),
		SpeedScale: 1.00,
	},
	{
		Breed: BreedLabrador, HeightScale: 0.85,
		TorsoAspect: 1.60, LegLength: 0.98, LegThickness: 0.24,
		HeadSize: 0.60, SnoutLength: 0.62, EarHeight: 0.60,
		FloppyEars: true,
		Primary:    hex("#3A2E26"), Secondary: hex("#5C4A3A"), Accent: hex("#241C17"),
		SpeedScale: 1.00,
	},
	{
		Breed: BreedHusky, HeightScale: 0.80,
		TorsoAspect: 1.60, LegLength: 1.02, LegThickness: 0.22,
		HeadSize: 0.58, SnoutLength: 0.62, EarHeight: 0.70,
		CurlTail: true,
		Primary:  hex("#8A94A0"), Secondary: hex("#ECEFF2"), Accent: hex("#4C535C"),
		SpeedScale: 1.15,
	},
	{
		Breed: BreedBeagle, HeightScale: 0.55,
		TorsoAspect: 1.60, LegLength: 0.80, LegThickness: 0.21,
		HeadSize: 0.64, SnoutLength: 0.58, EarHeight: 0.85,
		FloppyEars: true, Spotted: true,
		Primary: hex("#C98A4B"), Secondary: hex("#F4E8D0"), Accent: hex("#55381F"),
		SpeedScale: 1.10,
	},
	{
		Breed: BreedDachshund, HeightScale: 0.42,
		TorsoAspect: 2.20, LegLength: 0.42, LegThickness: 0.20,
		HeadSize: 0.60, SnoutLength: 0.80, EarHeight: 0.80,
		FloppyEars: true,
		Primary:    hex("#6B3A1E"), Secondary: hex("#9C5A2E"), Accent: hex("#3E2212"),
		SpeedScale: 1.15,
	},
	{
		Breed: BreedPug, HeightScale: 0.45,
		TorsoAspect: 1.40, LegLength: 0.62, LegThickness: 0.24,
		HeadSize: 0.72, SnoutLength: 0.20, EarHeight: 0.45,
		FloppyEars: true, CurlTail: true, FlatFace: true,
		Primary: hex("#D8B98B"), Secondary: hex("#EFE0C4"), Accent: hex("#3A2E26"),
		SpeedScale: 0.90,
	},
	{
		Breed: BreedFrenchie, HeightScale: 0.48,
		TorsoAspect: 1.40, LegLength: 0.60, LegThickness: 0.26,
		HeadSize: 0.74, SnoutLength: 0.22, EarHeight: 0.95,
		FlatFace: true,
		Primary:  hex("#8C8478"), Secondary: hex("#D9D2C6"), Accent: hex("#4E463C"),
		SpeedScale: 0.95,
	},
	{
		Breed: BreedBulldog, HeightScale: 0.56,
		TorsoAspect: 1.45, LegLength: 0.60, LegThickness: 0.30,
		HeadSize: 0.78, SnoutLength: 0.25, EarHeight: 0.40,
		FloppyEars: true, FlatFace: true, Spotted: true,
		Primary: hex("#E3D3B5"), Secondary: hex("#F4ECDA"), Accent: hex("#A2724A"),
		SpeedScale: 0.80,
	},
	{
		Breed: BreedPoodle, HeightScale: 0.76,
		TorsoAspect: 1.50, LegLength: 1.10, LegThickness: 0.19,
		HeadSize: 0.58, SnoutLength: 0.70, EarHeight: 0.85,
		FloppyEars: true, Fuzzy: true,
		Primary: hex("#E8E2D8"), Secondary: hex("#F6F2EA"), Accent: hex("#C9BFAE"),
		SpeedScale: 1.05,
	},
	{
		Breed: BreedToyPoodle, HeightScale: 0.45,
		TorsoAspect: 1.45, LegLength: 0.85, LegThickness: 0.18,
		HeadSize: 0.66, SnoutLength: 0.60, EarHeight: 0.85,
		FloppyEars: true, Fuzzy: true,
		Primary: hex("#B88A5E"), Secondary: hex("#E4CDB2"), Accent: hex("#8A5F3C"),
		SpeedScale: 1.20,
	},
	{
		Breed: BreedChihuahua, HeightScale: 0.40,
		TorsoAspect: 1.40, LegLength: 0.70, LegThickness: 0.16,
		HeadSize: 0.82, SnoutLength: 0.40, EarHeight: 1.05,
		Primary: hex("#D9B380"), Secondary: hex("#F2E4CC"), Accent: hex("#8F6A42"),
		SpeedScale: 1.35,
	},
	{
		Breed: BreedPomeranian, HeightScale: 0.42,
		TorsoAspect: 1.30, LegLength: 0.58, LegThickness: 0.18,
		HeadSize: 0.70, SnoutLength: 0.35, EarHeight: 0.55,
		CurlTail: true, Fuzzy: true,
		Primary: hex("#E7A75C"), Secondary: hex("#F6DDB8"), Accent: hex("#B57B33"),
		SpeedScale: 1.25,
	},
	{
		Breed: BreedBorderCollie, HeightScale: 0.74,
		TorsoAspect: 1.60, LegLength: 1.00, LegThickness: 0.21,
		HeadSize: 0.58, SnoutLength: 0.68, EarHeight: 0.70,
		Spotted: true,
		Primary: hex("#2E2A28"), Secondary: hex("#F1EDE8"), Accent: hex("#FFFFFF"),
		SpeedScale: 1.25,
	},
	{
		Breed: BreedShepherd, HeightScale: 0.90,
		TorsoAspect: 1.70, LegLength: 1.02, LegThickness: 0.23,
		HeadSize: 0.58, SnoutLength: 0.75, EarHeight: 0.85,
		Primary: hex("#8A6A3A"), Secondary: hex("#C9A560"), Accent: hex("#2E2520"),
		SpeedScale: 1.05,
	},
	{
		Breed: BreedGreatDane, HeightScale: 1.10,
		TorsoAspect: 1.65, LegLength: 1.30, LegThickness: 0.22,
		HeadSize: 0.56, SnoutLength: 0.80, EarHeight: 0.65,
		FloppyEars: true,
		Primary:    hex("#7C7068"), Secondary: hex("#B8ACA2"), Accent: hex("#463E38"),
		SpeedScale: 0.85,
	},
	{
		Breed: BreedDalmatian, HeightScale: 0.84,
		TorsoAspect: 1.60, LegLength: 1.05, LegThickness: 0.21,
		HeadSize: 0.58, SnoutLength: 0.70, EarHeight: 0.65,
		FloppyEars: true, Spotted: true,
		Primary: hex("#F2EFE9"), Secondary: hex("#FBF9F4"), Accent: hex("#2A2622"),
		SpeedScale: 1.10,
	},
	{
		Breed: BreedSamoyed, HeightScale: 0.80,
		TorsoAspect: 1.55, LegLength: 0.95, LegThickness: 0.24,
		HeadSize: 0.60, SnoutLength: 0.60, EarHeight: 0.60,
		CurlTail: true, Fuzzy: true,
		Primary: hex("#F4F1E9"), Secondary: hex("#FCFAF4"), Accent: hex("#D8D2C2"),
		SpeedScale: 1.00,
	},
	{
		Breed: BreedShihTzu, HeightScale: 0.42,
		TorsoAspect: 1.50, LegLength: 0.55, LegThickness: 0.20,
		HeadSize: 0.70, SnoutLength: 0.25, EarHeight: 0.90,
		FloppyEars: true, FlatFace: true, Fuzzy: true,
		Primary: hex("#BCA68C"), Secondary: hex("#E9DECB"), Accent: hex("#6E5B44"),
		SpeedScale: 0.95,
	},
	{
		Breed: BreedJackRussell, HeightScale: 0.50,
		TorsoAspect: 1.55, LegLength: 0.78, LegThickness: 0.19,
		HeadSize: 0.62, SnoutLength: 0.55, EarHeight: 0.60,
		FloppyEars: true, Spotted: true,
		Primary: hex("#F2ECE0"), Secondary: hex("#FAF6EC"), Accent: hex("#B06A32"),
		SpeedScale: 1.40,
	},
	{
		Breed: BreedAussie, HeightScale: 0.74,
		TorsoAspect: 1.60, LegLength: 0.98, LegThickness: 0.22,
		HeadSize: 0.60, SnoutLength: 0.65, EarHeight: 0.65,
		FloppyEars: true, Spotted: true,
		Primary: hex("#7A6A5E"), Secondary: hex("#E8DFD2"), Accent: hex("#3A322C"),
		SpeedScale: 1.20,
	},
	{
		Breed: BreedBernese, HeightScale: 0.96,
		TorsoAspect: 1.65, LegLength: 1.00, LegThickness: 0.26,
		HeadSize: 0.62, SnoutLength: 0.62, EarHeight: 0.65,
		FloppyEars: true, Spotted: true,
		Primary: hex("#2C2420"), Secondary: hex("#E9DECF"), Accent: hex("#9C5A2E"),
		SpeedScale: 0.85,
	},
	{
		Breed: BreedGreyhound, HeightScale: 0.94,
		TorsoAspect: 1.80, LegLength: 1.35, LegThickness: 0.15,
		HeadSize: 0.48, SnoutLength: 0.95, EarHeight: 0.45,
		Primary: hex("#AFA6A0"), Secondary: hex("#DCD6D0"), Accent: hex("#6E6660"),
		SpeedScale: 1.30,
	},
}

func init() {
	for _, s := range builtinSkeletons {
		MustRegister(s)
	}
}
