// Package voice synthesizes the dog's vocalizations: short procedural
// streamers for barking, whining and panting, and a Voice that owns the
// speaker and mixes them.
//
// The generators are pure streamers, so they can be composed or inspected
// without an audio device. Only New touches the hardware.
package voice

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/wag"
)

const sampleRate = beep.SampleRate(44100)

const (
	barkDuration  = 180 * time.Millisecond
	whineDuration = 500 * time.Millisecond
	pantDuration  = time.Second

	barkStartHz = 650
	barkEndHz   = 400
	whineStartHz = 900
	whineEndHz   = 1200
	pantBreathHz = 3
)

// generator streams a mono waveform into both channels for a fixed number of
// samples. synth is called once per sample in order, so it may carry phase
// state in a closure.
type generator struct {
	rate  beep.SampleRate
	pos   int
	total int
	synth func(t float64) float64
}

func newGenerator(rate beep.SampleRate, d time.Duration, synth func(t float64) float64) *generator {
	return &generator{rate: rate, total: rate.N(d), synth: synth}
}

func (g *generator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, false
		}
		v := g.synth(float64(g.pos) / float64(g.rate))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *generator) Err() error { return nil }

// env shapes a note: linear attack, flat sustain, squared release. All times
// in seconds.
func env(t, total, attack, release float64) float64 {
	switch {
	case t < 0 || t > total:
		return 0
	case t < attack:
		return t / attack
	case t > total-release:
		r := (total - t) / release
		return r * r
	default:
		return 1
	}
}

// Bark returns one bark: a fast downward sweep pushed through tanh for a
// raspy edge, with a snappy attack and a short tail.
func Bark() beep.Streamer {
	total := barkDuration.Seconds()
	phase := 0.0
	return newGenerator(sampleRate, barkDuration, func(t float64) float64 {
		f := barkStartHz + (barkEndHz-barkStartHz)*(t/total)
		phase += f / float64(sampleRate)
		v := math.Tanh(2.8 * math.Sin(2*math.Pi*phase))
		return v * env(t, total, 0.006, 0.10) * 0.8
	})
}

// Whine returns a plaintive upward sine slide with a touch of vibrato.
func Whine() beep.Streamer {
	total := whineDuration.Seconds()
	phase := 0.0
	return newGenerator(sampleRate, whineDuration, func(t float64) float64 {
		f := whineStartHz + (whineEndHz-whineStartHz)*(t/total)
		f += 18 * math.Sin(2*math.Pi*6*t)
		phase += f / float64(sampleRate)
		return math.Sin(2*math.Pi*phase) * env(t, total, 0.04, 0.18) * 0.5
	})
}

// Pant returns a second of breathy noise pulsed at the panting rate. The
// noise runs through a one-pole low-pass so it reads as breath, not static.
func Pant() beep.Streamer {
	total := pantDuration.Seconds()
	prev := 0.0
	return newGenerator(sampleRate, pantDuration, func(t float64) float64 {
		n := rand.Float64()*2 - 1
		prev += 0.25 * (n - prev)
		burst := math.Sin(2 * math.Pi * pantBreathHz * t)
		if burst < 0 {
			burst = 0
		}
		return prev * burst * burst * env(t, total, 0.05, 0.15) * 0.6
	})
}

// Voice owns the speaker and mixes vocalizations into it. Create at most one
// per process; the speaker is a global device.
type Voice struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

// New opens the audio device and starts the mixer. It returns an error when
// no output device is available, in which case the dog stays silent and the
// rest of the widget is unaffected.
func New() (*Voice, error) {
	v := &Voice{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	speaker.Play(v.mixer)
	v.ready = true
	return v, nil
}

func (v *Voice) play(s beep.Streamer) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.ready {
		return
	}
	speaker.Lock()
	v.mixer.Add(s)
	speaker.Unlock()
}

// Bark plays one bark.
func (v *Voice) Bark() { v.play(Bark()) }

// Whine plays one whine.
func (v *Voice) Whine() { v.play(Whine()) }

// Pant plays one panting breath cycle.
func (v *Voice) Pant() { v.play(Pant()) }

// React plays the vocalization a dog would make entering state s: an excited
// bark for tail wags and zoomies, a contented whine for petting, panting for
// walking. Other states are silent. Wire it to Controller.OnStateChange.
func (v *Voice) React(s wag.State) {
	switch s {
	case wag.StateTailWag, wag.StateZoomies:
		v.Bark()
	case wag.StatePetting:
		v.Whine()
	case wag.StateWalking:
		v.Pant()
	}
}

// Close silences the mixer. The speaker device itself stays open; beep keeps
// it for the life of the process. Safe to call more than once.
func (v *Voice) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.ready {
		return
	}
	v.mixer.Clear()
	v.ready = false
}
