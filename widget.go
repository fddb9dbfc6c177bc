package wag

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// defaultWidgetSize is the bitmap edge used when WidgetConfig leaves
	// Width or Height zero.
	defaultWidgetSize = 256

	// dragDeadZone is how far the pointer must travel, in pixels, before a
	// press turns into a drag instead of a tap or hold.
	dragDeadZone = 4.0

	// longPressDelay is how long a press must stay inside the dead zone
	// before it counts as a hold, in seconds.
	longPressDelay = 0.5
)

// WidgetConfig configures a Widget. The zero value is usable: it picks the
// default breed and a 256x256 bitmap.
type WidgetConfig struct {
	// Breed selects the skeleton. Empty means BreedShiba.
	Breed Breed

	// Width and Height are the bitmap size in pixels. Zero means 256.
	Width  int
	Height int
}

// syntheticEvent is one injected pointer event, consumed on the next Update.
type syntheticEvent struct {
	x, y    float64
	pressed bool
}

// widgetPointer tracks the single pointer driving the widget between frames.
type widgetPointer struct {
	down        bool
	startX      float64
	startY      float64
	lastX       float64
	lastY       float64
	dragging    bool
	holdTime    float64
	longPressed bool
}

// Widget is a ready-made Ebitengine host for one dog. It owns a Controller
// and an Interactions, reads the mouse each Update, classifies presses into
// taps, holds and drags, and renders through a cached software bitmap that is
// only repainted when the visible frame changes.
//
// Hosts that need finer control can skip Widget and wire Controller,
// Interactions and Paint together themselves; Widget is that wiring done the
// common way.
type Widget struct {
	cfg   WidgetConfig
	breed Breed
	skel  Skeleton

	ctrl  *Controller
	inter *Interactions

	gc  *gg.Context
	img *ebiten.Image

	frame    Frame
	havePrev bool

	pointer     widgetPointer
	injectQueue []syntheticEvent

	disposed bool
}

// NewWidget builds a Widget for cfg. It returns an error when cfg names a
// breed that is not registered.
func NewWidget(cfg WidgetConfig) (*Widget, error) {
	if cfg.Breed == "" {
		cfg.Breed = BreedShiba
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidgetSize
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultWidgetSize
	}
	skel, err := SkeletonFor(cfg.Breed)
	if err != nil {
		return nil, err
	}

	ctrl := NewController(skel)
	w := &Widget{
		cfg:   cfg,
		breed: cfg.Breed,
		skel:  skel,
		ctrl:  ctrl,
		inter: NewInteractions(ctrl),
		gc:    gg.NewContext(cfg.Width, cfg.Height),
	}
	return w, nil
}

// Update advances the widget by one Ebitengine tick: it consumes one injected
// event or reads the real mouse, classifies the gesture, and ticks the
// animation. Call it from the host's Update.
func (w *Widget) Update() {
	if w.disposed {
		return
	}
	dt := 1.0 / float64(ebiten.TPS())
	if !w.processInjected(dt) {
		w.processMouse(dt)
	}
	w.ctrl.Tick(dt)
}

// processInjected pops one synthetic event and feeds it through the pointer
// state machine. Returns true if an event was consumed, in which case the
// real mouse is skipped this frame.
func (w *Widget) processInjected(dt float64) bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	w.processPointer(evt.x, evt.y, evt.pressed, dt)
	return true
}

func (w *Widget) processMouse(dt float64) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	w.processPointer(float64(mx), float64(my), pressed, dt)
}

// processPointer runs the gesture state machine for the widget's single
// pointer. A press that stays inside the dead zone becomes a hold after
// longPressDelay; one that leaves it becomes a drag; a release before either
// is a tap.
func (w *Widget) processPointer(x, y float64, pressed bool, dt float64) {
	ps := &w.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false
		ps.holdTime = 0
		ps.longPressed = false

	case pressed && ps.down:
		if !ps.dragging && !ps.longPressed {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > dragDeadZone {
				ps.dragging = true
			}
		}
		if ps.dragging {
			if dx := x - ps.lastX; dx != 0 {
				w.inter.OnPanUpdate(dx)
			}
		} else if !ps.longPressed {
			ps.holdTime += dt
			if ps.holdTime >= longPressDelay {
				ps.longPressed = true
				w.inter.OnLongPressStart()
			}
		}
		ps.lastX, ps.lastY = x, y

	case !pressed && ps.down:
		switch {
		case ps.longPressed:
			w.inter.OnLongPressEnd()
		case ps.dragging:
			w.inter.OnPanEnd()
		default:
			w.inter.OnTap()
		}
		ps.down = false
		ps.dragging = false
		ps.longPressed = false
		ps.holdTime = 0
	}
}

// --- Synthetic input ---

// InjectPress queues a pointer press at (x, y). Each queued event is consumed
// by one Update call, exactly like a real mouse frame.
func (w *Widget) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a held pointer move to (x, y). Use it between InjectPress
// and InjectRelease to simulate a drag or a hold.
func (w *Widget) InjectMove(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (w *Widget) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{x: x, y: y, pressed: false})
}

// InjectTap queues a press and a release at the same point. Consumes two
// frames.
func (w *Widget) InjectTap(x, y float64) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// --- Rendering ---

// Render returns the widget's current bitmap, repainting only when the
// visible frame changed since the last call. The returned image stays valid
// until the next Render.
func (w *Widget) Render() *ebiten.Image {
	if w.disposed {
		return nil
	}
	next := Frame{Breed: w.breed, Pose: w.ctrl.Pose(), Expression: w.ctrl.Expression()}
	if w.img == nil || !w.havePrev || ShouldRepaint(w.frame, next) {
		w.repaint(next)
	}
	return w.img
}

func (w *Widget) repaint(f Frame) {
	w.gc.ClearWithColor(gg.RGBA{})
	Paint(NewGGCanvas(w.gc), w.skel, f.Pose, f.Expression, float64(w.cfg.Width), float64(w.cfg.Height))
	w.img = ebiten.NewImageFromImage(w.gc.Image())
	w.frame = f
	w.havePrev = true
}

// Draw renders the widget and copies the bitmap onto screen at (x, y).
func (w *Widget) Draw(screen *ebiten.Image, x, y float64) {
	img := w.Render()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// --- Configuration ---

// SetBreed swaps the widget to a different breed. The animation restarts in
// the idle state; the bitmap is repainted on the next Render. Returns an
// error when b is not registered, leaving the widget unchanged.
func (w *Widget) SetBreed(b Breed) error {
	skel, err := SkeletonFor(b)
	if err != nil {
		return err
	}
	w.ctrl.Dispose()
	w.ctrl = NewController(skel)
	w.inter = NewInteractions(w.ctrl)
	w.breed = b
	w.skel = skel
	w.havePrev = false
	return nil
}

// Breed returns the breed the widget currently shows.
func (w *Widget) Breed() Breed { return w.breed }

// Size returns the bitmap dimensions in pixels.
func (w *Widget) Size() (int, int) { return w.cfg.Width, w.cfg.Height }

// Controller exposes the widget's animation controller for hosts that drive
// states directly.
func (w *Widget) Controller() *Controller { return w.ctrl }

// Interactions exposes the widget's gesture router, mainly for feeding mood
// suggestions.
func (w *Widget) Interactions() *Interactions { return w.inter }

// Dispose releases the widget's controller and bitmaps. Safe to call more
// than once. A disposed widget ignores Update and renders nothing.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	w.ctrl.Dispose()
	w.img = nil
	w.gc = nil
	w.injectQueue = nil
}
