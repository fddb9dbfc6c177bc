// Package wag is a procedural skeletal animation engine for a 2D companion
// dog, designed for [Ebitengine] hosts.
//
// Wag has no authored animation clips. Every frame's pose is synthesized from
// pure time-based functions: a trot gait for walking, breathing for idle and
// sleep, tail oscillation for wagging and petting. Dozens of visually distinct
// breeds share the one pipeline through a flat immutable [Skeleton] data table
// selected from a registry — there is no per-breed code.
//
// # Quick start
//
// The simplest integration is [Widget], which owns the controller, gesture
// classification, and a cached render surface:
//
//	dog, err := wag.NewWidget(wag.WidgetConfig{Breed: wag.BreedShiba, Width: 256, Height: 256})
//	// in your ebiten.Game:
//	func (g *Game) Update() error        { g.dog.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.dog.Draw(s, 0, 0) }
//
// For full control, wire the pieces yourself and call them once per frame, in
// order: tick, read, paint.
//
//	skel := wag.MustSkeleton(wag.BreedCorgi)
//	ctrl := wag.NewController(skel)
//	inter := wag.NewInteractions(ctrl)
//
//	ctrl.Tick(dt)
//	pose, expr := ctrl.Pose(), ctrl.Expression()
//	wag.Paint(canvas, skel, pose, expr, w, h)
//
// Gestures arrive through [Interactions] (tap, long-press, pan, mood keys),
// which arbitrates them by fixed priority: petting > tap > drag > mood.
//
// # Rendering
//
// [Paint] is a pure function of (skeleton, pose, expression, canvas size). It
// draws into any surface implementing [Canvas]; [NewGGCanvas] adapts a
// [gg] software context, which also powers headless tests and PNG export.
// Every shape is drawn twice — a dark outline pass, then a gradient fill —
// for a consistent clay-toy look across breeds.
//
// # Extra breeds
//
// Built-in breeds cover the common companions. Hosts can register more at
// startup from TOML files via [LoadSkeletonFile]; unknown breed lookups fail
// fast with a descriptive error.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
package wag
