// Package animation provides the time-based animation primitives used by
// layout-stage animations.
//
// # Core Components
//
//   - [AnimationController]: Drives a value from 0.0 to 1.0 over a configurable
//     duration. Progress is accumulated from frame deltas, so the duration can
//     change mid-run without resetting the value.
//
//   - [Ticker], [TickerProvider] and [Scheduler]: Frame delivery. A host steps
//     its scheduler once per frame; [AnimationController.Resync] moves a running
//     controller to another provider without losing progress.
//
//   - [Tween]: Interpolates between begin and end values of any type using the
//     controller's current value. [TweenSize] and [LerpSize] cover 2D sizes.
//
//   - Curves: Easing functions ([EaseIn], [EaseOut], [EaseInOut], [CubicBezier])
//     applied either inside the controller or at read time via [CurvedAnimation].
//
// # Basic Usage
//
//	controller := animation.NewAnimationController(300 * time.Millisecond)
//	curved := &animation.CurvedAnimation{Parent: controller, Curve: animation.EaseInOut}
//	sizes := animation.TweenSize(from, to)
//	controller.AddListener(func() {
//	    renderObject.MarkNeedsLayout()
//	})
//	controller.ForwardFrom(0)
//
//	// During layout
//	size := sizes.TransformCurved(curved)
//
//	// When the owner goes away
//	controller.Dispose()
package animation
