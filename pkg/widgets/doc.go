// Package widgets provides render objects that animate layout.
//
// The central type is [RenderAnimatedSize], a single-child render box that
// animates its own size toward the size of its child. It watches how the
// child's size behaves from one layout pass to the next:
//
//   - A one-off change is interpolated over the configured duration.
//   - Changes on consecutive passes mean the child is moving by itself, so
//     the box follows the child exactly instead of lagging behind it.
//   - Tight constraints, a missing child, or detaching from the tree reset
//     the box so the next pass starts fresh.
//
// While the animated size is smaller than the child, the child is painted
// through a clip of the configured [graphics.Clip] behavior.
//
// # Frames
//
// The animation is driven by an [animation.TickerProvider]. Each tick that
// moves the animation marks the box for layout; the host then steps its
// tickers and flushes layout once per frame:
//
//	scheduler := animation.NewScheduler()
//	box := widgets.NewRenderAnimatedSize(300*time.Millisecond, scheduler)
//	box.SetChild(content)
//
//	// per frame
//	scheduler.Step()
//	pipeline.FlushLayoutForRoot(root, constraints)
//
// [RenderSizedBox] and [RenderColoredBox] are small leaf boxes used as
// animated content in tests and tools.
package widgets
