package widgets

import (
	"fmt"
	"time"

	"github.com/go-drift/animatedsize/pkg/animation"
	"github.com/go-drift/animatedsize/pkg/graphics"
	"github.com/go-drift/animatedsize/pkg/layout"
)

// AnimatedSizeState classifies how the child's size behaved over the most
// recent layout passes.
type AnimatedSizeState int

const (
	// StateStart is the initial state. The next layout pass adopts the
	// child's size without animating.
	StateStart AnimatedSizeState = iota
	// StateStable means the child's size held still on the last pass. A
	// size change from here starts a smooth animation.
	StateStable
	// StateChanged means the child's size changed once. Another change on
	// the next pass means the child is itself animating.
	StateChanged
	// StateUnstable means the child's size is changing every pass. The
	// render object tracks it exactly until it holds still for one pass.
	StateUnstable
)

func (s AnimatedSizeState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateStable:
		return "stable"
	case StateChanged:
		return "changed"
	case StateUnstable:
		return "unstable"
	default:
		return fmt.Sprintf("AnimatedSizeState(%d)", int(s))
	}
}

// RenderAnimatedSize animates its own size toward the size of its child.
//
// A one-off change in the child's size is interpolated over Duration using
// Curve. When the child's size changes on consecutive passes the render object
// stops smoothing and follows the child exactly, so it never lags behind a
// child that is animating on its own. While the animated size is smaller than
// the child, the child is painted through a clip of ClipBehavior.
//
// Example:
//
//	box := widgets.NewRenderAnimatedSize(200*time.Millisecond, scheduler)
//	box.SetCurve(animation.EaseInOut)
//	box.SetChild(content)
type RenderAnimatedSize struct {
	layout.RenderBoxBase
	child layout.RenderBox

	controller *animation.AnimationController
	animation  *animation.CurvedAnimation
	sizeTween  *animation.Tween[graphics.Size]

	state             AnimatedSizeState
	lastValue         float64
	hasVisualOverflow bool

	alignment     layout.AlignmentGeometry
	textDirection layout.TextDirection
	clipBehavior  graphics.Clip
	onEnd         func()

	removeListener       func()
	removeStatusListener func()
}

// NewRenderAnimatedSize creates an animated size render object driven by
// frames from provider. A nil provider uses the default scheduler.
// The child is centered, the curve is linear and overflow is clipped with
// hard edges until configured otherwise.
func NewRenderAnimatedSize(duration time.Duration, provider animation.TickerProvider) *RenderAnimatedSize {
	if duration <= 0 {
		panic("widgets: RenderAnimatedSize duration must be positive")
	}
	r := &RenderAnimatedSize{
		alignment:     layout.AlignmentCenter,
		textDirection: layout.TextDirectionLTR,
		clipBehavior:  graphics.ClipHardEdge,
		sizeTween:     animation.TweenSize(graphics.Size{}, graphics.Size{}),
	}
	r.SetSelf(r)

	r.controller = animation.NewAnimationController(duration)
	if provider != nil {
		r.controller.Resync(provider)
	}
	r.animation = &animation.CurvedAnimation{Parent: r.controller, Curve: animation.LinearCurve}
	r.removeListener = r.controller.AddListener(func() {
		if r.controller.Value != r.lastValue {
			r.MarkNeedsLayout()
		}
	})
	r.removeStatusListener = r.controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted && r.onEnd != nil {
			r.onEnd()
		}
	})
	return r
}

// SetChild replaces the child render box.
func (r *RenderAnimatedSize) SetChild(child layout.RenderObject) {
	if r.child != nil && r.child != child {
		layout.DropChild(r.child)
	}
	r.child = nil
	if child != nil {
		r.child = child.(layout.RenderBox)
	}
	layout.SetParentOnChild(r.child, r)
	if owner := r.Owner(); owner != nil && r.child != nil {
		r.child.Attach(owner)
	}
}

// Child returns the current child, or nil.
func (r *RenderAnimatedSize) Child() layout.RenderBox {
	return r.child
}

// VisitChildren calls visitor for the child, if any.
func (r *RenderAnimatedSize) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

// Duration returns the length of a full size animation.
func (r *RenderAnimatedSize) Duration() time.Duration {
	return r.controller.Duration
}

// SetDuration changes the animation length. A running animation keeps its
// progress and finishes at the new pace.
func (r *RenderAnimatedSize) SetDuration(duration time.Duration) {
	if duration <= 0 {
		panic("widgets: RenderAnimatedSize duration must be positive")
	}
	r.controller.Duration = duration
}

// ReverseDuration returns the reverse animation length; zero means Duration.
func (r *RenderAnimatedSize) ReverseDuration() time.Duration {
	return r.controller.ReverseDuration
}

// SetReverseDuration sets the length used when the driver runs backwards.
func (r *RenderAnimatedSize) SetReverseDuration(duration time.Duration) {
	if duration < 0 {
		panic("widgets: RenderAnimatedSize reverse duration must not be negative")
	}
	r.controller.ReverseDuration = duration
}

// Curve returns the easing curve applied to animation progress.
func (r *RenderAnimatedSize) Curve() func(float64) float64 {
	return r.animation.Curve
}

// SetCurve changes the easing curve. The new curve applies from the next
// layout pass without restarting the animation.
func (r *RenderAnimatedSize) SetCurve(curve func(float64) float64) {
	if curve == nil {
		panic("widgets: RenderAnimatedSize curve must not be nil")
	}
	r.animation.Curve = curve
	r.MarkNeedsLayout()
}

// Alignment returns how the child is positioned within the animated size.
func (r *RenderAnimatedSize) Alignment() layout.AlignmentGeometry {
	return r.alignment
}

// SetAlignment changes how the child is positioned within the animated size.
func (r *RenderAnimatedSize) SetAlignment(alignment layout.AlignmentGeometry) {
	if alignment == nil {
		panic("widgets: RenderAnimatedSize alignment must not be nil")
	}
	if r.alignment == alignment {
		return
	}
	r.alignment = alignment
	r.MarkNeedsLayout()
}

// TextDirection returns the direction used to resolve directional alignments.
func (r *RenderAnimatedSize) TextDirection() layout.TextDirection {
	return r.textDirection
}

// SetTextDirection changes the direction used to resolve directional alignments.
func (r *RenderAnimatedSize) SetTextDirection(direction layout.TextDirection) {
	if r.textDirection == direction {
		return
	}
	r.textDirection = direction
	r.MarkNeedsLayout()
}

// TickerProvider returns the source of animation frames.
func (r *RenderAnimatedSize) TickerProvider() animation.TickerProvider {
	return r.controller.TickerProvider()
}

// SetTickerProvider moves the animation onto a different frame source
// without losing its progress.
func (r *RenderAnimatedSize) SetTickerProvider(provider animation.TickerProvider) {
	if provider == nil {
		panic("widgets: RenderAnimatedSize ticker provider must not be nil")
	}
	if r.controller.TickerProvider() == provider {
		return
	}
	r.controller.Resync(provider)
}

// ClipBehavior returns how overflow is clipped while the size animates.
func (r *RenderAnimatedSize) ClipBehavior() graphics.Clip {
	return r.clipBehavior
}

// SetClipBehavior changes how overflow is clipped. ClipNone paints the
// overflowing child unclipped.
func (r *RenderAnimatedSize) SetClipBehavior(clip graphics.Clip) {
	if r.clipBehavior == clip {
		return
	}
	r.clipBehavior = clip
	r.MarkNeedsPaint()
}

// SetOnEnd registers a callback invoked each time a size animation completes.
func (r *RenderAnimatedSize) SetOnEnd(fn func()) {
	r.onEnd = fn
}

// State returns the current classification of the child's size behavior.
func (r *RenderAnimatedSize) State() AnimatedSizeState {
	return r.state
}

// IsAnimating reports whether a size animation is in progress.
func (r *RenderAnimatedSize) IsAnimating() bool {
	return r.controller.IsAnimating()
}

// HasVisualOverflow reports whether the last layout left the animated size
// smaller than its target, so paint clips the child.
func (r *RenderAnimatedSize) HasVisualOverflow() bool {
	return r.hasVisualOverflow
}

// SizeTween returns the begin and end sizes of the current animation.
func (r *RenderAnimatedSize) SizeTween() (begin, end graphics.Size) {
	return r.sizeTween.Begin, r.sizeTween.End
}

// Attach connects the render object and its child to owner.
func (r *RenderAnimatedSize) Attach(owner *layout.PipelineOwner) {
	r.RenderBoxBase.Attach(owner)
	if r.child != nil {
		r.child.Attach(owner)
	}
	switch r.state {
	case StateChanged, StateUnstable:
		r.MarkNeedsLayout()
	}
}

// Detach stops any running animation and forgets the size history. The
// render object stays dirty, so the first layout after reattaching starts
// from StateStart.
func (r *RenderAnimatedSize) Detach() {
	r.controller.Stop()
	r.state = StateStart
	r.RenderBoxBase.Detach()
	r.MarkNeedsLayout()
	if r.child != nil {
		r.child.Detach()
	}
}

// Dispose stops the animation and releases the controller.
func (r *RenderAnimatedSize) Dispose() {
	if r.removeListener != nil {
		r.removeListener()
		r.removeListener = nil
	}
	if r.removeStatusListener != nil {
		r.removeStatusListener()
		r.removeStatusListener = nil
	}
	r.controller.Dispose()
}

// PerformLayout lays out the child, advances the size state machine and
// sizes itself to the interpolated size.
func (r *RenderAnimatedSize) PerformLayout() {
	r.lastValue = r.controller.Value
	r.hasVisualOverflow = false

	constraints := r.Constraints()
	if r.child == nil || constraints.IsTight() {
		r.controller.Stop()
		forced := constraints.Smallest()
		r.sizeTween.Set(forced)
		r.state = StateStart
		if r.child != nil {
			r.child.Layout(constraints, false)
			r.child.SetParentData(&layout.BoxParentData{})
		}
		r.SetSize(forced)
		return
	}

	r.child.Layout(constraints, true)
	childSize := r.child.Size()

	switch r.state {
	case StateStart:
		r.layoutStart(childSize)
	case StateStable:
		r.layoutStable(childSize)
	case StateChanged:
		r.layoutChanged(childSize)
	case StateUnstable:
		r.layoutUnstable(childSize)
	}

	size := constraints.Constrain(r.animatedSize())
	r.SetSize(size)

	offset := r.alignment.Resolve(r.textDirection).AlongSize(size, childSize)
	r.child.SetParentData(&layout.BoxParentData{Offset: offset})

	end := r.sizeTween.End
	r.hasVisualOverflow = size.Width < end.Width || size.Height < end.Height
}

func (r *RenderAnimatedSize) animatedSize() graphics.Size {
	return r.sizeTween.TransformCurved(r.animation)
}

// restartAnimation starts a fresh run from zero. The pass that triggered the
// restart observes zero, so the jump back does not request another layout.
func (r *RenderAnimatedSize) restartAnimation() {
	r.lastValue = 0
	r.controller.ForwardFrom(0)
}

// layoutStart adopts the first observed child size without animating.
func (r *RenderAnimatedSize) layoutStart(childSize graphics.Size) {
	r.sizeTween.Set(childSize)
	r.state = StateStable
}

// layoutStable starts an animation when the child changed size. With no
// change it collapses a finished animation, or resumes one interrupted by a
// detach.
func (r *RenderAnimatedSize) layoutStable(childSize graphics.Size) {
	switch {
	case r.sizeTween.End != childSize:
		r.sizeTween.Begin = r.Size()
		r.sizeTween.End = childSize
		r.restartAnimation()
		r.state = StateChanged
	case r.controller.AtUpperBound():
		r.sizeTween.Set(childSize)
	case !r.controller.IsAnimating():
		r.controller.Forward()
	}
}

// layoutChanged decides whether the change seen last pass was a one-off.
// A second consecutive change means the child is moving on its own.
func (r *RenderAnimatedSize) layoutChanged(childSize graphics.Size) {
	if r.sizeTween.End != childSize {
		r.sizeTween.Set(childSize)
		r.restartAnimation()
		r.state = StateUnstable
		return
	}
	r.state = StateStable
	if !r.controller.IsAnimating() {
		r.controller.Forward()
	}
}

// layoutUnstable tracks the child exactly until it holds still for one pass.
func (r *RenderAnimatedSize) layoutUnstable(childSize graphics.Size) {
	if r.sizeTween.End != childSize {
		r.sizeTween.Set(childSize)
		r.restartAnimation()
		return
	}
	r.controller.Stop()
	r.state = StateStable
}

// ComputeDryLayout reports the size the next layout under constraints would
// produce, without laying out the child or advancing any state.
func (r *RenderAnimatedSize) ComputeDryLayout(constraints layout.Constraints) graphics.Size {
	if r.child == nil || constraints.IsTight() {
		return constraints.Smallest()
	}
	childSize := layout.DryLayout(r.child, constraints)

	switch r.state {
	case StateStart:
		return constraints.Constrain(childSize)
	case StateStable:
		if r.sizeTween.End != childSize {
			return constraints.Constrain(r.Size())
		}
		if r.controller.AtUpperBound() {
			return constraints.Constrain(childSize)
		}
	case StateChanged, StateUnstable:
		if r.sizeTween.End != childSize {
			return constraints.Constrain(childSize)
		}
	}
	return constraints.Constrain(r.animatedSize())
}

// Paint draws the child at its aligned offset, clipped to the animated size
// while it overflows.
func (r *RenderAnimatedSize) Paint(ctx *layout.PaintContext) {
	if r.child == nil {
		return
	}
	paintChild := func(inner *layout.PaintContext) {
		inner.PaintChild(r.child, layout.ChildOffset(r.child))
	}
	if r.hasVisualOverflow && r.clipBehavior != graphics.ClipNone {
		size := r.Size()
		ctx.PaintClipRect(r.clipBehavior, graphics.RectFromLTWH(0, 0, size.Width, size.Height), paintChild)
		return
	}
	paintChild(ctx)
}

// HitTest forwards hits inside the animated size to the child.
func (r *RenderAnimatedSize) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child == nil {
		return false
	}
	offset := layout.ChildOffset(r.child)
	local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
	if r.child.HitTest(local, result) {
		result.Add(r)
		return true
	}
	return false
}

// DebugProperties reports the animation state for diagnostics and snapshots.
func (r *RenderAnimatedSize) DebugProperties() map[string]any {
	begin, end := r.SizeTween()
	return map[string]any{
		"state":     r.state.String(),
		"begin":     begin.String(),
		"end":       end.String(),
		"overflow":  r.hasVisualOverflow,
		"animating": r.IsAnimating(),
		"clip":      r.clipBehavior.String(),
	}
}
