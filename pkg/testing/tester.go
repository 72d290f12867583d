package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/animatedsize/pkg/animation"
	"github.com/go-drift/animatedsize/pkg/graphics"
	"github.com/go-drift/animatedsize/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
	// FrameInterval is the clock step PumpAndSettle takes between frames.
	FrameInterval = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: render tree did not settle")

// RenderTester drives a render tree frame by frame without a platform.
// It owns a pipeline, a ticker scheduler and a fake clock installed as the
// animation clock, and records paint into display lists.
type RenderTester struct {
	pipeline    *layout.PipelineOwner
	scheduler   *animation.Scheduler
	clock       *FakeClock
	prevClock   animation.Clock
	root        layout.RenderObject
	constraints layout.Constraints
	frames      int
}

// NewRenderTester creates a tester that lays out its root with constraints.
// Call Cleanup() when done, or use NewRenderTesterWithT() instead.
func NewRenderTester(constraints layout.Constraints) *RenderTester {
	clk := NewFakeClock()
	t := &RenderTester{
		pipeline:    &layout.PipelineOwner{},
		scheduler:   animation.NewScheduler(),
		clock:       clk,
		constraints: constraints,
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewRenderTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewRenderTesterWithT(t *testing.T, constraints layout.Constraints) *RenderTester {
	tester := NewRenderTester(constraints)
	t.Cleanup(tester.Cleanup)
	return tester
}

// NewDefaultRenderTesterWithT creates a tester with loose constraints of the
// default test surface size.
func NewDefaultRenderTesterWithT(t *testing.T) *RenderTester {
	return NewRenderTesterWithT(t, layout.Loose(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}))
}

// Cleanup detaches the root and restores the animation clock. Must be called
// if not using NewRenderTesterWithT.
func (t *RenderTester) Cleanup() {
	if t.root != nil {
		t.root.Detach()
		t.root = nil
	}
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for advancing time in tests.
func (t *RenderTester) Clock() *FakeClock {
	return t.clock
}

// Scheduler returns the ticker provider frames are stepped on. Pass it to
// render objects that animate.
func (t *RenderTester) Scheduler() *animation.Scheduler {
	return t.scheduler
}

// Pipeline returns the pipeline owner the root is attached to.
func (t *RenderTester) Pipeline() *layout.PipelineOwner {
	return t.pipeline
}

// Root returns the root render object.
func (t *RenderTester) Root() layout.RenderObject {
	return t.root
}

// Frames returns how many frames have been pumped.
func (t *RenderTester) Frames() int {
	return t.frames
}

// Constraints returns the constraints the root is laid out with.
func (t *RenderTester) Constraints() layout.Constraints {
	return t.constraints
}

// SetConstraints changes the root constraints. The next Pump lays out the
// root with them.
func (t *RenderTester) SetConstraints(constraints layout.Constraints) {
	if t.constraints == constraints {
		return
	}
	t.constraints = constraints
	if t.root != nil {
		t.pipeline.ScheduleLayout(t.root)
	}
}

// PumpRoot attaches root (detaching any previous root) and runs one frame.
func (t *RenderTester) PumpRoot(root layout.RenderObject) {
	if t.root != nil {
		t.root.Detach()
	}
	t.root = root
	if root != nil {
		root.Attach(t.pipeline)
		t.pipeline.ScheduleLayout(root)
		t.pipeline.SchedulePaint(root)
	}
	t.Pump()
}

// Detach detaches the root from the pipeline without forgetting it.
func (t *RenderTester) Detach() {
	if t.root != nil {
		t.root.Detach()
	}
}

// Attach reattaches the root after Detach.
func (t *RenderTester) Attach() {
	if t.root != nil {
		t.root.Attach(t.pipeline)
	}
}

// Pump runs a single frame cycle at the current time: tickers, layout, paint.
func (t *RenderTester) Pump() {
	t.frames++

	// 1. Step tickers
	t.scheduler.Step()

	// 2. Flush layout
	if t.root != nil {
		t.pipeline.FlushLayoutForRoot(t.root, t.constraints)
	}

	// 3. Flush paint
	for _, obj := range t.pipeline.FlushPaint() {
		if painted, ok := obj.(interface{ ClearNeedsPaint() }); ok {
			painted.ClearNeedsPaint()
		}
	}
}

// PumpFrame advances the clock by d and runs one frame.
func (t *RenderTester) PumpFrame(d time.Duration) {
	t.clock.Advance(d)
	t.Pump()
}

// PumpAndSettle runs frames until the tree is idle or the timeout is
// reached. Each frame advances the fake clock by FrameInterval.
// Returns ErrSettleTimeout if the tree does not settle within timeout.
func (t *RenderTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(FrameInterval)
		elapsed += FrameInterval
	}
	return ErrSettleTimeout
}

// needsWork returns true if a ticker is running or layout is pending.
func (t *RenderTester) needsWork() bool {
	return t.scheduler.HasActive() || t.pipeline.NeedsLayout()
}

// Paint records the root's paint into a display list the size of the
// root.
func (t *RenderTester) Paint() *graphics.DisplayList {
	recorder := &graphics.PictureRecorder{}
	if t.root == nil {
		recorder.BeginRecording(graphics.Size{})
		return recorder.EndRecording()
	}
	canvas := recorder.BeginRecording(t.root.Size())
	t.root.Paint(layout.NewPaintContext(canvas))
	return recorder.EndRecording()
}
