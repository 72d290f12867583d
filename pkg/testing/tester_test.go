package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/animatedsize/pkg/animation"
	"github.com/go-drift/animatedsize/pkg/graphics"
	"github.com/go-drift/animatedsize/pkg/layout"
)

// growingBox is a leaf whose width follows an animation controller.
type growingBox struct {
	layout.RenderBoxBase
	controller *animation.AnimationController
	layouts    int
}

func newGrowingBox(provider animation.TickerProvider) *growingBox {
	b := &growingBox{controller: animation.NewAnimationController(100 * time.Millisecond)}
	b.controller.Resync(provider)
	b.controller.AddListener(b.MarkNeedsLayout)
	b.SetSelf(b)
	return b
}

func (b *growingBox) PerformLayout() {
	b.layouts++
	b.SetSize(b.Constraints().Constrain(graphics.Size{Width: 100 * b.controller.Value, Height: 10}))
}

func (b *growingBox) Paint(ctx *layout.PaintContext) {
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, b.Size().Width, b.Size().Height), graphics.DefaultPaint())
}

func (b *growingBox) HitTest(graphics.Offset, *layout.HitTestResult) bool { return false }

func TestRenderTester_PumpRootLaysOut(t *testing.T) {
	tester := NewDefaultRenderTesterWithT(t)
	box := newGrowingBox(tester.Scheduler())
	tester.PumpRoot(box)

	if tester.Root() != layout.RenderObject(box) {
		t.Fatal("expected root to be recorded")
	}
	if box.layouts != 1 {
		t.Fatalf("expected one layout, got %d", box.layouts)
	}
	if tester.Frames() != 1 {
		t.Errorf("expected one frame, got %d", tester.Frames())
	}
	if tester.Pipeline().NeedsPaint() {
		t.Error("expected paint to be flushed")
	}
}

func TestRenderTester_PumpFrameAdvancesAnimation(t *testing.T) {
	tester := NewDefaultRenderTesterWithT(t)
	box := newGrowingBox(tester.Scheduler())
	tester.PumpRoot(box)

	box.controller.Forward()
	tester.PumpFrame(50 * time.Millisecond)
	if got := box.Size().Width; got != 50 {
		t.Fatalf("width after 50ms = %v, want 50", got)
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if got := box.Size().Width; got != 100 {
		t.Errorf("settled width = %v, want 100", got)
	}
}

func TestRenderTester_PumpAndSettleTimeout(t *testing.T) {
	tester := NewDefaultRenderTesterWithT(t)
	tester.PumpRoot(newGrowingBox(tester.Scheduler()))

	// A ticker that never stops keeps the tree busy.
	tester.Scheduler().CreateTicker(func(time.Duration) {}).Start()

	err := tester.PumpAndSettle(100 * time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Fatalf("expected ErrSettleTimeout, got %v", err)
	}
	if tester.Clock().Elapsed() < 100*time.Millisecond {
		t.Errorf("expected the clock to advance through the timeout, got %v", tester.Clock().Elapsed())
	}
}

func TestRenderTester_SetConstraintsRelayouts(t *testing.T) {
	tester := NewDefaultRenderTesterWithT(t)
	box := newGrowingBox(tester.Scheduler())
	tester.PumpRoot(box)

	tester.SetConstraints(layout.Tight(graphics.Size{Width: 30, Height: 30}))
	tester.Pump()
	if got := box.Size(); got != (graphics.Size{Width: 30, Height: 30}) {
		t.Errorf("size = %v, want 30x30", got)
	}
}

func TestRenderTester_DetachAttach(t *testing.T) {
	tester := NewDefaultRenderTesterWithT(t)
	box := newGrowingBox(tester.Scheduler())
	tester.PumpRoot(box)

	tester.Detach()
	if box.Attached() {
		t.Fatal("expected root to be detached")
	}
	tester.Attach()
	if box.Owner() != tester.Pipeline() {
		t.Fatal("expected root to be reattached to the tester pipeline")
	}
}

func TestRenderTester_Paint(t *testing.T) {
	tester := NewRenderTesterWithT(t, layout.Tight(graphics.Size{Width: 40, Height: 10}))
	tester.PumpRoot(newGrowingBox(tester.Scheduler()))

	list := tester.Paint()
	if list.Size() != (graphics.Size{Width: 40, Height: 10}) {
		t.Errorf("display list size = %v", list.Size())
	}
	if list.Count(graphics.OpDrawRect) != 1 {
		t.Errorf("expected one drawRect, got %d", list.Count(graphics.OpDrawRect))
	}
}

func TestRenderTester_PaintWithoutRoot(t *testing.T) {
	tester := NewDefaultRenderTesterWithT(t)
	if n := len(tester.Paint().Ops()); n != 0 {
		t.Errorf("expected empty display list, got %d ops", n)
	}
}
