package layout

import (
	"math"
	"testing"

	"github.com/go-drift/animatedsize/pkg/errors"
	"github.com/go-drift/animatedsize/pkg/graphics"
)

func TestConstraints_Constrain(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 20, MaxHeight: 50}
	tests := []struct {
		in, want graphics.Size
	}{
		{graphics.Size{Width: 5, Height: 5}, graphics.Size{Width: 10, Height: 20}},
		{graphics.Size{Width: 50, Height: 30}, graphics.Size{Width: 50, Height: 30}},
		{graphics.Size{Width: 500, Height: 500}, graphics.Size{Width: 100, Height: 50}},
	}
	for _, tt := range tests {
		if got := c.Constrain(tt.in); got != tt.want {
			t.Errorf("Constrain(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConstraints_Tightness(t *testing.T) {
	tight := Tight(graphics.Size{Width: 40, Height: 30})
	if !tight.IsTight() {
		t.Error("Tight constraints must report IsTight")
	}
	if tight.Smallest() != (graphics.Size{Width: 40, Height: 30}) {
		t.Errorf("unexpected smallest size %v", tight.Smallest())
	}

	half := Constraints{MinWidth: 40, MaxWidth: 40, MaxHeight: 30}
	if half.IsTight() {
		t.Error("constraints tight on one axis only must not be tight")
	}
	if !half.HasTightWidth() || half.HasTightHeight() {
		t.Error("unexpected per-axis tightness")
	}

	loose := Loose(graphics.Size{Width: 40, Height: 30})
	if loose.IsTight() || loose.Smallest() != (graphics.Size{}) {
		t.Errorf("unexpected loose constraints %v", loose)
	}
	if loose.Biggest() != (graphics.Size{Width: 40, Height: 30}) {
		t.Errorf("unexpected biggest size %v", loose.Biggest())
	}
	if tight.Loosen() != loose {
		t.Errorf("Loosen() = %v, want %v", tight.Loosen(), loose)
	}
}

func TestConstraints_String(t *testing.T) {
	if got := Tight(graphics.Size{Width: 4, Height: 2}).String(); got != "Constraints(w: =4, h: =2)" {
		t.Errorf("unexpected string %q", got)
	}
	c := Constraints{MaxWidth: math.MaxFloat64, MinHeight: 1, MaxHeight: 9}
	if got := c.String(); got != "Constraints(w: 0..inf, h: 1..9)" {
		t.Errorf("unexpected string %q", got)
	}
}

func TestAlignment_AlongSize(t *testing.T) {
	container := graphics.Size{Width: 100, Height: 50}
	child := graphics.Size{Width: 20, Height: 10}
	tests := []struct {
		align Alignment
		want  graphics.Offset
	}{
		{AlignmentTopLeft, graphics.Offset{X: 0, Y: 0}},
		{AlignmentCenter, graphics.Offset{X: 40, Y: 20}},
		{AlignmentBottomRight, graphics.Offset{X: 80, Y: 40}},
	}
	for _, tt := range tests {
		if got := tt.align.AlongSize(container, child); got != tt.want {
			t.Errorf("%v.AlongSize = %v, want %v", tt.align, got, tt.want)
		}
	}

	// A child larger than its container overflows symmetrically when centered.
	big := graphics.Size{Width: 120, Height: 50}
	if got := AlignmentCenter.AlongSize(container, big); got.X != -10 {
		t.Errorf("expected negative offset for overflowing child, got %v", got)
	}
}

func TestAlignmentDirectional_Resolve(t *testing.T) {
	if got := AlignmentCenterStart.Resolve(TextDirectionLTR); got != AlignmentCenterLeft {
		t.Errorf("LTR start resolved to %v", got)
	}
	if got := AlignmentCenterStart.Resolve(TextDirectionRTL); got != AlignmentCenterRight {
		t.Errorf("RTL start resolved to %v", got)
	}
	if got := AlignmentTopRight.Resolve(TextDirectionRTL); got != AlignmentTopRight {
		t.Errorf("absolute alignment must ignore direction, got %v", got)
	}
}

func TestAlignmentByName(t *testing.T) {
	a, ok := AlignmentByName("bottomEnd")
	if !ok || a != AlignmentGeometry(AlignmentBottomEnd) {
		t.Fatalf("AlignmentByName(bottomEnd) = %v, %v", a, ok)
	}
	if _, ok := AlignmentByName("middle"); ok {
		t.Error("expected unknown alignment to be rejected")
	}
	if AlignmentCenter.String() != "center" {
		t.Errorf("unexpected name %q", AlignmentCenter.String())
	}
}

func TestPipeline_MarkNeedsLayoutSchedulesBoundary(t *testing.T) {
	owner := &PipelineOwner{}
	box := newTestRenderBox(10, 10)
	box.Attach(owner)
	if !owner.NeedsLayout() {
		t.Fatal("attaching an unlaid-out root must schedule layout")
	}

	owner.FlushLayoutForRoot(box, Loose(graphics.Size{Width: 100, Height: 100}))
	if box.layoutCalls != 1 {
		t.Fatalf("expected one layout, got %d", box.layoutCalls)
	}

	// Clean and unchanged: no relayout.
	owner.FlushLayoutFromBoundaries()
	if box.layoutCalls != 1 {
		t.Fatalf("expected no extra layout, got %d", box.layoutCalls)
	}

	box.MarkNeedsLayout()
	if !owner.NeedsLayout() {
		t.Fatal("expected boundary to be scheduled")
	}
	owner.FlushLayoutFromBoundaries()
	if box.layoutCalls != 2 {
		t.Fatalf("expected relayout from boundary, got %d", box.layoutCalls)
	}
}

type panickingBox struct {
	testRenderBox
}

func (r *panickingBox) PerformLayout() {
	panic("layout exploded")
}

type capturingHandler struct {
	panics []*errors.PanicError
}

func (h *capturingHandler) HandleError(*errors.DriftError)   {}
func (h *capturingHandler) HandlePanic(e *errors.PanicError) { h.panics = append(h.panics, e) }

func TestPipeline_RecoversLayoutPanic(t *testing.T) {
	handler := &capturingHandler{}
	prev := errors.SetHandler(handler)
	defer errors.SetHandler(prev)

	owner := &PipelineOwner{}
	box := &panickingBox{}
	box.SetSelf(box)
	box.Attach(owner)

	owner.FlushLayoutForRoot(box, Loose(graphics.Size{Width: 10, Height: 10}))

	if len(handler.panics) != 1 {
		t.Fatalf("expected one reported panic, got %d", len(handler.panics))
	}
	if handler.panics[0].Op != "layout.FlushLayoutForRoot" {
		t.Errorf("unexpected op %q", handler.panics[0].Op)
	}
	if owner.NeedsLayout() {
		t.Error("pipeline must clear its layout flag after a recovered panic")
	}
}

func TestDryLayout_FallsBackToSmallest(t *testing.T) {
	box := newTestRenderBox(10, 10)
	c := Constraints{MinWidth: 3, MaxWidth: 30, MinHeight: 4, MaxHeight: 40}
	if got := DryLayout(box, c); got != (graphics.Size{Width: 3, Height: 4}) {
		t.Errorf("DryLayout = %v", got)
	}
}

func TestFlushPaint_ReturnsDirtyNodes(t *testing.T) {
	owner := &PipelineOwner{}
	box := newTestRenderBox(10, 10)
	box.Attach(owner)
	box.MarkNeedsPaint()

	dirty := owner.FlushPaint()
	if len(dirty) != 1 || dirty[0] != RenderObject(box) {
		t.Fatalf("expected the box to need paint, got %v", dirty)
	}
	if owner.NeedsPaint() {
		t.Error("FlushPaint must clear the paint flag")
	}
}

func TestDropChild_Detaches(t *testing.T) {
	owner := &PipelineOwner{}
	parent := newTestRenderBox(10, 10)
	child := newTestRenderBox(5, 5)
	SetParentOnChild(child, parent)
	parent.Attach(owner)
	child.Attach(owner)

	DropChild(child)
	if child.Parent() != nil {
		t.Error("dropped child still has a parent")
	}
	if child.Attached() {
		t.Error("dropped child still attached")
	}

	// Dropping a detached orphan is a no-op.
	DropChild(child)
	DropChild(nil)
}

func TestPipeline_SkipsDetachedBoundaries(t *testing.T) {
	owner := &PipelineOwner{}
	box := newTestRenderBox(10, 10)
	box.Attach(owner)
	owner.FlushLayoutForRoot(box, Loose(graphics.Size{Width: 100, Height: 100}))

	box.MarkNeedsLayout()
	box.Detach()
	owner.FlushLayoutFromBoundaries()
	if box.layoutCalls != 1 {
		t.Errorf("detached boundary laid out: %d calls", box.layoutCalls)
	}
}
