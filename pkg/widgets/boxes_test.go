package widgets_test

import (
	"testing"

	"github.com/go-drift/animatedsize/pkg/graphics"
	"github.com/go-drift/animatedsize/pkg/layout"
	drifttest "github.com/go-drift/animatedsize/pkg/testing"
	"github.com/go-drift/animatedsize/pkg/widgets"
)

func TestRenderSizedBox_Leaf(t *testing.T) {
	tests := []struct {
		name        string
		preferred   graphics.Size
		constraints layout.Constraints
		want        graphics.Size
	}{
		{"fits", sz(50, 20), layout.Loose(sz(100, 100)), sz(50, 20)},
		{"clamped", sz(500, 20), layout.Loose(sz(100, 100)), sz(100, 20)},
		{"tight", sz(50, 20), layout.Tight(sz(70, 70)), sz(70, 70)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := drifttest.NewRenderTesterWithT(t, tt.constraints)
			box := widgets.NewRenderSizedBox(tt.preferred)
			tester.PumpRoot(box)
			if got := box.Size(); got != tt.want {
				t.Errorf("size = %v, want %v", got, tt.want)
			}
			if got := box.ComputeDryLayout(tt.constraints); got != tt.want {
				t.Errorf("dry size = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderSizedBox_TightensExplicitAxes(t *testing.T) {
	tester := drifttest.NewDefaultRenderTesterWithT(t)
	inner := widgets.NewRenderSizedBox(sz(30, 30))
	outer := widgets.NewRenderSizedBox(sz(80, 0))
	outer.SetChild(inner)
	tester.PumpRoot(outer)

	if got := inner.Size(); got != sz(80, 30) {
		t.Errorf("inner size = %v, want 80x30", got)
	}
	if got := outer.Size(); got != sz(80, 30) {
		t.Errorf("outer size = %v, want 80x30", got)
	}
}

func TestRenderSizedBox_SetPreferredSizeRelayouts(t *testing.T) {
	tester := drifttest.NewDefaultRenderTesterWithT(t)
	box := widgets.NewRenderSizedBox(sz(10, 10))
	tester.PumpRoot(box)

	box.SetPreferredSize(sz(20, 40))
	if !tester.Pipeline().NeedsLayout() {
		t.Fatal("expected layout to be scheduled")
	}
	tester.Pump()
	if got := box.Size(); got != sz(20, 40) {
		t.Errorf("size = %v, want 20x40", got)
	}
}

func TestRenderColoredBox_PaintsBehindChild(t *testing.T) {
	tester := drifttest.NewDefaultRenderTesterWithT(t)
	box := widgets.NewRenderColoredBox(graphics.ColorBlue, widgets.NewRenderSizedBox(sz(30, 20)))
	tester.PumpRoot(box)

	if got := box.Size(); got != sz(30, 20) {
		t.Fatalf("size = %v, want child size 30x20", got)
	}
	list := tester.Paint()
	ops := list.Ops()
	if ops[0].Kind != graphics.OpDrawRect || ops[0].Paint.Color != graphics.ColorBlue {
		t.Errorf("expected the fill first, got %+v", ops[0])
	}

	box.SetColor(graphics.ColorGreen)
	if got := tester.Paint().Ops()[0].Paint.Color; got != graphics.ColorGreen {
		t.Errorf("color after SetColor = %v", got)
	}
}

func TestRenderColoredBox_HitTest(t *testing.T) {
	tester := drifttest.NewDefaultRenderTesterWithT(t)
	box := widgets.NewRenderColoredBox(graphics.ColorBlue, nil)
	tester.SetConstraints(layout.Tight(sz(10, 10)))
	tester.PumpRoot(box)

	result := &layout.HitTestResult{}
	if !box.HitTest(graphics.Offset{X: 5, Y: 5}, result) || len(result.Entries) != 1 {
		t.Fatalf("expected the box itself to be hit, got %v", result.Entries)
	}
	if box.HitTest(graphics.Offset{X: 50, Y: 5}, &layout.HitTestResult{}) {
		t.Error("expected miss outside bounds")
	}
}
