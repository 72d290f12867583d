package testing

import (
	"testing"
	"time"

	"github.com/go-drift/animatedsize/pkg/animation"
	"github.com/go-drift/animatedsize/pkg/layout"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
	if clk.Elapsed() != 100*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 100ms", clk.Elapsed())
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestRenderTester_InstallsClock(t *testing.T) {
	tester := NewDefaultRenderTesterWithT(t)
	clk := tester.Clock()

	start := animation.Now()
	clk.Advance(500 * time.Millisecond)
	if animation.Now().Sub(start) != 500*time.Millisecond {
		t.Error("fake clock not installed as the animation clock")
	}
}

func TestRenderTester_CleanupRestoresClock(t *testing.T) {
	before := animation.SetClock(nil)
	animation.SetClock(before)

	tester := NewRenderTester(layout.Unbounded())
	tester.Cleanup()

	current := animation.SetClock(before)
	if current != before {
		t.Errorf("expected the previous clock to be restored, got %T", current)
	}
}
