// Package testing provides a render object test harness for animated layout.
//
// # Quick Start
//
// Build a render tree, hand its root to a tester, and pump frames:
//
//	func TestGrow(t *testing.T) {
//	    child := widgets.NewRenderSizedBox(graphics.Size{Width: 100, Height: 40})
//	    tester := drifttest.NewRenderTesterWithT(t, layout.Loose(graphics.Size{Width: 400, Height: 400}))
//	    animated := widgets.NewRenderAnimatedSize(200*time.Millisecond, tester.Scheduler())
//	    animated.SetChild(child)
//	    tester.PumpRoot(animated)
//
//	    child.SetPreferredSize(graphics.Size{Width: 200, Height: 80})
//	    tester.Pump()
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Frames
//
// Pump runs one frame at the current fake time: tickers step, layout flushes
// from the root, and dirty paint is cleared. PumpFrame advances the clock
// first. PumpAndSettle repeats frames of FrameInterval until no ticker is
// active and no layout is pending.
//
// # Snapshot Testing
//
// Capture the render tree and recorded display operations:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/grow.snapshot.json")
//
// Update snapshots with:
//
//	DRIFT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/animatedsize/pkg/testing"
package testing
