package widgets_test

import (
	"path/filepath"
	"testing"
	"time"
)

func TestAnimatedSize_SnapshotMidway(t *testing.T) {
	h := newHarness(t, sz(100, 40))
	h.resize(sz(200, 80))
	h.pump(50 * time.Millisecond)

	h.tester.CaptureSnapshot().MatchesFile(t, filepath.Join("testdata", "animated_size_midway.snapshot.json"))
}
