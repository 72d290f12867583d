package scenario

import (
	"time"

	"github.com/go-drift/animatedsize/pkg/animation"
	"github.com/go-drift/animatedsize/pkg/graphics"
	"github.com/go-drift/animatedsize/pkg/layout"
	"github.com/go-drift/animatedsize/pkg/widgets"
)

// Frame is the observed state of the animated box after one frame.
type Frame struct {
	Index       int
	Time        time.Duration
	Constraints layout.Constraints
	ChildSize   graphics.Size
	State       widgets.AnimatedSizeState
	Size        graphics.Size
	ChildOffset graphics.Offset
	Overflow    bool
	Animating   bool
	// Ended is set on the frame in which an animation run completed.
	Ended bool
	// Display holds the frame's paint when Options.RecordPaint is set.
	Display *graphics.DisplayList
}

// Options controls what Run records.
type Options struct {
	RecordPaint bool
}

// Run replays s and returns one Frame per scenario frame. The first frame is
// at time zero; each later frame advances time by s.Frame.
//
// Run installs its own animation clock for the duration of the call, so
// scenarios must not be run concurrently.
func Run(s *Scenario, opts Options) []Frame {
	var now time.Time
	prev := animation.SetClock(animation.ClockFunc(func() time.Time { return now }))
	defer animation.SetClock(prev)
	start := now

	r := newRunner(s)
	defer r.close()

	frames := make([]Frame, 0, s.FrameCount())
	for _, step := range s.Steps {
		for i := 0; i < step.Frames; i++ {
			if len(frames) > 0 {
				now = now.Add(s.Frame)
			}
			if i == 0 {
				r.apply(step)
			}
			frame := r.pump(opts)
			frame.Index = len(frames)
			frame.Time = now.Sub(start)
			frames = append(frames, frame)
		}
	}
	return frames
}

type runner struct {
	pipeline    *layout.PipelineOwner
	scheduler   *animation.Scheduler
	animated    *widgets.RenderAnimatedSize
	leaf        *widgets.RenderSizedBox
	base        layout.Constraints
	constraints layout.Constraints
	ended       bool
}

func newRunner(s *Scenario) *runner {
	r := &runner{
		pipeline:    &layout.PipelineOwner{},
		scheduler:   animation.NewScheduler(),
		base:        s.Constraints,
		constraints: s.Constraints,
	}
	r.animated = widgets.NewRenderAnimatedSize(s.Duration, r.scheduler)
	r.animated.SetReverseDuration(s.ReverseDuration)
	r.animated.SetCurve(s.Curve)
	r.animated.SetAlignment(s.Alignment)
	r.animated.SetTextDirection(s.TextDirection)
	r.animated.SetClipBehavior(s.Clip)
	r.animated.SetOnEnd(func() { r.ended = true })

	r.leaf = widgets.NewRenderSizedBox(graphics.Size{})
	r.animated.SetChild(widgets.NewRenderColoredBox(s.Color, r.leaf))

	r.animated.Attach(r.pipeline)
	r.pipeline.ScheduleLayout(r.animated)
	return r
}

func (r *runner) apply(step Step) {
	if step.Detach {
		r.animated.Detach()
		r.animated.Attach(r.pipeline)
	}
	r.leaf.SetPreferredSize(step.Size)

	constraints := r.base
	if step.Tight {
		constraints = layout.Tight(step.Size)
	}
	if constraints != r.constraints {
		r.constraints = constraints
		r.pipeline.ScheduleLayout(r.animated)
	}
}

func (r *runner) pump(opts Options) Frame {
	r.ended = false
	r.scheduler.Step()
	r.pipeline.FlushLayoutForRoot(r.animated, r.constraints)
	for _, obj := range r.pipeline.FlushPaint() {
		if painted, ok := obj.(interface{ ClearNeedsPaint() }); ok {
			painted.ClearNeedsPaint()
		}
	}

	frame := Frame{
		Constraints: r.constraints,
		ChildSize:   r.leaf.Size(),
		State:       r.animated.State(),
		Size:        r.animated.Size(),
		ChildOffset: layout.ChildOffset(r.animated.Child()),
		Overflow:    r.animated.HasVisualOverflow(),
		Animating:   r.animated.IsAnimating(),
		Ended:       r.ended,
	}
	if opts.RecordPaint {
		recorder := &graphics.PictureRecorder{}
		canvas := recorder.BeginRecording(frame.Size)
		r.animated.Paint(layout.NewPaintContext(canvas))
		frame.Display = recorder.EndRecording()
	}
	return frame
}

func (r *runner) close() {
	r.animated.Detach()
	r.animated.Dispose()
}
