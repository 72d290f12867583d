package animation

import (
	"fmt"
	"math"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
// The status follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, status is AnimationForward or AnimationReverse.
// When stopped, status is AnimationDismissed (at 0) or AnimationCompleted (at 1).
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at the lower bound (0.0).
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward the upper bound (1.0).
	AnimationForward
	// AnimationReverse means the animation is playing toward the lower bound (0.0).
	AnimationReverse
	// AnimationCompleted means the animation is stopped at the upper bound (1.0).
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives an animation by producing values over time.
//
// The controller manages a Value that progresses from LowerBound (default 0.0)
// to UpperBound (default 1.0) over the specified Duration. The Curve function
// transforms linear progress into eased motion.
//
// Progress is accumulated from per-frame time deltas, so Duration may be
// changed while the animation runs: the current Value is kept and only the
// remaining speed changes.
//
// Use [Tween] to map the 0-1 value to other ranges or types like colors or sizes.
//
// Always call Dispose when done to stop the animation and release resources.
// See ExampleAnimationController for usage patterns.
type AnimationController struct {
	// Value is the current animation value, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of a full forward animation.
	Duration time.Duration

	// ReverseDuration is the length of a full reverse animation.
	// Zero means Duration is used in both directions.
	ReverseDuration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	// LowerBound is the minimum value (default 0.0).
	LowerBound float64

	// UpperBound is the maximum value (default 1.0).
	UpperBound float64

	status          AnimationStatus
	provider        TickerProvider
	ticker          *Ticker
	target          float64
	startValue      float64
	progress        float64
	lastElapsed     time.Duration
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates an animation controller with the given duration.
// Frames are delivered by the default scheduler until Resync is called.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Value:           0,
		Duration:        duration,
		LowerBound:      0,
		UpperBound:      1,
		Curve:           LinearCurve,
		status:          AnimationDismissed,
		provider:        defaultScheduler,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward animates from the current value to the upper bound (1.0).
func (c *AnimationController) Forward() {
	c.animateTo(c.UpperBound, AnimationForward)
}

// ForwardFrom jumps to from and then animates to the upper bound.
func (c *AnimationController) ForwardFrom(from float64) {
	c.Stop()
	c.setValue(from)
	c.Forward()
}

// Reverse animates from the current value to the lower bound (0.0).
func (c *AnimationController) Reverse() {
	c.animateTo(c.LowerBound, AnimationReverse)
}

// AnimateTo animates to a specific target value.
func (c *AnimationController) AnimateTo(target float64) {
	if target > c.Value {
		c.animateTo(target, AnimationForward)
	} else {
		c.animateTo(target, AnimationReverse)
	}
}

func (c *AnimationController) animateTo(target float64, direction AnimationStatus) {
	if c.ticker != nil {
		c.ticker.Stop()
	}

	c.target = c.clamp(target)
	c.startValue = c.Value
	c.progress = 0
	c.lastElapsed = 0
	if c.target == c.Value {
		c.ticker = nil
		c.stop()
		return
	}
	c.setStatus(direction)

	c.ticker = c.newTicker()
	c.ticker.Start()
}

func (c *AnimationController) newTicker() *Ticker {
	provider := c.provider
	if provider == nil {
		provider = defaultScheduler
	}
	return provider.CreateTicker(func(elapsed time.Duration) {
		c.tick(elapsed)
	})
}

// segmentDuration scales the configured duration by the distance left to
// cover, so a partial run takes proportionally less time.
func (c *AnimationController) segmentDuration() time.Duration {
	base := c.Duration
	if c.status == AnimationReverse && c.ReverseDuration > 0 {
		base = c.ReverseDuration
	}
	span := c.UpperBound - c.LowerBound
	if span <= 0 {
		return 0
	}
	fraction := math.Abs(c.target-c.startValue) / span
	return time.Duration(float64(base) * fraction)
}

func (c *AnimationController) tick(elapsed time.Duration) {
	delta := elapsed - c.lastElapsed
	c.lastElapsed = elapsed

	duration := c.segmentDuration()
	if duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.stop()
		return
	}

	c.progress += float64(delta) / float64(duration)
	if c.progress >= 1.0 {
		c.progress = 1.0
	}

	// Interpolate from start to target
	eased := c.progress
	if c.Curve != nil {
		eased = c.Curve(c.progress)
	}
	if c.progress >= 1.0 {
		eased = 1.0
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if c.progress >= 1.0 {
		c.stop()
	}
}

func (c *AnimationController) stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}

	// Update status based on final value
	if c.Value <= c.LowerBound {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= c.UpperBound {
		c.setStatus(AnimationCompleted)
	}
}

// Reset immediately sets the value to the lower bound.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = c.LowerBound
	c.setStatus(AnimationDismissed)
	c.notifyListeners()
}

// Stop stops the animation at the current value.
// The value is frozen and listeners are not notified.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Resync moves the controller onto a different ticker provider.
//
// A running animation keeps its current Value and progress and continues
// on frames from the new provider.
func (c *AnimationController) Resync(provider TickerProvider) {
	if provider == nil {
		panic("animation: Resync called with nil TickerProvider")
	}
	c.provider = provider
	if c.ticker == nil {
		return
	}
	wasActive := c.ticker.IsActive()
	c.ticker.Stop()
	c.ticker = c.newTicker()
	c.lastElapsed = 0
	if wasActive {
		c.ticker.Start()
	}
}

// TickerProvider returns the provider the controller creates tickers from.
func (c *AnimationController) TickerProvider() TickerProvider {
	return c.provider
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true while a ticker is driving the value.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// IsCompleted returns true if the animation finished at the upper bound.
func (c *AnimationController) IsCompleted() bool {
	return c.status == AnimationCompleted
}

// IsDismissed returns true if the animation is at the lower bound.
func (c *AnimationController) IsDismissed() bool {
	return c.status == AnimationDismissed
}

// AtUpperBound reports whether Value has reached the upper bound.
func (c *AnimationController) AtUpperBound() bool {
	return c.Value >= c.UpperBound
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setValue(v float64) {
	v = c.clamp(v)
	if v == c.Value {
		return
	}
	c.Value = v
	c.notifyListeners()
}

func (c *AnimationController) clamp(v float64) float64 {
	if v < c.LowerBound {
		return c.LowerBound
	}
	if v > c.UpperBound {
		return c.UpperBound
	}
	return v
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cleans up resources used by the controller.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
