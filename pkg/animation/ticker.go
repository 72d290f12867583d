package animation

import (
	"sync"
	"time"
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by their [Scheduler], which the host steps once per frame.
type Ticker struct {
	callback  func(elapsed time.Duration)
	scheduler *Scheduler
	isActive  bool
	start     time.Time
}

// NewTicker creates a ticker on the default scheduler.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return defaultScheduler.CreateTicker(callback)
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// TickerProvider creates tickers.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// Scheduler owns a set of tickers and advances them when stepped.
// A host frame loop owns one Scheduler; tests can create their own to
// isolate frame delivery.
type Scheduler struct {
	mu     sync.Mutex
	active map[*Ticker]struct{}
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{active: make(map[*Ticker]struct{})}
}

var defaultScheduler = NewScheduler()

// DefaultScheduler returns the process-wide scheduler stepped by [StepTickers].
func DefaultScheduler() *Scheduler {
	return defaultScheduler
}

// CreateTicker creates an inactive ticker bound to this scheduler.
func (s *Scheduler) CreateTicker(callback func(time.Duration)) *Ticker {
	return &Ticker{callback: callback, scheduler: s}
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.active[t] = struct{}{}
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	delete(s.active, t)
	s.mu.Unlock()
}

// Step advances all active tickers.
// This should be called once per frame from the host loop.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(s.active))
	for ticker := range s.active {
		tickers = append(tickers, ticker)
	}
	s.mu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActive returns true if any tickers on this scheduler are active.
func (s *Scheduler) HasActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

// StepTickers advances all active tickers on the default scheduler.
func StepTickers() {
	defaultScheduler.Step()
}

// HasActiveTickers returns true if any tickers on the default scheduler are active.
func HasActiveTickers() bool {
	return defaultScheduler.HasActive()
}
