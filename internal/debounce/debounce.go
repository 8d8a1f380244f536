// Package debounce coalesces rapid input changes into a single callback
// after the input settles, the way the search pages delay queries while the
// user is still typing. It is independent of any UI event loop.
package debounce

import (
	"sync"
	"time"
)

// Debouncer fires a callback with the most recent input once no new input
// has arrived for the configured delay. At most one fire is pending at a
// time; each Trigger resets the timer and replaces the pending input.
type Debouncer struct {
	delay time.Duration
	fn    func(input string)

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a debouncer calling fn after input settles for delay.
func New(delay time.Duration, fn func(input string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger records a new input and restarts the settle timer.
func (d *Debouncer) Trigger(input string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fn(input) })
}

// Stop cancels any pending fire. A stopped debouncer can be triggered again.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
