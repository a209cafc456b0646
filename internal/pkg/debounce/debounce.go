package debounce

import (
	"sync"
	"time"

	"github.com/dailyexamresult/admin/internal/pkg/clock"
)

// DefaultWindow is the inactivity window used by search inputs.
const DefaultWindow = 500 * time.Millisecond

// Debouncer runs only the most recent of a burst of calls, once no new call
// has arrived for the configured window.
type Debouncer struct {
	clock  clock.Clock
	window time.Duration

	mu    sync.Mutex
	timer clock.Timer
	gen   uint64
}

// New returns a Debouncer. A nil clock means wall time; a non-positive window
// means DefaultWindow.
func New(window time.Duration, clk clock.Clock) *Debouncer {
	if clk == nil {
		clk = clock.Real{}
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{clock: clk, window: window}
}

// Window returns the configured inactivity window.
func (d *Debouncer) Window() time.Duration { return d.window }

// Trigger schedules f and cancels whatever was scheduled before it.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.window, func() {
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			f()
		}
	})
}

// Stop cancels the pending call, if any. It reports whether one was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
