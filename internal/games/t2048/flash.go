package t2048

import "time"

// Flash timing for merged tiles: the cell blinks FlashBlinks times, each
// blink being FlashInterval highlighted followed by FlashInterval plain.
const (
	FlashInterval = 80 * time.Millisecond
	FlashBlinks   = 2
)

// Flash tracks the merge highlight after a move. The zero value is idle.
type Flash struct {
	started time.Time
}

// Start begins a new flash at now.
func (f *Flash) Start(now time.Time) {
	f.started = now
}

// Stop cancels any running flash.
func (f *Flash) Stop() {
	f.started = time.Time{}
}

// Running reports whether the flash has not finished yet.
func (f *Flash) Running(now time.Time) bool {
	if f.started.IsZero() {
		return false
	}
	return now.Sub(f.started) < 2*FlashBlinks*FlashInterval
}

// On reports whether merged cells should be highlighted at now.
func (f *Flash) On(now time.Time) bool {
	if !f.Running(now) {
		return false
	}
	phase := now.Sub(f.started) / FlashInterval
	return phase%2 == 0
}
