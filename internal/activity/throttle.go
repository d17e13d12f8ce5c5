package activity

import "time"

// throttleFunc wraps fn so it fires at most once per period. The first
// call passes through immediately; later calls inside the window are
// dropped. Not safe for concurrent use; the watcher calls it from a
// single goroutine.
func throttleFunc(period time.Duration, fn func()) func() {
	var last time.Time
	return func() {
		now := time.Now()
		if !last.IsZero() && now.Sub(last) < period {
			return
		}
		last = now
		fn()
	}
}
