package tracker

// Event identifies a tracker lifecycle observation point. Observers are
// invoked synchronously in registration order and must not call back
// into the tracker.
type Event string

const (
	EventInit            Event = "init"
	EventResume          Event = "resume"
	EventPause           Event = "pause"
	EventStop            Event = "stop"
	EventActivity        Event = "activity"
	EventCreateTimeEntry Event = "create-time-entry"
	EventUpdateTimeEntry Event = "update-time-entry"
)

// Subscribe registers an observer for lifecycle events.
func (t *Tracker) Subscribe(fn func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, fn)
}

func (t *Tracker) emitLocked(ev Event) {
	for _, fn := range t.observers {
		fn(ev)
	}
}
