package notify

import "time"

// Spend receives working-time observations from the tracker. Purely
// observational: implementations must not call back into the tracker.
type Spend interface {
	Update(total time.Duration)
	Enable()
	Disable()
	Dispose()
}

// Multi fans out to several sinks in order.
type Multi []Spend

func (m Multi) Update(total time.Duration) {
	for _, s := range m {
		s.Update(total)
	}
}

func (m Multi) Enable() {
	for _, s := range m {
		s.Enable()
	}
}

func (m Multi) Disable() {
	for _, s := range m {
		s.Disable()
	}
}

func (m Multi) Dispose() {
	for _, s := range m {
		s.Dispose()
	}
}
