package notify

import (
	"fmt"
	"sync"
	"time"
)

// Status keeps the latest working-time total for presentation, e.g.
// through the control CLI.
type Status struct {
	mu      sync.Mutex
	total   time.Duration
	enabled bool
}

func NewStatus() *Status {
	return &Status{enabled: true}
}

func (s *Status) Update(total time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total = total
}

func (s *Status) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = true
}

func (s *Status) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
}

func (s *Status) Dispose() {}

// Render returns the current working time as shown to the operator.
func (s *Status) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := FormatTimeSpent(s.total)
	if !s.enabled {
		return text + " (paused)"
	}
	return text
}

// FormatTimeSpent renders a duration as "N hrs M mins".
func FormatTimeSpent(total time.Duration) string {
	hours := int(total.Hours())
	minutes := int(total.Minutes()) % 60
	return fmt.Sprintf("%d hrs %d mins", hours, minutes)
}
