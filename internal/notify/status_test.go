package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimeSpent(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"Zero", 0, "0 hrs 0 mins"},
		{"Minutes only", 45 * time.Minute, "0 hrs 45 mins"},
		{"Exactly one hour", time.Hour, "1 hrs 0 mins"},
		{"Mixed", 2*time.Hour + 15*time.Minute, "2 hrs 15 mins"},
		{"Sub-minute", 30 * time.Second, "0 hrs 0 mins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeSpent(tt.duration))
		})
	}
}

func TestStatusRender(t *testing.T) {
	s := NewStatus()
	s.Update(90 * time.Minute)
	assert.Equal(t, "1 hrs 30 mins", s.Render())

	s.Disable()
	assert.Equal(t, "1 hrs 30 mins (paused)", s.Render())

	s.Enable()
	assert.Equal(t, "1 hrs 30 mins", s.Render())
}

func TestMultiFansOut(t *testing.T) {
	a := NewStatus()
	b := NewStatus()
	m := Multi{a, b}

	m.Update(time.Hour)
	m.Disable()

	assert.Equal(t, "1 hrs 0 mins (paused)", a.Render())
	assert.Equal(t, "1 hrs 0 mins (paused)", b.Render())
}
