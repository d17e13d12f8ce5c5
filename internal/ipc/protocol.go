package ipc

import (
	"context"

	"github.com/godbus/dbus/v5"

	"github.com/1M4nt0/solidtime-tracker/internal/notify"
	"github.com/1M4nt0/solidtime-tracker/internal/tracker"
)

const (
	ObjectPath    = "/io/solidtime/tracker"
	InterfaceName = "io.solidtime.tracker.Manager"
	ServiceName   = "io.solidtime.tracker"
)

// Manager is the D-Bus surface stctl talks to.
type Manager struct {
	Tracker *tracker.Tracker
	Status  *notify.Status
}

func (m *Manager) GetStatus() (string, *dbus.Error) {
	state := "active"
	if m.Tracker.Paused() {
		state = "paused"
	} else if !m.Tracker.Active() {
		state = "stopped"
	}
	return state + ", " + m.Status.Render(), nil
}

func (m *Manager) Pause() *dbus.Error {
	m.Tracker.Pause(context.Background())
	return nil
}

func (m *Manager) Resume() *dbus.Error {
	m.Tracker.Resume(context.Background())
	return nil
}
