package ipc

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Serve exports the manager on the session bus until the context is
// cancelled.
func Serve(ctx context.Context, m *Manager) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	reply, err := conn.RequestName(ServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("failed to request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("service name %s already taken", ServiceName)
	}

	if err := conn.Export(m, dbus.ObjectPath(ObjectPath), InterfaceName); err != nil {
		return fmt.Errorf("failed to export interface: %w", err)
	}

	<-ctx.Done()
	return nil
}
