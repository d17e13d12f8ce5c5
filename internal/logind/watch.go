package logind

import (
	"context"
	"fmt"
	"log"

	"github.com/godbus/dbus/v5"
)

// Watch follows logind signals and maps them onto tracker lifecycle
// calls: suspend and screen lock stop tracking, wake and unlock resume
// it. This is the daemon's equivalent of editor window focus.
func Watch(ctx context.Context, onIdle, onActive func()) error {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return fmt.Errorf("failed to connect to system bus: %w", err)
	}
	defer conn.Close()

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath("/org/freedesktop/login1"),
		dbus.WithMatchInterface("org.freedesktop.login1.Manager"),
		dbus.WithMatchMember("PrepareForSleep"),
	); err != nil {
		return fmt.Errorf("add match failed: %w", err)
	}

	// Session lock state arrives as a LockedHint property change.
	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
		dbus.WithMatchMember("PropertiesChanged"),
	); err != nil {
		return fmt.Errorf("add match for PropertiesChanged failed: %w", err)
	}

	c := make(chan *dbus.Signal, 10)
	conn.Signal(c)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-c:
			switch sig.Name {
			case "org.freedesktop.login1.Manager.PrepareForSleep":
				if len(sig.Body) == 0 {
					break
				}
				sleeping, _ := sig.Body[0].(bool)
				if sleeping {
					log.Println("system is going to sleep, stopping tracking")
					onIdle()
				} else {
					log.Println("system has woken up, resuming tracking")
					onActive()
				}
			case "org.freedesktop.DBus.Properties.PropertiesChanged":
				if len(sig.Body) < 2 {
					break
				}
				iface, ok := sig.Body[0].(string)
				if !ok || iface != "org.freedesktop.login1.Session" {
					break
				}
				changedProps, ok := sig.Body[1].(map[string]dbus.Variant)
				if !ok {
					break
				}
				val, exists := changedProps["LockedHint"]
				if !exists {
					break
				}
				locked, _ := val.Value().(bool)
				if locked {
					log.Println("session locked, stopping tracking")
					onIdle()
				} else {
					log.Println("session unlocked, resuming tracking")
					onActive()
				}
			}
		}
	}
}
