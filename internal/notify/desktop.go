package notify

import (
	"fmt"
	"log"
	"time"

	"github.com/godbus/dbus/v5"
)

// Desktop announces tracking pauses and resumptions through
// org.freedesktop.Notifications on the session bus. Working-time
// updates are deliberately silent.
type Desktop struct {
	conn *dbus.Conn
}

func NewDesktop() (*Desktop, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &Desktop{conn: conn}, nil
}

func (d *Desktop) Update(total time.Duration) {}

func (d *Desktop) Enable() {
	if err := d.send("Time tracking resumed", "Working time is being recorded again."); err != nil {
		log.Printf("failed to send resume notification: %v", err)
	}
}

func (d *Desktop) Disable() {
	if err := d.send("Time tracking paused", "Working time is no longer being recorded."); err != nil {
		log.Printf("failed to send pause notification: %v", err)
	}
}

func (d *Desktop) Dispose() {
	d.conn.Close()
}

func (d *Desktop) send(summary, body string) error {
	obj := d.conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"solidtime-tracker", // app_name
		uint32(0),           // replaces_id
		"appointment-soon",  // app_icon
		summary,
		body,
		[]string{}, // actions
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(1)), // normal urgency
		},
		int32(5000), // expire_timeout
	)
	if call.Err != nil {
		return fmt.Errorf("failed to send notification: %w", call.Err)
	}
	return nil
}
