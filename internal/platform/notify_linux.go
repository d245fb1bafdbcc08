//go:build linux

package platform

import (
	"context"

	"github.com/godbus/dbus/v5"
)

const (
	notifyService = "org.freedesktop.Notifications"
	notifyPath    = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod  = notifyService + ".Notify"
)

// Notify sends a desktop notification through the freedesktop notification
// service on the session bus.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	hints := make(map[string]dbus.Variant)
	for k, v := range opts.hints() {
		hints[k] = dbus.MakeVariant(v)
	}
	ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
	defer cancel()
	call := conn.Object(notifyService, notifyPath).CallWithContext(ctx, notifyMethod, 0,
		AppName, uint32(0), opts.IconPath, title, body, []string{}, hints, opts.expireMillis())
	return call.Err
}
