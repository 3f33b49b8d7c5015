//go:build linux || freebsd || openbsd || netbsd || dragonfly

package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Appearance comes from the XDG desktop portal, which works across desktop
// environments (GNOME, KDE, wlroots compositors) and inside sandboxes.
const (
	portalDest    = "org.freedesktop.portal.Desktop"
	portalPath    = "/org/freedesktop/portal/desktop"
	appearanceNS  = "org.freedesktop.appearance"
	colorScheme   = "color-scheme"
	settingsIface = "org.freedesktop.portal.Settings"
)

func darkMode() bool {
	dark, err := readColorScheme()
	if err != nil {
		return false
	}
	return dark
}

// readColorScheme queries the portal Settings interface once.
func readColorScheme() (bool, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return false, fmt.Errorf("dbus connect: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(portalDest, portalPath)
	var value dbus.Variant
	call := obj.Call(settingsIface+".Read", 0, appearanceNS, colorScheme)
	if call.Err != nil {
		return false, fmt.Errorf("portal settings read: %w", call.Err)
	}
	if err := call.Store(&value); err != nil {
		return false, fmt.Errorf("portal settings response: %w", err)
	}
	return schemeIsDark(value), nil
}

// schemeIsDark maps the portal color-scheme value to a dark preference.
// The portal defines 0 = no preference, 1 = prefer dark, 2 = prefer light.
// Settings.Read wraps the value in an extra variant layer, so unwrap first.
func schemeIsDark(v dbus.Variant) bool {
	inner := v
	for {
		nested, ok := inner.Value().(dbus.Variant)
		if !ok {
			break
		}
		inner = nested
	}
	n, ok := inner.Value().(uint32)
	return ok && n == 1
}

func watch(onChange func(dark bool)) (func(), error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("dbus connect: %w", err)
	}

	rule := fmt.Sprintf("type='signal',interface='%s',member='SettingChanged'", settingsIface)
	if err := conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, rule).Err; err != nil {
		conn.Close()
		return nil, fmt.Errorf("portal settings subscribe: %w", err)
	}

	sigc := make(chan *dbus.Signal, 16)
	conn.Signal(sigc)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case sig, ok := <-sigc:
				if !ok {
					return
				}
				if sig.Name != settingsIface+".SettingChanged" || len(sig.Body) < 3 {
					continue
				}
				ns, _ := sig.Body[0].(string)
				key, _ := sig.Body[1].(string)
				if ns != appearanceNS || key != colorScheme {
					continue
				}
				if value, ok := sig.Body[2].(dbus.Variant); ok {
					onChange(schemeIsDark(value))
				}
			}
		}
	}()

	stop := func() {
		close(done)
		conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, rule)
		conn.RemoveSignal(sigc)
		conn.Close()
	}
	return stop, nil
}
