// Package platform reports the operating system's light/dark appearance
// preference. It is the upstream brightness signal consumed by a
// shade.Provider: read the current value with DarkMode, and push changes
// into the provider with Watch where the OS supports notifications.
package platform

import "errors"

// ErrWatchUnsupported is returned by Watch on platforms without a
// change-notification mechanism. Callers can fall back to re-reading
// DarkMode at moments the preference is likely to have changed, for example
// when the window regains focus.
var ErrWatchUnsupported = errors.New("platform: dark mode change notifications not supported")

// DarkMode returns true when the OS currently prefers a dark appearance.
// Platforms without a detectable preference report light.
func DarkMode() bool {
	return darkMode()
}

// Watch subscribes to OS appearance changes, invoking onChange with the new
// reading each time the preference flips. onChange is called from a
// background goroutine. The returned stop function releases the
// subscription and may be called once.
func Watch(onChange func(dark bool)) (stop func(), err error) {
	return watch(onChange)
}
