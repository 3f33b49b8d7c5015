//go:build darwin

package platform

import (
	"os/exec"
	"strings"
)

// darkMode shells out to the defaults database. AppleInterfaceStyle reads
// "Dark" in dark mode and does not exist at all in light mode, so any error
// means light.
func darkMode() bool {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "Dark"
}

// watch is unsupported without a run loop observer; callers should re-read
// DarkMode when the app regains focus.
func watch(onChange func(dark bool)) (func(), error) {
	return nil, ErrWatchUnsupported
}
