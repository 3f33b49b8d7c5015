//go:build windows

package platform

import "golang.org/x/sys/windows/registry"

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

// darkMode reads the per-user app theme setting.
// AppsUseLightTheme is 0 in dark mode, 1 in light mode.
func darkMode() bool {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return false // assume light when the key is unreadable
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return false
	}
	return v == 0
}

func watch(onChange func(dark bool)) (func(), error) {
	return nil, ErrWatchUnsupported
}
