//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly && !windows && !darwin

package platform

func darkMode() bool {
	return false
}

func watch(onChange func(dark bool)) (func(), error) {
	return nil, ErrWatchUnsupported
}
